package i18n

import (
	"context"
	"testing"
)

func TestT(t *testing.T) {
	if got := T("zh", "Publication not found."); got != "内容不存在。" {
		t.Errorf("zh translation = %q", got)
	}
	if got := T("zh-CN", "Publication not found."); got != "内容不存在。" {
		t.Errorf("zh-CN should normalize to zh, got %q", got)
	}
	// 未收录语言与未收录条目均回退原文
	if got := T("fr", "Publication not found."); got != "Publication not found." {
		t.Errorf("fr fallback = %q", got)
	}
	if got := T("zh", "Some other text."); got != "Some other text." {
		t.Errorf("missing entry fallback = %q", got)
	}
}

func TestLocaleContext(t *testing.T) {
	ctx := WithLocale(context.Background(), "ZH_cn")
	if got := FromContext(ctx); got != "zh" {
		t.Errorf("FromContext = %q, want zh", got)
	}
	if got := FromContext(context.Background()); got != "en" {
		t.Errorf("unset locale = %q, want en", got)
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"zh-CN,zh;q=0.9,en;q=0.8", "zh"},
		{"en-US;q=0.7", "en"},
		{"*", "en"},
	}
	for _, c := range cases {
		if got := ParseAcceptLanguage(c.header, "en"); got != c.want {
			t.Errorf("ParseAcceptLanguage(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}
