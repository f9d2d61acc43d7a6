package platform

import (
	"testing"

	"Credo/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		url  string
		want model.Platform
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=abc", model.PlatformYouTube, true},
		{"https://youtu.be/abc", model.PlatformYouTube, true},
		{"https://tiktok.com/@x/video/1", model.PlatformTikTok, true},
		{"https://www.tiktok.com/@x/video/1", model.PlatformTikTok, true},
		{"https://vt.tiktok.com/Zab12/", model.PlatformTikTok, true},
		{"https://vk.com/video-1_2", model.PlatformVK, true},
		{"https://www.vk.com/video-1_2", model.PlatformVK, true},
		{"https://twitch.tv/somestreamer", model.PlatformTwitch, true},
		{"https://www.twitch.tv/somestreamer", model.PlatformTwitch, true},
		{"https://clips.twitch.tv/FunnyClip", model.PlatformTwitch, true},

		// 精确匹配：裸 youtube.com 与未知子域名都不在表内
		{"https://youtube.com/watch?v=abc", "", false},
		{"https://m.youtube.com/watch?v=abc", "", false},
		{"https://example.com/video", "", false},
		{"https://twitch.tv.evil.com/x", "", false},
		{"not a url at all", "", false},
		{"://bad", "", false},
	}

	for _, c := range cases {
		got, ok := Classify(c.url)
		if ok != c.ok || got != c.want {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", c.url, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalize(t *testing.T) {
	got, ok := Normalize("https://youtu.be/abc?t=10")
	if !ok || got != "https://youtu.be/abc?t=10" {
		t.Fatalf("Normalize returned (%q, %v)", got, ok)
	}

	if _, ok := Normalize("youtu.be/abc"); ok {
		t.Error("expected scheme-less url to be rejected")
	}
	if _, ok := Normalize("://bad"); ok {
		t.Error("expected malformed url to be rejected")
	}
}
