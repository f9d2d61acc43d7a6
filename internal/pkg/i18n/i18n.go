package i18n

import (
	"context"
	"strings"
)

// LocaleKey Context 中的语言标签 Key
const LocaleKey = "locale"

const fallbackLocale = "en"

// catalogs 以英文原文为键的翻译目录；查不到的条目原样返回
var catalogs = map[string]map[string]string{
	"zh": {
		"Platform is not supported.":       "不支持的内容平台。",
		"Publication not found.":           "内容不存在。",
		"Invalid request parameters.":      "参数错误。",
		"An internal error has occurred.":  "系统异常，请稍后重试。",
		"Token is missing or malformed.":   "Token 缺失或格式错误",
		"Token is invalid or has expired.": "Token 无效或已过期",
	},
}

// T 按显式传入的 locale 翻译 msg，目录缺失时回退英文原文
func T(locale, msg string) string {
	catalog, ok := catalogs[normalize(locale)]
	if !ok {
		return msg
	}
	if translated, ok := catalog[msg]; ok {
		return translated
	}
	return msg
}

// WithLocale 将语言标签写入 Context
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, LocaleKey, normalize(locale))
}

// FromContext 从 Context 取语言标签，未设置时回退英文
func FromContext(ctx context.Context) string {
	if ctx != nil {
		if locale, ok := ctx.Value(LocaleKey).(string); ok && locale != "" {
			return locale
		}
	}
	return fallbackLocale
}

// ParseAcceptLanguage 取 Accept-Language 中权重最高的主语言标签
func ParseAcceptLanguage(header, fallback string) string {
	if header == "" {
		return fallback
	}
	first := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
	first = strings.SplitN(first, ";", 2)[0]
	if first == "" || first == "*" {
		return fallback
	}
	return normalize(first)
}

func normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	// zh-CN / en-US 只取主标签
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}
