package platform

import (
	"net/url"

	"Credo/internal/model"
)

// hostTable 域名到平台的映射表，仅做 host 精确匹配
// www. 前缀与短链域名是各自独立的表项，不做后缀模糊匹配
var hostTable = map[string]model.Platform{
	"www.youtube.com": model.PlatformYouTube,
	"youtu.be":        model.PlatformYouTube,
	"tiktok.com":      model.PlatformTikTok,
	"www.tiktok.com":  model.PlatformTikTok,
	"vt.tiktok.com":   model.PlatformTikTok,
	"vk.com":          model.PlatformVK,
	"www.vk.com":      model.PlatformVK,
	"twitch.tv":       model.PlatformTwitch,
	"www.twitch.tv":   model.PlatformTwitch,
	"clips.twitch.tv": model.PlatformTwitch,
}

// Classify 解析 URL 的 host 并查表，查不到或解析失败返回 ok=false
func Classify(rawURL string) (model.Platform, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	p, ok := hostTable[u.Host]
	return p, ok
}

// Normalize 将 URL 规整为标准字符串形式，非法 URL 返回 ok=false
func Normalize(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return u.String(), true
}
