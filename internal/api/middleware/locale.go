package middleware

import (
	"Credo/internal/api/config"
	"Credo/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// LocaleMiddleware 从 Accept-Language 解析请求语言并注入 Context
// 错误文案的翻译统一走这里注入的语言标签，不依赖任何进程级可变状态
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.ParseAcceptLanguage(c.GetHeader("Accept-Language"), config.Cfg.I18n.DefaultLocale)

		c.Set(i18n.LocaleKey, locale)
		c.Request = c.Request.WithContext(i18n.WithLocale(c.Request.Context(), locale))

		c.Next()
	}
}
