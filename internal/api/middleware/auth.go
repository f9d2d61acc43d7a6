package middleware

import (
	"Credo/internal/pkg/redis"
	"Credo/internal/pkg/response"
	"Credo/internal/pkg/security"
	"Credo/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
// Token 本身由外部身份服务签发，这里只做校验、吊销检查与 user_id 提取
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, service.ErrTokenMissing)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Error(c, service.ErrTokenMissing)
			c.Abort()
			return
		}

		// 身份服务吊销的 Token 签名会写入 Redis
		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil {
			response.Error(c, service.UnExpectedError)
			c.Abort()
			return
		}
		if value != "" {
			response.Error(c, service.ErrTokenInvalid)
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Error(c, service.ErrTokenInvalid)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
