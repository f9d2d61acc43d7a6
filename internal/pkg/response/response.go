package response

import (
	"Credo/internal/api/dto"
	"Credo/internal/pkg/i18n"
	"Credo/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装，detail 字段留空
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code: Ok,
		Data: data,
	})
}

// Fail 失败返回封装，非空 detail 即表示逻辑失败
// 领域错误不升级为传输层错误，HTTP 状态保持 200
func Fail(c *gin.Context, businessCode int, detail string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:   businessCode,
		Detail: detail,
		Data:   nil,
	})
}

// Error 处理错误：领域错误翻译为带 detail 的响应，未知错误记日志后只回透明的系统异常
func Error(c *gin.Context, err error) {
	locale := i18n.FromContext(c.Request.Context())

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, i18n.T(locale, service.ErrParamInvalid.Error()))
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, i18n.T(locale, service.ErrParamInvalid.Error()))
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "unexpected error",
			"err", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		Fail(c, InternalServerError, i18n.T(locale, service.UnExpectedError.Error()))
		return
	}
	Fail(c, code, i18n.T(locale, err.Error()))
}
