package feedclient

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError 服务端返回的业务失败，Detail 为可读失败说明
type APIError struct {
	Code   int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feedclient: code=%d detail=%s", e.Code, e.Detail)
}

// IsValidation 判断是否为参数校验类失败
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest
}

// IsNotFound 判断目标内容是否不存在
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// IsUnauthorized 判断是否为凭证缺失或失效
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized
}
