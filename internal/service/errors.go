package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

// 领域错误哨兵；错误文案即翻译目录的键，出站前经 i18n 按请求语言转换
var (
	ErrParamInvalid         = errors.New("Invalid request parameters.")
	ErrPlatformNotSupported = errors.New("Platform is not supported.")
	ErrPublicationNotFound  = errors.New("Publication not found.")
	ErrTokenMissing         = errors.New("Token is missing or malformed.")
	ErrTokenInvalid         = errors.New("Token is invalid or has expired.")
	UnExpectedError         = errors.New("An internal error has occurred.")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrPlatformNotSupported: BadRequest,
	ErrPublicationNotFound:  NotFound,
	ErrTokenMissing:         Unauthorized,
	ErrTokenInvalid:         Unauthorized,
	UnExpectedError:         InternalServerError,
}
