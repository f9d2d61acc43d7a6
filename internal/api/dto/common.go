package dto

// Response 统一响应体；Detail 非空即表示逻辑失败
type Response struct {
	Code   int         `json:"code"`
	Detail string      `json:"detail,omitempty"`
	Data   interface{} `json:"data"`
}
