package api

import "Credo/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PublicationHandler       *handler.PublicationHandler
	VoteHandler              *handler.VoteHandler
	PublicationMetricHandler *handler.PublicationMetricHandler
}
