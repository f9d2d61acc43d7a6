package handler

import (
	"Credo/internal/pkg/response"
	"Credo/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PublicationMetricHandler struct {
	metricSvc service.PublicationMetricService
}

func NewPublicationMetricHandler(metricSvc service.PublicationMetricService) *PublicationMetricHandler {
	return &PublicationMetricHandler{
		metricSvc: metricSvc,
	}
}

// GetMetrics7Days 最近 7 天计票趋势
func (s *PublicationMetricHandler) GetMetrics7Days(c *gin.Context) {
	publicationID, err := strconv.ParseUint(c.Param("publication_id"), 10, 64)
	if err != nil || publicationID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	metrics, err := s.metricSvc.GetMetrics7Days(c.Request.Context(), publicationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}
