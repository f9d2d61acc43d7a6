package handler

import (
	"Credo/internal/api/dto"
	"Credo/internal/pkg/response"
	"Credo/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PublicationHandler struct {
	publicationSvc service.PublicationService
}

func NewPublicationHandler(publicationSvc service.PublicationService) *PublicationHandler {
	return &PublicationHandler{
		publicationSvc: publicationSvc,
	}
}

// CreatePublication 提交一条内容链接
func (s *PublicationHandler) CreatePublication(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PublicationCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	publication, err := s.publicationSvc.CreatePublication(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, publication)
}

// SelectPublications 分页拉取内容列表，登录用户附带自己的表态
func (s *PublicationHandler) SelectPublications(c *gin.Context) {
	// 未登录时 user_id 为 0，查询走匿名视角
	var voterID *uint64
	if userID := c.GetUint64("user_id"); userID > 0 {
		voterID = &userID
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))

	selection, err := s.publicationSvc.Selection(c.Request.Context(), voterID, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, selection)
}
