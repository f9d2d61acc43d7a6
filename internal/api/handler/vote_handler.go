package handler

import (
	"Credo/internal/api/dto"
	"Credo/internal/pkg/response"
	"Credo/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteSvc service.VoteService
}

func NewVoteHandler(voteSvc service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteSvc: voteSvc,
	}
}

// CastVote 对一条内容投信/不信票，成功时无返回数据
func (s *VoteHandler) CastVote(c *gin.Context) {
	publicationID, err := strconv.ParseUint(c.Param("publication_id"), 10, 64)
	if err != nil || publicationID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	voterID := c.GetUint64("user_id")

	var req dto.VoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.voteSvc.CastVote(c.Request.Context(), voterID, publicationID, req.Believed); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
