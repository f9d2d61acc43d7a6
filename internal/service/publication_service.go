package service

import (
	"Credo/internal/api/config"
	"Credo/internal/api/dto"
	"Credo/internal/model"
	"Credo/internal/pkg/platform"
	"Credo/internal/pkg/util"
	"Credo/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

type PublicationService interface {
	// CreatePublication 分类并落库一条新内容，平台不支持时不写任何记录
	CreatePublication(ctx context.Context, userID uint64, req *dto.PublicationCreateDTO) (*dto.PublicationDTO, error)
	// Selection 分页查询内容，附带 voterID 对每条内容的表态；voterID 为 nil 表示匿名视角
	Selection(ctx context.Context, voterID *uint64, page, size int) (*dto.PublicationSelectionDTO, error)
}

type publicationServiceImpl struct {
	publicationRepo repository.PublicationRepo
}

func NewPublicationService(publicationRepo repository.PublicationRepo) PublicationService {
	return &publicationServiceImpl{
		publicationRepo: publicationRepo,
	}
}

func (s *publicationServiceImpl) CreatePublication(ctx context.Context, userID uint64, req *dto.PublicationCreateDTO) (*dto.PublicationDTO, error) {
	rawURL, ok := platform.Normalize(req.URL)
	if !ok {
		return nil, ErrParamInvalid
	}

	p, ok := platform.Classify(rawURL)
	if !ok {
		return nil, ErrPlatformNotSupported
	}

	publication := &model.Publication{
		UserID:   userID,
		URL:      rawURL,
		Platform: p,
	}
	if err := s.publicationRepo.Create(ctx, publication); err != nil {
		return nil, err
	}

	out := &dto.PublicationDTO{}
	_ = copier.Copy(out, publication)
	out.Platform = string(publication.Platform)
	out.CreatedAt = publication.CreatedAt.Format(timeLayout)
	// 创建者尚未投票，表态恒为空
	out.Believed = nil
	return out, nil
}

func (s *publicationServiceImpl) Selection(ctx context.Context, voterID *uint64, page, size int) (*dto.PublicationSelectionDTO, error) {
	page, size = normalizePage(page, size)

	rows, total, err := s.publicationRepo.Selection(ctx, voterID, page, size, config.Cfg.Feed.Order)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PublicationDTO, 0, len(rows))
	for _, row := range rows {
		item := &dto.PublicationDTO{}
		_ = copier.Copy(item, row)
		item.Platform = string(row.Platform)
		item.CreatedAt = row.CreatedAt.Format(timeLayout)
		item.Believed = row.Believed
		items = append(items, item)
	}

	return &dto.PublicationSelectionDTO{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: util.TotalPages(total, size),
	}, nil
}

// normalizePage 未传分页参数时取配置缺省值，size 超上限时截断
func normalizePage(page, size int) (int, int) {
	cfg := config.Cfg.Pagination
	if page <= 0 {
		page = cfg.DefaultPage
	}
	if size <= 0 {
		size = cfg.DefaultSize
	}
	if cfg.MaxSize > 0 && size > cfg.MaxSize {
		size = cfg.MaxSize
	}
	return page, size
}
