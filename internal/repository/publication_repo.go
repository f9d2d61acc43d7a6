package repository

import (
	"Credo/internal/api/config"
	"Credo/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// FeedRow 列表查询的一行：内容字段外加当前请求者的表态列（外连接产物）
type FeedRow struct {
	ID               uint64
	UserID           uint64
	URL              string
	Platform         model.Platform
	BelievedCount    int
	DisbelievedCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Believed         *bool
}

type PublicationRepo interface {
	Create(ctx context.Context, publication *model.Publication) error
	GetByID(ctx context.Context, id uint64) (*model.Publication, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Selection(ctx context.Context, voterID *uint64, page, size int, order string) ([]*FeedRow, int64, error)
	UpdateVoteCounts(ctx context.Context, id uint64, believed, disbelieved int64) error
}

type PublicationRepoImpl struct {
	db *gorm.DB
}

func NewPublicationRepo(db *gorm.DB) PublicationRepo {
	return &PublicationRepoImpl{db}
}

func (s *PublicationRepoImpl) Create(ctx context.Context, publication *model.Publication) error {
	return s.db.WithContext(ctx).Create(publication).Error
}

func (s *PublicationRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Publication, error) {
	var publication model.Publication
	err := s.db.WithContext(ctx).First(&publication, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &publication, nil
}

func (s *PublicationRepoImpl) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Publication{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Selection 外连接当前请求者的投票做分页查询
// 连接条件带 voter_id，voterID 为 nil 时连接键永不命中，所有行的表态都是未表态
func (s *PublicationRepoImpl) Selection(ctx context.Context, voterID *uint64, page, size int, order string) ([]*FeedRow, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Publication{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []*FeedRow
	err = s.db.WithContext(ctx).Model(&model.Publication{}).
		Select("publications.id, publications.user_id, publications.url, publications.platform, "+
			"publications.believed_count, publications.disbelieved_count, "+
			"publications.created_at, publications.updated_at, v.believed").
		Joins("LEFT JOIN votes v ON v.publication_id = publications.id AND v.voter_id = ?", voterID).
		Order(selectionOrderExpr(order)).
		Limit(size).Offset((page - 1) * size).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// selectionOrderExpr 分页排序表达式
// 默认沿用线上行为：按连接出的表态列倒序；newest 为修正后的按时间倒序
// 主键作次级排序键，并列行（表态同为 NULL、时间相同）在翻页间次序才稳定，
// 逐页拼接不会重复或漏掉任何一行
func selectionOrderExpr(order string) string {
	if order == config.FeedOrderNewest {
		return "publications.created_at DESC, publications.id DESC"
	}
	return "v.believed DESC, publications.id DESC"
}

func (s *PublicationRepoImpl) UpdateVoteCounts(ctx context.Context, id uint64, believed, disbelieved int64) error {
	return s.db.WithContext(ctx).Model(&model.Publication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"believed_count":    believed,
			"disbelieved_count": disbelieved,
		}).Error
}
