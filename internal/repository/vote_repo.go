package repository

import (
	"Credo/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepo interface {
	Get(ctx context.Context, voterID, publicationID uint64) (*model.Vote, error)
	Upsert(ctx context.Context, vote *model.Vote) error
	CountByStance(ctx context.Context, publicationID uint64) (believed, disbelieved int64, err error)
}

type VoteRepoImpl struct {
	db *gorm.DB
}

func NewVoteRepo(db *gorm.DB) VoteRepo {
	return &VoteRepoImpl{db}
}

func (s *VoteRepoImpl) Get(ctx context.Context, voterID, publicationID uint64) (*model.Vote, error) {
	var vote model.Vote
	err := s.db.WithContext(ctx).
		Where("voter_id = ? AND publication_id = ?", voterID, publicationID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// Upsert 以 (voter_id, publication_id) 唯一索引为键的原子写入
// 首票插入，重复投票原地更新表态，并发下也不会产生重复行
func (s *VoteRepoImpl) Upsert(ctx context.Context, vote *model.Vote) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "voter_id"}, {Name: "publication_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"believed", "updated_at"}),
		}).
		Create(vote).Error
}

func (s *VoteRepoImpl) CountByStance(ctx context.Context, publicationID uint64) (believed, disbelieved int64, err error) {
	err = s.db.WithContext(ctx).Model(&model.Vote{}).
		Where("publication_id = ? AND believed = ?", publicationID, true).
		Count(&believed).Error
	if err != nil {
		return 0, 0, err
	}
	err = s.db.WithContext(ctx).Model(&model.Vote{}).
		Where("publication_id = ? AND believed = ?", publicationID, false).
		Count(&disbelieved).Error
	if err != nil {
		return 0, 0, err
	}
	return believed, disbelieved, nil
}
