package service

import (
	"Credo/internal/model"
	"Credo/internal/pkg/consts"
	"Credo/internal/pkg/kafka"
	"Credo/internal/pkg/redis"
	"Credo/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

type VoteService interface {
	// CastVote 首票插入、重复投票原地改写表态；目标内容不存在时失败且不写任何行
	CastVote(ctx context.Context, voterID, publicationID uint64, believed *bool) error
}

type voteServiceImpl struct {
	voteRepo        repository.VoteRepo
	publicationRepo repository.PublicationRepo
	producer        kafka.VoteEventProducer
}

func NewVoteService(
	voteRepo repository.VoteRepo,
	publicationRepo repository.PublicationRepo,
	producer kafka.VoteEventProducer,
) VoteService {
	return &voteServiceImpl{
		voteRepo:        voteRepo,
		publicationRepo: publicationRepo,
		producer:        producer,
	}
}

func (s *voteServiceImpl) CastVote(ctx context.Context, voterID, publicationID uint64, believed *bool) error {
	exists, err := s.publicationRepo.Exists(ctx, publicationID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPublicationNotFound
	}

	// 表态没变的重复投票是空操作，不触发计票同步
	existing, err := s.voteRepo.Get(ctx, voterID, publicationID)
	if err != nil {
		return err
	}
	if existing != nil && stanceEqual(existing.Believed, believed) {
		return nil
	}

	err = s.voteRepo.Upsert(ctx, &model.Vote{
		PublicationID: publicationID,
		VoterID:       voterID,
		Believed:      believed,
	})
	if err != nil {
		return err
	}

	s.notifyTally(ctx, voterID, publicationID, believed)
	return nil
}

func stanceEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// notifyTally 投票成功后的计票同步：置脏集合兜底，再尽力投递事件
// 两者都失败也不影响本次投票结果，计票由对账任务最终补齐
func (s *voteServiceImpl) notifyTally(ctx context.Context, voterID, publicationID uint64, believed *bool) {
	err := redis.SAddToSet(ctx, consts.PublicationDirtyKey, strconv.FormatUint(publicationID, 10))
	if err != nil {
		log.WarnContext(ctx, "mark publication dirty error", "publication_id", publicationID, "err", err)
	}

	if s.producer == nil {
		return
	}
	err = s.producer.Publish(ctx, &kafka.VoteEvent{
		PublicationID: publicationID,
		VoterID:       voterID,
		Believed:      believed,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		log.WarnContext(ctx, "publish vote event error", "publication_id", publicationID, "err", err)
	}
}
