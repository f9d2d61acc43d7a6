package kafka

import (
	"Credo/internal/pkg/consts"
	"Credo/internal/pkg/redis"
	"Credo/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// VotesHandler 消费投票事件并把 votes 表的精确计数回刷到 publications
// 以真实计数覆盖而非增量累加，重放或乱序消费都不会把计票算错
type VotesHandler struct {
	voteRepo        repository.VoteRepo
	publicationRepo repository.PublicationRepo
}

func NewVotesHandler(voteRepo repository.VoteRepo, publicationRepo repository.PublicationRepo) *VotesHandler {
	return &VotesHandler{
		voteRepo:        voteRepo,
		publicationRepo: publicationRepo,
	}
}

func (s *VotesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("vote consumer setup")
	return nil
}

func (s *VotesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("vote consumer cleanup")
	return nil
}

func (s *VotesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-vote consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-vote process batch error", "err", err)
		return err
	}
	return nil
}

func (s *VotesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event VoteEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal vote event error", "err", err)
		// 坏消息不重试
		return nil
	}
	if event.PublicationID == 0 {
		return errors.New("vote event missing publication id")
	}

	believed, disbelieved, err := s.voteRepo.CountByStance(ctx, event.PublicationID)
	if err != nil {
		return errors.Wrap(err, "count votes")
	}

	err = s.publicationRepo.UpdateVoteCounts(ctx, event.PublicationID, believed, disbelieved)
	if err != nil {
		return errors.Wrap(err, "update publication counts")
	}

	// 计票已同步，从脏集合摘除
	_ = redis.SRemFromSet(ctx, consts.PublicationDirtyKey, strconv.FormatUint(event.PublicationID, 10))
	return nil
}

func uintToStr(v uint64) string {
	return strconv.FormatUint(v, 10)
}
