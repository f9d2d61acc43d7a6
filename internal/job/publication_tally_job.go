package job

import (
	"Credo/internal/pkg/consts"
	"Credo/internal/pkg/logger"
	"Credo/internal/pkg/redis"
	"Credo/internal/pkg/util"
	"Credo/internal/repository"
	"Credo/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PublicationTallyJob 计票对账任务
// 事件链路漏掉的内容靠脏集合兜底，把 votes 表的精确计数刷回 publications
// 并顺带落当日指标快照
type PublicationTallyJob struct {
	publicationRepo repository.PublicationRepo
	voteRepo        repository.VoteRepo
	metricSvc       service.PublicationMetricService
}

func NewPublicationTallyJob(
	publicationRepo repository.PublicationRepo,
	voteRepo repository.VoteRepo,
	metricSvc service.PublicationMetricService,
) *PublicationTallyJob {
	return &PublicationTallyJob{
		publicationRepo: publicationRepo,
		voteRepo:        voteRepo,
		metricSvc:       metricSvc,
	}
}

func (s *PublicationTallyJob) Run() {
	traceID := "job-tally-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时同一时刻只允许一个实例对账
	locked, err := redis.TryLock(ctx, consts.TallyJobLock, traceID, 10*time.Minute, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.TallyJobLock, traceID)

	processingKey := consts.PublicationDirtyKey + ":processing"
	err = redis.Rename(ctx, consts.PublicationDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get publication dirty set error", "err", err)
		return
	}

	publicationIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert publication set to int slice error", "err", err)
		return
	}

	for _, pid := range publicationIDs {
		believed, disbelieved, err := s.voteRepo.CountByStance(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "count votes error", "pid", pid, "err", err)
			continue
		}

		err = s.publicationRepo.UpdateVoteCounts(ctx, pid, believed, disbelieved)
		if err != nil {
			log.ErrorContext(ctx, "update publication counts error", "pid", pid, "err", err)
			continue
		}

		err = s.metricSvc.SnapshotDaily(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "snapshot publication daily metric error", "pid", pid, "err", err)
		}
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}
}
