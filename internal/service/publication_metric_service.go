package service

import (
	"Credo/internal/api/dto"
	"Credo/internal/model"
	"Credo/internal/pkg/util"
	"Credo/internal/repository"
	"context"
	"time"
)

const metricDays = 7

type PublicationMetricService interface {
	// SnapshotDaily 把 votes 表的实时计数落成当日快照，同日重复执行原地覆盖
	SnapshotDaily(ctx context.Context, publicationID uint64) error
	// GetMetrics7Days 获取最近 7 天计票趋势，缺失日期沿用上一有效快照平滑
	GetMetrics7Days(ctx context.Context, publicationID uint64) (*dto.PublicationMetricDTO, error)
}

type publicationMetricServiceImpl struct {
	metricRepo      repository.PublicationMetricRepo
	publicationRepo repository.PublicationRepo
	voteRepo        repository.VoteRepo
}

func NewPublicationMetricService(
	metricRepo repository.PublicationMetricRepo,
	publicationRepo repository.PublicationRepo,
	voteRepo repository.VoteRepo,
) PublicationMetricService {
	return &publicationMetricServiceImpl{
		metricRepo:      metricRepo,
		publicationRepo: publicationRepo,
		voteRepo:        voteRepo,
	}
}

func (s *publicationMetricServiceImpl) SnapshotDaily(ctx context.Context, publicationID uint64) error {
	believed, disbelieved, err := s.voteRepo.CountByStance(ctx, publicationID)
	if err != nil {
		return err
	}

	return s.metricRepo.UpsertDaily(ctx, &model.PublicationDailyMetric{
		PublicationID:    publicationID,
		MetricDate:       util.GetMidnight(time.Now()),
		TotalBelieved:    int(believed),
		TotalDisbelieved: int(disbelieved),
	})
}

func (s *publicationMetricServiceImpl) GetMetrics7Days(ctx context.Context, publicationID uint64) (*dto.PublicationMetricDTO, error) {
	publication, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, ErrPublicationNotFound
	}

	since := util.GetMidnight(time.Now()).AddDate(0, 0, -(metricDays - 1))
	metrics, err := s.metricRepo.GetSince(ctx, publicationID, since)
	if err != nil {
		return nil, err
	}

	dataMap := make(map[string]*model.PublicationDailyMetric, len(metrics))
	for _, m := range metrics {
		dataMap[m.MetricDate.Format(time.DateOnly)] = m
	}

	res := &dto.PublicationMetricDTO{
		PublicationID: publicationID,
		Days:          metricDays,
		Points:        make([]*dto.PublicationMetricPointDTO, 0, metricDays),
	}

	var lastValid *model.PublicationDailyMetric
	now := time.Now()
	for i := metricDays - 1; i >= 0; i-- {
		date := util.GetMidnight(now.AddDate(0, 0, -i)).Format(time.DateOnly)
		point := &dto.PublicationMetricPointDTO{Date: date}
		if m, ok := dataMap[date]; ok {
			point.TotalBelieved = m.TotalBelieved
			point.TotalDisbelieved = m.TotalDisbelieved
			lastValid = m
		} else if lastValid != nil {
			point.TotalBelieved = lastValid.TotalBelieved
			point.TotalDisbelieved = lastValid.TotalDisbelieved
		}
		res.Points = append(res.Points, point)
	}

	return res, nil
}
