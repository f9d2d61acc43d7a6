package repository

import (
	"Credo/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PublicationMetricRepo interface {
	UpsertDaily(ctx context.Context, metric *model.PublicationDailyMetric) error
	GetSince(ctx context.Context, publicationID uint64, since time.Time) ([]*model.PublicationDailyMetric, error)
}

type PublicationMetricRepoImpl struct {
	db *gorm.DB
}

func NewPublicationMetricRepo(db *gorm.DB) PublicationMetricRepo {
	return &PublicationMetricRepoImpl{db}
}

func (s *PublicationMetricRepoImpl) UpsertDaily(ctx context.Context, metric *model.PublicationDailyMetric) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "publication_id"}, {Name: "metric_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_believed", "total_disbelieved"}),
		}).
		Create(metric).Error
}

func (s *PublicationMetricRepoImpl) GetSince(ctx context.Context, publicationID uint64, since time.Time) ([]*model.PublicationDailyMetric, error) {
	var metrics []*model.PublicationDailyMetric
	err := s.db.WithContext(ctx).
		Where("publication_id = ? AND metric_date >= ?", publicationID, since).
		Order("metric_date ASC").
		Find(&metrics).Error
	return metrics, err
}
