package model

import (
	"time"
)

// PublicationDailyMetric 每日计票快照，记录当日结束时的累计值
type PublicationDailyMetric struct {
	ID               uint64    `gorm:"primaryKey"`
	PublicationID    uint64    `gorm:"not null;index:idx_publication_date,unique" json:"publicationId"`
	MetricDate       time.Time `gorm:"not null;index:idx_publication_date,unique;column:metric_date" json:"metricDate"`
	TotalBelieved    int       `gorm:"not null;default:0" json:"totalBelieved"`
	TotalDisbelieved int       `gorm:"not null;default:0" json:"totalDisbelieved"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (PublicationDailyMetric) TableName() string {
	return "publication_daily_metrics"
}
