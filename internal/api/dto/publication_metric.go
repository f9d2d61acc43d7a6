package dto

// PublicationMetricPointDTO 单日计票快照
type PublicationMetricPointDTO struct {
	Date             string `json:"date"`
	TotalBelieved    int    `json:"total_believed"`
	TotalDisbelieved int    `json:"total_disbelieved"`
}

// PublicationMetricDTO 近 N 日计票趋势
type PublicationMetricDTO struct {
	PublicationID uint64                       `json:"publication_id"`
	Days          int                          `json:"days"`
	Points        []*PublicationMetricPointDTO `json:"points"`
}
