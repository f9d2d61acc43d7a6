package model

import (
	"time"
)

// Platform 内容平台标签
type Platform string

const (
	PlatformYouTube Platform = "YOUTUBE"
	PlatformVK      Platform = "VK"
	PlatformTikTok  Platform = "TIKTOK"
	PlatformTwitch  Platform = "TWITCH"
)

type Publication struct {
	ID               uint64    `gorm:"primaryKey"`
	UserID           uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	URL              string    `gorm:"type:varchar(2048);not null" json:"url"`
	Platform         Platform  `gorm:"type:varchar(16);not null" json:"platform"`
	BelievedCount    int       `gorm:"not null;default:0" json:"believed_count"`
	DisbelievedCount int       `gorm:"not null;default:0" json:"disbelieved_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// 关联关系
	Votes []Vote `gorm:"foreignKey:PublicationID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Publication) TableName() string {
	return "publications"
}
