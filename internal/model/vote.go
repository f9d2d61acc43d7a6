package model

import (
	"time"
)

// Vote 一条投票记录；Believed 为 nil 表示已关注但未表态
type Vote struct {
	ID            uint64    `gorm:"primaryKey"`
	PublicationID uint64    `gorm:"not null;uniqueIndex:uk_voter_publication,priority:2;index:idx_publication_id" json:"publication_id"`
	VoterID       uint64    `gorm:"not null;uniqueIndex:uk_voter_publication,priority:1" json:"voter_id"`
	Believed      *bool     `json:"believed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Vote) TableName() string {
	return "votes"
}
