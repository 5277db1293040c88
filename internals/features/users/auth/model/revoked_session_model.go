package model

import (
	"time"

	"gorm.io/gorm"
)

// RevokedSession holds the HMAC of a session token that must no longer be accepted.
type RevokedSession struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TokenHash string         `gorm:"type:varchar(64);not null;uniqueIndex:uq_revoked_sessions_token_hash" json:"token_hash"`
	UserID    string         `gorm:"type:varchar(128);index" json:"user_id"`
	ExpiredAt time.Time      `gorm:"not null;index" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName keeps the table name stable regardless of the naming strategy
func (RevokedSession) TableName() string {
	return "revoked_sessions"
}
