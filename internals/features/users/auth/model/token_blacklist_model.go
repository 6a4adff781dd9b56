package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist menyimpan token yang sudah logout sampai kedaluwarsa
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;index" json:"token"`
	ExpiredAt time.Time      `gorm:"not null" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
