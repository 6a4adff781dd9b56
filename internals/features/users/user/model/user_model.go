package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel merepresentasikan tabel users di database.
// UserSubscriptions adalah himpunan course_id yang sudah dibayar user;
// mutasi HARUS lewat array_append ber-guard (lihat payments/service), bukan
// read-modify-write.
type UserModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName          string         `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email             string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password          string         `gorm:"not null" json:"-" validate:"required,min=8"`
	Role              string         `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	UserSubscriptions pq.StringArray `gorm:"column:user_subscriptions;type:uuid[];not null;default:'{}'" json:"user_subscriptions"`
	IsActive          bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
	if u.UserSubscriptions == nil {
		u.UserSubscriptions = pq.StringArray{}
	}
}

// HasSubscription: apakah user sudah terdaftar di kursus tertentu
func (u *UserModel) HasSubscription(courseID uuid.UUID) bool {
	want := courseID.String()
	for _, id := range u.UserSubscriptions {
		if id == want {
			return true
		}
	}
	return false
}
