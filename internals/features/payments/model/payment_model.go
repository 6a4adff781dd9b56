package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusCreated = "created"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// PaymentModel: satu baris per transaksi, dikunci oleh order_id (tx ref dari
// Midtrans). PaymentEnrollmentApplied adalah idempotency marker eksplisit:
// aktivasi enrollment hanya boleh terjadi pada claim pertama (lihat service).
type PaymentModel struct {
	PaymentID       uuid.UUID `gorm:"column:payment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"payment_id"`
	PaymentOrderID  string    `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex;not null" json:"payment_order_id"`
	PaymentUserID   uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`
	PaymentCourseID uuid.UUID `gorm:"column:payment_course_id;type:uuid;not null" json:"payment_course_id"`

	PaymentAmountIDR int    `gorm:"column:payment_amount_idr;not null" json:"payment_amount_idr"`
	PaymentMethod    string `gorm:"column:payment_method;type:varchar(32)" json:"payment_method"`
	PaymentStatus    string `gorm:"column:payment_status;type:varchar(16);not null;default:'created'" json:"payment_status"`

	PaymentEnrollmentApplied bool       `gorm:"column:payment_enrollment_applied;not null;default:false" json:"payment_enrollment_applied"`
	PaymentPaidAt            *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
