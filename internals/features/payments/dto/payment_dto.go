package dto

import (
	"time"

	"kursusku_backend/internals/features/payments/model"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

// CheckoutResponse dikirim ke frontend untuk membuka Snap popup.
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
	AmountIDR   int    `json:"amount_idr"`
}

type VerifyRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

type PaymentDTO struct {
	PaymentID         uuid.UUID  `json:"payment_id"`
	OrderID           string     `json:"order_id"`
	CourseID          uuid.UUID  `json:"course_id"`
	AmountIDR         int        `json:"amount_idr"`
	Method            string     `json:"method"`
	Status            string     `json:"status"`
	EnrollmentApplied bool       `json:"enrollment_applied"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func ToPaymentDTO(m model.PaymentModel) PaymentDTO {
	return PaymentDTO{
		PaymentID:         m.PaymentID,
		OrderID:           m.PaymentOrderID,
		CourseID:          m.PaymentCourseID,
		AmountIDR:         m.PaymentAmountIDR,
		Method:            m.PaymentMethod,
		Status:            m.PaymentStatus,
		EnrollmentApplied: m.PaymentEnrollmentApplied,
		PaidAt:            m.PaymentPaidAt,
		CreatedAt:         m.PaymentCreatedAt,
	}
}
