package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	courseModel "kursusku_backend/internals/features/courses/course/model"
	"kursusku_backend/internals/features/payments/model"
	progressService "kursusku_backend/internals/features/progress/service"
	userModel "kursusku_backend/internals/features/users/user/model"
	"kursusku_backend/internals/helpers/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarkPaymentFromGateway menyinkronkan status pembayaran lokal dengan status
// dari Midtrans. Status "success" tidak pernah di-downgrade.
func MarkPaymentFromGateway(db *gorm.DB, payment *model.PaymentModel, transactionStatus string, method string) error {
	if payment.PaymentStatus == model.PaymentStatusSuccess {
		return nil
	}

	switch {
	case IsSettled(transactionStatus):
		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusSuccess
		payment.PaymentPaidAt = &now
	case IsFinalFailure(transactionStatus):
		payment.PaymentStatus = model.PaymentStatusFailed
	default:
		log.Println("[INFO] Status transaksi belum final, tidak diproses:", transactionStatus)
		return nil
	}

	if method != "" {
		payment.PaymentMethod = method
	}

	if err := db.Save(payment).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status pembayaran:", err)
		return err
	}
	return nil
}

// ClaimEnrollmentMarker meng-claim payment_enrollment_applied dengan guarded
// UPDATE: hanya satu pemanggil yang mendapat true, sisanya false tanpa efek
// samping.
func ClaimEnrollmentMarker(db *gorm.DB, paymentID uuid.UUID) (bool, error) {
	res := db.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_enrollment_applied = FALSE", paymentID).
		Update("payment_enrollment_applied", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// releaseEnrollmentMarker melepas claim supaya aktivasi bisa dicoba ulang.
func releaseEnrollmentMarker(db *gorm.DB, paymentID uuid.UUID) {
	if err := db.Model(&model.PaymentModel{}).
		Where("payment_id = ?", paymentID).
		Update("payment_enrollment_applied", false).Error; err != nil {
		log.Println("[ERROR] Gagal melepas marker enrollment:", err)
	}
}

// ActivateEnrollment mengaktifkan akses kursus setelah pembayaran success.
//
// Idempoten lewat marker payment_enrollment_applied: marker di-claim dengan
// guarded UPDATE sehingga hanya satu pemanggil yang mengeksekusi aktivasi,
// pemanggil berikutnya berhenti tanpa efek samping. User dan course harus
// masih ada (404 kalau tidak, tanpa mutasi apa pun). Subscription dan
// progress awal dibuat dalam satu transaksi; email konfirmasi dikirim setelah
// commit dan kegagalannya tidak membatalkan aktivasi.
func ActivateEnrollment(db *gorm.DB, orderID string) (*model.PaymentModel, bool, error) {
	var payment model.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return nil, false, err
	}

	if payment.PaymentStatus != model.PaymentStatusSuccess {
		return &payment, false, fiber.NewError(fiber.StatusPaymentRequired, "Pembayaran belum terkonfirmasi")
	}

	// User & course wajib masih ada sebelum menyentuh marker atau data lain;
	// kalau salah satunya hilang, tidak ada mutasi sama sekali.
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", payment.PaymentUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fiber.NewError(fiber.StatusNotFound, "User pembayaran ini tidak ditemukan")
		}
		return nil, false, err
	}
	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", payment.PaymentCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fiber.NewError(fiber.StatusNotFound, "Kursus pembayaran ini tidak ditemukan")
		}
		return nil, false, err
	}

	claimed, err := ClaimEnrollmentMarker(db, payment.PaymentID)
	if err != nil {
		return nil, false, err
	}
	if !claimed {
		// Sudah pernah diaktifkan (retry webhook / double verify), aman diabaikan.
		log.Println("[INFO] Enrollment sudah pernah diaktifkan untuk order:", orderID)
		payment.PaymentEnrollmentApplied = true
		return &payment, false, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Tambah course ke subscription user, skip jika sudah ada di array.
		res := tx.Exec(`
			UPDATE users
			SET user_subscriptions = array_append(user_subscriptions, ?::uuid)
			WHERE id = ?
			  AND NOT (?::uuid = ANY(user_subscriptions))`,
			payment.PaymentCourseID, payment.PaymentUserID, payment.PaymentCourseID,
		)
		if res.Error != nil {
			return res.Error
		}

		return progressService.CreateInitialProgress(tx, payment.PaymentUserID, payment.PaymentCourseID)
	})
	if err != nil {
		releaseEnrollmentMarker(db, payment.PaymentID)
		return nil, false, fmt.Errorf("aktivasi enrollment gagal: %w", err)
	}

	payment.PaymentEnrollmentApplied = true
	log.Println("[SUCCESS] Enrollment aktif untuk order:", orderID)

	// Best-effort: kegagalan email hanya dicatat di log.
	if err := mailer.SendEnrollmentConfirmation(user.UserName, user.Email, course.CourseTitle, payment.PaymentOrderID); err != nil {
		log.Println("[ERROR] Gagal mengirim email konfirmasi enrollment:", err)
	}

	return &payment, true, nil
}
