package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	courseModel "kursusku_backend/internals/features/courses/course/model"
	"kursusku_backend/internals/features/payments/dto"
	"kursusku_backend/internals/features/payments/model"
	"kursusku_backend/internals/features/payments/service"
	userModel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func newOrderID() string {
	return fmt.Sprintf("KURSUS-ORD-%d-%s",
		time.Now().UnixMilli(),
		strings.ToUpper(uuid.NewString()[:8]),
	)
}

// 🛒 Checkout: buat transaksi pembayaran + Snap token untuk satu kursus.
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_is_active = TRUE", req.CourseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat kursus")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data user")
	}
	if user.HasSubscription(course.CourseID) {
		return helper.Error(c, fiber.StatusConflict, "Kamu sudah memiliki akses ke kursus ini")
	}

	payment := model.PaymentModel{
		PaymentOrderID:   newOrderID(),
		PaymentUserID:    userID,
		PaymentCourseID:  course.CourseID,
		PaymentAmountIDR: course.CoursePriceIDR,
		PaymentStatus:    model.PaymentStatusCreated,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Println("[ERROR] Gagal membuat pembayaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat pembayaran")
	}

	token, redirectURL, err := service.GenerateSnapToken(payment, course.CourseTitle, user.UserName, user.Email)
	if err != nil {
		log.Println("[ERROR] Gagal membuat Snap token:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menghubungi payment gateway")
	}

	return helper.Success(c, "Checkout berhasil dibuat", dto.CheckoutResponse{
		OrderID:     payment.PaymentOrderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
		AmountIDR:   payment.PaymentAmountIDR,
	})
}

// ✅ VerifyAndEnroll: verifikasi status ke Midtrans lalu aktifkan enrollment.
// Aman dipanggil berulang; aktivasi hanya terjadi sekali.
func (ctrl *PaymentController) VerifyAndEnroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var payment model.PaymentModel
	if err := ctrl.DB.Where("payment_order_id = ?", req.OrderID).First(&payment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}
	if payment.PaymentUserID != userID {
		return helper.Error(c, fiber.StatusForbidden, "Pembayaran ini bukan milikmu")
	}

	if payment.PaymentStatus != model.PaymentStatusSuccess {
		status, method, err := service.CheckTransactionStatus(payment.PaymentOrderID)
		if err != nil {
			log.Println("[ERROR] Verifikasi ke Midtrans gagal:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Gagal memverifikasi pembayaran ke payment gateway")
		}
		if err := service.MarkPaymentFromGateway(ctrl.DB, &payment, status, method); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status pembayaran")
		}
	}

	updated, _, err := service.ActivateEnrollment(ctrl.DB, payment.PaymentOrderID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Aktivasi enrollment gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengaktifkan enrollment")
	}

	return helper.Success(c, "Pembayaran terverifikasi & akses kursus aktif", dto.ToPaymentDTO(*updated))
}

// 🔔 HandleNotification: webhook dari Midtrans. Status TIDAK diambil dari
// payload; backend selalu cek ulang server-to-server. Selalu balas 200 untuk
// order yang dikenal agar Midtrans berhenti retry.
func (ctrl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	orderID, ok := body["order_id"].(string)
	if !ok || orderID == "" {
		log.Println("[ERROR] Payload webhook tanpa order_id:", body)
		return helper.Error(c, fiber.StatusBadRequest, "order_id tidak ditemukan di payload")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Webhook untuk order tidak dikenal:", orderID)
		return helper.Error(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	status, method, err := service.CheckTransactionStatus(orderID)
	if err != nil {
		log.Println("[ERROR] Cek status webhook ke Midtrans gagal:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal memverifikasi status transaksi")
	}

	if err := service.MarkPaymentFromGateway(ctrl.DB, &payment, status, method); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status pembayaran")
	}

	if payment.PaymentStatus == model.PaymentStatusSuccess {
		if _, _, err := service.ActivateEnrollment(ctrl.DB, orderID); err != nil {
			if _, ok := err.(*fiber.Error); !ok {
				log.Println("[ERROR] Aktivasi dari webhook gagal:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengaktifkan enrollment")
			}
		}
	}

	return helper.Success(c, "Notifikasi diproses", fiber.Map{
		"order_id": orderID,
		"status":   payment.PaymentStatus,
	})
}

// 📄 GetMyPayments: riwayat pembayaran user, terbaru dulu.
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.Where("payment_user_id = ?", userID).
		Order("payment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat riwayat pembayaran")
	}

	out := make([]dto.PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentDTO(p))
	}

	return helper.Success(c, "Riwayat pembayaran berhasil diambil", fiber.Map{
		"payments":   out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

// 🗂 GetAll: seluruh pembayaran (admin), bisa difilter ?status=.
func (ctrl *PaymentController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat pembayaran")
	}

	out := make([]dto.PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentDTO(p))
	}

	return helper.Success(c, "Daftar pembayaran berhasil diambil", fiber.Map{
		"payments":   out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}
