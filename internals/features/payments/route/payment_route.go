package route

import (
	"kursusku_backend/internals/features/payments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentUserRoutes: checkout & verifikasi, butuh login.
func PaymentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payment := router.Group("/payments")
	payment.Post("/checkout", ctrl.Checkout)
	payment.Post("/verify", ctrl.VerifyAndEnroll)
	payment.Get("/", ctrl.GetMyPayments)
}

// PaymentAdminRoutes: monitoring seluruh transaksi.
func PaymentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	router.Get("/payments", ctrl.GetAll)
}

// PaymentWebhookRoutes: endpoint notifikasi Midtrans, tanpa auth
// (path-nya di-skip oleh AuthMiddleware).
func PaymentWebhookRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	router.Post("/payments/notification", ctrl.HandleNotification)
}
