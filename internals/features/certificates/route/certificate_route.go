package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "kursusku_backend/internals/features/certificates/controller"
)

// User login: ambil / download sertifikat milik sendiri
func CertificateUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := certificateController.NewCertificateController(db)

	certs := api.Group("/certificates")
	certs.Get("/:courseId", ctrl.GetOrIssue)
	certs.Get("/:courseId/download", ctrl.Download)
}

// Publik: verifikasi keaslian by serial (tanpa auth)
func CertificatePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := certificateController.NewCertificateController(db)
	api.Get("/certificates/verify/:serial", ctrl.Verify)
}

// Admin: pencabutan
func CertificateAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := certificateController.NewCertificateController(db)
	api.Put("/certificates/:id/revoke", ctrl.Revoke)
}
