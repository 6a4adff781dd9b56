package routes

import (
	"log"
	"time"

	assessmentRoute "kursusku_backend/internals/features/assessments/route"
	certificateRoute "kursusku_backend/internals/features/certificates/route"
	courseRoute "kursusku_backend/internals/features/courses/course/route"
	lectureRoute "kursusku_backend/internals/features/courses/lecture/route"
	paymentRoute "kursusku_backend/internals/features/payments/route"
	progressRoute "kursusku_backend/internals/features/progress/route"
	authRoute "kursusku_backend/internals/features/users/auth/route"
	userRoute "kursusku_backend/internals/features/users/user/route"

	"kursusku_backend/internals/constants"
	authMiddleware "kursusku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa token
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib login
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice("❌ Akses ditolak", constants.AllowedRoles),
	)

	// ADMIN → wajib login + role admin
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice("❌ Akses khusus admin", constants.AdminOnly),
	)

	// WEBHOOK → tanpa auth (Midtrans server-to-server)
	webhook := app.Group("/api")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CoursePublicRoutes(public, db)
	courseRoute.CourseAdminRoutes(admin, db)
	lectureRoute.LecturePublicRoutes(public, db)
	lectureRoute.LectureAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserUserRoutes(private, db)
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Progress routes...")
	progressRoute.ProgressUserRoutes(private, db)

	log.Println("[INFO] Mounting Assessment routes...")
	assessmentRoute.AssessmentUserRoutes(private, db)
	assessmentRoute.AssessmentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Certificate routes...")
	certificateRoute.CertificateUserRoutes(private, db)
	certificateRoute.CertificatePublicRoutes(public, db)
	certificateRoute.CertificateAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentUserRoutes(private, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	paymentRoute.PaymentWebhookRoutes(webhook, db)
}
