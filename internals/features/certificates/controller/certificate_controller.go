package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/certificates/dto"
	certificateService "kursusku_backend/internals/features/certificates/service"
	helper "kursusku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// =============================
// 🎓 Issue-or-fetch (idempoten)
// =============================
// GET /api/u/certificates/:courseId
func (ctrl *CertificateController) GetOrIssue(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	cert, err := certificateService.IssueOrFetch(ctrl.DB, userID, courseID)
	if err != nil {
		return err
	}

	return helper.Success(c, "Sertifikat berhasil diambil", dto.ToCertificateDTO(*cert))
}

// =============================
// ⬇️ Download dokumen sertifikat
// =============================
// GET /api/u/certificates/:courseId/download
func (ctrl *CertificateController) Download(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	cert, err := certificateService.IssueOrFetch(ctrl.DB, userID, courseID)
	if err != nil {
		return err
	}

	doc := certificateService.Render(cert)
	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="sertifikat-%s.html"`, cert.CertificateSerial))
	return c.Send(doc)
}

// =============================
// 🔎 Verifikasi publik (tanpa auth)
// =============================
// GET /api/public/certificates/verify/:serial
func (ctrl *CertificateController) Verify(c *fiber.Ctx) error {
	serial := c.Params("serial")
	if serial == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Serial tidak boleh kosong")
	}

	cert, err := certificateService.Verify(ctrl.DB, serial)
	if err != nil {
		return err
	}

	return helper.Success(c, "Sertifikat valid", dto.ToCertificateDTO(*cert))
}

// =============================
// 🚫 Revoke (admin)
// =============================
// PUT /api/a/certificates/:id/revoke
func (ctrl *CertificateController) Revoke(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Certificate ID tidak valid")
	}

	if err := certificateService.Revoke(ctrl.DB, id); err != nil {
		return err
	}
	return helper.Success(c, "Sertifikat berhasil dicabut", fiber.Map{"certificate_id": id})
}
