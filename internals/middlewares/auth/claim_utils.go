// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// 1) Ambil dari Authorization header atau fallback cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// 2) Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), `"'`)
	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("claim exp tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("claim exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token kedaluwarsa pada %s", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("claim user_id tidak ada")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("claim user_id bukan string")
	}
	return uuid.Parse(s)
}

/* ======== User check & locals ======== */

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var active bool
	err := db.Table("users").
		Select("is_active").
		Where("id = ?", userID).
		Take(&active).Error
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("user nonaktif")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
}
