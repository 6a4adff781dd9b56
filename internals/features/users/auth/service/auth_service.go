package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	authModel "kursusku_backend/internals/features/users/auth/model"
	userModel "kursusku_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

/* ==========================
   Password
========================== */

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

/* ==========================
   Token
========================== */

// GenerateAccessToken membuat JWT berisi user_id, user_name, dan role.
func GenerateAccessToken(user *userModel.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

/* ==========================
   Register / Login / Logout
========================== */

func Register(db *gorm.DB, user *userModel.UserModel) error {
	// Email unik
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ?", strings.ToLower(user.Email)).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek email")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := HashPassword(user.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	user.Password = hashed
	user.Email = strings.ToLower(user.Email)
	user.SetDefaultValues()

	if err := db.Create(user).Error; err != nil {
		log.Println("[ERROR] Gagal membuat user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	log.Println("[SUCCESS] User terdaftar:", user.Email)
	return nil
}

func Login(db *gorm.DB, email, password string) (*userModel.UserModel, string, error) {
	var user userModel.UserModel
	err := db.First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	if !user.IsActive {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if !CheckPassword(user.Password, password) {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := GenerateAccessToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Logout memasukkan token ke blacklist sampai masa berlakunya habis.
func Logout(db *gorm.DB, tokenString string) error {
	expiredAt := time.Now().Add(accessTTLDefault)

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Gagal blacklist token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	return nil
}
