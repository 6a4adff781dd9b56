package service

import (
	"testing"
	"time"

	"kursusku_backend/internals/configs"
	userModel "kursusku_backend/internals/features/users/user/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordDanCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hashed)

	assert.True(t, CheckPassword(hashed, "rahasia-banget"))
	assert.False(t, CheckPassword(hashed, "salah"))
	assert.False(t, CheckPassword("bukan-hash", "rahasia-banget"))
}

func TestGenerateAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Budi",
		Role:     "user",
	}

	tokenString, err := GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, "Budi", claims["user_name"])
	assert.Equal(t, "user", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestGenerateAccessToken_TanpaSecret(t *testing.T) {
	configs.JWTSecret = ""

	_, err := GenerateAccessToken(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}
