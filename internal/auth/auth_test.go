package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateJWT("12345678", "Test Athlete")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, len(token) > 50, "JWT should be reasonably long")
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("12345678", "Test Athlete")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET not set")
}

func TestValidateJWT_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateJWT("12345678", "Test Athlete")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)

	require.NoError(t, err)
	assert.Equal(t, "12345678", claims.StravaID)
	assert.Equal(t, "Test Athlete", claims.Name)
}

func TestValidateJWT_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	// create an expired token
	claims := Claims{
		StravaID: "12345678",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-for-testing"))
	require.NoError(t, err)

	_, err = ValidateJWT(signed)

	assert.Error(t, err)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "correct-secret")

	token, err := GenerateJWT("12345678", "Test Athlete")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "wrong-secret")

	_, err = ValidateJWT(token)

	assert.Error(t, err)
}

func TestValidateJWT_WrongSigningMethod(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	// alg=none tokens must be rejected
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{StravaID: "12345678"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(signed)

	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	_, err := ValidateJWT("not.a.token")

	assert.Error(t, err)
}
