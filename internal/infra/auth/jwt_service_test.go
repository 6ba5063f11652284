package auth

import (
	"testing"
	"time"

	"bazaar/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_VerifyAccessToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	userID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
		"type":  "access",
		"roles": []string{"user", "merchant"},
	})

	principal, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, []string{"user", "merchant"}, principal.Roles)
	assert.True(t, expiresAt.Equal(principal.ExpiresAt))
}

func TestJWTService_ToleratesClockSkew(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(-clockSkew / 2).Unix(),
		"type": "access",
	})

	_, err = svc.VerifyAccessToken(token)
	assert.NoError(t, err)
}

func TestJWTService_VerifyAccessToken_Rejects(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":  uuid.NewString(),
			"exp":  time.Now().Add(time.Minute).Unix(),
			"type": "access",
		}
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{"garbage", func() string { return "clearly-not-a-jwt-token-format" }},
		{"wrong secret", func() string {
			return signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), valid())
		}},
		{"expired", func() string {
			c := valid()
			c["exp"] = time.Now().Add(-2 * clockSkew).Unix()

			return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), c)
		}},
		{"missing exp", func() string {
			c := valid()
			delete(c, "exp")

			return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), c)
		}},
		{"refresh token", func() string {
			c := valid()
			c["type"] = "refresh"

			return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), c)
		}},
		{"nil subject", func() string {
			c := valid()
			c["sub"] = uuid.Nil.String()

			return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), c)
		}},
		{"subject not uuid", func() string {
			c := valid()
			c["sub"] = "alice"

			return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), c)
		}},
		{"other hmac alg", func() string {
			return signToken(t, jwt.SigningMethodHS512, []byte(testAccessSecret), valid())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := svc.VerifyAccessToken(tt.token())
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, principal)
		})
	}
}
