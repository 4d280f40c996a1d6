package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	const (
		secret = "vybe-token-test-secret"
		issuer = "vybe-test"
		userID = "user-123"
	)
	service := NewTokenService(secret, issuer, time.Hour)

	t.Run("Round trip returns the subject", func(t *testing.T) {
		token, err := service.GenerateToken(userID)
		require.NoError(t, err)

		got, err := service.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
		cause error
	}{
		{
			name: "Expired token",
			token: func(t *testing.T) string {
				tok, err := NewTokenService(secret, issuer, -time.Minute).GenerateToken(userID)
				require.NoError(t, err)
				return tok
			},
			cause: jwt.ErrTokenExpired,
		},
		{
			name: "Signed with another secret",
			token: func(t *testing.T) string {
				tok, err := NewTokenService("someone-else", issuer, time.Hour).GenerateToken(userID)
				require.NoError(t, err)
				return tok
			},
			cause: jwt.ErrTokenSignatureInvalid,
		},
		{
			name: "Issued by another service",
			token: func(t *testing.T) string {
				tok, err := NewTokenService(secret, "other-issuer", time.Hour).GenerateToken(userID)
				require.NoError(t, err)
				return tok
			},
			cause: jwt.ErrTokenInvalidIssuer,
		},
		{
			name: "Unsigned none algorithm",
			token: func(t *testing.T) string {
				tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
					Subject:   userID,
					Issuer:    issuer,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tok
			},
			cause: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:  "Malformed string",
			token: func(t *testing.T) string { return "this-is-not-a-jwt" },
			cause: jwt.ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ValidateToken(tt.token(t))

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.ErrorIs(t, err, tt.cause)
			assert.Empty(t, got)
		})
	}

	t.Run("Empty subject is rejected", func(t *testing.T) {
		token, err := service.GenerateToken("")
		require.NoError(t, err)

		got, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Contains(t, err.Error(), "missing subject")
		assert.Empty(t, got)
	})
}
