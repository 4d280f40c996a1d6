package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserIDKey = "userID"

	accessTokenQuery = "access_token"
	bearerPrefix     = "bearer "
)

// TokenValidator resolves a bearer token to the user it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

// AuthMiddleware accepts tokens from the Authorization header, or from the
// access_token query parameter for EventSource clients that cannot set headers.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.Request)
		if raw == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		userID, err := tokens.ValidateToken(raw)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			unauthorized(c, "token expired")
			return
		case err != nil:
			unauthorized(c, "invalid token")
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, reason string) {
	c.Header("WWW-Authenticate", `Bearer realm="vybe"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return r.URL.Query().Get(accessTokenQuery)
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserIDKey)
	return userID, userID != ""
}
