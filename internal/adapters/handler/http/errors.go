package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niteshnanu12/vybe/internal/adapters/handler/http/middleware"
	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/services"
)

// handleError maps domain errors to responses. Anything unknown is logged and
// reported as a 500 without details.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrSnapshotUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDayClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrActivityConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrInvalidMeal),
		errors.Is(err, domain.ErrActivityTooShort),
		errors.Is(err, services.ErrInvalidProfile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return "", false
	}
	return userID, true
}

// queryDay parses an optional YYYY-MM-DD query parameter, defaulting to now.
func queryDay(c *gin.Context, key string, now time.Time) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return now, true
	}
	day, err := time.Parse(domain.DayLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key + " format, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}
