package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateKeyPrefix = "vybe:rate:"

func rateSubject(c *gin.Context) string {
	if userID, ok := GetUserID(c); ok {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}

// RateLimiterMiddleware allows limit requests per window for each subject.
// The counter, its expiry and the remaining TTL travel in one MULTI block so
// a crash between INCR and EXPIRE cannot leave a counter without a TTL.
// Requests pass untouched when Redis is unavailable.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateKeyPrefix + rateSubject(c)
		ctx := c.Request.Context()

		var incr *redis.IntCmd
		var pttl *redis.DurationCmd
		_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, window)
			pttl = pipe.PTTL(ctx, key)
			return nil
		})
		if err != nil {
			log.Printf("[RATE] limiter bypassed for %s: %v", key, err)
			c.Next()
			return
		}

		count := incr.Val()
		reset := pttl.Val()
		if reset <= 0 {
			reset = window
		}
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))

		if count > int64(limit) {
			h.Set("Retry-After", strconv.Itoa(int(reset.Round(time.Second)/time.Second)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "rate limit exceeded, slow down",
				"retry_in_s": int(reset.Round(time.Second) / time.Second),
			})
			return
		}

		c.Next()
	}
}
