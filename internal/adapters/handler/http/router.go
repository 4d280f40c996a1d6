package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/niteshnanu12/vybe/internal/adapters/handler/http/middleware"

	_ "github.com/niteshnanu12/vybe/docs"
)

type RouterDependencies struct {
	ScoreHandler    *ScoreHandler
	LogHandler      *LogHandler
	ProfileHandler  *ProfileHandler
	ActivityHandler *ActivityHandler
	WorkoutHandler  *WorkoutHandler
	Tokens          middleware.TokenValidator
	DB              *sqlx.DB
	Redis           *redis.Client
	RateLimitPerMin int
	StartTime       time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "disabled"
		if deps.DB != nil {
			dbStatus = "connected"
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				dbStatus = "unreachable"
			}
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	if deps.Redis != nil && deps.RateLimitPerMin > 0 {
		protected.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimitPerMin, 1*time.Minute))
	}
	{
		deps.ScoreHandler.RegisterRoutes(protected)
		deps.LogHandler.RegisterRoutes(protected)
		deps.ProfileHandler.RegisterRoutes(protected)
		deps.ActivityHandler.RegisterRoutes(protected)
		deps.WorkoutHandler.RegisterRoutes(protected)
	}

	return router
}
