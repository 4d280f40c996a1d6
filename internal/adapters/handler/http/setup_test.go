package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	adapterHTTP "github.com/niteshnanu12/vybe/internal/adapters/handler/http"
	"github.com/niteshnanu12/vybe/internal/adapters/handler/http/middleware"
	"github.com/niteshnanu12/vybe/internal/adapters/repository"
	"github.com/niteshnanu12/vybe/internal/adapters/snapshot"
	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/services"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

var testNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	router     *gin.Engine
	clock      *clock.FakeClock
	scheduler  *clock.ManualScheduler
	profiles   *repository.InMemoryProfileRepository
	records    *repository.InMemoryRecordRepository
	activities *repository.InMemoryActivityRepository
	registry   *services.WorkoutRegistry

	snapshotDir string
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		clock:      clock.NewFakeClock(testNow),
		profiles:   repository.NewInMemoryProfileRepository(),
		records:    repository.NewInMemoryRecordRepository(),
		activities: repository.NewInMemoryActivityRepository(),

		snapshotDir: t.TempDir(),
	}
	env.scheduler = clock.NewManualScheduler(env.clock)

	profileSvc := services.NewProfileService(env.profiles, domain.DefaultProfile())
	logSvc := services.NewLogService(env.records, profileSvc, env.clock, nil)
	scoreSvc := services.NewScoreService(env.records, profileSvc, logSvc)
	activitySvc := services.NewActivityService(env.activities, env.clock)
	env.registry = services.NewWorkoutRegistry(snapshot.FileFactory(env.snapshotDir), activitySvc, env.clock, env.scheduler)
	t.Cleanup(env.registry.Close)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	})

	api := r.Group("/api/v1")
	adapterHTTP.NewScoreHandler(scoreSvc, env.clock).RegisterRoutes(api)
	adapterHTTP.NewLogHandler(logSvc, env.clock).RegisterRoutes(api)
	adapterHTTP.NewProfileHandler(profileSvc).RegisterRoutes(api)
	adapterHTTP.NewActivityHandler(activitySvc, env.clock).RegisterRoutes(api)
	adapterHTTP.NewWorkoutHandler(env.registry).RegisterRoutes(api)

	env.router = r
	return env
}

func (e *testEnv) do(method, path, body, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
