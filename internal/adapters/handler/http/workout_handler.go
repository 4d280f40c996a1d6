package http

import (
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/scoring"
	"github.com/niteshnanu12/vybe/internal/core/services"
)

const streamKeepAlive = 15 * time.Second

type WorkoutHandler struct {
	registry *services.WorkoutRegistry

	done      chan struct{}
	closeOnce sync.Once
}

func NewWorkoutHandler(registry *services.WorkoutRegistry) *WorkoutHandler {
	return &WorkoutHandler{
		registry: registry,
		done:     make(chan struct{}),
	}
}

// Close ends every open event stream. Server.Shutdown does not interrupt
// them on its own.
func (h *WorkoutHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

type startWorkoutRequest struct {
	Type string `json:"type"`
}

// workoutView is the session as clients render it. Times are epoch
// milliseconds, matching the persisted snapshot.
type workoutView struct {
	IsRunning      bool   `json:"isRunning"`
	StartTime      *int64 `json:"startTime"`
	Type           string `json:"type"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	Elapsed        string `json:"elapsed"`
}

func newWorkoutView(s domain.WorkoutSession) workoutView {
	v := workoutView{
		IsRunning:      s.IsRunning,
		Type:           s.Type,
		ElapsedSeconds: s.ElapsedSeconds,
		Elapsed:        scoring.FormatElapsed(s.ElapsedSeconds),
	}
	if s.StartTime != nil {
		ms := s.StartTime.UnixMilli()
		v.StartTime = &ms
	}
	return v
}

func (h *WorkoutHandler) RegisterRoutes(r *gin.RouterGroup) {
	workout := r.Group("/workout")
	{
		workout.GET("", h.State)
		workout.POST("/start", h.Start)
		workout.POST("/stop", h.Stop)
		workout.POST("/reset", h.Reset)
		workout.GET("/stream", h.Stream)
	}
}

func (h *WorkoutHandler) State(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	state := h.registry.For(c.Request.Context(), userID).State()
	c.JSON(http.StatusOK, gin.H{"state": newWorkoutView(state)})
}

func (h *WorkoutHandler) Start(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	// An empty body means the default type. Chunked bodies have no length.
	var req startWorkoutRequest
	if body := c.Request.Body; body != nil && body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	state, err := h.registry.For(c.Request.Context(), userID).Start(c.Request.Context(), req.Type)
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, withPersistence(gin.H{"state": newWorkoutView(state)}, err))
}

// Stop returns 201 with the recorded activity, or 200 with a null activity
// when nothing was running or the session was too short to keep.
func (h *WorkoutHandler) Stop(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	mgr := h.registry.For(c.Request.Context(), userID)
	activity, err := mgr.Stop(c.Request.Context())
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		handleError(c, err)
		return
	}

	status := http.StatusOK
	if activity != nil {
		status = http.StatusCreated
	}
	c.JSON(status, withPersistence(gin.H{
		"activity": activity,
		"state":    newWorkoutView(mgr.State()),
	}, err))
}

func (h *WorkoutHandler) Reset(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	mgr := h.registry.For(c.Request.Context(), userID)
	err := mgr.Reset(c.Request.Context())
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, withPersistence(gin.H{"state": newWorkoutView(mgr.State())}, err))
}

// Stream pushes every state change as a server-sent "state" event until the
// client goes away. Slow clients miss intermediate ticks rather than block
// the timer.
func (h *WorkoutHandler) Stream(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	updates := make(chan domain.WorkoutSession, 16)
	// Deliveries are ordered, so when the buffer is full the oldest update
	// makes room and the newest state always reaches the client.
	unsubscribe := h.registry.For(ctx, userID).Subscribe(func(s domain.WorkoutSession) {
		for {
			select {
			case updates <- s:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case s := <-updates:
			c.SSEvent("state", newWorkoutView(s))
			c.Writer.Flush()
		case <-keepAlive.C:
			c.SSEvent("ping", gin.H{})
			c.Writer.Flush()
		}
	}
}

// withPersistence flags responses whose state change could not be saved.
// The in-memory session stays authoritative, so the request still succeeds.
func withPersistence(body gin.H, err error) gin.H {
	body["persisted"] = err == nil
	if err != nil {
		body["warning"] = err.Error()
	}
	return body
}
