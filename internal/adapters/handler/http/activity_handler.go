package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niteshnanu12/vybe/internal/core/services"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

type ActivityHandler struct {
	svc   *services.ActivityService
	clock clock.Clock
}

func NewActivityHandler(svc *services.ActivityService, clk clock.Clock) *ActivityHandler {
	return &ActivityHandler{
		svc:   svc,
		clock: clk,
	}
}

type logActivityRequest struct {
	Type    string `json:"type" binding:"required"`
	Minutes int    `json:"minutes" binding:"required"`
}

func (h *ActivityHandler) RegisterRoutes(r *gin.RouterGroup) {
	activities := r.Group("/activities")
	{
		activities.GET("", h.List)
		activities.POST("", h.Create)
		activities.DELETE("/:id", h.Delete)
	}
}

func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	now := h.clock.Now()
	to, ok := queryDay(c, "to", now)
	if !ok {
		return
	}
	from, ok := queryDay(c, "from", to.AddDate(0, 0, -6))
	if !ok {
		return
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from cannot be after to"})
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req logActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.svc.LogManual(c.Request.Context(), services.LogActivityInput{
		UserID:  userID,
		Type:    req.Type,
		Minutes: req.Minutes,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
