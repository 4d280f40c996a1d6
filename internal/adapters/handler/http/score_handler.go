package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niteshnanu12/vybe/internal/core/services"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

type ScoreHandler struct {
	svc   *services.ScoreService
	clock clock.Clock
}

func NewScoreHandler(svc *services.ScoreService, clk clock.Clock) *ScoreHandler {
	return &ScoreHandler{
		svc:   svc,
		clock: clk,
	}
}

func (h *ScoreHandler) RegisterRoutes(r *gin.RouterGroup) {
	scores := r.Group("/scores")
	{
		scores.GET("/dashboard", h.Dashboard)
		scores.GET("/history", h.History)
		scores.GET("/weekly", h.Weekly)
		scores.GET("/bmi", h.BMI)
	}
}

func (h *ScoreHandler) Dashboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	day, ok := queryDay(c, "date", h.clock.Now())
	if !ok {
		return
	}

	dash, err := h.svc.Dashboard(c.Request.Context(), userID, day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *ScoreHandler) History(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	end, ok := queryDay(c, "end_date", h.clock.Now())
	if !ok {
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > services.MaxHistoryDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
			return
		}
		days = n
	}

	scores, err := h.svc.History(c.Request.Context(), userID, end, days)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

func (h *ScoreHandler) Weekly(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	end, ok := queryDay(c, "end_date", h.clock.Now())
	if !ok {
		return
	}

	summary, err := h.svc.Weekly(c.Request.Context(), userID, end)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ScoreHandler) BMI(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	res, err := h.svc.BMI(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
