package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/services"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

type LogHandler struct {
	svc   *services.LogService
	clock clock.Clock
}

func NewLogHandler(svc *services.LogService, clk clock.Clock) *LogHandler {
	return &LogHandler{
		svc:   svc,
		clock: clk,
	}
}

type recordStepsRequest struct {
	Count *int `json:"count" binding:"required"`
}

type logSleepRequest struct {
	Bedtime  string  `json:"bedtime"`
	WakeTime string  `json:"wake_time"`
	Duration float64 `json:"duration"`
	Quality  int     `json:"quality"`
	Choice   string  `json:"quality_choice"`
}

type addMealRequest struct {
	Date     string  `json:"date"`
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func (h *LogHandler) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/logs")
	{
		logs.POST("/steps", h.RecordSteps)
		logs.POST("/sleep", h.LogSleep)
		logs.GET("/meals", h.Nutrition)
		logs.POST("/meals", h.AddMeal)
		logs.GET("/water", h.Hydration)
		logs.POST("/water/add", h.AddGlass)
		logs.POST("/water/remove", h.RemoveGlass)
	}
}

func (h *LogHandler) RecordSteps(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req recordStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.svc.RecordSteps(c.Request.Context(), userID, *req.Count)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *LogHandler) LogSleep(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req logSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.svc.LogSleep(c.Request.Context(), services.LogSleepInput{
		UserID:        userID,
		Bedtime:       req.Bedtime,
		WakeTime:      req.WakeTime,
		Duration:      req.Duration,
		Quality:       req.Quality,
		QualityChoice: req.Choice,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *LogHandler) AddMeal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.svc.AddMeal(c.Request.Context(), services.AddMealInput{
		UserID:   userID,
		Day:      req.Date,
		Name:     req.Name,
		Type:     req.Type,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *LogHandler) Nutrition(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	day, ok := queryDay(c, "date", h.clock.Now())
	if !ok {
		return
	}

	rec, err := h.svc.Nutrition(c.Request.Context(), userID, domain.DayKey(day))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *LogHandler) Hydration(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	day, ok := queryDay(c, "date", h.clock.Now())
	if !ok {
		return
	}

	rec, err := h.svc.Hydration(c.Request.Context(), userID, domain.DayKey(day))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *LogHandler) AddGlass(c *gin.Context) {
	h.adjustWater(c, 1)
}

func (h *LogHandler) RemoveGlass(c *gin.Context) {
	h.adjustWater(c, -1)
}

func (h *LogHandler) adjustWater(c *gin.Context, delta int) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	rec, err := h.svc.AdjustWater(c.Request.Context(), userID, delta)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
