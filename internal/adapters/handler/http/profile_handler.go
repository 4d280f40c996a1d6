package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niteshnanu12/vybe/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type updateProfileRequest struct {
	WeightKg    float64 `json:"weight_kg"`
	HeightCm    float64 `json:"height_cm"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	StepGoal    int     `json:"step_goal"`
	SleepGoal   float64 `json:"sleep_goal"`
	WaterGoal   int     `json:"water_goal"`
	CalorieGoal int     `json:"calorie_goal"`
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile", h.Get)
	r.PUT("/profile", h.Update)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), services.UpdateProfileInput{
		UserID:      userID,
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		Age:         req.Age,
		Gender:      req.Gender,
		StepGoal:    req.StepGoal,
		SleepGoal:   req.SleepGoal,
		WaterGoal:   req.WaterGoal,
		CalorieGoal: req.CalorieGoal,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
