package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

func TestRecordSteps(t *testing.T) {
	t.Run("Success: 200 with derived calories and distance", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/steps", `{"count": 2000}`, "user-1")

		require.Equal(t, http.StatusOK, w.Code)
		var rec domain.DailyStepRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, "2024-06-01", rec.Day)
		assert.Equal(t, 2000, rec.Count)
		assert.Equal(t, 10000, rec.Goal)
		assert.InDelta(t, 37.0, rec.Calories, 0.001)
		assert.InDelta(t, 1.41, rec.Distance, 0.001)
	})

	t.Run("Success: zero is a valid count", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/steps", `{"count": 0}`, "user-1")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Fail: 400 when count is missing", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/steps", `{}`, "user-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 on negative count", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/steps", `{"count": -5}`, "user-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 500 without user context", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/steps", `{"count": 10}`, "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLogSleep(t *testing.T) {
	t.Run("Success: 201 with duration from clock times", func(t *testing.T) {
		env := setupRouter(t)

		body := `{"bedtime": "23:00", "wake_time": "07:00", "quality_choice": "good"}`
		w := env.do("POST", "/api/v1/logs/sleep", body, "user-1")

		require.Equal(t, http.StatusCreated, w.Code)
		var rec domain.SleepRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, 8.0, rec.Duration)
		assert.Equal(t, 75, rec.Quality)
		assert.Equal(t, 78, rec.RecoveryScore)
	})

	t.Run("Fail: 400 on malformed clock time", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/sleep", `{"bedtime": "25:00", "wake_time": "07:00"}`, "user-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMeals(t *testing.T) {
	t.Run("Success: meals accumulate into the day totals", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/meals", `{"name": "Oats", "type": "breakfast", "calories": 350, "protein": 12, "carbs": 60, "fats": 6}`, "user-1")
		require.Equal(t, http.StatusCreated, w.Code)
		w = env.do("POST", "/api/v1/logs/meals", `{"name": "Salad", "type": "lunch", "calories": 450, "protein": 30, "carbs": 20, "fats": 25}`, "user-1")
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do("GET", "/api/v1/logs/meals", "", "user-1")

		require.Equal(t, http.StatusOK, w.Code)
		var rec domain.NutritionRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Len(t, rec.Meals, 2)
		assert.Equal(t, 800.0, rec.Calories)
		assert.Equal(t, 42.0, rec.Protein)
	})

	t.Run("Fail: 409 when adding to a past day", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/meals", `{"date": "2024-05-30", "name": "Late", "type": "snack", "calories": 100}`, "user-1")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Fail: 400 on unknown meal type", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("POST", "/api/v1/logs/meals", `{"name": "Brunch", "type": "brunch", "calories": 100}`, "user-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 on malformed date query", func(t *testing.T) {
		env := setupRouter(t)

		w := env.do("GET", "/api/v1/logs/meals?date=01-06-2024", "", "user-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWater(t *testing.T) {
	env := setupRouter(t)

	for i := 0; i < 3; i++ {
		w := env.do("POST", "/api/v1/logs/water/add", "", "user-1")
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := env.do("POST", "/api/v1/logs/water/remove", "", "user-1")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do("GET", "/api/v1/logs/water", "", "user-1")

	require.Equal(t, http.StatusOK, w.Code)
	var rec domain.HydrationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, 2, rec.Glasses)
	assert.Equal(t, 500, rec.Ml)
	assert.Equal(t, 2000, rec.GoalMl)
}
