package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshnanu12/vybe/internal/core/scoring"
)

func TestCaloriesFromSteps(t *testing.T) {
	tests := []struct {
		name   string
		steps  int
		weight float64
		met    float64
		want   int
	}{
		{name: "Defaults for ten thousand steps", steps: 10000, weight: 70, met: 3.5, want: 187},
		{name: "Zero steps burn nothing", steps: 0, weight: 70, met: 3.5, want: 0},
		{name: "Negative steps clamp to zero", steps: -500, weight: 70, met: 3.5, want: 0},
		{name: "Missing weight falls back to 70kg", steps: 10000, weight: 0, met: 3.5, want: 187},
		{name: "Missing MET falls back to walking", steps: 10000, weight: 70, met: -1, want: 187},
		{name: "Heavier person burns more", steps: 10000, weight: 90, met: 3.5, want: 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.CaloriesFromSteps(tt.steps, tt.weight, tt.met)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, scoring.CaloriesFromSteps(tt.steps, tt.weight, tt.met), "must be deterministic")
		})
	}
}

func TestCaloriesFromSteps_NeverNegative(t *testing.T) {
	for steps := 0; steps <= 50000; steps += 1250 {
		for _, weight := range []float64{40, 70, 120} {
			for _, met := range []float64{2, 3.5, 8} {
				assert.GreaterOrEqual(t, scoring.CaloriesFromSteps(steps, weight, met), 0)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 7.05, scoring.Distance(10000, 170), 0.011)
	assert.InDelta(t, 7.05, scoring.Distance(10000, 0), 0.011, "missing height uses 170cm")
	assert.Equal(t, 0.0, scoring.Distance(0, 170))
	assert.Equal(t, 0.0, scoring.Distance(-10, 170))
	assert.Greater(t, scoring.Distance(10000, 190), scoring.Distance(10000, 160))
}

func TestBMI(t *testing.T) {
	t.Run("Known value", func(t *testing.T) {
		bmi := scoring.BMI(70, 170)
		require.NotNil(t, bmi)
		assert.Equal(t, 24.2, *bmi)
	})

	t.Run("Missing weight is unknown", func(t *testing.T) {
		assert.Nil(t, scoring.BMI(0, 170))
	})

	t.Run("Missing height is unknown", func(t *testing.T) {
		assert.Nil(t, scoring.BMI(70, 0))
	})
}

func TestBMICategory(t *testing.T) {
	bmi := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		bmi  *float64
		want string
	}{
		{name: "Underweight", bmi: bmi(18), want: scoring.BMIUnderweight},
		{name: "Lower bound of normal is inclusive", bmi: bmi(18.5), want: scoring.BMINormal},
		{name: "Normal", bmi: bmi(22), want: scoring.BMINormal},
		{name: "Lower bound of overweight is inclusive", bmi: bmi(25), want: scoring.BMIOverweight},
		{name: "Overweight", bmi: bmi(27), want: scoring.BMIOverweight},
		{name: "Lower bound of obese is inclusive", bmi: bmi(30), want: scoring.BMIObese},
		{name: "Obese", bmi: bmi(32), want: scoring.BMIObese},
		{name: "Unknown", bmi: nil, want: scoring.BMIUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.BMICategory(tt.bmi))
		})
	}

	assert.Equal(t, "Normal Weight", scoring.BMICategory(bmi(22)))
}

func TestScoreBanding(t *testing.T) {
	tests := []struct {
		score int
		color string
		label string
	}{
		{score: 100, color: "#00e676", label: "Excellent"},
		{score: 85, color: "#00e676", label: "Excellent"},
		{score: 80, color: "#00e676", label: "Excellent"},
		{score: 79, color: "#ffd740", label: "Good"},
		{score: 65, color: "#ffd740", label: "Good"},
		{score: 60, color: "#ffd740", label: "Good"},
		{score: 45, color: "#ff9100", label: "Fair"},
		{score: 40, color: "#ff9100", label: "Fair"},
		{score: 39, color: "#ff4757", label: "Needs Improvement"},
		{score: 20, color: "#ff4757", label: "Needs Improvement"},
		{score: 0, color: "#ff4757", label: "Needs Improvement"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.color, scoring.ScoreColor(tt.score), "color for %d", tt.score)
		assert.Equal(t, tt.label, scoring.ScoreLabel(tt.score), "label for %d", tt.score)
	}

	badge := scoring.Badge(72)
	assert.Equal(t, 72, badge.Score)
	assert.Equal(t, scoring.ColorGood, badge.Color)
}
