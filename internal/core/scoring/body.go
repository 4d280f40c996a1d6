// Package scoring converts raw daily inputs into calories, distance, BMI,
// recovery and the composite growth index. Every function is pure: missing
// or out-of-range inputs are replaced with neutral defaults, never rejected.
package scoring

import "math"

const (
	DefaultWeightKg = 70.0
	DefaultHeightCm = 170.0
	DefaultStepMET  = 3.5

	kmPerStep   = 0.000762
	strideRatio = 0.415
)

const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal Weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
	BMIUnknown     = "Unknown"
)

// CaloriesFromSteps estimates the energy spent walking the given steps.
// Negative steps clamp to zero; non-positive weight or MET use the defaults.
func CaloriesFromSteps(steps int, weightKg, met float64) int {
	if steps < 0 {
		steps = 0
	}
	if weightKg <= 0 {
		weightKg = DefaultWeightKg
	}
	if met <= 0 {
		met = DefaultStepMET
	}
	return int(math.Round(float64(steps) * kmPerStep * weightKg * met / 10))
}

// Distance returns kilometres walked, using a stride derived from height.
func Distance(steps int, heightCm float64) float64 {
	if steps < 0 {
		steps = 0
	}
	if heightCm <= 0 {
		heightCm = DefaultHeightCm
	}
	strideM := heightCm * strideRatio / 100
	return round2(float64(steps) * strideM / 1000)
}

// BMI returns nil when either input is missing.
func BMI(weightKg, heightCm float64) *float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}
	heightM := heightCm / 100
	v := round1(weightKg / (heightM * heightM))
	return &v
}

func BMICategory(bmi *float64) string {
	if bmi == nil {
		return BMIUnknown
	}
	switch v := *bmi; {
	case v < 18.5:
		return BMIUnderweight
	case v < 25:
		return BMINormal
	case v < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
