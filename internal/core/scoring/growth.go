package scoring

import (
	"math"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

const (
	weightActivity  = 0.30
	weightSleep     = 0.30
	weightNutrition = 0.20
	weightHydration = 0.20

	maxTrendValue = 999
)

// GrowthInputs carries one day of records. Week holds the trailing days before
// Steps' day and may be empty.
type GrowthInputs struct {
	Steps     *domain.DailyStepRecord
	Week      []domain.DailyStepRecord
	Sleep     *domain.SleepRecord
	SleepGoal float64
	Nutrition *domain.NutritionRecord
	Hydration *domain.HydrationRecord
}

func GrowthIndex(in GrowthInputs) domain.GrowthIndexResult {
	res := domain.GrowthIndexResult{
		ActivityConsistency: ActivityConsistency(in.Steps, in.Week),
		SleepScore:          SleepScore(in.Sleep, in.SleepGoal),
		NutritionScore:      NutritionScore(in.Nutrition),
		HydrationScore:      HydrationScore(in.Hydration),
	}
	res.GrowthIndex = CombineGrowthIndex(res.ActivityConsistency, res.SleepScore, res.NutritionScore, res.HydrationScore)
	return res
}

// CombineGrowthIndex applies the 30/30/20/20 weighting.
func CombineGrowthIndex(activity, sleep, nutrition, hydration int) int {
	sum := float64(clampScore(activity))*weightActivity +
		float64(clampScore(sleep))*weightSleep +
		float64(clampScore(nutrition))*weightNutrition +
		float64(clampScore(hydration))*weightHydration
	return clampScore(int(math.Round(sum)))
}

// StepGoalPercent is the share of the step goal reached, capped at 100.
func StepGoalPercent(rec *domain.DailyStepRecord) int {
	if rec == nil || rec.Goal <= 0 || rec.Count <= 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(rec.Count) / float64(rec.Goal) * 100)))
}

// ActivityConsistency averages today's goal percentage with the trailing week when one is known.
func ActivityConsistency(today *domain.DailyStepRecord, week []domain.DailyStepRecord) int {
	todayPct := StepGoalPercent(today)
	if len(week) == 0 {
		return todayPct
	}
	total := todayPct
	for i := range week {
		total += StepGoalPercent(&week[i])
	}
	return clampScore(int(math.Round(float64(total) / float64(len(week)+1))))
}

// fullQualityDivisor lets "good" quality (75) and above keep the full score.
const fullQualityDivisor = 187.5

func SleepScore(rec *domain.SleepRecord, goal float64) int {
	if rec == nil || rec.Duration <= 0 {
		return 0
	}
	if goal <= 0 {
		goal = DefaultSleepGoal
	}
	ratio := math.Min(rec.Duration/goal, 1)
	factor := 1.0
	if rec.Quality > 0 {
		factor = math.Min(1, 0.6+float64(rec.Quality)/fullQualityDivisor)
	}
	return clampScore(int(math.Round(ratio * 100 * factor)))
}

// NutritionScore peaks at the calorie goal. Undershoot scales linearly and
// overshoot loses two points per percent above the goal.
func NutritionScore(rec *domain.NutritionRecord) int {
	if rec == nil || rec.Goals.Calories <= 0 || rec.Calories <= 0 {
		return 0
	}
	r := rec.Calories / rec.Goals.Calories
	if r <= 1 {
		return clampScore(int(math.Round(r * 100)))
	}
	return clampScore(int(math.Round(100 - (r-1)*200)))
}

func HydrationScore(rec *domain.HydrationRecord) int {
	if rec == nil || rec.Goal <= 0 || rec.Glasses <= 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(rec.Glasses) / float64(rec.Goal) * 100)))
}

// Trend compares the last growth index in history, oldest first, with the
// average of up to seven days before it.
func Trend(history []int) domain.GrowthTrend {
	if len(history) < 2 {
		return domain.GrowthTrend{Improved: true, Value: 0}
	}
	today := history[len(history)-1]
	prior := history[:len(history)-1]
	if len(prior) > 7 {
		prior = prior[len(prior)-7:]
	}
	sum := 0
	for _, v := range prior {
		sum += v
	}
	avg := float64(sum) / float64(len(prior))

	value := int(math.Round(math.Abs(float64(today)-avg) / math.Max(1, avg) * 100))
	if value > maxTrendValue {
		value = maxTrendValue
	}
	return domain.GrowthTrend{
		Improved: float64(today) >= avg,
		Value:    value,
	}
}
