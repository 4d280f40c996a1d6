package domain

// GrowthIndexResult is recomputed on demand and never stored.
type GrowthIndexResult struct {
	ActivityConsistency int `json:"activityConsistency"`
	SleepScore          int `json:"sleepScore"`
	NutritionScore      int `json:"nutritionScore"`
	HydrationScore      int `json:"hydrationScore"`
	GrowthIndex         int `json:"growthIndex"`
}

type GrowthTrend struct {
	Improved bool `json:"improved"`
	Value    int  `json:"value"`
}

type WeeklySummary struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Days           int     `json:"days"`
	TotalSteps     int     `json:"total_steps"`
	AverageSteps   int     `json:"average_steps"`
	DaysGoalMet    int     `json:"days_goal_met"`
	AverageGoalPct int     `json:"average_goal_pct"`
	TotalCalories  int     `json:"total_calories"`
	TotalDistance  float64 `json:"total_distance"`
	DailyProgress  []int   `json:"daily_progress"`
}

type BMIResult struct {
	BMI      *float64 `json:"bmi"`
	Category string   `json:"category"`
}

type ScoreBadge struct {
	Score int    `json:"score"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// Dashboard is the per-day view rendered by clients.
type Dashboard struct {
	Day       string            `json:"day"`
	Growth    GrowthIndexResult `json:"growth"`
	Badge     ScoreBadge        `json:"badge"`
	Trend     GrowthTrend       `json:"trend"`
	Recovery  *ScoreBadge       `json:"recovery,omitempty"`
	BMI       BMIResult         `json:"bmi"`
	Steps     *DailyStepRecord  `json:"steps,omitempty"`
	Sleep     *SleepRecord      `json:"sleep,omitempty"`
	Nutrition *NutritionRecord  `json:"nutrition,omitempty"`
	Hydration *HydrationRecord  `json:"hydration,omitempty"`
}

type DailyScore struct {
	Day         string `json:"day"`
	GrowthIndex int    `json:"growthIndex"`
}
