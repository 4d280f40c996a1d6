package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrRecordNotFound = errors.New("daily record not found")
	ErrInvalidRecord  = errors.New("invalid daily record data")
	ErrDayClosed      = errors.New("historical days are read-only")
	ErrInvalidTime    = errors.New("invalid time format (must be HH:MM 24h)")
	ErrInvalidMeal    = errors.New("invalid meal type (must be breakfast, lunch, snack or dinner)")
)

var clockRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"

	DayLayout = "2006-01-02"

	DefaultGlassSizeMl = 250
)

// DailyStepRecord is supplied by the step tracking collaborator and only read here.
type DailyStepRecord struct {
	UserID   string  `json:"-" db:"user_id"`
	Day      string  `json:"day" db:"day"`
	Count    int     `json:"count" db:"count"`
	Goal     int     `json:"goal" db:"goal"`
	Calories float64 `json:"calories" db:"calories"`
	Distance float64 `json:"distance" db:"distance"`
}

type SleepRecord struct {
	UserID        string  `json:"-" db:"user_id"`
	Day           string  `json:"day" db:"day"`
	Duration      float64 `json:"duration" db:"duration"`
	Quality       int     `json:"quality" db:"quality"`
	DeepSleep     float64 `json:"deepSleep" db:"deep_sleep"`
	LightSleep    float64 `json:"lightSleep" db:"light_sleep"`
	REM           float64 `json:"rem" db:"rem"`
	Awake         float64 `json:"awake" db:"awake"`
	RecoveryScore int     `json:"recoveryScore" db:"recovery_score"`
	Bedtime       string  `json:"bedtime" db:"bedtime"`
	WakeTime      string  `json:"wakeTime" db:"wake_time"`
}

type MacroGoals struct {
	Calories float64 `json:"calories" db:"goal_calories"`
	Protein  float64 `json:"protein" db:"goal_protein"`
	Carbs    float64 `json:"carbs" db:"goal_carbs"`
	Fats     float64 `json:"fats" db:"goal_fats"`
}

type Meal struct {
	ID       string    `json:"id" db:"id"`
	UserID   string    `json:"-" db:"user_id"`
	Day      string    `json:"-" db:"day"`
	Name     string    `json:"name" db:"name"`
	Type     string    `json:"type" db:"type"`
	Calories float64   `json:"calories" db:"calories"`
	Protein  float64   `json:"protein" db:"protein"`
	Carbs    float64   `json:"carbs" db:"carbs"`
	Fats     float64   `json:"fats" db:"fats"`
	Time     time.Time `json:"time" db:"eaten_at"`
}

func (m *Meal) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: meal name is required", ErrInvalidRecord)
	}
	switch m.Type {
	case MealBreakfast, MealLunch, MealSnack, MealDinner:
	default:
		return ErrInvalidMeal
	}
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fats < 0 {
		return fmt.Errorf("%w: meal macros cannot be negative", ErrInvalidRecord)
	}
	return nil
}

type NutritionRecord struct {
	UserID   string     `json:"-"`
	Day      string     `json:"day"`
	Calories float64    `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fats     float64    `json:"fats"`
	Goals    MacroGoals `json:"goals"`
	Meals    []Meal     `json:"meals"`
}

// AppendMeal adds a meal and refreshes the running totals.
func (n *NutritionRecord) AppendMeal(m Meal) {
	n.Meals = append(n.Meals, m)
	n.Calories += m.Calories
	n.Protein += m.Protein
	n.Carbs += m.Carbs
	n.Fats += m.Fats
}

type HydrationRecord struct {
	UserID    string `json:"-" db:"user_id"`
	Day       string `json:"day" db:"day"`
	Glasses   int    `json:"glasses" db:"glasses"`
	Goal      int    `json:"goal" db:"goal"`
	Ml        int    `json:"ml" db:"ml"`
	GoalMl    int    `json:"goalMl" db:"goal_ml"`
	GlassSize int    `json:"glassSize" db:"glass_size"`
}

func NewHydrationRecord(userID, day string, goal, glassSize int) *HydrationRecord {
	if glassSize <= 0 {
		glassSize = DefaultGlassSizeMl
	}
	if goal <= 0 {
		goal = 8
	}
	return &HydrationRecord{
		UserID:    userID,
		Day:       day,
		Goal:      goal,
		GoalMl:    goal * glassSize,
		GlassSize: glassSize,
	}
}

// SetGlasses keeps the ml figures derived from the glass count.
func (h *HydrationRecord) SetGlasses(n int) {
	if n < 0 {
		n = 0
	}
	h.Glasses = n
	h.Ml = n * h.GlassSize
	h.GoalMl = h.Goal * h.GlassSize
}

// DailyRecords bundles everything the scoring engine needs for one day.
type DailyRecords struct {
	Day       string
	Steps     *DailyStepRecord
	Sleep     *SleepRecord
	Nutrition *NutritionRecord
	Hydration *HydrationRecord
}

func ValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}
