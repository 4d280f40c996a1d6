package domain

import (
	"errors"
	"time"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnauthorized    = errors.New("unauthorized")
)

// Profile is the settings/profile provider consumed as engine parameters.
type Profile struct {
	UserID        string    `json:"user_id" db:"user_id" yaml:"-"`
	WeightKg      float64   `json:"weight_kg" db:"weight_kg" yaml:"weight_kg"`
	HeightCm      float64   `json:"height_cm" db:"height_cm" yaml:"height_cm"`
	Age           int       `json:"age" db:"age" yaml:"age"`
	Gender        string    `json:"gender" db:"gender" yaml:"gender"`
	StepGoal      int       `json:"step_goal" db:"step_goal" yaml:"step_goal"`
	SleepGoal     float64   `json:"sleep_goal" db:"sleep_goal" yaml:"sleep_goal"`
	WaterGoal     int       `json:"water_goal" db:"water_goal" yaml:"water_goal"`
	CalorieGoal   int       `json:"calorie_goal" db:"calorie_goal" yaml:"calorie_goal"`
	CurrentStreak int       `json:"current_streak" db:"current_streak" yaml:"-"`
	LongestStreak int       `json:"longest_streak" db:"longest_streak" yaml:"-"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at" yaml:"-"`
}

func DefaultProfile() Profile {
	return Profile{
		WeightKg:    70,
		HeightCm:    170,
		StepGoal:    10000,
		SleepGoal:   8,
		WaterGoal:   8,
		CalorieGoal: 2000,
	}
}

// WithDefaults fills zero or negative settings from base.
func (p Profile) WithDefaults(base Profile) Profile {
	if p.WeightKg <= 0 {
		p.WeightKg = base.WeightKg
	}
	if p.HeightCm <= 0 {
		p.HeightCm = base.HeightCm
	}
	if p.StepGoal <= 0 {
		p.StepGoal = base.StepGoal
	}
	if p.SleepGoal <= 0 {
		p.SleepGoal = base.SleepGoal
	}
	if p.WaterGoal <= 0 {
		p.WaterGoal = base.WaterGoal
	}
	if p.CalorieGoal <= 0 {
		p.CalorieGoal = base.CalorieGoal
	}
	return p
}

func (p *Profile) UpdateStreak(current, longest int) {
	p.CurrentStreak = current
	p.LongestStreak = longest
	p.UpdatedAt = time.Now().UTC()
}
