package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrActivityConflict = errors.New("activity already exists")
	ErrActivityTooShort = errors.New("activity must last at least one minute")
)

const (
	ActivityWalking = "walking"
	ActivityRunning = "running"
	ActivityCycling = "cycling"
	ActivityWorkout = "workout"

	SourceWorkout = "workout"
	SourceManual  = "manual"
)

// Activity is a finished activity record handed to the activity store.
type Activity struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Name      string    `json:"name" db:"name"`
	Duration  int       `json:"duration" db:"duration"`
	Calories  int       `json:"calories" db:"calories"`
	Distance  float64   `json:"distance" db:"distance"`
	Day       string    `json:"date" db:"day"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (a *Activity) Validate() error {
	if strings.TrimSpace(a.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(a.Type) == "" {
		return errors.New("type is required")
	}
	if a.Duration < 1 {
		return ErrActivityTooShort
	}
	if a.Calories < 0 || a.Distance < 0 {
		return errors.New("calories and distance cannot be negative")
	}
	if a.Day == "" {
		return errors.New("date is required")
	}
	return nil
}
