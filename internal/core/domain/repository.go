package domain

import (
	"context"
	"time"
)

type ProfileRepository interface {
	// GetByUserID returns the stored settings of a user or ErrProfileNotFound.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	// Upsert creates or replaces the settings of a user.
	Upsert(ctx context.Context, profile *Profile) error

	UpdateStreaks(ctx context.Context, userID string, current, longest int) error
}

type DailyRecordRepository interface {
	GetSteps(ctx context.Context, userID, day string) (*DailyStepRecord, error)
	SaveSteps(ctx context.Context, rec *DailyStepRecord) error

	// ListSteps returns step records for the inclusive day range, ordered by day.
	ListSteps(ctx context.Context, userID string, from, to time.Time) ([]DailyStepRecord, error)

	GetSleep(ctx context.Context, userID, day string) (*SleepRecord, error)
	SaveSleep(ctx context.Context, rec *SleepRecord) error

	// GetNutrition assembles the day's meals and goals. A day without meals yields an empty record.
	GetNutrition(ctx context.Context, userID, day string) (*NutritionRecord, error)
	AddMeal(ctx context.Context, meal *Meal) error

	GetHydration(ctx context.Context, userID, day string) (*HydrationRecord, error)
	SaveHydration(ctx context.Context, rec *HydrationRecord) error
}

// ActivityStore receives finished activities.
type ActivityStore interface {
	AddActivity(ctx context.Context, activity *Activity) error
}

type ActivityRepository interface {
	ActivityStore

	GetByID(ctx context.Context, id string) (*Activity, error)

	ListByUserID(ctx context.Context, userID string, from, to time.Time) ([]*Activity, error)

	Delete(ctx context.Context, id, userID string) error
}

// SnapshotStore persists the single workout snapshot record of one manager.
type SnapshotStore interface {
	// Load returns ErrNoSnapshot when nothing is stored and ErrCorruptSnapshot when the stored bytes cannot be decoded.
	Load(ctx context.Context) (*SessionSnapshot, error)
	Save(ctx context.Context, snap SessionSnapshot) error
}
