package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

var _ domain.DailyRecordRepository = (*PostgresRecordRepository)(nil)

// PostgresRecordRepository stores one row per user and day for steps, sleep
// and hydration, and one row per meal.
type PostgresRecordRepository struct {
	db *sqlx.DB
}

func NewPostgresRecordRepository(db *sqlx.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db}
}

func (r *PostgresRecordRepository) GetSteps(ctx context.Context, userID, day string) (*domain.DailyStepRecord, error) {
	var rec domain.DailyStepRecord
	query := `SELECT * FROM daily_steps WHERE user_id = $1 AND day = $2`

	if err := r.db.GetContext(ctx, &rec, query, userID, day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("repository: get steps failed: %w", err)
	}
	return &rec, nil
}

func (r *PostgresRecordRepository) SaveSteps(ctx context.Context, rec *domain.DailyStepRecord) error {
	query := `
		INSERT INTO daily_steps (user_id, day, count, goal, calories, distance)
		VALUES (:user_id, :day, :count, :goal, :calories, :distance)
		ON CONFLICT (user_id, day) DO UPDATE SET
			count = EXCLUDED.count,
			goal = EXCLUDED.goal,
			calories = EXCLUDED.calories,
			distance = EXCLUDED.distance`

	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return r.writeError("save steps", err)
	}
	return nil
}

func (r *PostgresRecordRepository) ListSteps(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyStepRecord, error) {
	records := []domain.DailyStepRecord{}
	query := `
		SELECT * FROM daily_steps
		WHERE user_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &records, query, userID, domain.DayKey(from), domain.DayKey(to)); err != nil {
		return nil, fmt.Errorf("repository: list steps failed: %w", err)
	}
	return records, nil
}

func (r *PostgresRecordRepository) GetSleep(ctx context.Context, userID, day string) (*domain.SleepRecord, error) {
	var rec domain.SleepRecord
	query := `SELECT * FROM sleep_logs WHERE user_id = $1 AND day = $2`

	if err := r.db.GetContext(ctx, &rec, query, userID, day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("repository: get sleep failed: %w", err)
	}
	return &rec, nil
}

func (r *PostgresRecordRepository) SaveSleep(ctx context.Context, rec *domain.SleepRecord) error {
	query := `
		INSERT INTO sleep_logs (
			user_id, day, duration, quality,
			deep_sleep, light_sleep, rem, awake,
			recovery_score, bedtime, wake_time
		) VALUES (
			:user_id, :day, :duration, :quality,
			:deep_sleep, :light_sleep, :rem, :awake,
			:recovery_score, :bedtime, :wake_time
		)
		ON CONFLICT (user_id, day) DO UPDATE SET
			duration = EXCLUDED.duration,
			quality = EXCLUDED.quality,
			deep_sleep = EXCLUDED.deep_sleep,
			light_sleep = EXCLUDED.light_sleep,
			rem = EXCLUDED.rem,
			awake = EXCLUDED.awake,
			recovery_score = EXCLUDED.recovery_score,
			bedtime = EXCLUDED.bedtime,
			wake_time = EXCLUDED.wake_time`

	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return r.writeError("save sleep", err)
	}
	return nil
}

// GetNutrition sums the day's meals. A day without meals yields an empty record.
func (r *PostgresRecordRepository) GetNutrition(ctx context.Context, userID, day string) (*domain.NutritionRecord, error) {
	var meals []domain.Meal
	query := `
		SELECT * FROM meals
		WHERE user_id = $1 AND day = $2
		ORDER BY eaten_at ASC`

	if err := r.db.SelectContext(ctx, &meals, query, userID, day); err != nil {
		return nil, fmt.Errorf("repository: list meals failed: %w", err)
	}

	rec := &domain.NutritionRecord{UserID: userID, Day: day, Meals: []domain.Meal{}}
	for _, m := range meals {
		rec.AppendMeal(m)
	}
	return rec, nil
}

func (r *PostgresRecordRepository) AddMeal(ctx context.Context, meal *domain.Meal) error {
	query := `
		INSERT INTO meals (
			id, user_id, day, name, type,
			calories, protein, carbs, fats, eaten_at
		) VALUES (
			:id, :user_id, :day, :name, :type,
			:calories, :protein, :carbs, :fats, :eaten_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, meal); err != nil {
		return r.writeError("add meal", err)
	}
	return nil
}

func (r *PostgresRecordRepository) GetHydration(ctx context.Context, userID, day string) (*domain.HydrationRecord, error) {
	var rec domain.HydrationRecord
	query := `SELECT * FROM hydration_logs WHERE user_id = $1 AND day = $2`

	if err := r.db.GetContext(ctx, &rec, query, userID, day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("repository: get hydration failed: %w", err)
	}
	return &rec, nil
}

func (r *PostgresRecordRepository) SaveHydration(ctx context.Context, rec *domain.HydrationRecord) error {
	query := `
		INSERT INTO hydration_logs (user_id, day, glasses, goal, ml, goal_ml, glass_size)
		VALUES (:user_id, :day, :glasses, :goal, :ml, :goal_ml, :glass_size)
		ON CONFLICT (user_id, day) DO UPDATE SET
			glasses = EXCLUDED.glasses,
			goal = EXCLUDED.goal,
			ml = EXCLUDED.ml,
			goal_ml = EXCLUDED.goal_ml,
			glass_size = EXCLUDED.glass_size`

	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return r.writeError("save hydration", err)
	}
	return nil
}

func (r *PostgresRecordRepository) writeError(op string, err error) error {
	switch pgErrorCode(err) {
	case pgCheckViolation:
		return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	case pgUniqueViolation:
		return fmt.Errorf("repository: %s: duplicate record: %w", op, err)
	}
	return fmt.Errorf("repository: %s failed: %w", op, err)
}
