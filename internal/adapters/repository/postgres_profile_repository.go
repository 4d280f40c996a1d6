package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/niteshnanu12/vybe/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ domain.ProfileRepository = (*PostgresProfileRepository)(nil)

type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &p, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("repository: get profile failed: %w", err)
	}
	return &p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO profiles (
			user_id, weight_kg, height_cm, age, gender,
			step_goal, sleep_goal, water_goal, calorie_goal,
			current_streak, longest_streak, updated_at
		) VALUES (
			:user_id, :weight_kg, :height_cm, :age, :gender,
			:step_goal, :sleep_goal, :water_goal, :calorie_goal,
			:current_streak, :longest_streak, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			step_goal = EXCLUDED.step_goal,
			sleep_goal = EXCLUDED.sleep_goal,
			water_goal = EXCLUDED.water_goal,
			calorie_goal = EXCLUDED.calorie_goal,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
		}
		return fmt.Errorf("repository: upsert profile failed: %w", err)
	}
	return nil
}

func (r *PostgresProfileRepository) UpdateStreaks(ctx context.Context, userID string, current, longest int) error {
	query := `
		UPDATE profiles
		SET current_streak = $1, longest_streak = $2, updated_at = NOW()
		WHERE user_id = $3`

	res, err := r.db.ExecContext(ctx, query, current, longest, userID)
	if err != nil {
		return fmt.Errorf("repository: update streaks failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
