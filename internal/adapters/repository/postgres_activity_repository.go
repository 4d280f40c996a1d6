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

var _ domain.ActivityRepository = (*PostgresActivityRepository)(nil)

type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) AddActivity(ctx context.Context, a *domain.Activity) error {
	query := `
		INSERT INTO activities (
			id, user_id, type, name,
			duration, calories, distance, day,
			start_time, end_time, source, created_at
		) VALUES (
			:id, :user_id, :type, :name,
			:duration, :calories, :distance, :day,
			:start_time, :end_time, :source, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return domain.ErrActivityConflict
		case pgForeignKeyViolation:
			return errors.New("referenced user does not exist")
		case pgCheckViolation:
			return domain.ErrActivityTooShort
		}
		return fmt.Errorf("repository: insert activity failed: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	var a domain.Activity
	query := `SELECT * FROM activities WHERE id = $1`

	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("repository: get activity failed: %w", err)
	}
	return &a, nil
}

func (r *PostgresActivityRepository) ListByUserID(ctx context.Context, userID string, from, to time.Time) ([]*domain.Activity, error) {
	activities := []*domain.Activity{}
	query := `
		SELECT * FROM activities
		WHERE user_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY end_time DESC`

	if err := r.db.SelectContext(ctx, &activities, query, userID, domain.DayKey(from), domain.DayKey(to)); err != nil {
		return nil, fmt.Errorf("repository: list activities failed: %w", err)
	}
	return activities, nil
}

func (r *PostgresActivityRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("repository: delete activity failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}
