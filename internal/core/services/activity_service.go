package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/scoring"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

// ActivityService is the activity store that finished workouts and manual
// entries are handed to.
type ActivityService struct {
	repo  domain.ActivityRepository
	clock clock.Clock
}

func NewActivityService(repo domain.ActivityRepository, clk clock.Clock) *ActivityService {
	return &ActivityService{
		repo:  repo,
		clock: clk,
	}
}

var _ domain.ActivityStore = (*ActivityService)(nil)

type LogActivityInput struct {
	UserID  string
	Type    string
	Minutes int
	EndedAt time.Time
}

func (s *ActivityService) AddActivity(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = s.clock.Now()
	}
	if err := activity.Validate(); err != nil {
		return err
	}
	return s.repo.AddActivity(ctx, activity)
}

// LogManual records an activity entered by hand, using the same calorie and
// distance conventions as a timed workout.
func (s *ActivityService) LogManual(ctx context.Context, input LogActivityInput) (*domain.Activity, error) {
	activityType := strings.ToLower(strings.TrimSpace(input.Type))
	if activityType == "" {
		activityType = domain.ActivityWalking
	}

	end := input.EndedAt
	if end.IsZero() {
		end = s.clock.Now()
	}
	_, label := scoring.ActivityMET(activityType)

	activity := &domain.Activity{
		UserID:    input.UserID,
		Type:      activityType,
		Name:      label,
		Duration:  input.Minutes,
		Calories:  scoring.ActivityCalories(activityType, input.Minutes),
		Distance:  scoring.ActivityDistance(activityType, input.Minutes),
		Day:       domain.DayKey(end),
		StartTime: end.Add(-time.Duration(input.Minutes) * time.Minute),
		EndTime:   end,
		Source:    domain.SourceManual,
	}

	if err := s.AddActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) List(ctx context.Context, userID string, from, to time.Time) ([]*domain.Activity, error) {
	return s.repo.ListByUserID(ctx, userID, from, to)
}

func (s *ActivityService) Delete(ctx context.Context, id, userID string) error {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if activity.UserID != userID {
		return domain.ErrUnauthorized
	}
	return s.repo.Delete(ctx, id, userID)
}
