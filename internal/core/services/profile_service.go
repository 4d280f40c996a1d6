package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

var ErrInvalidProfile = errors.New("invalid profile settings")

type ProfileService struct {
	repo     domain.ProfileRepository
	defaults domain.Profile
}

func NewProfileService(repo domain.ProfileRepository, defaults domain.Profile) *ProfileService {
	return &ProfileService{
		repo:     repo,
		defaults: defaults.WithDefaults(domain.DefaultProfile()),
	}
}

type UpdateProfileInput struct {
	UserID      string
	WeightKg    float64
	HeightCm    float64
	Age         int
	Gender      string
	StepGoal    int
	SleepGoal   float64
	WaterGoal   int
	CalorieGoal int
}

// Get returns the user's settings, falling back to the configured defaults
// for anything not set.
func (s *ProfileService) Get(ctx context.Context, userID string) (domain.Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			out := s.defaults
			out.UserID = userID
			return out, nil
		}
		return domain.Profile{}, err
	}
	return p.WithDefaults(s.defaults), nil
}

func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domain.ErrUnauthorized
	}
	if input.WeightKg < 0 || input.HeightCm < 0 || input.Age < 0 ||
		input.StepGoal < 0 || input.SleepGoal < 0 || input.SleepGoal > 24 ||
		input.WaterGoal < 0 || input.CalorieGoal < 0 {
		return nil, ErrInvalidProfile
	}

	current, err := s.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	updated := domain.Profile{
		UserID:        input.UserID,
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		Age:           input.Age,
		Gender:        strings.TrimSpace(input.Gender),
		StepGoal:      input.StepGoal,
		SleepGoal:     input.SleepGoal,
		WaterGoal:     input.WaterGoal,
		CalorieGoal:   input.CalorieGoal,
		CurrentStreak: current.CurrentStreak,
		LongestStreak: current.LongestStreak,
	}
	updated = updated.WithDefaults(current)
	if updated.Age == 0 {
		updated.Age = current.Age
	}
	if updated.Gender == "" {
		updated.Gender = current.Gender
	}

	if err := s.repo.Upsert(ctx, &updated); err != nil {
		return nil, fmt.Errorf("profile service: failed to save profile: %w", err)
	}
	return &updated, nil
}
