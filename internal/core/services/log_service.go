package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/scoring"
	"github.com/niteshnanu12/vybe/internal/core/workers"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

const (
	defaultProteinGoal = 150
	defaultCarbsGoal   = 250
	defaultFatsGoal    = 65
)

// LogService records the current day's steps, sleep, meals and hydration.
// Days other than today are read-only.
type LogService struct {
	records  domain.DailyRecordRepository
	profiles *ProfileService
	clock    clock.Clock
	worker   *workers.StreakWorker
}

func NewLogService(records domain.DailyRecordRepository, profiles *ProfileService, clk clock.Clock, worker *workers.StreakWorker) *LogService {
	return &LogService{
		records:  records,
		profiles: profiles,
		clock:    clk,
		worker:   worker,
	}
}

type LogSleepInput struct {
	UserID        string
	Bedtime       string
	WakeTime      string
	Duration      float64
	Quality       int
	QualityChoice string
}

type AddMealInput struct {
	UserID   string
	Day      string
	Name     string
	Type     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

func (s *LogService) today() string {
	return domain.DayKey(s.clock.Now())
}

// RecordSteps stores today's step count with derived calories and distance.
func (s *LogService) RecordSteps(ctx context.Context, userID string, count int) (*domain.DailyStepRecord, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: step count cannot be negative", domain.ErrInvalidRecord)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := &domain.DailyStepRecord{
		UserID:   userID,
		Day:      s.today(),
		Count:    count,
		Goal:     profile.StepGoal,
		Calories: float64(scoring.CaloriesFromSteps(count, profile.WeightKg, scoring.DefaultStepMET)),
		Distance: scoring.Distance(count, profile.HeightCm),
	}
	if err := s.records.SaveSteps(ctx, rec); err != nil {
		return nil, err
	}

	s.worker.Enqueue(userID)
	return rec, nil
}

// LogSleep records last night's sleep against today. The duration is taken
// from bedtime and wake time when not given; the recovery score is always derived.
func (s *LogService) LogSleep(ctx context.Context, input LogSleepInput) (*domain.SleepRecord, error) {
	if input.Bedtime != "" && !domain.ValidClock(input.Bedtime) {
		return nil, domain.ErrInvalidTime
	}
	if input.WakeTime != "" && !domain.ValidClock(input.WakeTime) {
		return nil, domain.ErrInvalidTime
	}

	duration := input.Duration
	if duration <= 0 && input.Bedtime != "" && input.WakeTime != "" {
		duration, _ = scoring.SleepDuration(input.Bedtime, input.WakeTime)
	}
	if duration <= 0 || duration > 24 {
		return nil, fmt.Errorf("%w: sleep duration must be within 0-24 hours", domain.ErrInvalidRecord)
	}

	quality := input.Quality
	if input.QualityChoice != "" {
		quality = scoring.QualityFromChoice(input.QualityChoice)
	}
	if quality < 0 || quality > 100 {
		return nil, fmt.Errorf("%w: quality must be within 0-100", domain.ErrInvalidRecord)
	}

	deep, light, rem, awake := scoring.SleepStages(duration)
	rec := &domain.SleepRecord{
		UserID:        input.UserID,
		Day:           s.today(),
		Duration:      duration,
		Quality:       quality,
		DeepSleep:     deep,
		LightSleep:    light,
		REM:           rem,
		Awake:         awake,
		RecoveryScore: scoring.RecoveryScore(quality),
		Bedtime:       input.Bedtime,
		WakeTime:      input.WakeTime,
	}
	if err := s.records.SaveSleep(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AddMeal appends a meal to today's nutrition log.
func (s *LogService) AddMeal(ctx context.Context, input AddMealInput) (*domain.NutritionRecord, error) {
	today := s.today()
	if input.Day != "" && input.Day != today {
		return nil, domain.ErrDayClosed
	}

	meal := &domain.Meal{
		ID:       uuid.NewString(),
		UserID:   input.UserID,
		Day:      today,
		Name:     strings.TrimSpace(input.Name),
		Type:     strings.ToLower(strings.TrimSpace(input.Type)),
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
		Time:     s.clock.Now(),
	}
	if err := meal.Validate(); err != nil {
		return nil, err
	}

	if err := s.records.AddMeal(ctx, meal); err != nil {
		return nil, err
	}
	return s.Nutrition(ctx, input.UserID, today)
}

// Nutrition returns a day's meals with the user's goals attached.
func (s *LogService) Nutrition(ctx context.Context, userID, day string) (*domain.NutritionRecord, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec, err := s.records.GetNutrition(ctx, userID, day)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
		rec = &domain.NutritionRecord{UserID: userID, Day: day}
	}
	if rec.Meals == nil {
		rec.Meals = []domain.Meal{}
	}
	rec.Goals = nutritionGoals(profile, rec.Goals)
	return rec, nil
}

// AdjustWater adds delta glasses (negative removes) to today's hydration.
func (s *LogService) AdjustWater(ctx context.Context, userID string, delta int) (*domain.HydrationRecord, error) {
	rec, err := s.Hydration(ctx, userID, s.today())
	if err != nil {
		return nil, err
	}

	rec.SetGlasses(rec.Glasses + delta)
	if err := s.records.SaveHydration(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *LogService) Hydration(ctx context.Context, userID, day string) (*domain.HydrationRecord, error) {
	rec, err := s.records.GetHydration(ctx, userID, day)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.NewHydrationRecord(userID, day, profile.WaterGoal, domain.DefaultGlassSizeMl), nil
}

func nutritionGoals(p domain.Profile, stored domain.MacroGoals) domain.MacroGoals {
	goals := stored
	if goals.Calories <= 0 {
		goals.Calories = float64(p.CalorieGoal)
	}
	if goals.Protein <= 0 {
		goals.Protein = defaultProteinGoal
	}
	if goals.Carbs <= 0 {
		goals.Carbs = defaultCarbsGoal
	}
	if goals.Fats <= 0 {
		goals.Fats = defaultFatsGoal
	}
	return goals
}
