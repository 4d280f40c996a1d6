package services

import (
	"context"
	"errors"
	"time"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/scoring"
)

const (
	trendWindowDays = 7
	weekDays        = 7
	MaxHistoryDays  = 90
)

// ScoreService recomputes scores from stored records on every call.
type ScoreService struct {
	records  domain.DailyRecordRepository
	profiles *ProfileService
	logs     *LogService
}

func NewScoreService(records domain.DailyRecordRepository, profiles *ProfileService, logs *LogService) *ScoreService {
	return &ScoreService{
		records:  records,
		profiles: profiles,
		logs:     logs,
	}
}

func (s *ScoreService) Dashboard(ctx context.Context, userID string, day time.Time) (*domain.Dashboard, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	scores, today, err := s.series(ctx, userID, profile, day, trendWindowDays+1)
	if err != nil {
		return nil, err
	}

	history := make([]int, 0, len(scores))
	for _, sc := range scores {
		history = append(history, sc.GrowthIndex)
	}

	growth := today.result
	bmi := scoring.BMI(profile.WeightKg, profile.HeightCm)

	dash := &domain.Dashboard{
		Day:    today.records.Day,
		Growth: growth,
		Badge:  scoring.Badge(growth.GrowthIndex),
		Trend:  scoring.Trend(history),
		BMI: domain.BMIResult{
			BMI:      bmi,
			Category: scoring.BMICategory(bmi),
		},
		Steps:     today.records.Steps,
		Sleep:     today.records.Sleep,
		Nutrition: today.records.Nutrition,
		Hydration: today.records.Hydration,
	}
	if today.records.Sleep != nil {
		badge := scoring.Badge(today.records.Sleep.RecoveryScore)
		dash.Recovery = &badge
	}
	return dash, nil
}

// History returns the growth index of each day in the window ending at end.
func (s *ScoreService) History(ctx context.Context, userID string, end time.Time, days int) ([]domain.DailyScore, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	scores, _, err := s.series(ctx, userID, profile, end, days)
	return scores, err
}

func (s *ScoreService) Weekly(ctx context.Context, userID string, end time.Time) (*domain.WeeklySummary, error) {
	endDay := end.UTC().Truncate(24 * time.Hour)
	startDay := endDay.AddDate(0, 0, -(weekDays - 1))

	steps, err := s.records.ListSteps(ctx, userID, startDay, endDay)
	if err != nil {
		return nil, err
	}

	summary := scoring.WeeklySummary(steps)
	summary.StartDate = domain.DayKey(startDay)
	summary.EndDate = domain.DayKey(endDay)
	return &summary, nil
}

func (s *ScoreService) BMI(ctx context.Context, userID string) (domain.BMIResult, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return domain.BMIResult{}, err
	}
	bmi := scoring.BMI(profile.WeightKg, profile.HeightCm)
	return domain.BMIResult{BMI: bmi, Category: scoring.BMICategory(bmi)}, nil
}

type dayResult struct {
	records domain.DailyRecords
	result  domain.GrowthIndexResult
}

// series scores each of the days ending at end, oldest first, and also
// returns the full result of the last day.
func (s *ScoreService) series(ctx context.Context, userID string, profile domain.Profile, end time.Time, days int) ([]domain.DailyScore, dayResult, error) {
	endDay := end.UTC().Truncate(24 * time.Hour)
	firstDay := endDay.AddDate(0, 0, -(days - 1))

	steps, err := s.records.ListSteps(ctx, userID, firstDay.AddDate(0, 0, -(weekDays-1)), endDay)
	if err != nil {
		return nil, dayResult{}, err
	}
	stepsByDay := make(map[string]domain.DailyStepRecord, len(steps))
	for _, rec := range steps {
		if rec.Goal <= 0 {
			rec.Goal = profile.StepGoal
		}
		stepsByDay[rec.Day] = rec
	}

	scores := make([]domain.DailyScore, 0, days)
	var last dayResult

	for d := firstDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		recs, err := s.loadDay(ctx, userID, d, stepsByDay)
		if err != nil {
			return nil, dayResult{}, err
		}

		var week []domain.DailyStepRecord
		for i := 1; i < weekDays; i++ {
			if rec, ok := stepsByDay[domain.DayKey(d.AddDate(0, 0, -i))]; ok {
				week = append(week, rec)
			}
		}

		res := scoring.GrowthIndex(scoring.GrowthInputs{
			Steps:     recs.Steps,
			Week:      week,
			Sleep:     recs.Sleep,
			SleepGoal: profile.SleepGoal,
			Nutrition: recs.Nutrition,
			Hydration: recs.Hydration,
		})
		scores = append(scores, domain.DailyScore{Day: recs.Day, GrowthIndex: res.GrowthIndex})
		last = dayResult{records: recs, result: res}
	}

	return scores, last, nil
}

func (s *ScoreService) loadDay(ctx context.Context, userID string, day time.Time, stepsByDay map[string]domain.DailyStepRecord) (domain.DailyRecords, error) {
	key := domain.DayKey(day)
	recs := domain.DailyRecords{Day: key}

	if rec, ok := stepsByDay[key]; ok {
		recs.Steps = &rec
	}

	sleep, err := s.records.GetSleep(ctx, userID, key)
	switch {
	case err == nil:
		recs.Sleep = sleep
	case !errors.Is(err, domain.ErrRecordNotFound):
		return recs, err
	}

	if recs.Nutrition, err = s.logs.Nutrition(ctx, userID, key); err != nil {
		return recs, err
	}
	if recs.Hydration, err = s.logs.Hydration(ctx, userID, key); err != nil {
		return recs, err
	}
	return recs, nil
}
