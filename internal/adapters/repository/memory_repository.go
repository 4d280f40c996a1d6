package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

// The in-memory repositories back the API when no database is configured
// and serve as fakes in handler tests. They store copies, never the
// caller's pointers.

type InMemoryProfileRepository struct {
	store map[string]domain.Profile

	mu sync.RWMutex
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		store: make(map[string]domain.Profile),
	}
}

func (r *InMemoryProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (r *InMemoryProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.UpdatedAt = time.Now().UTC()
	r.store[p.UserID] = *p
	return nil
}

func (r *InMemoryProfileRepository) UpdateStreaks(ctx context.Context, userID string, current, longest int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.store[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.UpdateStreak(current, longest)
	r.store[userID] = p
	return nil
}

type dayKey struct {
	userID string
	day    string
}

type InMemoryRecordRepository struct {
	steps     map[dayKey]domain.DailyStepRecord
	sleep     map[dayKey]domain.SleepRecord
	meals     map[dayKey][]domain.Meal
	hydration map[dayKey]domain.HydrationRecord

	mu sync.RWMutex
}

func NewInMemoryRecordRepository() *InMemoryRecordRepository {
	return &InMemoryRecordRepository{
		steps:     make(map[dayKey]domain.DailyStepRecord),
		sleep:     make(map[dayKey]domain.SleepRecord),
		meals:     make(map[dayKey][]domain.Meal),
		hydration: make(map[dayKey]domain.HydrationRecord),
	}
}

func (r *InMemoryRecordRepository) GetSteps(ctx context.Context, userID, day string) (*domain.DailyStepRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.steps[dayKey{userID, day}]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (r *InMemoryRecordRepository) SaveSteps(ctx context.Context, rec *domain.DailyStepRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[dayKey{rec.UserID, rec.Day}] = *rec
	return nil
}

func (r *InMemoryRecordRepository) ListSteps(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyStepRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lo, hi := domain.DayKey(from), domain.DayKey(to)
	records := []domain.DailyStepRecord{}
	for k, rec := range r.steps {
		if k.userID == userID && k.day >= lo && k.day <= hi {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Day < records[j].Day
	})
	return records, nil
}

func (r *InMemoryRecordRepository) GetSleep(ctx context.Context, userID, day string) (*domain.SleepRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.sleep[dayKey{userID, day}]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (r *InMemoryRecordRepository) SaveSleep(ctx context.Context, rec *domain.SleepRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sleep[dayKey{rec.UserID, rec.Day}] = *rec
	return nil
}

func (r *InMemoryRecordRepository) GetNutrition(ctx context.Context, userID, day string) (*domain.NutritionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec := &domain.NutritionRecord{UserID: userID, Day: day, Meals: []domain.Meal{}}
	for _, m := range r.meals[dayKey{userID, day}] {
		rec.AppendMeal(m)
	}
	return rec, nil
}

func (r *InMemoryRecordRepository) AddMeal(ctx context.Context, meal *domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := dayKey{meal.UserID, meal.Day}
	r.meals[k] = append(r.meals[k], *meal)
	return nil
}

func (r *InMemoryRecordRepository) GetHydration(ctx context.Context, userID, day string) (*domain.HydrationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.hydration[dayKey{userID, day}]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (r *InMemoryRecordRepository) SaveHydration(ctx context.Context, rec *domain.HydrationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hydration[dayKey{rec.UserID, rec.Day}] = *rec
	return nil
}

type InMemoryActivityRepository struct {
	store map[string]domain.Activity

	mu sync.RWMutex
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{
		store: make(map[string]domain.Activity),
	}
}

func (r *InMemoryActivityRepository) AddActivity(ctx context.Context, a *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[a.ID]; exists {
		return domain.ErrActivityConflict
	}
	r.store[a.ID] = *a
	return nil
}

func (r *InMemoryActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.store[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &a, nil
}

func (r *InMemoryActivityRepository) ListByUserID(ctx context.Context, userID string, from, to time.Time) ([]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lo, hi := domain.DayKey(from), domain.DayKey(to)
	activities := []*domain.Activity{}
	for _, a := range r.store {
		if a.UserID == userID && a.Day >= lo && a.Day <= hi {
			clone := a
			activities = append(activities, &clone)
		}
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].EndTime.After(activities[j].EndTime)
	})
	return activities, nil
}

func (r *InMemoryActivityRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.store[id]
	if !ok || a.UserID != userID {
		return domain.ErrActivityNotFound
	}
	delete(r.store, id)
	return nil
}
