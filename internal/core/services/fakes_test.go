package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

type MockProfileRepo struct {
	mu            sync.Mutex
	store         map[string]domain.Profile
	simulateError error
}

func NewMockProfileRepo() *MockProfileRepo {
	return &MockProfileRepo{store: make(map[string]domain.Profile)}
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	p, ok := m.store[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (m *MockProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.store[p.UserID] = *p
	return nil
}

func (m *MockProfileRepo) UpdateStreaks(ctx context.Context, userID string, current, longest int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.CurrentStreak = current
	p.LongestStreak = longest
	m.store[userID] = p
	return nil
}

type MockRecordRepo struct {
	mu            sync.Mutex
	steps         map[string]domain.DailyStepRecord
	sleep         map[string]domain.SleepRecord
	meals         map[string][]domain.Meal
	hydration     map[string]domain.HydrationRecord
	simulateError error
}

func NewMockRecordRepo() *MockRecordRepo {
	return &MockRecordRepo{
		steps:     make(map[string]domain.DailyStepRecord),
		sleep:     make(map[string]domain.SleepRecord),
		meals:     make(map[string][]domain.Meal),
		hydration: make(map[string]domain.HydrationRecord),
	}
}

func recordKey(userID, day string) string {
	return userID + "|" + day
}

func (m *MockRecordRepo) GetSteps(ctx context.Context, userID, day string) (*domain.DailyStepRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	rec, ok := m.steps[recordKey(userID, day)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (m *MockRecordRepo) SaveSteps(ctx context.Context, rec *domain.DailyStepRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.steps[recordKey(rec.UserID, rec.Day)] = *rec
	return nil
}

func (m *MockRecordRepo) ListSteps(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyStepRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	lo, hi := domain.DayKey(from), domain.DayKey(to)
	var out []domain.DailyStepRecord
	for _, rec := range m.steps {
		if rec.UserID == userID && rec.Day >= lo && rec.Day <= hi {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (m *MockRecordRepo) GetSleep(ctx context.Context, userID, day string) (*domain.SleepRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	rec, ok := m.sleep[recordKey(userID, day)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (m *MockRecordRepo) SaveSleep(ctx context.Context, rec *domain.SleepRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.sleep[recordKey(rec.UserID, rec.Day)] = *rec
	return nil
}

func (m *MockRecordRepo) GetNutrition(ctx context.Context, userID, day string) (*domain.NutritionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	meals, ok := m.meals[recordKey(userID, day)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	rec := &domain.NutritionRecord{UserID: userID, Day: day}
	for _, meal := range meals {
		rec.AppendMeal(meal)
	}
	return rec, nil
}

func (m *MockRecordRepo) AddMeal(ctx context.Context, meal *domain.Meal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	key := recordKey(meal.UserID, meal.Day)
	m.meals[key] = append(m.meals[key], *meal)
	return nil
}

func (m *MockRecordRepo) GetHydration(ctx context.Context, userID, day string) (*domain.HydrationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	rec, ok := m.hydration[recordKey(userID, day)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (m *MockRecordRepo) SaveHydration(ctx context.Context, rec *domain.HydrationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.hydration[recordKey(rec.UserID, rec.Day)] = *rec
	return nil
}

type MockActivityRepo struct {
	mu            sync.Mutex
	store         map[string]domain.Activity
	simulateError error
}

func NewMockActivityRepo() *MockActivityRepo {
	return &MockActivityRepo{store: make(map[string]domain.Activity)}
}

func (m *MockActivityRepo) AddActivity(ctx context.Context, a *domain.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, exists := m.store[a.ID]; exists {
		return domain.ErrActivityConflict
	}
	m.store[a.ID] = *a
	return nil
}

func (m *MockActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &a, nil
}

func (m *MockActivityRepo) ListByUserID(ctx context.Context, userID string, from, to time.Time) ([]*domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lo, hi := domain.DayKey(from), domain.DayKey(to)
	var out []*domain.Activity
	for _, a := range m.store {
		if a.UserID == userID && a.Day >= lo && a.Day <= hi {
			clone := a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndTime.After(out[j].EndTime) })
	return out, nil
}

func (m *MockActivityRepo) Delete(ctx context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok || a.UserID != userID {
		return domain.ErrActivityNotFound
	}
	delete(m.store, id)
	return nil
}
