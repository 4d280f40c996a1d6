package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/scoring"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

const (
	TickInterval = time.Second

	// Sessions shorter than this are discarded on stop.
	minRecordedSeconds = 60
)

type WorkoutListener func(domain.WorkoutSession)

type listener struct {
	fn   WorkoutListener
	seen uint64 // guarded by notifyMu
}

// WorkoutService is the start/stop timer of one in-progress workout. The
// state is written only through its methods and its own tick; every change
// is persisted before listeners are notified. Each change carries a sequence
// number and a listener never receives one older than the last it saw.
//
// Listeners must not call Start, Stop, Reset or Subscribe synchronously.
type WorkoutService struct {
	userID     string
	store      domain.SnapshotStore
	activities domain.ActivityStore
	clock      clock.Clock
	scheduler  clock.Scheduler

	mu         sync.Mutex
	state      domain.WorkoutSession
	seq        uint64
	loadErr    error
	cancelTick func()
	generation int
	listeners  map[int]*listener
	nextID     int

	notifyMu sync.Mutex
}

func NewWorkoutService(userID string, store domain.SnapshotStore, activities domain.ActivityStore, clk clock.Clock, scheduler clock.Scheduler) *WorkoutService {
	return &WorkoutService{
		userID:     userID,
		store:      store,
		activities: activities,
		clock:      clk,
		scheduler:  scheduler,
		state:      domain.IdleSession(),
		listeners:  make(map[int]*listener),
	}
}

// Restore loads the last snapshot. A running session is extrapolated by the
// wall time since it was last persisted and its tick resumes. Unreadable
// snapshots are logged and replaced by an idle session.
//
// Any other load failure leaves the service idle but unloaded: Start, Stop
// and Reset return ErrSnapshotUnavailable until a later Restore succeeds, so
// the stored session is never overwritten.
func (s *WorkoutService) Restore(ctx context.Context) error {
	snap, err := s.store.Load(ctx)

	s.mu.Lock()
	s.haltTick()
	s.state = domain.IdleSession()
	s.loadErr = nil

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNoSnapshot):
		snap = nil
	case errors.Is(err, domain.ErrCorruptSnapshot):
		log.Printf("[WORKOUT] Corrupted snapshot for user %s, starting idle: %v", s.userID, err)
		snap = nil
	default:
		log.Printf("[WORKOUT] Failed to load snapshot for user %s, writes held back: %v", s.userID, err)
		snap = nil
		s.loadErr = fmt.Errorf("%w: %v", domain.ErrSnapshotUnavailable, err)
	}

	if snap == nil || !snap.IsRunning {
		loadErr := s.loadErr
		state, seq := s.changed()
		s.mu.Unlock()
		s.notify(state, seq)
		return loadErr
	}

	s.state = snap.SessionAt(s.clock.Now())
	s.startTick()
	persistErr := s.persist(ctx)
	state, seq := s.changed()
	s.mu.Unlock()

	log.Printf("[WORKOUT] Resumed %s session for user %s at %ds", state.Type, s.userID, state.ElapsedSeconds)
	s.notify(state, seq)
	return persistErr
}

// Loaded reports whether the stored session has been read, or there was none.
func (s *WorkoutService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr == nil
}

// Start begins a session. It is a no-op while a session is already running.
func (s *WorkoutService) Start(ctx context.Context, activityType string) (domain.WorkoutSession, error) {
	s.mu.Lock()
	if err := s.loadErr; err != nil {
		state := s.copyState()
		s.mu.Unlock()
		return state, err
	}
	if s.state.IsRunning {
		state := s.copyState()
		s.mu.Unlock()
		return state, nil
	}

	activityType = strings.ToLower(strings.TrimSpace(activityType))
	if activityType == "" {
		activityType = domain.ActivityWalking
	}

	now := s.clock.Now()
	s.state = domain.WorkoutSession{
		IsRunning:      true,
		StartTime:      &now,
		Type:           activityType,
		ElapsedSeconds: 0,
	}
	s.startTick()
	err := s.persist(ctx)
	state, seq := s.changed()
	s.mu.Unlock()

	s.notify(state, seq)
	return state, err
}

// Stop finishes the running session. Sessions under a minute are discarded
// and yield a nil activity. When the activity store rejects the record the
// session keeps running so nothing is lost.
//
// A non-nil activity may come with an ErrPersistence error: the activity was
// recorded but the idle snapshot could not be written.
func (s *WorkoutService) Stop(ctx context.Context) (*domain.Activity, error) {
	s.mu.Lock()
	if err := s.loadErr; err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if !s.state.IsRunning {
		s.mu.Unlock()
		return nil, nil
	}

	var activity *domain.Activity
	if s.state.ElapsedSeconds >= minRecordedSeconds {
		if minutes := scoring.DurationMinutes(s.state.ElapsedSeconds); minutes >= 1 {
			activity = s.buildActivity(minutes)
			if err := s.activities.AddActivity(ctx, activity); err != nil {
				s.mu.Unlock()
				return nil, fmt.Errorf("workout: record activity: %w", err)
			}
		}
	}

	s.haltTick()
	s.state = domain.IdleSession()
	err := s.persist(ctx)
	state, seq := s.changed()
	s.mu.Unlock()

	if activity != nil {
		log.Printf("[WORKOUT] Recorded %s for user %s: %d min, %d kcal", activity.Name, s.userID, activity.Duration, activity.Calories)
	}
	s.notify(state, seq)
	return activity, err
}

// Reset abandons any session without recording it.
func (s *WorkoutService) Reset(ctx context.Context) error {
	s.mu.Lock()
	if err := s.loadErr; err != nil {
		s.mu.Unlock()
		return err
	}
	s.haltTick()
	s.state = domain.IdleSession()
	err := s.persist(ctx)
	state, seq := s.changed()
	s.mu.Unlock()

	s.notify(state, seq)
	return err
}

// Subscribe calls fn with the current state right away and after every change.
func (s *WorkoutService) Subscribe(fn WorkoutListener) (unsubscribe func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = &listener{fn: fn, seen: s.seq}
	state := s.copyState()
	s.mu.Unlock()

	fn(state)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *WorkoutService) State() domain.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

// Close stops the tick and keeps the persisted snapshot, so a running
// session resumes on the next Restore.
func (s *WorkoutService) Close() {
	s.mu.Lock()
	s.haltTick()
	s.mu.Unlock()
}

func (s *WorkoutService) tick(generation int) {
	s.mu.Lock()
	if !s.state.IsRunning || generation != s.generation {
		s.mu.Unlock()
		return
	}
	s.state.ElapsedSeconds++

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := s.persist(ctx); err != nil {
		log.Printf("[WORKOUT] Tick persist failed for user %s: %v", s.userID, err)
	}
	cancel()

	state, seq := s.changed()
	s.mu.Unlock()

	s.notify(state, seq)
}

func (s *WorkoutService) buildActivity(minutes int) *domain.Activity {
	now := s.clock.Now()
	start := now.Add(-time.Duration(s.state.ElapsedSeconds) * time.Second)
	if s.state.StartTime != nil {
		start = *s.state.StartTime
	}
	_, label := scoring.ActivityMET(s.state.Type)

	return &domain.Activity{
		ID:        uuid.NewString(),
		UserID:    s.userID,
		Type:      s.state.Type,
		Name:      label,
		Duration:  minutes,
		Calories:  scoring.ActivityCalories(s.state.Type, minutes),
		Distance:  scoring.ActivityDistance(s.state.Type, minutes),
		Day:       domain.DayKey(now),
		StartTime: start,
		EndTime:   now,
		Source:    domain.SourceWorkout,
		CreatedAt: now,
	}
}

// startTick and haltTick require s.mu.
func (s *WorkoutService) startTick() {
	s.haltTick()
	s.generation++
	gen := s.generation
	s.cancelTick = s.scheduler.Every(TickInterval, func() { s.tick(gen) })
}

func (s *WorkoutService) haltTick() {
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
}

// persist requires s.mu so snapshots are written in state order.
func (s *WorkoutService) persist(ctx context.Context) error {
	snap := domain.NewSnapshot(s.state, s.clock.Now())
	if err := s.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// changed stamps the current state with the next sequence number. It
// requires s.mu.
func (s *WorkoutService) changed() (domain.WorkoutSession, uint64) {
	s.seq++
	return s.copyState(), s.seq
}

// copyState requires s.mu.
func (s *WorkoutService) copyState() domain.WorkoutSession {
	out := s.state
	if s.state.StartTime != nil {
		t := *s.state.StartTime
		out.StartTime = &t
	}
	return out
}

// notify delivers state to every listener that has not yet seen seq or a
// later change. A tick that lost the race to Stop is dropped here.
func (s *WorkoutService) notify(state domain.WorkoutSession, seq uint64) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	listeners := make([]*listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		if l.seen >= seq {
			continue
		}
		l.seen = seq
		l.fn(copySession(state))
	}
}

func copySession(in domain.WorkoutSession) domain.WorkoutSession {
	if in.StartTime != nil {
		t := *in.StartTime
		in.StartTime = &t
	}
	return in
}
