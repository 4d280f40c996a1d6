package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

const restoreTimeout = 5 * time.Second

// SnapshotStoreFactory returns the snapshot store owned by one user's workout manager.
type SnapshotStoreFactory func(userID string) domain.SnapshotStore

// WorkoutRegistry holds exactly one WorkoutService per user for the lifetime
// of the process. Managers are restored from their snapshot on first use.
type WorkoutRegistry struct {
	stores     SnapshotStoreFactory
	activities domain.ActivityStore
	clock      clock.Clock
	scheduler  clock.Scheduler

	mu       sync.Mutex
	managers map[string]*WorkoutService
}

func NewWorkoutRegistry(stores SnapshotStoreFactory, activities domain.ActivityStore, clk clock.Clock, scheduler clock.Scheduler) *WorkoutRegistry {
	return &WorkoutRegistry{
		stores:     stores,
		activities: activities,
		clock:      clk,
		scheduler:  scheduler,
		managers:   make(map[string]*WorkoutService),
	}
}

// For returns the user's manager, restoring it on first use. A manager whose
// snapshot could not be loaded retries the load on every call until it
// succeeds. Restores outlive the caller's cancellation so a dropped request
// cannot leave a manager unloaded.
func (r *WorkoutRegistry) For(ctx context.Context, userID string) *WorkoutService {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.managers[userID]
	if ok && m.Loaded() {
		return m
	}
	if !ok {
		m = NewWorkoutService(userID, r.stores(userID), r.activities, r.clock, r.scheduler)
		r.managers[userID] = m
	}

	restoreCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	defer cancel()
	if err := m.Restore(restoreCtx); err != nil {
		log.Printf("[WORKOUT] Restore for user %s degraded: %v", userID, err)
	}
	return m
}

// Close halts every tick. Snapshots are left in place for the next start.
func (r *WorkoutRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.managers {
		m.Close()
	}
}
