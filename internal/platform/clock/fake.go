package clock

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced Clock.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

type manualTask struct {
	id       int
	interval time.Duration
	fn       func()
}

// ManualScheduler runs scheduled tasks only when Tick is called. When a clock
// is attached, each tick also advances it by the task interval.
type ManualScheduler struct {
	mu     sync.Mutex
	clock  *FakeClock
	nextID int
	tasks  map[int]manualTask
}

func NewManualScheduler(clock *FakeClock) *ManualScheduler {
	return &ManualScheduler{
		clock: clock,
		tasks: make(map[int]manualTask),
	}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.tasks[id] = manualTask{id: id, interval: interval, fn: fn}

	return func() {
		s.mu.Lock()
		delete(s.tasks, id)
		s.mu.Unlock()
	}
}

// Tick fires every active task n times.
func (s *ManualScheduler) Tick(n int) {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		tasks := make([]manualTask, 0, len(s.tasks))
		for _, t := range s.tasks {
			tasks = append(tasks, t)
		}
		s.mu.Unlock()

		if len(tasks) == 0 {
			return
		}
		if s.clock != nil {
			s.clock.Advance(tasks[0].interval)
		}
		for _, t := range tasks {
			s.mu.Lock()
			_, active := s.tasks[t.id]
			s.mu.Unlock()
			if active {
				t.fn()
			}
		}
	}
}

func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
