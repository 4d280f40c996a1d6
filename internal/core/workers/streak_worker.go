package workers

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

const streakLookbackDays = 365

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	UpdateStreaks(ctx context.Context, userID string, current, longest int) error
}

type StepRepository interface {
	ListSteps(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyStepRecord, error)
}

type StreakJob struct {
	UserID string
}

// StreakWorker recomputes step-goal streaks in the background after step writes.
type StreakWorker struct {
	profileRepo ProfileRepository
	stepRepo    StepRepository
	clock       clock.Clock
	jobs        chan StreakJob
}

func NewStreakWorker(pRepo ProfileRepository, sRepo StepRepository, clk clock.Clock) *StreakWorker {
	return &StreakWorker{
		profileRepo: pRepo,
		stepRepo:    sRepo,
		clock:       clk,
		jobs:        make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userID string) {
	if w == nil {
		return
	}
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		log.Printf("Streak Worker queue full! Dropping job for user %s", userID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	today := w.clock.Now().UTC().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -streakLookbackDays)

	records, err := w.stepRepo.ListSteps(ctx, job.UserID, from, today)
	if err != nil {
		log.Printf("Worker Error fetching steps for %s: %v", job.UserID, err)
		return
	}

	current, longest := calculateStreaks(records, today)

	profile, err := w.profileRepo.GetByUserID(ctx, job.UserID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		p := domain.DefaultProfile()
		p.UserID = job.UserID
		p.UpdateStreak(current, longest)
		if err := w.profileRepo.Upsert(ctx, &p); err != nil {
			log.Printf("Worker Failed to create profile for %s: %v", job.UserID, err)
		}
		return
	}
	if err != nil {
		log.Printf("Worker Error fetching profile %s: %v", job.UserID, err)
		return
	}

	if profile.CurrentStreak != current || profile.LongestStreak != longest {
		if err := w.profileRepo.UpdateStreaks(ctx, job.UserID, current, longest); err != nil {
			log.Printf("Worker Failed to update streak for %s: %v", job.UserID, err)
		} else {
			log.Printf("Streak updated for %s: Current=%d, Longest=%d", job.UserID, current, longest)
		}
	}
}

// calculateStreaks counts consecutive days on which the step goal was met.
// The current streak survives until the end of the day after the last hit.
func calculateStreaks(records []domain.DailyStepRecord, today time.Time) (int, int) {
	uniqueDays := make(map[string]bool)
	var sortedDates []time.Time

	for _, r := range records {
		if r.Goal <= 0 || r.Count < r.Goal {
			continue
		}
		if !uniqueDays[r.Day] {
			t, err := time.Parse(domain.DayLayout, r.Day)
			if err != nil {
				continue
			}
			uniqueDays[r.Day] = true
			sortedDates = append(sortedDates, t)
		}
	}

	if len(sortedDates) == 0 {
		return 0, 0
	}

	sort.Slice(sortedDates, func(i, j int) bool {
		return sortedDates[i].After(sortedDates[j])
	})

	currentStreak := 0
	diff := today.Sub(sortedDates[0]).Hours() / 24

	if diff <= 1 {
		currentStreak = 1
		for i := 0; i < len(sortedDates)-1; i++ {
			if sortedDates[i].Sub(sortedDates[i+1]).Hours() == 24 {
				currentStreak++
			} else {
				break
			}
		}
	}

	longestStreak := 0
	tempStreak := 1

	for i := 0; i < len(sortedDates)-1; i++ {
		if sortedDates[i].Sub(sortedDates[i+1]).Hours() == 24 {
			tempStreak++
		} else {
			if tempStreak > longestStreak {
				longestStreak = tempStreak
			}
			tempStreak = 1
		}
	}
	if tempStreak > longestStreak {
		longestStreak = tempStreak
	}

	return currentStreak, longestStreak
}
