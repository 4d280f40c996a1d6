// Package clock isolates wall time and periodic scheduling so that timer
// driven services can be driven by hand in tests.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Scheduler runs fn every interval until the returned cancel func is called.
// Implementations must not start a new run of fn before the previous one returned.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// TickerScheduler drives tasks from a time.Ticker goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
