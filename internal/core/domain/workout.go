package domain

import (
	"errors"
	"time"
)

var (
	ErrPersistence     = errors.New("workout snapshot could not be persisted")
	ErrNoSnapshot      = errors.New("no workout snapshot stored")
	ErrCorruptSnapshot = errors.New("workout snapshot is unreadable")

	// ErrSnapshotUnavailable means the stored session could not be read yet,
	// so it must not be overwritten.
	ErrSnapshotUnavailable = errors.New("workout snapshot is temporarily unavailable")
)

// WorkoutSession is the live state of the in-progress workout timer.
type WorkoutSession struct {
	IsRunning      bool       `json:"isRunning"`
	StartTime      *time.Time `json:"startTime"`
	Type           string     `json:"type"`
	ElapsedSeconds int        `json:"elapsedSeconds"`
}

func IdleSession() WorkoutSession {
	return WorkoutSession{Type: ActivityWalking}
}

// SessionSnapshot is the durable shape of the workout timer. Times are epoch milliseconds.
type SessionSnapshot struct {
	IsRunning      bool   `json:"isRunning"`
	StartTime      *int64 `json:"startTime"`
	Type           string `json:"type"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	LastUpdated    int64  `json:"lastUpdated"`
}

func NewSnapshot(s WorkoutSession, now time.Time) SessionSnapshot {
	snap := SessionSnapshot{
		IsRunning:      s.IsRunning,
		Type:           s.Type,
		ElapsedSeconds: s.ElapsedSeconds,
		LastUpdated:    now.UnixMilli(),
	}
	if s.StartTime != nil {
		ms := s.StartTime.UnixMilli()
		snap.StartTime = &ms
	}
	return snap
}

func (s SessionSnapshot) Session() WorkoutSession {
	out := WorkoutSession{
		IsRunning:      s.IsRunning,
		Type:           s.Type,
		ElapsedSeconds: s.ElapsedSeconds,
	}
	if out.Type == "" {
		out.Type = ActivityWalking
	}
	if out.ElapsedSeconds < 0 {
		out.ElapsedSeconds = 0
	}
	if s.StartTime != nil {
		t := time.UnixMilli(*s.StartTime).UTC()
		out.StartTime = &t
	}
	return out
}

func (s SessionSnapshot) LastUpdatedAt() time.Time {
	return time.UnixMilli(s.LastUpdated).UTC()
}

// SessionAt is the snapshot as of now. A running session gains the wall time
// that passed since it was persisted.
func (s SessionSnapshot) SessionAt(now time.Time) WorkoutSession {
	out := s.Session()
	if !out.IsRunning {
		return out
	}
	if gap := now.Sub(s.LastUpdatedAt()); gap > 0 {
		out.ElapsedSeconds += int(gap / time.Second)
	}
	if out.StartTime == nil {
		start := now.Add(-time.Duration(out.ElapsedSeconds) * time.Second)
		out.StartTime = &start
	}
	return out
}
