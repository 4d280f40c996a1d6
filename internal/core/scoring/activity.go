package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

const (
	DefaultMET   = 5.0
	DefaultLabel = "Activity"

	activityCalorieFactor = 1.2
	cyclingKmPerMinute    = 0.4
	footKmPerMinute       = 0.08
)

type activityInfo struct {
	met   float64
	label string
}

var metTable = map[string]activityInfo{
	domain.ActivityWalking: {met: 3.5, label: "Walking"},
	domain.ActivityRunning: {met: 8.0, label: "Running"},
	domain.ActivityCycling: {met: 6.0, label: "Cycling"},
	domain.ActivityWorkout: {met: 7.0, label: "Workout"},
}

// ActivityMET returns the metabolic factor and display label for an activity type.
func ActivityMET(activityType string) (float64, string) {
	info, ok := metTable[strings.ToLower(strings.TrimSpace(activityType))]
	if !ok {
		return DefaultMET, DefaultLabel
	}
	return info.met, info.label
}

func ActivityCalories(activityType string, minutes int) int {
	if minutes <= 0 {
		return 0
	}
	met, _ := ActivityMET(activityType)
	return int(math.Round(float64(minutes) * met * activityCalorieFactor))
}

// ActivityDistance is in kilometres with one decimal.
func ActivityDistance(activityType string, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	perMinute := footKmPerMinute
	if strings.ToLower(strings.TrimSpace(activityType)) == domain.ActivityCycling {
		perMinute = cyclingKmPerMinute
	}
	return round1(float64(minutes) * perMinute)
}

// DurationMinutes rounds elapsed seconds to whole minutes, halves rounding up.
func DurationMinutes(elapsedSeconds int) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	return int(math.Round(float64(elapsedSeconds) / 60))
}

// FormatElapsed renders a timer as MM:SS, or H:MM:SS past one hour.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
