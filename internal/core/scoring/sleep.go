package scoring

import (
	"math"
	"strconv"
	"strings"
)

const (
	QualityPoor  = "poor"
	QualityFair  = "fair"
	QualityGood  = "good"
	QualityGreat = "great"

	DefaultSleepGoal = 8.0
)

var qualityChoices = map[string]int{
	QualityPoor:  40,
	QualityFair:  60,
	QualityGood:  75,
	QualityGreat: 90,
}

// QualityFromChoice maps the manual log choice to a 0-100 quality. Unknown choices count as fair.
func QualityFromChoice(choice string) int {
	if q, ok := qualityChoices[strings.ToLower(strings.TrimSpace(choice))]; ok {
		return q
	}
	return qualityChoices[QualityFair]
}

// RecoveryScore is monotonic non-decreasing in quality and stays within [0,100].
func RecoveryScore(quality int) int {
	if quality <= 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(quality)*0.9 + 10)))
}

// SleepDuration returns the hours between bedtime and wake time, both HH:MM.
// A wake time earlier than bedtime is taken to be on the next day.
func SleepDuration(bedtime, wakeTime string) (float64, bool) {
	bed, ok := minutesOfDay(bedtime)
	if !ok {
		return 0, false
	}
	wake, ok := minutesOfDay(wakeTime)
	if !ok {
		return 0, false
	}
	diff := wake - bed
	if diff < 0 {
		diff += 24 * 60
	}
	return round1(float64(diff) / 60), true
}

// SleepStages splits a duration into deep, light, rem and awake hours.
func SleepStages(duration float64) (deep, light, rem, awake float64) {
	if duration <= 0 {
		return 0, 0, 0, 0
	}
	return round1(duration * 0.20), round1(duration * 0.50), round1(duration * 0.25), round1(duration * 0.05)
}

func minutesOfDay(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
