package scoring

import (
	"math"
	"sort"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

// WeeklySummary aggregates step records. Days without a record are not counted.
func WeeklySummary(records []domain.DailyStepRecord) domain.WeeklySummary {
	sorted := make([]domain.DailyStepRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Day < sorted[j].Day
	})

	out := domain.WeeklySummary{
		Days:          len(sorted),
		DailyProgress: make([]int, 0, len(sorted)),
	}
	if len(sorted) == 0 {
		return out
	}
	out.StartDate = sorted[0].Day
	out.EndDate = sorted[len(sorted)-1].Day

	pctTotal := 0
	calories := 0.0
	distance := 0.0
	for i := range sorted {
		rec := &sorted[i]
		steps := rec.Count
		if steps < 0 {
			steps = 0
		}
		out.TotalSteps += steps
		calories += rec.Calories
		distance += rec.Distance

		pct := StepGoalPercent(rec)
		pctTotal += pct
		out.DailyProgress = append(out.DailyProgress, pct)
		if rec.Goal > 0 && steps >= rec.Goal {
			out.DaysGoalMet++
		}
	}
	out.AverageSteps = int(math.Round(float64(out.TotalSteps) / float64(len(sorted))))
	out.AverageGoalPct = int(math.Round(float64(pctTotal) / float64(len(sorted))))
	out.TotalCalories = int(math.Round(calories))
	out.TotalDistance = round2(distance)
	return out
}
