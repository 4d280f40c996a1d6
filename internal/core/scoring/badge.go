package scoring

import "github.com/niteshnanu12/vybe/internal/core/domain"

// Colors are shared by every surface that renders a score.
const (
	ColorExcellent = "#00e676"
	ColorGood      = "#ffd740"
	ColorFair      = "#ff9100"
	ColorLow       = "#ff4757"
)

func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return ColorExcellent
	case score >= 60:
		return ColorGood
	case score >= 40:
		return ColorFair
	default:
		return ColorLow
	}
}

func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func Badge(score int) domain.ScoreBadge {
	return domain.ScoreBadge{
		Score: score,
		Color: ScoreColor(score),
		Label: ScoreLabel(score),
	}
}
