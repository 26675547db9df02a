package scoring

import (
	"strings"

	"github.com/tablewise/backend/internal/business"
)

var (
	soloSeatingWords  = []string{"bar seating", "counter seating", "counter service", "communal table"}
	soloFriendlyWords = []string{"friendly", "casual", "welcoming", "relaxed"}
	dimLightingWords  = []string{"dim", "dark", "candlelit", "moody"}
	nightlifeKeys     = []string{"nightlife", "night club", "nightclub", "lounge", "dance club"}
)

// SoloSafety scores how comfortable a place is for dining alone: seating
// style, how well-trafficked it is, and atmosphere signals from the summary
// and categories.
func SoloSafety(p business.Projection) Result {
	summary := strings.ToLower(p.Summary())
	categories := categoryText(p)

	score := 70
	var reasons []string

	if containsAny(summary, soloSeatingWords) || containsAny(categories, soloSeatingWords) {
		score += 10
		reasons = append(reasons, "Bar or counter seating for solo diners")
	}

	if p.ReviewCount >= 300 {
		score += 8
		reasons = append(reasons, "Busy, well-trafficked spot")
	}

	if containsAny(summary, soloFriendlyWords) {
		score += 8
		reasons = append(reasons, "Described as casual and welcoming")
	}

	if containsAny(categories, nightlifeKeys) {
		score -= 12
		reasons = append(reasons, "Nightlife-heavy scene")
	}

	if containsAny(summary, dimLightingWords) {
		score -= 8
		reasons = append(reasons, "Dim lighting mentioned")
	}

	if p.ReviewCount >= 0 && p.ReviewCount < 25 {
		score -= 10
		reasons = append(reasons, "Few reviews to judge by")
	}

	score = clamp(score)

	label := "low"
	switch {
	case score >= 80:
		label = "high"
	case score >= 60:
		label = "medium"
	}

	return Result{Score: score, Label: label, Reasons: dedupeReasons(reasons)}
}
