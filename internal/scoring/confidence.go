package scoring

import (
	"math"
	"strings"

	"github.com/tablewise/backend/internal/business"
)

var (
	romanticWords = []string{"romantic", "date", "candle", "intimate", "cozy", "wine", "fine"}
	quietWords    = []string{"quiet", "calm", "low noise", "intimate", "cozy"}
)

// Confidence rates how likely a provider is the right answer for the user's
// request, from rating, review volume, reservation support, and keyword
// alignment between the query, the conversational summary, and preferences.
func Confidence(p business.Projection, userText, aiText string, prefs Prefs) Result {
	score := 0
	var reasons []string

	score += int(math.Round(p.Rating * 12))
	if p.Rating >= 4.7 {
		reasons = append(reasons, "High average rating")
	}

	reviews := p.ReviewCount
	if reviews < 0 {
		reviews = 0
	}
	reviewPoints := int(math.Round(float64(reviews) / 20))
	if reviewPoints > 30 {
		reviewPoints = 30
	}
	score += reviewPoints
	if reviews >= 200 {
		reasons = append(reasons, "Strong review volume")
	}

	if p.AcceptsReservations {
		score += 10
		reasons = append(reasons, "Supports Yelp reservations")
	}

	text := strings.ToLower(userText + " " + aiText)
	summary := strings.ToLower(p.Summary())

	if prefs.Vibe == "romantic" && isDiningProvider(p) {
		if containsAny(text, romanticWords) || containsAny(summary, romanticWords) {
			score += 12
			reasons = append(reasons, "Matches romantic/date-night intent")
		}
	}

	if prefs.Vibe == "quiet" {
		if containsAny(text, quietWords) || containsAny(summary, quietWords) {
			score += 8
			reasons = append(reasons, "Likely a quieter option")
		}
	}

	if prefs.Urgency == "same_day" && isHomeServiceProvider(p) {
		if strings.Contains(summary, "same-day") || strings.Contains(summary, "24/7") || strings.Contains(summary, "emergency") {
			score += 10
			reasons = append(reasons, "Mentions same-day / emergency availability")
		}
	}

	if prefs.Mode == "dining" && isDiningProvider(p) {
		score += 8
		reasons = append(reasons, "Category aligns with dining")
	}
	if prefs.Mode == "home" && isHomeServiceProvider(p) {
		score += 8
		reasons = append(reasons, "Category aligns with home service")
	}

	if prefs.Budget != "" && prefs.Budget != "any" {
		reasons = append(reasons, "Budget preference noted (verify pricing)")
	}

	score = clamp(score)

	label := "LOW"
	switch {
	case score >= 80:
		label = "HIGH"
	case score >= 60:
		label = "MEDIUM"
	}

	return Result{Score: score, Label: label, Reasons: dedupeReasons(reasons)}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
