package scoring

import (
	"strings"

	"github.com/tablewise/backend/internal/business"
)

// AllergyAssessment splits rationale into warnings and positives so callers
// can render them separately; score and level follow the common shape.
type AllergyAssessment struct {
	Score     int      `json:"score"`
	Level     string   `json:"level"`
	Warnings  []string `json:"warnings"`
	Positives []string `json:"positives"`
}

// AllergySafety estimates how safely a restaurant can accommodate the
// selected allergens, from textual mentions in the summary and
// cross-contamination heuristics on the category list. It is a coarse
// signal, not medical advice: the scale deliberately stays in a band where
// only explicit accommodations reach "safe".
func AllergySafety(p business.Projection, allergies []string) AllergyAssessment {
	summary := strings.ToLower(p.Summary())
	categories := categoryText(p)

	score := 70
	var warnings, positives []string

	for _, allergy := range allergies {
		lower := strings.ToLower(allergy)

		if strings.Contains(summary, lower+"-free") || strings.Contains(summary, "no "+lower) {
			score += 10
			positives = append(positives, allergy+"-free mentioned")
		}

		if strings.Contains(summary, lower) || strings.Contains(categories, lower) {
			if !strings.Contains(summary, "free") {
				warnings = append(warnings, allergy+" present in menu")
				score -= 5
			}
		}
	}

	if hasAllergy(allergies, "Shellfish") && strings.Contains(categories, "seafood") {
		warnings = append(warnings, "Seafood restaurant - high cross-contamination risk")
		score -= 15
	}

	if hasAllergy(allergies, "Wheat/Gluten") && strings.Contains(categories, "pizza") {
		warnings = append(warnings, "Pizza place - gluten everywhere")
		score -= 10
	}

	if hasAllergy(allergies, "Peanuts") && (strings.Contains(categories, "thai") || strings.Contains(categories, "asian")) {
		warnings = append(warnings, "Asian cuisine often uses peanuts")
		score -= 10
	}

	if strings.Contains(categories, "vegan") && (hasAllergy(allergies, "Dairy") || hasAllergy(allergies, "Eggs")) {
		score += 20
		positives = append(positives, "Vegan menu available")
	}

	if strings.Contains(categories, "gluten-free") && hasAllergy(allergies, "Wheat/Gluten") {
		score += 20
		positives = append(positives, "Gluten-free options")
	}

	if p.Rating >= 4.5 {
		score += 5
	}

	score = clamp(score)

	level := "risky"
	switch {
	case score >= 80:
		level = "safe"
	case score >= 60:
		level = "caution"
	}

	return AllergyAssessment{
		Score:     score,
		Level:     level,
		Warnings:  dedupeReasons(warnings),
		Positives: dedupeReasons(positives),
	}
}

func hasAllergy(allergies []string, name string) bool {
	for _, a := range allergies {
		if a == name {
			return true
		}
	}
	return false
}
