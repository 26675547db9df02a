package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tablewise/backend/internal/business"
)

func TestSoloSafetyBaseline(t *testing.T) {
	res := SoloSafety(business.Projection{ReviewCount: 50})

	assert.Equal(t, 70, res.Score)
	assert.Equal(t, "medium", res.Label)
	assert.Empty(t, res.Reasons)
}

func TestSoloSafetyCounterSeatingAndTraffic(t *testing.T) {
	p := business.Projection{
		ReviewCount:  450,
		ShortSummary: strPtr("Casual ramen shop with counter seating"),
	}

	res := SoloSafety(p)

	// 70 +10 seating +8 traffic +8 friendly
	assert.Equal(t, 96, res.Score)
	assert.Equal(t, "high", res.Label)
	assert.Contains(t, res.Reasons, "Bar or counter seating for solo diners")
	assert.Contains(t, res.Reasons, "Busy, well-trafficked spot")
}

func TestSoloSafetyNightlifePenalty(t *testing.T) {
	p := business.Projection{
		ReviewCount:  100,
		Categories:   []string{"Nightlife", "Lounge"},
		ShortSummary: strPtr("dim, moody cocktail den"),
	}

	res := SoloSafety(p)

	// 70 -12 nightlife -8 dim
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, "low", res.Label)
	assert.Contains(t, res.Reasons, "Nightlife-heavy scene")
	assert.Contains(t, res.Reasons, "Dim lighting mentioned")
}

func TestSoloSafetyFewReviewsPenalty(t *testing.T) {
	res := SoloSafety(business.Projection{ReviewCount: 5})

	assert.Equal(t, 60, res.Score)
	assert.Contains(t, res.Reasons, "Few reviews to judge by")
}

func TestSoloSafetyDeterministic(t *testing.T) {
	p := business.Projection{ReviewCount: 450, ShortSummary: strPtr("casual bar seating")}

	first := SoloSafety(p)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SoloSafety(p))
	}
}
