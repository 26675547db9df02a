package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tablewise/backend/internal/business"
)

func TestTierPriceFromPriceRange(t *testing.T) {
	for rangeVal, want := range map[int]int{1: 15, 2: 25, 3: 40, 4: 60} {
		p := business.Projection{PriceRange: rangeVal}
		assert.Equal(t, want, EstimateMenuPrice(p, nil), "price range %d", rangeVal)
	}
}

func TestTierPriceFromDollarSigns(t *testing.T) {
	for tier, want := range map[string]int{"$": 15, "$$": 25, "$$$": 40, "$$$$": 60} {
		p := business.Projection{PriceTier: tier}
		assert.Equal(t, want, EstimateMenuPrice(p, nil), "tier %s", tier)
	}
}

func TestTierPriceIgnoresVariance(t *testing.T) {
	p := business.Projection{PriceTier: "$$"}

	low := EstimateMenuPrice(p, func() float64 { return 0.0 })
	high := EstimateMenuPrice(p, func() float64 { return 0.999 })

	assert.Equal(t, low, high)
	assert.Equal(t, 25, low)
}

func TestEstimateUpscaleKeywordBand(t *testing.T) {
	p := business.Projection{
		Name:   "The Prime Room",
		Rating: 4.0,
	}

	// 55 * 1.05 rating adjustment, neutral variance
	assert.Equal(t, 58, EstimateMenuPrice(p, nil))
}

func TestEstimateCasualKeywordBand(t *testing.T) {
	p := business.Projection{
		Name:   "Tony's Pizza",
		Rating: 3.8,
	}

	// 18 with no rating adjustment, neutral variance
	assert.Equal(t, 18, EstimateMenuPrice(p, nil))
}

func TestEstimateDefaultBandWithLowRating(t *testing.T) {
	p := business.Projection{Name: "Corner Spot", Rating: 3.0}

	// 25 * 0.85 = 21.25, neutral variance
	assert.Equal(t, 21, EstimateMenuPrice(p, nil))
}

func TestEstimateVarianceBounds(t *testing.T) {
	p := business.Projection{Name: "Corner Spot", Rating: 3.8}

	low := EstimateMenuPrice(p, func() float64 { return 0.0 })
	high := EstimateMenuPrice(p, func() float64 { return 0.999 })

	// 25 * [0.85, 1.15)
	assert.Equal(t, 21, low)
	assert.Equal(t, 29, high)
}

func TestEstimateDeterministicWithSeededSource(t *testing.T) {
	p := business.Projection{Name: "Corner Spot", Rating: 4.6}
	fixed := func() float64 { return 0.25 }

	first := EstimateMenuPrice(p, fixed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, EstimateMenuPrice(p, fixed))
	}
}

func TestTruePriceExactComponents(t *testing.T) {
	b := TruePrice(25)

	assert.Equal(t, 25.0, b.Menu)
	assert.Equal(t, 2.0, b.Tax)
	assert.Equal(t, 5.0, b.Tip)
	assert.Equal(t, 5.0, b.Parking)
	assert.Equal(t, 37.0, b.Total)
}

func TestTruePriceRoundsToCents(t *testing.T) {
	b := TruePrice(33)

	assert.Equal(t, 2.64, b.Tax)
	assert.Equal(t, 6.6, b.Tip)
	assert.Equal(t, 47.24, b.Total)
}

func TestWithinBudget(t *testing.T) {
	b := TruePrice(25) // 37.00 all-in

	assert.True(t, b.WithinBudget(37))
	assert.True(t, b.WithinBudget(40))
	assert.False(t, b.WithinBudget(36.99))
}
