package scoring

import (
	"math"
	"strings"

	"github.com/tablewise/backend/internal/business"
)

const (
	defaultMenuPrice = 25
	taxRate          = 0.08
	tipRate          = 0.20
	parkingFlat      = 5.0
)

// PriceBreakdown is the all-in cost of one person's meal.
type PriceBreakdown struct {
	Menu    float64 `json:"menu"`
	Tax     float64 `json:"tax"`
	Tip     float64 `json:"tip"`
	Parking float64 `json:"parking"`
	Total   float64 `json:"total"`
}

// EstimateMenuPrice guesses a per-person menu price. An explicit price tier
// wins; otherwise name/category/summary keywords pick a band, adjusted by
// rating and an anti-clustering variance drawn from randFloat in [0,1).
// Passing nil for randFloat uses the neutral midpoint, which keeps the
// heuristic path deterministic.
func EstimateMenuPrice(p business.Projection, randFloat func() float64) int {
	if price, ok := tierPrice(p); ok {
		return price
	}

	name := strings.ToLower(p.Name)
	categories := categoryText(p)
	summary := strings.ToLower(p.Summary())

	estimated := float64(defaultMenuPrice)
	switch {
	case strings.Contains(name, "steakhouse") || strings.Contains(name, "prime") ||
		strings.Contains(categories, "steakhouse") || strings.Contains(categories, "fine dining") ||
		strings.Contains(summary, "upscale") || strings.Contains(summary, "elegant"):
		estimated = 55
	case strings.Contains(name, "trattoria") || strings.Contains(name, "bistro") ||
		strings.Contains(categories, "wine bar") || strings.Contains(categories, "seafood") ||
		strings.Contains(summary, "fresh") || strings.Contains(summary, "artisan"):
		estimated = 35
	case strings.Contains(name, "pizza") || strings.Contains(name, "taco") ||
		strings.Contains(categories, "fast food") || strings.Contains(categories, "cafe") ||
		strings.Contains(categories, "pizza"):
		estimated = 18
	case strings.Contains(categories, "italian") || strings.Contains(categories, "american") ||
		strings.Contains(categories, "mexican") || strings.Contains(categories, "asian"):
		estimated = 28
	}

	switch {
	case p.Rating >= 4.5:
		estimated *= 1.15
	case p.Rating >= 4.0:
		estimated *= 1.05
	case p.Rating < 3.5:
		estimated *= 0.85
	}

	if randFloat == nil {
		randFloat = func() float64 { return 0.5 }
	}
	variance := 0.85 + randFloat()*0.3
	return int(math.Round(estimated * variance))
}

func tierPrice(p business.Projection) (int, bool) {
	if p.PriceRange >= 1 && p.PriceRange <= 4 {
		return [...]int{15, 25, 40, 60}[p.PriceRange-1], true
	}
	switch p.PriceTier {
	case "$":
		return 15, true
	case "$$":
		return 25, true
	case "$$$":
		return 40, true
	case "$$$$":
		return 60, true
	}
	return 0, false
}

// TruePrice expands a menu price into the real cost: 8% tax, 20% tip, and a
// flat $5 parking assumption. Components are rounded to cents so totals
// compare exactly.
func TruePrice(menuPrice float64) PriceBreakdown {
	tax := roundCents(menuPrice * taxRate)
	tip := roundCents(menuPrice * tipRate)
	return PriceBreakdown{
		Menu:    menuPrice,
		Tax:     tax,
		Tip:     tip,
		Parking: parkingFlat,
		Total:   roundCents(menuPrice + tax + tip + parkingFlat),
	}
}

// WithinBudget reports whether the all-in cost fits the per-person budget.
func (b PriceBreakdown) WithinBudget(budget float64) bool {
	return b.Total <= budget
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
