package scoring

import (
	"strings"

	"github.com/tablewise/backend/internal/business"
)

// Prefs is the explicit per-call configuration for the scoring engines.
// Engines never read ambient state; every contextual knob arrives here.
type Prefs struct {
	Mode      string `json:"mode"`       // "auto", "home", "dining"
	PartySize int    `json:"partySize"`
	Budget    string `json:"budget"`     // "any", "$", "$$", "$$$"
	Vibe      string `json:"vibe"`       // "any", "romantic", "quiet", "family", "trendy"
	Urgency   string `json:"urgency"`    // "auto", "same_day", "soon", "can_wait"
}

func DefaultPrefs() Prefs {
	return Prefs{Mode: "auto", PartySize: 2, Budget: "any", Vibe: "any", Urgency: "auto"}
}

var diningKeys = []string{"restaurant", "bar", "cafe", "bistro", "steak", "pizza", "sushi", "diner", "bakery", "dessert"}

var homeServiceKeys = []string{"plumbing", "electric", "hvac", "appliance", "handyman", "roof", "clean", "locksmith", "pest", "moving"}

func categoryText(p business.Projection) string {
	return strings.ToLower(strings.Join(p.Categories, " "))
}

func isDiningProvider(p business.Projection) bool {
	cats := categoryText(p)
	for _, k := range diningKeys {
		if strings.Contains(cats, k) {
			return true
		}
	}
	return false
}

func isHomeServiceProvider(p business.Projection) bool {
	cats := categoryText(p)
	for _, k := range homeServiceKeys {
		if strings.Contains(cats, k) {
			return true
		}
	}
	return false
}
