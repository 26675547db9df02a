package business

import "github.com/tablewise/backend/internal/hours"

// Projection is the stable shape every downstream tool consumes. Every
// optional raw field gets an explicit default so consumers never branch on
// presence.
type Projection struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	URL                 string                `json:"url"`
	Rating              float64               `json:"rating"`
	ReviewCount         int                   `json:"review_count"`
	Phone               string                `json:"phone"`
	Address             string                `json:"address"`
	Categories          []string              `json:"categories"`
	Photo               *string               `json:"photo"`
	ShortSummary        *string               `json:"short_summary"`
	AcceptsReservations bool                  `json:"accepts_reservations_through_yelp"`
	PriceTier           string                `json:"price,omitempty"`
	PriceRange          int                   `json:"price_range,omitempty"`
	Hours               *hours.WeeklySchedule `json:"business_hours,omitempty"`
}

// Project maps a raw record into a Projection. Total over any Record.
func Project(r Record) Projection {
	p := Projection{
		ID:          r.ID,
		Name:        r.Name,
		URL:         r.URL,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Phone:       r.Phone,
		Address:     r.Address(),
		Categories:  make([]string, 0, len(r.Categories)),
		PriceTier:   r.Price,
	}

	for _, c := range r.Categories {
		if c.Title != "" {
			p.Categories = append(p.Categories, c.Title)
		}
	}

	if r.Attributes != nil {
		p.PriceRange = r.Attributes.RestaurantsPriceRange2
	}

	if r.Contextual != nil {
		p.AcceptsReservations = r.Contextual.AcceptsReservations
		if len(r.Contextual.Photos) > 0 && r.Contextual.Photos[0].OriginalURL != "" {
			url := r.Contextual.Photos[0].OriginalURL
			p.Photo = &url
		}
		if ws := hours.FromProviderDays(r.Contextual.BusinessHours); ws != nil {
			p.Hours = &ws
		}
	}

	if r.Summaries != nil && r.Summaries.Short != "" {
		s := r.Summaries.Short
		p.ShortSummary = &s
	}

	return p
}

// ProjectAll maps records in order.
func ProjectAll(records []Record) []Projection {
	out := make([]Projection, 0, len(records))
	for _, r := range records {
		out = append(out, Project(r))
	}
	return out
}

// Summary returns the short summary or "".
func (p Projection) Summary() string {
	if p.ShortSummary == nil {
		return ""
	}
	return *p.ShortSummary
}
