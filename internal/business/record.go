package business

import "github.com/tablewise/backend/internal/hours"

// Record mirrors the raw upstream business shape. Every field beyond the id
// is optional; the upstream schema is not contractually stable, so parsing
// stays loose and downstream code works off the Projection instead.
type Record struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	URL         string      `json:"url,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	ReviewCount int         `json:"review_count,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Price       string      `json:"price,omitempty"`
	Categories  []Category  `json:"categories,omitempty"`
	Location    *Location   `json:"location,omitempty"`
	Contextual  *Contextual `json:"contextual_info,omitempty"`
	Summaries   *Summaries  `json:"summaries,omitempty"`
	Attributes  *Attributes `json:"attributes,omitempty"`
}

type Category struct {
	Title string `json:"title,omitempty"`
}

type Location struct {
	FormattedAddress string `json:"formatted_address,omitempty"`
}

type Contextual struct {
	Photos              []Photo             `json:"photos,omitempty"`
	AcceptsReservations bool                `json:"accepts_reservations_through_yelp,omitempty"`
	BusinessHours       []hours.ProviderDay `json:"business_hours,omitempty"`
}

type Photo struct {
	OriginalURL string `json:"original_url,omitempty"`
}

type Summaries struct {
	Short string `json:"short,omitempty"`
}

type Attributes struct {
	RestaurantsPriceRange2 int `json:"RestaurantsPriceRange2,omitempty"`
}

// HasHours reports whether the raw record carries any published hours.
func (r *Record) HasHours() bool {
	return r.Contextual != nil && len(r.Contextual.BusinessHours) > 0
}

// Address returns the formatted address or "".
func (r *Record) Address() string {
	if r.Location == nil {
		return ""
	}
	return r.Location.FormattedAddress
}

// ChatResponse is the upstream chat document. Businesses may legitimately
// appear under more than one of the three nesting paths at once, so all are
// parsed and combined additively.
type ChatResponse struct {
	ChatID   string `json:"chat_id,omitempty"`
	Response struct {
		Text string `json:"text,omitempty"`
	} `json:"response,omitempty"`
	Entities []struct {
		Businesses []Record `json:"businesses,omitempty"`
	} `json:"entities,omitempty"`
	Businesses []Record `json:"businesses,omitempty"`
	Data       struct {
		Businesses []Record `json:"businesses,omitempty"`
	} `json:"data,omitempty"`
}
