package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tablewise/backend/pkg/logger"
	"github.com/tablewise/backend/pkg/retry"
)

// Result is a resolved place: display name plus coordinates.
type Result struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Client resolves free-text locations against a Nominatim-compatible
// endpoint. Lookups are retried with backoff since the public instance
// rate-limits aggressively.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	retryCfg   retry.Config
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryCfg: retry.Config{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     5 * time.Second,
		},
	}
}

type nominatimRow struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Lookup resolves the query to a single best match, or nil when the
// service has no match.
func (c *Client) Lookup(ctx context.Context, query string) (*Result, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&limit=1", c.baseURL, url.QueryEscape(query))

	rows, err := retry.DoWithResult(ctx, c.retryCfg, func() ([]nominatimRow, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("geocode lookup returned status %d", resp.StatusCode)
		}

		var rows []nominatimRow
		if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
			return nil, fmt.Errorf("failed to decode geocode response: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(rows[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocode response: %w", err)
	}
	lon, err := strconv.ParseFloat(rows[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocode response: %w", err)
	}

	logger.Debug("Geocode lookup resolved",
		zap.String("query", query),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
	)

	return &Result{DisplayName: rows[0].DisplayName, Latitude: lat, Longitude: lon}, nil
}
