package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/hours"
	"github.com/tablewise/backend/internal/metrics"
	"github.com/tablewise/backend/pkg/circuitbreaker"
	"github.com/tablewise/backend/pkg/logger"
	"github.com/tablewise/backend/pkg/retry"
)

// DetailDocument is the subset of a business-detail response the hours
// normalizer needs.
type DetailDocument struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Hours []hours.RawHours `json:"hours"`
}

// OpenSlots returns the provider-native open slots, or nil when absent.
func (d *DetailDocument) OpenSlots() []hours.RawSlot {
	if len(d.Hours) == 0 {
		return nil
	}
	return d.Hours[0].Open
}

// DetailClient fetches single-business detail documents. Unlike the chat
// chain, this path has no ordering dependency, so it gets the standard
// retry and circuit-breaker treatment.
type DetailClient struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	cb          *circuitbreaker.Breaker
	retryConfig retry.Config
}

func NewDetailClient(apiKey, baseURL string, timeout time.Duration) *DetailClient {
	cb := circuitbreaker.New("provider-detail", circuitbreaker.Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Cooldown:         30 * time.Second,
		Logger:           logger.GetLogger(),
	})

	retryConfig := retry.Config{
		MaxAttempts:    3,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
		Logger:         logger.GetLogger(),
	}

	return &DetailClient{
		apiKey:      apiKey,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: timeout},
		cb:          cb,
		retryConfig: retryConfig,
	}
}

// BusinessDetails fetches the detail document for one business id.
func (c *DetailClient) BusinessDetails(ctx context.Context, businessID string) (*DetailDocument, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("missing provider detail API key")
	}

	endpoint := fmt.Sprintf("%s/businesses/%s", c.baseURL, url.PathEscape(businessID))

	var doc *DetailDocument
	err := c.cb.Execute(ctx, func() error {
		return retry.Do(ctx, c.retryConfig, func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return fmt.Errorf("failed to create detail request: %w", err)
			}
			req.Header.Set("Authorization", "Bearer "+c.apiKey)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				metrics.ProviderCalls.WithLabelValues("detail", "error").Inc()
				return fmt.Errorf("detail call failed: %w", err)
			}
			defer resp.Body.Close()
			metrics.ProviderCalls.WithLabelValues("detail", fmt.Sprintf("%d", resp.StatusCode)).Inc()

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read detail response: %w", err)
			}

			if resp.StatusCode != http.StatusOK {
				return &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
			}

			var parsed DetailDocument
			if err := json.Unmarshal(raw, &parsed); err != nil {
				return fmt.Errorf("failed to parse detail response: %w", err)
			}

			doc = &parsed
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	logger.Debug("Business details fetched",
		zap.String("business_id", businessID),
		zap.Bool("has_hours", doc.OpenSlots() != nil),
	)

	return doc, nil
}
