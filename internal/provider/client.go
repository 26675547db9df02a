package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/business"
	"github.com/tablewise/backend/internal/metrics"
	"github.com/tablewise/backend/pkg/logger"
)

// UpstreamError carries the status and raw diagnostic body of a failed
// provider call so handlers can surface it verbatim.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream provider error %d: %s", e.Status, e.Body)
}

// Client talks to the conversational search endpoint. Chat calls in a
// search chain are sequential and single-shot: the enrichment call depends
// on the session identifier from the first response, and neither call is
// retried.
type Client struct {
	apiKey     string
	chatURL    string
	httpClient *http.Client
}

type ChatRequest struct {
	Query     string
	ChatID    string
	Latitude  *float64
	Longitude *float64
}

type userContext struct {
	Locale    string   `json:"locale"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type chatBody struct {
	Query       string      `json:"query"`
	ChatID      string      `json:"chat_id,omitempty"`
	UserContext userContext `json:"user_context"`
}

func NewClient(apiKey, chatURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		chatURL: chatURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Chat issues one conversational query and parses the loosely-shaped
// response. A non-2xx status or unparseable body yields an *UpstreamError.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*business.ChatResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("missing provider chat API key")
	}

	body := chatBody{
		Query:       req.Query,
		ChatID:      req.ChatID,
		UserContext: userContext{Locale: "en_US", Latitude: req.Latitude, Longitude: req.Longitude},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ProviderCalls.WithLabelValues("chat", "error").Inc()
		return nil, fmt.Errorf("chat call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat response: %w", err)
	}

	metrics.ProviderCalls.WithLabelValues("chat", fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Chat call rejected",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(started)),
		)
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed business.ChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &UpstreamError{
			Status: http.StatusInternalServerError,
			Body:   fmt.Sprintf("bad JSON: %v", err),
		}
	}

	logger.Debug("Chat call completed",
		zap.String("chat_id", parsed.ChatID),
		zap.Duration("elapsed", time.Since(started)),
	)

	return &parsed, nil
}
