package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/metrics"
	"github.com/tablewise/backend/internal/provider"
	"github.com/tablewise/backend/pkg/logger"
)

type QuoteRequest struct {
	ChatID        string `json:"chatId"`
	ProviderName  string `json:"providerName"`
	ProviderURL   string `json:"providerUrl"`
	PreferredTime string `json:"preferredTime"`
	UserNotes     string `json:"userNotes"`
}

// UpstreamDiag surfaces why the conversational provider could not serve
// the quote. The response is still usable: the message falls back to a
// deterministic template.
type UpstreamDiag struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type QuoteResponse struct {
	ChatID       string        `json:"chat_id"`
	ProviderName string        `json:"provider_name"`
	ProviderURL  string        `json:"provider_url"`
	QuoteMessage string        `json:"quote_message"`
	Questions    []string      `json:"questions"`
	NextSteps    []string      `json:"next_steps"`
	Upstream     *UpstreamDiag `json:"upstream_error,omitempty"`
}

// GenerateQuote asks the ongoing conversation for a reservation request
// draft. The quote is always scoped to an existing session, so chatId is
// mandatory alongside the provider identity. Upstream failure degrades to
// the template message plus the standard clarifying questions rather than
// an error.
func (e *Engine) GenerateQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	if strings.TrimSpace(req.ChatID) == "" {
		return nil, errors.New("chatId is required")
	}
	if strings.TrimSpace(req.ProviderName) == "" {
		return nil, errors.New("providerName is required")
	}
	if strings.TrimSpace(req.ProviderURL) == "" {
		return nil, errors.New("providerUrl is required")
	}

	template := buildQuoteTemplate(req)

	resp := &QuoteResponse{
		ChatID:       req.ChatID,
		ProviderName: req.ProviderName,
		ProviderURL:  req.ProviderURL,
		QuoteMessage: template,
		Questions:    []string{},
	}

	query := fmt.Sprintf(
		"Draft a short reservation request for %s. Preferred time: %s. Notes: %s. "+
			"Keep it under 80 words and ask at most two clarifying questions.",
		req.ProviderName, orDefault(req.PreferredTime, "flexible"), orDefault(req.UserNotes, "none"))

	upstream, err := e.chat.Chat(ctx, provider.ChatRequest{Query: query, ChatID: req.ChatID})
	if err != nil {
		metrics.QuoteFallbacks.Inc()
		logger.Warn("Quote generation fell back to template",
			zap.String("provider_name", req.ProviderName),
			zap.Error(err),
		)
		resp.Questions = fallbackQuestions()
		resp.NextSteps = []string{
			"Copy the message and send it via the Yelp page",
			"Answer the questions above to tighten the request",
		}
		var ue *provider.UpstreamError
		if errors.As(err, &ue) {
			resp.Upstream = &UpstreamDiag{Status: ue.Status, Detail: ue.Body}
		} else {
			resp.Upstream = &UpstreamDiag{Status: 502, Detail: err.Error()}
		}
		return resp, nil
	}

	if upstream.ChatID != "" {
		resp.ChatID = upstream.ChatID
	}
	if text := strings.TrimSpace(upstream.Response.Text); text != "" {
		resp.QuoteMessage = text
	}
	resp.NextSteps = []string{
		"Review the drafted message",
		"Send it through the business's Yelp page",
		"Follow up here if the time needs to change",
	}
	return resp, nil
}

func buildQuoteTemplate(req QuoteRequest) string {
	return fmt.Sprintf("Hi %s team,\n\n"+
		"I'd like to reserve a table / confirm availability.\n"+
		"Preferred time: %s\n"+
		"Notes: %s\n\n"+
		"Yelp link: %s\n\n"+
		"Thanks!",
		req.ProviderName,
		orDefault(req.PreferredTime, "flexible"),
		orDefault(req.UserNotes, "No extra details"),
		req.ProviderURL)
}

func fallbackQuestions() []string {
	return []string{
		"How many guests?",
		"Any dietary preferences (veg/vegan/allergies)?",
		"Is a different time (±2 hours) acceptable?",
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
