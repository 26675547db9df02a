package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/business"
	cache "github.com/tablewise/backend/internal/cache/redis"
	"github.com/tablewise/backend/internal/metrics"
	"github.com/tablewise/backend/internal/provider"
	"github.com/tablewise/backend/pkg/logger"
	"github.com/tablewise/backend/pkg/utils"
)

// ChatCaller is the conversational provider operation the engine drives.
type ChatCaller interface {
	Chat(ctx context.Context, req provider.ChatRequest) (*business.ChatResponse, error)
}

// Enricher fills missing business hours via a scoped follow-up call.
type Enricher interface {
	FillMissingHours(ctx context.Context, records []business.Record, chatID string, lat, lon *float64) []business.Record
}

// Engine runs the search chain: one chat call, extraction, at most one
// enrichment call carrying the same session identifier, projection. The
// chain is strictly sequential; the enrichment query cannot be issued
// before the first response supplies its chat id.
type Engine struct {
	chat       ChatCaller
	enricher   Enricher
	cache      *cache.Client
	cacheTTL   time.Duration
	maxResults int
}

type Request struct {
	UserText  string
	Latitude  *float64
	Longitude *float64
	ChatID    string
}

type Response struct {
	ChatID    string                `json:"chat_id"`
	AIText    string                `json:"ai_text"`
	Providers []business.Projection `json:"providers"`
}

func NewEngine(chat ChatCaller, enricher Enricher, cacheClient *cache.Client, cacheTTL time.Duration, maxResults int) *Engine {
	if maxResults <= 0 {
		maxResults = 3
	}
	return &Engine{
		chat:       chat,
		enricher:   enricher,
		cache:      cacheClient,
		cacheTTL:   cacheTTL,
		maxResults: maxResults,
	}
}

func (e *Engine) Search(ctx context.Context, req Request) (*Response, error) {
	startTime := time.Now()
	searchID := uuid.New().String()

	logger.Info("Processing search",
		zap.String("search_id", searchID),
		zap.String("user_text", req.UserText),
	)

	// Session-bound searches depend on upstream conversational state and
	// are never served from cache.
	cacheKey := ""
	if e.cache != nil && req.ChatID == "" {
		cacheKey = utils.SearchFingerprint(req.UserText, req.Latitude, req.Longitude)
		var cached Response
		hit, err := e.cache.GetSearch(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warn("Search cache lookup failed", zap.Error(err))
		}
		if hit {
			metrics.CacheHits.WithLabelValues("search").Inc()
			return &cached, nil
		}
		metrics.CacheMisses.WithLabelValues("search").Inc()
	}

	first, err := e.chat.Chat(ctx, provider.ChatRequest{
		Query:     e.buildSearchQuery(req.UserText),
		ChatID:    req.ChatID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		metrics.SearchTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	records := business.Extract(first)
	metrics.BusinessesExtracted.Observe(float64(len(records)))

	chatID := first.ChatID
	if chatID == "" {
		chatID = req.ChatID
	}

	if e.enricher != nil {
		records = e.enricher.FillMissingHours(ctx, records, chatID, req.Latitude, req.Longitude)
	}

	providers := business.ProjectAll(records)
	if len(providers) > e.maxResults {
		providers = providers[:e.maxResults]
	}

	resp := &Response{
		ChatID:    chatID,
		AIText:    first.Response.Text,
		Providers: providers,
	}

	if cacheKey != "" {
		if err := e.cache.SetSearch(ctx, cacheKey, resp, e.cacheTTL); err != nil {
			logger.Warn("Search cache store failed", zap.Error(err))
		}
	}

	metrics.SearchTotal.WithLabelValues("success").Inc()
	metrics.SearchDuration.WithLabelValues("search").Observe(time.Since(startTime).Seconds())

	logger.Info("Search completed",
		zap.String("search_id", searchID),
		zap.String("chat_id", chatID),
		zap.Int("providers", len(providers)),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	return resp, nil
}

func (e *Engine) buildSearchQuery(userText string) string {
	return fmt.Sprintf("%s\n\n"+
		"Return exactly %d restaurants near my location.\n"+
		"For EACH restaurant, include weekly hours in contextual_info.business_hours "+
		"(7 days, each day has business_hours slots with open_time and close_time).\n",
		userText, e.maxResults)
}

