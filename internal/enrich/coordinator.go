package enrich

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/business"
	"github.com/tablewise/backend/internal/metrics"
	"github.com/tablewise/backend/internal/provider"
	"github.com/tablewise/backend/pkg/logger"
)

// ChatCaller is the one provider operation the coordinator needs.
type ChatCaller interface {
	Chat(ctx context.Context, req provider.ChatRequest) (*business.ChatResponse, error)
}

// Coordinator fills missing business hours with a single scoped follow-up
// query that reuses the conversational session from the initial search.
type Coordinator struct {
	chat ChatCaller
}

func NewCoordinator(chat ChatCaller) *Coordinator {
	return &Coordinator{chat: chat}
}

// FillMissingHours returns the records with business_hours copied in from a
// follow-up query, for those that had none. Records that already carry
// hours are never touched. Any enrichment failure degrades silently: the
// originals come back unmodified. At most one upstream call is made, and
// none when every record has hours or no session identifier is available.
func (c *Coordinator) FillMissingHours(ctx context.Context, records []business.Record, chatID string, lat, lon *float64) []business.Record {
	var missing []business.Record
	for _, r := range records {
		if !r.HasHours() {
			missing = append(missing, r)
		}
	}

	if len(missing) == 0 || chatID == "" {
		return records
	}

	metrics.EnrichmentTriggered.Inc()

	resp, err := c.chat.Chat(ctx, provider.ChatRequest{
		Query:     buildHoursQuery(missing),
		ChatID:    chatID,
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		logger.Warn("Hours enrichment failed",
			zap.Int("missing", len(missing)),
			zap.Error(err),
		)
		return records
	}

	byKey := make(map[string]business.Record)
	for _, e := range business.Extract(resp) {
		byKey[business.MatchKey(e.Name, e.Address())] = e
	}

	filled := 0
	out := make([]business.Record, len(records))
	for i, r := range records {
		out[i] = r
		if r.HasHours() {
			continue
		}

		e, ok := byKey[business.MatchKey(r.Name, r.Address())]
		if !ok || e.Contextual == nil || len(e.Contextual.BusinessHours) == 0 {
			continue
		}

		ctxInfo := business.Contextual{}
		if r.Contextual != nil {
			ctxInfo = *r.Contextual
		}
		ctxInfo.BusinessHours = e.Contextual.BusinessHours
		out[i].Contextual = &ctxInfo
		filled++
	}

	metrics.EnrichmentFilled.Add(float64(filled))
	logger.Info("Hours enrichment completed",
		zap.Int("missing", len(missing)),
		zap.Int("filled", filled),
	)

	return out
}

func buildHoursQuery(missing []business.Record) string {
	var list strings.Builder
	for i, b := range missing {
		fmt.Fprintf(&list, "%d. %s — %s\n", i+1, b.Name, b.Address())
	}

	return "For the following businesses, return ONLY weekly hours as contextual_info.business_hours " +
		"(7 days, each day has business_hours with open_time and close_time). " +
		"Keep the same business name and address.\n\n" + list.String()
}
