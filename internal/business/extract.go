package business

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tablewise/backend/pkg/logger"
)

// Extract collects business records from every known nesting path of a chat
// response, in priority order entity-wrapped, top-level, data-wrapped, then
// keeps the first record seen for each id. Records without an id are
// dropped. Order is otherwise preserved.
func Extract(resp *ChatResponse) []Record {
	if resp == nil {
		return nil
	}

	var out []Record
	entityLists := 0
	for _, e := range resp.Entities {
		if len(e.Businesses) > 0 {
			entityLists++
			out = append(out, e.Businesses...)
		}
	}
	out = append(out, resp.Businesses...)
	out = append(out, resp.Data.Businesses...)

	seen := make(map[string]struct{}, len(out))
	deduped := out[:0]
	for _, r := range out {
		if r.ID == "" {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		deduped = append(deduped, r)
	}

	logger.Debug("Businesses extracted",
		zap.Int("entity_lists", entityLists),
		zap.Int("total", len(out)),
		zap.Int("deduped", len(deduped)),
	)

	return deduped
}

// MatchKey builds the lookup key used to correlate enrichment results with
// the records they describe: lowercased, trimmed name and address. The match
// is exact; formatting drift between responses simply fails to match.
func MatchKey(name, address string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(address))
}
