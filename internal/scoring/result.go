package scoring

// Result is the uniform output shape of the scoring engines: a clamped
// score, a threshold-derived label, and up to four deduplicated rationale
// strings.
type Result struct {
	Score   int      `json:"score"`
	Label   string   `json:"label"`
	Reasons []string `json:"reasons"`
}

const maxReasons = 4

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func dedupeReasons(reasons []string) []string {
	seen := make(map[string]struct{}, len(reasons))
	out := make([]string, 0, maxReasons)
	for _, r := range reasons {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
		if len(out) == maxReasons {
			break
		}
	}
	return out
}
