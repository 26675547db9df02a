package tools

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/tablewise/backend/internal/business"
	"github.com/tablewise/backend/internal/hours"
	"github.com/tablewise/backend/internal/metrics"
	"github.com/tablewise/backend/internal/scoring"
	"github.com/tablewise/backend/internal/search"
)

// Searcher is the engine operation every tool builds on.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Response, error)
}

// Service layers the consumer tools over the search engine. Each tool
// issues one search, scores the returned providers with its own engine
// and returns them ranked. The clock and the random source are injected
// so rankings and estimates are reproducible in tests.
type Service struct {
	engine    Searcher
	now       func() time.Time
	randFloat func() float64
}

func NewService(engine Searcher) *Service {
	return &Service{
		engine:    engine,
		now:       time.Now,
		randFloat: rand.Float64,
	}
}

// NewServiceWithClock pins the clock and the random source.
func NewServiceWithClock(engine Searcher, now func() time.Time, randFloat func() float64) *Service {
	return &Service{engine: engine, now: now, randFloat: randFloat}
}

type ToolRequest struct {
	UserText  string        `json:"userText"`
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
	ChatID    string        `json:"chatId"`
	Prefs     scoring.Prefs `json:"prefs"`
	Allergies []string      `json:"allergies"`
	PartySize int           `json:"partySize"`
	Budget    float64       `json:"budget"`
}

type ConfidenceRanked struct {
	Provider   business.Projection `json:"provider"`
	Confidence scoring.Result      `json:"confidence"`
}

type QuickFindResponse struct {
	ChatID    string             `json:"chat_id"`
	AIText    string             `json:"ai_text"`
	Providers []ConfidenceRanked `json:"providers"`
}

// QuickFind ranks providers by match confidence against the stated
// preferences, best first.
func (s *Service) QuickFind(ctx context.Context, req ToolRequest) (*QuickFindResponse, error) {
	resp, err := s.timedSearch(ctx, "quickfind", req)
	if err != nil {
		return nil, err
	}

	ranked := make([]ConfidenceRanked, 0, len(resp.Providers))
	for _, p := range resp.Providers {
		ranked = append(ranked, ConfidenceRanked{
			Provider:   p,
			Confidence: scoring.Confidence(p, req.UserText, resp.AIText, req.Prefs),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence.Score > ranked[j].Confidence.Score
	})

	return &QuickFindResponse{ChatID: resp.ChatID, AIText: resp.AIText, Providers: ranked}, nil
}

type AllergyRanked struct {
	Provider   business.Projection       `json:"provider"`
	Assessment scoring.AllergyAssessment `json:"assessment"`
}

type SafeEatsResponse struct {
	ChatID    string          `json:"chat_id"`
	AIText    string          `json:"ai_text"`
	Providers []AllergyRanked `json:"providers"`
}

// SafeEats ranks providers by allergy safety for the given allergen
// list, safest first.
func (s *Service) SafeEats(ctx context.Context, req ToolRequest) (*SafeEatsResponse, error) {
	resp, err := s.timedSearch(ctx, "safeeats", req)
	if err != nil {
		return nil, err
	}

	ranked := make([]AllergyRanked, 0, len(resp.Providers))
	for _, p := range resp.Providers {
		ranked = append(ranked, AllergyRanked{
			Provider:   p,
			Assessment: scoring.AllergySafety(p, req.Allergies),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Assessment.Score > ranked[j].Assessment.Score
	})

	return &SafeEatsResponse{ChatID: resp.ChatID, AIText: resp.AIText, Providers: ranked}, nil
}

type SoloRanked struct {
	Provider business.Projection `json:"provider"`
	Safety   scoring.Result      `json:"safety"`
}

type SoloSafeResponse struct {
	ChatID    string       `json:"chat_id"`
	AIText    string       `json:"ai_text"`
	Providers []SoloRanked `json:"providers"`
}

// SoloSafe ranks providers by comfort for a solo diner.
func (s *Service) SoloSafe(ctx context.Context, req ToolRequest) (*SoloSafeResponse, error) {
	resp, err := s.timedSearch(ctx, "solosafe", req)
	if err != nil {
		return nil, err
	}

	ranked := make([]SoloRanked, 0, len(resp.Providers))
	for _, p := range resp.Providers {
		ranked = append(ranked, SoloRanked{Provider: p, Safety: scoring.SoloSafety(p)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Safety.Score > ranked[j].Safety.Score
	})

	return &SoloSafeResponse{ChatID: resp.ChatID, AIText: resp.AIText, Providers: ranked}, nil
}

type WaitRanked struct {
	Provider business.Projection  `json:"provider"`
	Wait     scoring.WaitEstimate `json:"wait"`
	Status   hours.OpenStatus     `json:"status"`
}

type WaitWiseResponse struct {
	ChatID    string       `json:"chat_id"`
	AIText    string       `json:"ai_text"`
	Providers []WaitRanked `json:"providers"`
	Advice    string       `json:"advice"`
}

// WaitWise estimates the current wait at each provider and ranks open
// places before closed ones, shortest wait first.
func (s *Service) WaitWise(ctx context.Context, req ToolRequest) (*WaitWiseResponse, error) {
	resp, err := s.timedSearch(ctx, "waitwise", req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	partySize := req.PartySize
	if partySize <= 0 {
		partySize = 2
	}

	ranked := make([]WaitRanked, 0, len(resp.Providers))
	for _, p := range resp.Providers {
		ranked = append(ranked, WaitRanked{
			Provider: p,
			Wait:     scoring.PredictWait(p.ReviewCount, p.Rating, partySize, now),
			Status:   statusOf(p, now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ri, rj := ranked[i].Status.Rank(), ranked[j].Status.Rank(); ri != rj {
			return ri < rj
		}
		return ranked[i].Wait.Min < ranked[j].Wait.Min
	})

	return &WaitWiseResponse{
		ChatID:    resp.ChatID,
		AIText:    resp.AIText,
		Providers: ranked,
		Advice:    scoring.BestTimeAdvice(now),
	}, nil
}

type PriceRanked struct {
	Provider     business.Projection    `json:"provider"`
	MenuPrice    int                    `json:"menu_price"`
	Breakdown    scoring.PriceBreakdown `json:"breakdown"`
	WithinBudget bool                   `json:"within_budget"`
}

type TruePriceResponse struct {
	ChatID    string        `json:"chat_id"`
	AIText    string        `json:"ai_text"`
	Providers []PriceRanked `json:"providers"`
}

// TruePrice estimates the all-in cost per person (menu, tax, tip,
// parking) and ranks providers cheapest first.
func (s *Service) TruePrice(ctx context.Context, req ToolRequest) (*TruePriceResponse, error) {
	resp, err := s.timedSearch(ctx, "trueprice", req)
	if err != nil {
		return nil, err
	}

	ranked := make([]PriceRanked, 0, len(resp.Providers))
	for _, p := range resp.Providers {
		menu := scoring.EstimateMenuPrice(p, s.randFloat)
		breakdown := scoring.TruePrice(float64(menu))
		ranked = append(ranked, PriceRanked{
			Provider:     p,
			MenuPrice:    menu,
			Breakdown:    breakdown,
			WithinBudget: req.Budget <= 0 || breakdown.WithinBudget(req.Budget),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Breakdown.Total < ranked[j].Breakdown.Total
	})

	return &TruePriceResponse{ChatID: resp.ChatID, AIText: resp.AIText, Providers: ranked}, nil
}

func (s *Service) timedSearch(ctx context.Context, tool string, req ToolRequest) (*search.Response, error) {
	start := time.Now()
	resp, err := s.engine.Search(ctx, search.Request{
		UserText:  req.UserText,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		ChatID:    req.ChatID,
	})
	metrics.SearchDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
	return resp, err
}

func statusOf(p business.Projection, now time.Time) hours.OpenStatus {
	if p.Hours == nil {
		return hours.Evaluate(nil, now)
	}
	return hours.Evaluate(*p.Hours, now)
}
