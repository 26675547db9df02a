package tools

import (
	"context"
	"fmt"

	"github.com/tablewise/backend/internal/business"
)

type PlanRequest struct {
	Vibe      string   `json:"vibe"`
	Budget    float64  `json:"budget"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type PlanPick struct {
	Provider      business.Projection `json:"provider"`
	EstimatedCost float64             `json:"estimated_cost"`
}

type DatePlan struct {
	Vibe      string    `json:"vibe"`
	Budget    float64   `json:"budget"`
	Dinner    *PlanPick `json:"dinner"`
	Activity  *PlanPick `json:"activity"`
	Total     float64   `json:"total_estimated"`
	Remaining float64   `json:"remaining"`
	Timeline  string    `json:"timeline"`
}

// PlanDate assembles a two-stop evening: dinner gets 60% of the budget,
// the activity the remaining 40%. Each leg takes the first candidate
// whose estimated cost fits its share; a leg may come back empty when
// nothing fits.
func (s *Service) PlanDate(ctx context.Context, req PlanRequest) (*DatePlan, error) {
	if req.Budget <= 0 {
		req.Budget = 100
	}
	dinnerBudget := req.Budget * 0.6
	activityBudget := req.Budget * 0.4

	dinnerResp, err := s.timedSearch(ctx, "datestack", ToolRequest{
		UserText:  fmt.Sprintf("%s restaurant for date night", req.Vibe),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return nil, err
	}
	dinner := pickWithinBudget(dinnerResp.Providers, dinnerBudget, 35, 25)

	activityResp, err := s.timedSearch(ctx, "datestack", ToolRequest{
		UserText:  activityQuery(req.Vibe),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return nil, err
	}
	activity := pickWithinBudget(activityResp.Providers, activityBudget, 25, 15)

	plan := &DatePlan{
		Vibe:     req.Vibe,
		Budget:   req.Budget,
		Dinner:   dinner,
		Activity: activity,
		Timeline: "7:00 PM - 11:00 PM",
	}
	if dinner != nil {
		plan.Total += dinner.EstimatedCost
	}
	if activity != nil {
		plan.Total += activity.EstimatedCost
	}
	plan.Remaining = req.Budget - plan.Total
	return plan, nil
}

func activityQuery(vibe string) string {
	switch vibe {
	case "romantic":
		return "wine bar or live music"
	case "fun":
		return "arcade or bowling"
	case "chill":
		return "coffee shop or bookstore"
	default:
		return "escape room or mini golf"
	}
}

// pickWithinBudget returns the first candidate whose heuristic cost fits
// the share. Higher-rated places are assumed pricier.
func pickWithinBudget(candidates []business.Projection, share float64, highCost, lowCost float64) *PlanPick {
	for _, p := range candidates {
		cost := lowCost
		if p.Rating >= 4 {
			cost = highCost
		}
		if cost <= share {
			return &PlanPick{Provider: p, EstimatedCost: cost}
		}
	}
	return nil
}
