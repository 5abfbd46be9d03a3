// Package planapi exposes planning requests and plan history over HTTP.
package planapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

// PlanResponse is the HTTP view of a stored plan.
type PlanResponse struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	Answer    string    `json:"answer"`
	Outcome   string    `json:"outcome"`
	Moves     []string  `json:"moves"`
	Sweeps    int       `json:"sweeps"`
	Converged bool      `json:"converged"`
	Cached    bool      `json:"cached"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse lists an operator's recent plans.
type HistoryResponse struct {
	Plans []*PlanResponse `json:"plans"`
}

func toResponse(p *dmn.Plan) *PlanResponse {
	return &PlanResponse{
		ID:        p.ID.String(),
		Key:       p.Key,
		Height:    p.Height,
		Width:     p.Width,
		Answer:    p.Answer,
		Outcome:   p.Outcome,
		Moves:     p.Moves,
		Sweeps:    p.Sweeps,
		Converged: p.Converged,
		Cached:    p.Cached,
		CreatedAt: p.CreatedAt,
	}
}
