package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/gridio"
	"github.com/google/uuid"
)

// SolverOverrides replaces individual solver defaults. Nil fields keep the default.
type SolverOverrides struct {
	Gamma         *float64 `json:"gamma"`
	DefaultReward *float64 `json:"default_reward"`
	FinishValue   *float64 `json:"finish_value"`
	Iterations    *int     `json:"iterations"`
	Delta         *float64 `json:"delta"`
}

// PlanRequest is a planning problem: the grid codes plus optional reward and solver overrides.
type PlanRequest struct {
	Grid      [][]int              `json:"grid" binding:"required"`
	Rewards   []gridio.RewardEntry `json:"rewards"`
	Overrides SolverOverrides      `json:"options"`
}

// Planner answers planning requests and keeps their history.
type Planner interface {
	Plan(ctx context.Context, ownerID uuid.UUID, req PlanRequest) (*domain.Plan, error)
	ByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error)
	ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*domain.Plan, error)
}
