package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by repositories, possibly wrapped, when no record matches.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write would break a uniqueness constraint.
	ErrConflict = errors.New("record conflict")
)

// OperatorRepo defines the interface for operator persistence operations.
type OperatorRepo interface {
	// Save inserts or updates an operator.
	// Returns ErrConflict if another operator already holds the username.
	Save(ctx context.Context, operator *domain.Operator) error

	// ByID retrieves an operator by their unique ID.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error)

	// ByUsername retrieves an operator by their username.
	ByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// PlanRepo defines the interface for plan persistence operations.
type PlanRepo interface {
	// Save inserts a plan.
	Save(ctx context.Context, plan *domain.Plan) error

	// ByID retrieves a plan by its ID.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error)

	// ByOwner lists an operator's plans, newest first, at most limit of them.
	ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*domain.Plan, error)
}
