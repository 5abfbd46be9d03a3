// Package domain holds the records the pathfinder stores: operators and their plans.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Plan is one answered planning request.
type Plan struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	OwnerID   uuid.UUID `bson:"ownerId" json:"owner_id"`
	Key       string    `bson:"key" json:"key"`             // Hash of the problem, shared by identical requests
	Height    int       `bson:"height" json:"height"`       // Grid rows
	Width     int       `bson:"width" json:"width"`         // Grid columns
	Answer    string    `bson:"answer" json:"answer"`       // Rendered route, exactly as the file output
	Outcome   string    `bson:"outcome" json:"outcome"`     // reached, already_at_goal or no_path
	Moves     []string  `bson:"moves" json:"moves"`         // Route labels
	Sweeps    int       `bson:"sweeps" json:"sweeps"`       // Value iteration sweeps performed
	Converged bool      `bson:"converged" json:"converged"` // Whether the precision threshold was reached
	Cached    bool      `bson:"cached" json:"cached"`       // Whether the answer came from the cache
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
