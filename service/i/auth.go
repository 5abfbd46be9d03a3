package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
)

// Authenticator registers operators and signs them in.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*domain.Operator, error)
	SignIn(ctx context.Context, username, password string) (*domain.Operator, string, error)
}
