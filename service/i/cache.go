package i

import "context"

// CachedAnswer is what the plan cache keeps for a solved problem.
type CachedAnswer struct {
	Height    int      `json:"height"`
	Width     int      `json:"width"`
	Answer    string   `json:"answer"`
	Outcome   string   `json:"outcome"`
	Moves     []string `json:"moves"`
	Sweeps    int      `json:"sweeps"`
	Converged bool     `json:"converged"`
}

// PlanCache stores answers by problem key and serializes work on the same key.
type PlanCache interface {
	// Get returns the cached answer, or nil without error on a miss.
	Get(ctx context.Context, key string) (*CachedAnswer, error)

	// Set stores an answer for the cache's configured lifetime.
	Set(ctx context.Context, key string, answer *CachedAnswer) error

	// Lock acquires the lock for key and returns the function releasing it.
	Lock(ctx context.Context, key string) (func(), error)
}
