package service

import (
	"context"
	"errors"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

type memoryOperatorRepo struct {
	mu        sync.Mutex
	operators map[uuid.UUID]*dmn.Operator
	lookupErr error
}

func newMemoryOperatorRepo() *memoryOperatorRepo {
	return &memoryOperatorRepo{operators: make(map[uuid.UUID]*dmn.Operator)}
}

func (r *memoryOperatorRepo) Save(_ context.Context, o *dmn.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.operators {
		if existing.Username == o.Username && existing.ID != o.ID {
			return i.ErrConflict
		}
	}
	r.operators[o.ID] = o
	return nil
}

func (r *memoryOperatorRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.operators[id]; ok {
		return o, nil
	}
	return nil, i.ErrNotFound
}

func (r *memoryOperatorRepo) ByUsername(_ context.Context, username string) (*dmn.Operator, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.operators {
		if o.Username == username {
			return o, nil
		}
	}
	return nil, i.ErrNotFound
}

type memoryPlanRepo struct {
	mu      sync.Mutex
	plans   []*dmn.Plan
	saveErr error
}

func (r *memoryPlanRepo) Save(_ context.Context, p *dmn.Plan) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, p)
	return nil
}

func (r *memoryPlanRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, i.ErrNotFound
}

func (r *memoryPlanRepo) ByOwner(_ context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var owned []*dmn.Plan
	for idx := len(r.plans) - 1; idx >= 0; idx-- {
		p := r.plans[idx]
		if p.OwnerID == ownerID && int64(len(owned)) < limit {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

type memoryCache struct {
	mu      sync.Mutex
	answers map[string]*i.CachedAnswer
	locks   int
	getErr  error
	lockErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{answers: make(map[string]*i.CachedAnswer)}
}

func (c *memoryCache) Get(_ context.Context, key string) (*i.CachedAnswer, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, a *i.CachedAnswer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers[key] = a
	return nil
}

func (c *memoryCache) Lock(_ context.Context, _ string) (func(), error) {
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.mu.Lock()
	c.locks++
	c.mu.Unlock()
	return func() {}, nil
}

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Info(string)  {}
func (l *recordingLogger) Error(string) {}
func (l *recordingLogger) Debug(string) {}
func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

type stubTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
	err    error
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.claims, s.ttl = claims, ttl
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
