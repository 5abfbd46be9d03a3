package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/gridio"
	"github.com/beka-birhanu/vinom-pathfinder/gridworld"
	"github.com/beka-birhanu/vinom-pathfinder/metrics"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	ErrInvalidProblem = errors.New("invalid planning problem")
	ErrPlanNotFound   = errors.New("plan not found")
)

// PlannerConfig holds the dependencies of a Planner. Cache may be nil, in which case every
// request is solved.
type PlannerConfig struct {
	Repo     i.PlanRepo
	Cache    i.PlanCache
	Logger   i.Logger
	Defaults gridworld.Options
	Now      func() time.Time
}

// Planner solves planning requests, caching answers by problem and recording every plan.
type Planner struct {
	repo     i.PlanRepo
	cache    i.PlanCache
	logger   i.Logger
	defaults gridworld.Options
	now      func() time.Time
}

var _ i.Planner = &Planner{}

// NewPlanner creates a Planner.
func NewPlanner(c PlannerConfig) (*Planner, error) {
	if c.Repo == nil {
		return nil, errors.New("plan repository is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if err := c.Defaults.Validate(); err != nil {
		return nil, err
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return &Planner{
		repo:     c.Repo,
		cache:    c.Cache,
		logger:   c.Logger,
		defaults: c.Defaults,
		now:      c.Now,
	}, nil
}

// Plan answers req for ownerID and stores the resulting plan.
func (p *Planner) Plan(ctx context.Context, ownerID uuid.UUID, req i.PlanRequest) (*domain.Plan, error) {
	opts, err := p.options(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	world, err := gridworld.NewWorld(req.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	key, err := problemKey(req, opts)
	if err != nil {
		return nil, err
	}

	answer, cached := p.lookup(ctx, key)
	if answer == nil {
		answer, cached, err = p.solveOnce(ctx, key, world, opts)
		if err != nil {
			return nil, err
		}
	}

	plan := &domain.Plan{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Key:       key,
		Height:    answer.Height,
		Width:     answer.Width,
		Answer:    answer.Answer,
		Outcome:   answer.Outcome,
		Moves:     answer.Moves,
		Sweeps:    answer.Sweeps,
		Converged: answer.Converged,
		Cached:    cached,
		CreatedAt: p.now().UTC(),
	}

	if err := p.repo.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}

	p.logger.Info(fmt.Sprintf("Plan %s for operator %s: %s (cached=%t)", plan.ID, ownerID, plan.Outcome, cached))
	return plan, nil
}

// ByID returns one of ownerID's plans.
func (p *Planner) ByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error) {
	plan, err := p.repo.ByID(ctx, planID)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	// other operators' plans are reported as missing
	if plan.OwnerID != ownerID {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// ByOwner lists ownerID's most recent plans. Non-positive limits use the default page size.
func (p *Planner) ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*domain.Plan, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return p.repo.ByOwner(ctx, ownerID, min(limit, maxHistoryLimit))
}

// options applies the request's overrides and reward table to the defaults.
func (p *Planner) options(req i.PlanRequest) (gridworld.Options, error) {
	opts := p.defaults

	o := req.Overrides
	if o.Gamma != nil {
		opts.Gamma = *o.Gamma
	}
	if o.DefaultReward != nil {
		opts.DefaultReward = *o.DefaultReward
	}
	if o.FinishValue != nil {
		opts.FinishValue = *o.FinishValue
	}
	if o.Iterations != nil {
		opts.Iterations = *o.Iterations
	}
	if o.Delta != nil {
		opts.Delta = *o.Delta
	}

	rewards, err := gridio.RewardTable(req.Rewards)
	if err != nil {
		return gridworld.Options{}, err
	}
	opts.Rewards = rewards

	return opts, opts.Validate()
}

// lookup consults the cache. Cache failures are logged and treated as misses.
func (p *Planner) lookup(ctx context.Context, key string) (*i.CachedAnswer, bool) {
	if p.cache == nil {
		return nil, false
	}

	answer, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.Warning(fmt.Sprintf("Reading plan cache for %s: %v", key, err))
		return nil, false
	}

	metrics.ObserveCacheLookup(answer != nil)
	return answer, answer != nil
}

// solveOnce solves under the problem's lock so concurrent identical requests share one solve.
// The boolean result reports whether another holder of the lock produced the answer.
func (p *Planner) solveOnce(ctx context.Context, key string, world *gridworld.World, opts gridworld.Options) (*i.CachedAnswer, bool, error) {
	if p.cache != nil {
		unlock, err := p.cache.Lock(ctx, key)
		if err != nil {
			p.logger.Warning(fmt.Sprintf("Locking plan %s, solving without lock: %v", key, err))
		} else {
			defer unlock()
			if answer, err := p.cache.Get(ctx, key); err == nil && answer != nil {
				return answer, true, nil
			}
		}
	}

	answer, err := solve(world, opts)
	if err != nil {
		return nil, false, err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, answer); err != nil {
			p.logger.Warning(fmt.Sprintf("Writing plan cache for %s: %v", key, err))
		}
	}

	p.logger.Debug(fmt.Sprintf("Solved %s in %d sweeps (converged=%t)", key, answer.Sweeps, answer.Converged))
	return answer, false, nil
}

func solve(world *gridworld.World, opts gridworld.Options) (*i.CachedAnswer, error) {
	start := time.Now()
	result, err := world.Solve(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	metrics.ObserveSolve(result.Route.Outcome.String(), result.Sweeps, time.Since(start))

	moves := []string{}
	if result.Route.Outcome == gridworld.OutcomeReached {
		for _, m := range result.Route.Moves {
			moves = append(moves, m.String())
		}
	}

	return &i.CachedAnswer{
		Height:    world.Grid.Height,
		Width:     world.Grid.Width,
		Answer:    result.Route.String(),
		Outcome:   result.Route.Outcome.String(),
		Moves:     moves,
		Sweeps:    result.Sweeps,
		Converged: result.Converged,
	}, nil
}

// problemKey hashes everything that influences the answer. Reward entries are sorted first so
// the key does not depend on their order in the request.
func problemKey(req i.PlanRequest, opts gridworld.Options) (string, error) {
	rewards := slices.Clone(req.Rewards)
	slices.SortFunc(rewards, func(a, b gridio.RewardEntry) int {
		if c := slices.Compare(a.From[:], b.From[:]); c != 0 {
			return c
		}
		return slices.Compare(a.To[:], b.To[:])
	})

	payload, err := json.Marshal(struct {
		Grid          [][]int              `json:"grid"`
		Rewards       []gridio.RewardEntry `json:"rewards"`
		Gamma         float64              `json:"gamma"`
		DefaultReward float64              `json:"default_reward"`
		FinishValue   float64              `json:"finish_value"`
		Iterations    int                  `json:"iterations"`
		Delta         float64              `json:"delta"`
	}{req.Grid, rewards, opts.Gamma, opts.DefaultReward, opts.FinishValue, opts.Iterations, opts.Delta})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
