package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "pathfinder:plan:"
	lockSuffix = ":solve_lock"

	// lockExpiry bounds how long a crashed solver can block others on the same problem.
	lockExpiry = 30 * time.Second
)

// RedisPlanCache keeps solved answers in Redis with a TTL and guards solves with a redsync mutex.
type RedisPlanCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.PlanCache = &RedisPlanCache{}

// NewRedisPlanCache initializes a RedisPlanCache with the provided Redis client and TTL.
func NewRedisPlanCache(client *redis.Client, ttlSeconds int) (*RedisPlanCache, error) {
	if ttlSeconds <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}

	pool := goredis.NewPool(client)
	return &RedisPlanCache{
		client: client,
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Get returns the cached answer for key, or nil when there is none.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (*i.CachedAnswer, error) {
	raw, err := c.client.Get(ctx, answerKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeAnswer(raw)
}

// Set stores answer under key for the cache TTL.
func (c *RedisPlanCache) Set(ctx context.Context, key string, answer *i.CachedAnswer) error {
	raw, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, answerKey(key), raw, c.ttl).Err()
}

// Lock takes the solve lock for key.
func (c *RedisPlanCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(lockKey(key), redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func answerKey(key string) string {
	return keyPrefix + key
}

func lockKey(key string) string {
	return keyPrefix + key + lockSuffix
}

func decodeAnswer(raw []byte) (*i.CachedAnswer, error) {
	var answer i.CachedAnswer
	if err := json.Unmarshal(raw, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}
