// Package stats keeps per-agent counts of successful demo runs.
package stats

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Counter records and reports successful runs per agent.
type Counter interface {
	Increment(ctx context.Context, agent string) (int64, error)
	Snapshot(ctx context.Context) (map[string]int64, error)
}

// RedisCounter stores counts in a single Redis hash, one field per agent.
type RedisCounter struct {
	client redis.Cmdable
	key    string
}

func NewRedisCounter(client redis.Cmdable, key string) *RedisCounter {
	return &RedisCounter{client: client, key: key}
}

func (c *RedisCounter) Increment(ctx context.Context, agent string) (int64, error) {
	n, err := c.client.HIncrBy(ctx, c.key, agent, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("increment %s in %s: %w", agent, c.key, err)
	}
	return n, nil
}

func (c *RedisCounter) Snapshot(ctx context.Context) (map[string]int64, error) {
	raw, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}

	out := make(map[string]int64, len(raw))
	for agent, val := range raw {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse count for %s: %w", agent, err)
		}
		out[agent] = n
	}
	return out, nil
}

// MemoryCounter is the process-local fallback when Redis is disabled.
type MemoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counts: make(map[string]int64)}
}

func (c *MemoryCounter) Increment(_ context.Context, agent string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[agent]++
	return c.counts[agent], nil
}

func (c *MemoryCounter) Snapshot(_ context.Context) (map[string]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out, nil
}
