// Package cache memoizes solver results in Redis, keyed by board and
// algorithm. It is strictly advisory: the solver core never consults
// it, and a cache outage degrades to recomputing every solve.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/JiCorrales/traffic-jam-solver/internal/solver"
)

const keyPrefix = "rush:"

// CachedResult is a solver.Result tagged with the time it was stored.
type CachedResult struct {
	Result  solver.Result `json:"result"`
	CachedAt time.Time    `json:"cachedAt"`
}

// Cache is a pool-backed handle onto the Redis result cache. The zero
// value is not usable; construct one with Connect.
type Cache struct {
	pool *redis.Pool

	mu  sync.Mutex
	url string
}

// Connect builds a Cache against the given Redis URL, dialing lazily
// on first use the way the teacher's storage layer connects to
// Redis on first checkout.
func Connect(url string) *Cache {
	c := &Cache{url: url}
	c.pool = &redis.Pool{
		MaxIdle:     8,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(c.url)
		},
	}
	return c
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pool.Close()
}

func resultKey(algorithm, boardKey string) string {
	return keyPrefix + algorithm + ":" + boardKey
}

// Get returns the cached Result for (algorithm, boardKey), or ok=false
// if nothing is cached. On a Redis or decode error it also returns
// ok=false, together with that error.
func (c *Cache) Get(algorithm, boardKey string) (CachedResult, bool, error) {
	conn := c.pool.Get()
	defer conn.Close()

	raw, err := redis.Bytes(conn.Do("GET", resultKey(algorithm, boardKey)))
	if err == redis.ErrNil {
		return CachedResult{}, false, nil
	}
	if err != nil {
		return CachedResult{}, false, fmt.Errorf("cache get %s: %w", boardKey, err)
	}
	var cr CachedResult
	if err := json.Unmarshal(raw, &cr); err != nil {
		return CachedResult{}, false, fmt.Errorf("cache decode %s: %w", boardKey, err)
	}
	return cr, true, nil
}

// Put stores r under (algorithm, boardKey) with the given expiry. A
// zero ttl means the entry never expires.
func (c *Cache) Put(algorithm, boardKey string, r solver.Result, ttl time.Duration) error {
	conn := c.pool.Get()
	defer conn.Close()

	cr := CachedResult{Result: r, CachedAt: time.Now()}
	raw, err := json.Marshal(cr)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", boardKey, err)
	}
	key := resultKey(algorithm, boardKey)
	if ttl <= 0 {
		_, err = conn.Do("SET", key, raw)
	} else {
		_, err = conn.Do("SET", key, raw, "EX", int(ttl.Seconds()))
	}
	if err != nil {
		return fmt.Errorf("cache put %s: %w", boardKey, err)
	}
	return nil
}
