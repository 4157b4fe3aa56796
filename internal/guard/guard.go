// Package guard holds short-lived submission locks so a report generation
// cannot be triggered twice while one is already running.
package guard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "scout9:lock:"

var acquireTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scout9_guard_acquire_total",
	Help: "Submission lock attempts by result",
}, []string{"store", "result"})

// Submissions is a set of expiring locks.
type Submissions interface {
	// Acquire takes key for ttl and returns the token that owns it. It
	// reports false when the key is already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// Release frees key only while token still owns it. A lock that expired
	// and was taken by someone else is left alone.
	Release(ctx context.Context, key, token string) error
	Ping(ctx context.Context) error
}

// Key joins lock key parts.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

func record(store string, ok bool, err error) {
	switch {
	case err != nil:
		acquireTotal.WithLabelValues(store, "error").Inc()
	case ok:
		acquireTotal.WithLabelValues(store, "acquired").Inc()
	default:
		acquireTotal.WithLabelValues(store, "held").Inc()
	}
}

// ============================================================================
// REDIS
// ============================================================================

// releaseScript deletes KEYS[1] only when it still holds ARGV[1].
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisSubmissions struct {
	rdb redis.Cmdable
}

// NewRedis stores locks in redis with SET NX PX. The value is the owner token.
func NewRedis(rdb redis.Cmdable) Submissions {
	return &redisSubmissions{rdb: rdb}
}

func (s *redisSubmissions) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	record("redis", ok, err)
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (s *redisSubmissions) Release(ctx context.Context, key, token string) error {
	return releaseScript.Run(ctx, s.rdb, []string{keyPrefix + key}, token).Err()
}

func (s *redisSubmissions) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// ============================================================================
// MEMORY
// ============================================================================

type memoryLock struct {
	token   string
	expires time.Time
}

type memorySubmissions struct {
	mu    sync.Mutex
	locks map[string]memoryLock
	now   func() time.Time
}

// NewMemory keeps locks in the process. Used when no redis is configured.
func NewMemory() Submissions {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memorySubmissions {
	return &memorySubmissions{locks: make(map[string]memoryLock), now: now}
}

func (s *memorySubmissions) Acquire(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if l, ok := s.locks[key]; ok && now.Before(l.expires) {
		record("memory", false, nil)
		return "", false, nil
	}
	token := uuid.NewString()
	s.locks[key] = memoryLock{token: token, expires: now.Add(ttl)}

	// Sweep expired entries so abandoned keys don't accumulate
	for k, l := range s.locks {
		if !now.Before(l.expires) {
			delete(s.locks, k)
		}
	}
	record("memory", true, nil)
	return token, true, nil
}

func (s *memorySubmissions) Release(_ context.Context, key, token string) error {
	s.mu.Lock()
	if l, ok := s.locks[key]; ok && l.token == token {
		delete(s.locks, key)
	}
	s.mu.Unlock()
	return nil
}

func (s *memorySubmissions) Ping(context.Context) error { return nil }
