package guard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryAcquireRelease(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	token, ok, err := s.Acquire(ctx, "a", time.Minute)
	if err != nil || !ok || token == "" {
		t.Fatalf("first acquire = %q, %v, %v", token, ok, err)
	}
	if _, ok, _ := s.Acquire(ctx, "a", time.Minute); ok {
		t.Error("second acquire succeeded while held")
	}
	if _, ok, _ := s.Acquire(ctx, "b", time.Minute); !ok {
		t.Error("independent key was blocked")
	}
	if err := s.Release(ctx, "a", token); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Acquire(ctx, "a", time.Minute); !ok {
		t.Error("acquire after release failed")
	}
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	s := newMemory(func() time.Time { return now })
	ctx := context.Background()

	s.Acquire(ctx, "a", time.Minute)
	now = now.Add(59 * time.Second)
	if _, ok, _ := s.Acquire(ctx, "a", time.Minute); ok {
		t.Error("lock expired early")
	}
	now = now.Add(time.Second)
	if _, ok, _ := s.Acquire(ctx, "a", time.Minute); !ok {
		t.Error("lock did not expire")
	}
	if len(s.locks) != 1 {
		t.Errorf("locks = %d, want 1", len(s.locks))
	}
}

func TestMemoryStaleReleaseKeepsNewOwner(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	s := newMemory(func() time.Time { return now })
	ctx := context.Background()

	stale, _, _ := s.Acquire(ctx, "a", time.Minute)
	now = now.Add(2 * time.Minute)
	current, ok, _ := s.Acquire(ctx, "a", time.Minute)
	if !ok {
		t.Fatal("acquire after expiry failed")
	}

	if err := s.Release(ctx, "a", stale); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Acquire(ctx, "a", time.Minute); ok {
		t.Error("expired owner released the new owner's lock")
	}
	s.Release(ctx, "a", current)
	if _, ok, _ := s.Acquire(ctx, "a", time.Minute); !ok {
		t.Error("owner release did not free the lock")
	}
}

func TestMemoryConcurrentAcquire(t *testing.T) {
	s := NewMemory()
	var won int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, _ := s.Acquire(context.Background(), "same", time.Minute); ok {
				atomic.AddInt32(&won, 1)
			}
		}()
	}
	wg.Wait()
	if won != 1 {
		t.Errorf("winners = %d, want 1", won)
	}
}

type MockRedis struct {
	redis.Cmdable
	SetNXFunc   func(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	EvalShaFunc func(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd
	PingFunc    func(ctx context.Context) *redis.StatusCmd
}

func (m *MockRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	return m.SetNXFunc(ctx, key, value, expiration)
}

func (m *MockRedis) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return m.EvalShaFunc(ctx, sha1, keys, args...)
}

func (m *MockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return m.PingFunc(ctx)
}

// newLockRedis runs SET NX and the release script against a map.
func newLockRedis() (*MockRedis, map[string]string) {
	store := map[string]string{}
	m := &MockRedis{
		SetNXFunc: func(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
			cmd := redis.NewBoolCmd(ctx)
			if _, held := store[key]; held {
				cmd.SetVal(false)
				return cmd
			}
			store[key] = value.(string)
			cmd.SetVal(true)
			return cmd
		},
		EvalShaFunc: func(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
			cmd := redis.NewCmd(ctx)
			if sha1 != releaseScript.Hash() {
				cmd.SetErr(errors.New("NOSCRIPT"))
				return cmd
			}
			if store[keys[0]] == args[0].(string) {
				delete(store, keys[0])
				cmd.SetVal(int64(1))
				return cmd
			}
			cmd.SetVal(int64(0))
			return cmd
		},
		PingFunc: func(ctx context.Context) *redis.StatusCmd {
			cmd := redis.NewStatusCmd(ctx)
			cmd.SetErr(errors.New("connection refused"))
			return cmd
		},
	}
	return m, store
}

func TestRedisSubmissions(t *testing.T) {
	m, store := newLockRedis()
	var gotTTL time.Duration
	setNX := m.SetNXFunc
	m.SetNXFunc = func(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd {
		gotTTL = ttl
		return setNX(ctx, key, value, ttl)
	}
	s := NewRedis(m)
	ctx := context.Background()
	key := Key("sess", "lol", "47494")

	token, ok, err := s.Acquire(ctx, key, 6*time.Minute)
	if err != nil || !ok {
		t.Fatalf("acquire = %v, %v", ok, err)
	}
	if store["scout9:lock:sess:lol:47494"] != token || gotTTL != 6*time.Minute {
		t.Errorf("store = %v, ttl = %v, want token %q for 6m", store, gotTTL, token)
	}
	if _, ok, _ := s.Acquire(ctx, key, 6*time.Minute); ok {
		t.Error("second acquire succeeded while held")
	}
	if err := s.Release(ctx, key, token); err != nil {
		t.Fatal(err)
	}
	if len(store) != 0 {
		t.Errorf("store after release = %v", store)
	}
	if err := s.Ping(ctx); err == nil {
		t.Error("ping error swallowed")
	}
}

func TestRedisReleaseChecksOwner(t *testing.T) {
	m, store := newLockRedis()
	s := NewRedis(m)
	ctx := context.Background()

	stale, _, _ := s.Acquire(ctx, "a", time.Minute)
	// The TTL ran out and another request took the key
	delete(store, keyPrefix+"a")
	current, ok, _ := s.Acquire(ctx, "a", time.Minute)
	if !ok || current == stale {
		t.Fatalf("reacquire = %q, %v", current, ok)
	}

	if err := s.Release(ctx, "a", stale); err != nil {
		t.Fatal(err)
	}
	if store[keyPrefix+"a"] != current {
		t.Errorf("stale release removed the new owner's lock: %v", store)
	}
}
