package logic

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Supersede tracks one in-flight request per key. Starting a new request
// under a key cancels the previous one, so a stale response can never
// overwrite a newer selection.
type Supersede struct {
	mu       sync.Mutex
	inflight map[string]inflight
}

type inflight struct {
	token  string
	cancel context.CancelFunc
}

func NewSupersede() *Supersede {
	return &Supersede{inflight: make(map[string]inflight)}
}

// Begin derives a cancellable context for key, cancelling whatever was in
// flight under it. done must be called when the request finishes; it only
// clears the entry if no newer request has replaced it.
func (s *Supersede) Begin(parent context.Context, key string) (ctx context.Context, token string, done func()) {
	ctx, cancel := context.WithCancel(parent)
	token = uuid.NewString()

	s.mu.Lock()
	if prev, ok := s.inflight[key]; ok {
		prev.cancel()
	}
	s.inflight[key] = inflight{token: token, cancel: cancel}
	s.mu.Unlock()

	done = func() {
		s.mu.Lock()
		if cur, ok := s.inflight[key]; ok && cur.token == token {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
		cancel()
	}
	return ctx, token, done
}

// Current reports whether token is still the latest request under key.
func (s *Supersede) Current(key, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.inflight[key]
	return ok && cur.token == token
}

// InFlight returns the number of keys with a live request.
func (s *Supersede) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}
