package logic

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestSupersede_CancelsPrevious(t *testing.T) {
	s := NewSupersede()

	first, firstToken, firstDone := s.Begin(context.Background(), "session-a")
	second, secondToken, secondDone := s.Begin(context.Background(), "session-a")
	defer secondDone()

	if !errors.Is(first.Err(), context.Canceled) {
		t.Errorf("first request should be cancelled, err = %v", first.Err())
	}
	if second.Err() != nil {
		t.Errorf("second request cancelled: %v", second.Err())
	}
	if s.Current("session-a", firstToken) {
		t.Errorf("stale token reported current")
	}
	if !s.Current("session-a", secondToken) {
		t.Errorf("latest token not current")
	}

	// A late done from the superseded request must not clear the newer one
	firstDone()
	if !s.Current("session-a", secondToken) {
		t.Errorf("stale done cleared the newer request")
	}
}

func TestSupersede_KeysAreIndependent(t *testing.T) {
	s := NewSupersede()
	a, _, doneA := s.Begin(context.Background(), "a")
	_, _, doneB := s.Begin(context.Background(), "b")
	defer doneA()

	if a.Err() != nil {
		t.Errorf("request under another key was cancelled")
	}
	doneB()
	if s.InFlight() != 1 {
		t.Errorf("InFlight = %d, want 1", s.InFlight())
	}
}

func TestSupersede_Concurrent(t *testing.T) {
	s := NewSupersede()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, done := s.Begin(context.Background(), "shared")
			done()
		}()
	}
	wg.Wait()
	if s.InFlight() != 0 {
		t.Errorf("InFlight = %d after all requests finished", s.InFlight())
	}
}
