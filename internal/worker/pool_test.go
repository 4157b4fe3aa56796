package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSubmitRunsJob(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 2, QueueSize: 2, Logger: zap.NewNop()})
	pool.Start()
	defer pool.Stop()

	var ran int32
	if err := pool.Submit(context.Background(), func(ctx context.Context) {
		atomic.StoreInt32(&ran, 1)
	}); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&ran) != 1 {
		t.Error("job did not run before Submit returned")
	}
}

func TestSubmitFull(t *testing.T) {
	// No workers started, so the single queue slot stays occupied
	pool := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 1, Logger: zap.NewNop()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pool.Submit(ctx, func(context.Context) {})

	deadline := time.Now().Add(time.Second)
	for pool.QueueDepth() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	start := time.Now()
	err := pool.Submit(context.Background(), func(context.Context) {})
	if !errors.Is(err, ErrQueueFull) {
		t.Errorf("err = %v, want ErrQueueFull", err)
	}
	if d := time.Since(start); d > 10*time.Millisecond {
		t.Errorf("Submit took too long (%v), expected immediate return", d)
	}
}

func TestSubmitCallerLeaves(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 4, Logger: zap.NewNop()})
	pool.Start()
	defer pool.Stop()

	block := make(chan struct{})
	started := make(chan struct{})
	go pool.Submit(context.Background(), func(context.Context) {
		close(started)
		<-block
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	var ran int32
	err := pool.Submit(ctx, func(context.Context) { atomic.StoreInt32(&ran, 1) })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
	close(block)

	// Draining the queue must skip the abandoned job
	pool.Stop()
	if atomic.LoadInt32(&ran) != 0 {
		t.Error("abandoned job ran")
	}
}

func TestSubmitAfterStop(t *testing.T) {
	pool := NewPool(PoolConfig{Logger: zap.NewNop()})
	pool.Start()
	pool.Stop()
	pool.Stop()
	if err := pool.Submit(context.Background(), func(context.Context) {}); !errors.Is(err, ErrStopped) {
		t.Errorf("err = %v, want ErrStopped", err)
	}
}

func TestPanicIsContained(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 1, Logger: zap.NewNop()})
	pool.Start()
	defer pool.Stop()

	if err := pool.Submit(context.Background(), func(context.Context) { panic("boom") }); err != nil {
		t.Fatal(err)
	}
	if err := pool.Submit(context.Background(), func(context.Context) {}); err != nil {
		t.Errorf("worker died after panic: %v", err)
	}
}
