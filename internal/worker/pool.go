// Package worker bounds how many report generations run against the
// scouting backend at once. Excess submissions are shed instead of queueing
// without limit.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// ErrQueueFull is returned by Submit when every slot and queue entry is taken.
var ErrQueueFull = errors.New("generation queue full")

// ErrStopped is returned by Submit after Stop.
var ErrStopped = errors.New("worker pool stopped")

// Prometheus metrics
var (
	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout9_generate_jobs_processed_total",
		Help: "Total number of generation jobs run by workers",
	})

	jobsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout9_generate_jobs_skipped_total",
		Help: "Generation jobs whose caller left before a worker picked them up",
	})

	jobsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout9_generate_jobs_load_shed_total",
		Help: "Generation jobs rejected because the queue was full",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scout9_generate_queue_depth",
		Help: "Current depth of the generation queue",
	})

	queueWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scout9_generate_queue_wait_seconds",
		Help:    "Time a generation job waited for a worker",
		Buckets: prometheus.DefBuckets,
	})
)

// Job is one unit of work. It runs with its submitter's context.
type Job struct {
	ctx      context.Context
	run      func(ctx context.Context)
	done     chan struct{}
	enqueued time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Logger      *zap.Logger
}

// Pool manages a fixed set of workers fed by a bounded queue
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop rejects new jobs and waits for queued ones to finish
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.logger.Info("Stopping worker pool...")
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Submit queues fn and waits until it has run or ctx is done. It never
// blocks on a full queue: the job is shed with ErrQueueFull.
func (p *Pool) Submit(ctx context.Context, fn func(ctx context.Context)) error {
	job := Job{ctx: ctx, run: fn, done: make(chan struct{}), enqueued: time.Now()}

	p.mu.RLock()
	if p.stopped {
		p.mu.RUnlock()
		return ErrStopped
	}
	select {
	case p.jobQueue <- job:
		queueDepth.Set(float64(len(p.jobQueue)))
	default:
		p.mu.RUnlock()
		jobsLoadShed.Inc()
		p.logger.Warnw("Generation queue full, shedding job", "queueSize", p.config.QueueSize)
		return ErrQueueFull
	}
	p.mu.RUnlock()

	select {
	case <-job.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		queueDepth.Set(float64(len(p.jobQueue)))
		queueWait.Observe(time.Since(job.enqueued).Seconds())

		if job.ctx.Err() != nil {
			// Submitter already gave up
			jobsSkipped.Inc()
			close(job.done)
			continue
		}
		p.runJob(id, job)
	}
}

func (p *Pool) runJob(id int, job Job) {
	defer close(job.done)
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorw("Job panicked", "worker", id, "panic", r)
		}
	}()
	job.run(job.ctx)
	jobsProcessed.Inc()
}
