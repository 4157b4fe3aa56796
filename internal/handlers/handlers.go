package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scout9/scout9-web/internal/guard"
	"github.com/scout9/scout9-web/internal/logic"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// GenerationQueue admits report generations. *worker.Pool satisfies it.
type GenerationQueue interface {
	Submit(ctx context.Context, fn func(ctx context.Context)) error
	QueueDepth() int
}

// Upstream reports whether the scouting backend is reachable.
type Upstream interface {
	Health(ctx context.Context) (*scoutapi.HealthStatus, error)
}

type Config struct {
	Reports   logic.ReportService
	Upstream  Upstream
	Queue     GenerationQueue
	Guard     guard.Submissions
	Supersede *logic.Supersede
	Logger    *zap.Logger

	AllowedOrigins      []string
	RequestTimeout      time.Duration
	GenerateLockTTL     time.Duration
	DefaultMatchCount   int
	DefaultMatchupGames int
}

type Handler struct {
	reports   logic.ReportService
	upstream  Upstream
	queue     GenerationQueue
	guard     guard.Submissions
	supersede *logic.Supersede
	logger    *zap.SugaredLogger
	validator *validator.Validate

	allowedOrigins      []string
	requestTimeout      time.Duration
	lockTTL             time.Duration
	defaultMatchCount   int
	defaultMatchupGames int
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Guard == nil {
		cfg.Guard = guard.NewMemory()
	}
	if cfg.Supersede == nil {
		cfg.Supersede = logic.NewSupersede()
	}
	if cfg.GenerateLockTTL <= 0 {
		cfg.GenerateLockTTL = 6 * time.Minute
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 6 * time.Minute
	}
	if cfg.DefaultMatchCount <= 0 {
		cfg.DefaultMatchCount = scoutapi.DefaultMatchCount
	}
	if cfg.DefaultMatchupGames <= 0 {
		cfg.DefaultMatchupGames = scoutapi.DefaultMatchupGames
	}
	return &Handler{
		reports:             cfg.Reports,
		upstream:            cfg.Upstream,
		queue:               cfg.Queue,
		guard:               cfg.Guard,
		supersede:           cfg.Supersede,
		logger:              cfg.Logger.Sugar(),
		validator:           validator.New(),
		allowedOrigins:      cfg.AllowedOrigins,
		requestTimeout:      cfg.RequestTimeout,
		lockTTL:             cfg.GenerateLockTTL,
		defaultMatchCount:   cfg.DefaultMatchCount,
		defaultMatchupGames: cfg.DefaultMatchupGames,
	}
}
