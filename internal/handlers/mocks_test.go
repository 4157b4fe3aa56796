package handlers

import (
	"context"
	"time"

	"github.com/scout9/scout9-web/internal/logic"
	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

// MockReportService
type MockReportService struct {
	ViewFunc     func(ctx context.Context, id string, title models.Title) logic.Outcome
	GenerateFunc func(ctx context.Context, title models.Title, req scoutapi.GenerateRequest) logic.Outcome
	CompareFunc  func(ctx context.Context, req scoutapi.MatchupRequest, team1, team2 models.Team) logic.Outcome
	RecentFunc   func(ctx context.Context) ([]models.ReportListItem, string)
}

func (m *MockReportService) View(ctx context.Context, id string, title models.Title) logic.Outcome {
	if m.ViewFunc != nil {
		return m.ViewFunc(ctx, id, title)
	}
	return logic.Outcome{Kind: logic.OutcomeOK, Report: logic.FallbackReport(title)}
}

func (m *MockReportService) Generate(ctx context.Context, title models.Title, req scoutapi.GenerateRequest) logic.Outcome {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, title, req)
	}
	return logic.Outcome{Kind: logic.OutcomeOK, Report: logic.FallbackReport(title)}
}

func (m *MockReportService) Compare(ctx context.Context, req scoutapi.MatchupRequest, team1, team2 models.Team) logic.Outcome {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, req, team1, team2)
	}
	return logic.Outcome{Kind: logic.OutcomeOK, HeadToHead: logic.FallbackHeadToHead(req.Title, team1, team2)}
}

func (m *MockReportService) Recent(ctx context.Context) ([]models.ReportListItem, string) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx)
	}
	return []models.ReportListItem{}, ""
}

// MockUpstream
type MockUpstream struct {
	HealthFunc func(ctx context.Context) (*scoutapi.HealthStatus, error)
}

func (m *MockUpstream) Health(ctx context.Context) (*scoutapi.HealthStatus, error) {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return &scoutapi.HealthStatus{Status: "healthy", Service: "scout9"}, nil
}

// MockSubmissions
type MockSubmissions struct {
	AcquireFunc func(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	ReleaseFunc func(ctx context.Context, key, token string) error
	PingFunc    func(ctx context.Context) error
}

func (m *MockSubmissions) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, key, ttl)
	}
	return "token", true, nil
}

func (m *MockSubmissions) Release(ctx context.Context, key, token string) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, key, token)
	}
	return nil
}

func (m *MockSubmissions) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockGenerationQueue
type MockGenerationQueue struct {
	SubmitFunc func(ctx context.Context, fn func(ctx context.Context)) error
}

func (m *MockGenerationQueue) Submit(ctx context.Context, fn func(ctx context.Context)) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, fn)
	}
	fn(ctx)
	return nil
}

func (m *MockGenerationQueue) QueueDepth() int { return 0 }
