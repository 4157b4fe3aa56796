package logic

import (
	"context"

	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

// MockScoutAPI
type MockScoutAPI struct {
	GenerateReportFunc func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error)
	ReportFunc         func(ctx context.Context, id string) ([]byte, error)
	ListReportsFunc    func(ctx context.Context) ([]models.ReportListItem, error)
	MatchupFunc        func(ctx context.Context, req scoutapi.MatchupRequest) ([]byte, error)
}

func (m *MockScoutAPI) GenerateReport(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error) {
	if m.GenerateReportFunc != nil {
		return m.GenerateReportFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockScoutAPI) Report(ctx context.Context, id string) ([]byte, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockScoutAPI) ListReports(ctx context.Context) ([]models.ReportListItem, error) {
	if m.ListReportsFunc != nil {
		return m.ListReportsFunc(ctx)
	}
	return nil, nil
}

func (m *MockScoutAPI) Matchup(ctx context.Context, req scoutapi.MatchupRequest) ([]byte, error) {
	if m.MatchupFunc != nil {
		return m.MatchupFunc(ctx, req)
	}
	return nil, nil
}
