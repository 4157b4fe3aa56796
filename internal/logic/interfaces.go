package logic

import (
	"context"

	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

// ScoutAPI is the subset of the backend client the report service needs.
// *scoutapi.Client satisfies it.
type ScoutAPI interface {
	GenerateReport(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error)
	Report(ctx context.Context, id string) ([]byte, error)
	ListReports(ctx context.Context) ([]models.ReportListItem, error)
	Matchup(ctx context.Context, req scoutapi.MatchupRequest) ([]byte, error)
}

// ReportService turns backend calls into view-model outcomes. Callers only
// branch on Outcome.Kind; the error policy of each operation lives here.
type ReportService interface {
	// View loads a stored report. Failures fall back to demo data.
	View(ctx context.Context, id string, title models.Title) Outcome
	// Generate builds a new report. Failures are fatal and carry the
	// backend's message.
	Generate(ctx context.Context, title models.Title, req scoutapi.GenerateRequest) Outcome
	// Compare loads the head-to-head of two selected teams. Failures fall
	// back to the demo matchup relabeled with the selection.
	Compare(ctx context.Context, req scoutapi.MatchupRequest, team1, team2 models.Team) Outcome
	// Recent lists generated reports. Failures yield an empty list and a notice.
	Recent(ctx context.Context) ([]models.ReportListItem, string)
}
