package logic

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

var reportOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scout9_report_outcomes_total",
	Help: "Report operations by outcome",
}, []string{"operation", "outcome"})

type reportService struct {
	api    ScoutAPI
	logger *zap.SugaredLogger
}

func NewReportService(api ScoutAPI, logger *zap.Logger) ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportService{api: api, logger: logger.Sugar()}
}

// =============================================================================
// REPORTS
// =============================================================================

func (s *reportService) View(ctx context.Context, id string, title models.Title) Outcome {
	data, err := s.api.Report(ctx, id)
	if err == nil {
		var report *models.ScoutingReport
		report, err = NormalizeReport(data)
		if err == nil {
			return s.record("view", Outcome{Kind: OutcomeOK, Report: report})
		}
	}
	s.logger.Warnw("Report fetch failed, serving demo data", "report_id", id, "title", title, "error", err)
	return s.record("view", Outcome{
		Kind:   OutcomeFallback,
		Report: FallbackReport(title),
		Notice: NoticeReportFallback,
		Err:    err,
	})
}

func (s *reportService) Generate(ctx context.Context, title models.Title, req scoutapi.GenerateRequest) Outcome {
	if req.TitleID == "" {
		req.TitleID = title.BackendID()
	}
	data, err := s.api.GenerateReport(ctx, req)
	if err != nil {
		s.logger.Errorw("Report generation failed", "team_id", req.TeamID, "title", title, "status", scoutapi.StatusOf(err), "error", err)
		return s.record("generate", Outcome{
			Kind:    OutcomeFatal,
			Message: scoutapi.MessageOf(err, MessageGenerateFailed),
			Err:     err,
		})
	}

	report, err := NormalizeReport(data)
	if err != nil {
		s.logger.Errorw("Generated report could not be mapped", "team_id", req.TeamID, "error", err)
		return s.record("generate", Outcome{Kind: OutcomeFatal, Message: MessageGenerateFailed, Err: err})
	}

	s.logger.Infow("Report generated", "report_id", report.ID, "team", report.OpponentTeam.Name, "matches", report.MatchesAnalyzed)
	return s.record("generate", Outcome{Kind: OutcomeOK, Report: report})
}

func (s *reportService) Recent(ctx context.Context) ([]models.ReportListItem, string) {
	items, err := s.api.ListReports(ctx)
	if err != nil {
		s.logger.Warnw("Report listing failed", "error", err)
		reportOutcomes.WithLabelValues("recent", OutcomeFallback.String()).Inc()
		return []models.ReportListItem{}, NoticeRecentFailed
	}
	reportOutcomes.WithLabelValues("recent", OutcomeOK.String()).Inc()
	if items == nil {
		items = []models.ReportListItem{}
	}
	return items, ""
}

// =============================================================================
// HEAD TO HEAD
// =============================================================================

func (s *reportService) Compare(ctx context.Context, req scoutapi.MatchupRequest, team1, team2 models.Team) Outcome {
	data, err := s.api.Matchup(ctx, req)
	if err == nil {
		var h2h *models.HeadToHead
		h2h, err = NormalizeHeadToHead(data, req.Title, team1, team2)
		if err == nil {
			return s.record("compare", Outcome{Kind: OutcomeOK, HeadToHead: h2h})
		}
	}
	s.logger.Warnw("Matchup fetch failed, serving demo data", "team1", req.Team1, "team2", req.Team2, "error", err)
	return s.record("compare", Outcome{
		Kind:       OutcomeFallback,
		HeadToHead: FallbackHeadToHead(req.Title, team1, team2),
		Notice:     NoticeCompareFallback,
		Err:        err,
	})
}

func (s *reportService) record(op string, o Outcome) Outcome {
	reportOutcomes.WithLabelValues(op, o.Kind.String()).Inc()
	return o
}
