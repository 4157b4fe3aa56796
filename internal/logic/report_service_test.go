package logic

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

const liveReport = `{"id":"r-42","opponentTeam":{"id":"47494","name":"T1"},"title":"lol","matchesAnalyzed":10}`

var errDown = &scoutapi.APIError{Status: 0, Message: "connection refused", Endpoint: "report"}

func TestView(t *testing.T) {
	tests := []struct {
		name       string
		reportFunc func(ctx context.Context, id string) ([]byte, error)
		wantKind   OutcomeKind
		wantID     string
		wantNotice string
	}{
		{
			name:       "live",
			reportFunc: func(ctx context.Context, id string) ([]byte, error) { return []byte(liveReport), nil },
			wantKind:   OutcomeOK,
			wantID:     "r-42",
		},
		{
			name:       "transport failure",
			reportFunc: func(ctx context.Context, id string) ([]byte, error) { return nil, errDown },
			wantKind:   OutcomeFallback,
			wantID:     "mock-1",
			wantNotice: NoticeReportFallback,
		},
		{
			name: "server error",
			reportFunc: func(ctx context.Context, id string) ([]byte, error) {
				return nil, &scoutapi.APIError{Status: 500, Message: "boom"}
			},
			wantKind:   OutcomeFallback,
			wantID:     "mock-1",
			wantNotice: NoticeReportFallback,
		},
		{
			name:       "mapping failure",
			reportFunc: func(ctx context.Context, id string) ([]byte, error) { return []byte(`{"title":"lol"}`), nil },
			wantKind:   OutcomeFallback,
			wantID:     "mock-1",
			wantNotice: NoticeReportFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReportService(&MockScoutAPI{ReportFunc: tt.reportFunc}, zap.NewNop())
			out := svc.View(context.Background(), "r-42", models.TitleLoL)
			if out.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", out.Kind, tt.wantKind)
			}
			if out.Report == nil || out.Report.ID != tt.wantID {
				t.Errorf("Report = %+v, want id %s", out.Report, tt.wantID)
			}
			if out.Notice != tt.wantNotice {
				t.Errorf("Notice = %q, want %q", out.Notice, tt.wantNotice)
			}
		})
	}
}

func TestView_FallbackMatchesTitle(t *testing.T) {
	svc := NewReportService(&MockScoutAPI{
		ReportFunc: func(ctx context.Context, id string) ([]byte, error) { return nil, errDown },
	}, nil)
	out := svc.View(context.Background(), "x", models.TitleValorant)
	if out.Report == nil || out.Report.ID != "mock-val-1" || out.Report.OpponentTeam.Name != "Sentinels" {
		t.Errorf("fallback = %+v", out.Report)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name        string
		genFunc     func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error)
		wantKind    OutcomeKind
		wantMessage string
	}{
		{
			name: "success",
			genFunc: func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error) {
				return []byte(liveReport), nil
			},
			wantKind: OutcomeOK,
		},
		{
			name: "backend message surfaces",
			genFunc: func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error) {
				return nil, &scoutapi.APIError{Status: 404, Message: "Team not found"}
			},
			wantKind:    OutcomeFatal,
			wantMessage: "Team not found",
		},
		{
			name: "timeout",
			genFunc: func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error) {
				return nil, &scoutapi.APIError{Status: scoutapi.StatusTimeout, Message: scoutapi.MessageTimeout}
			},
			wantKind:    OutcomeFatal,
			wantMessage: scoutapi.MessageTimeout,
		},
		{
			name: "non api error",
			genFunc: func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error) {
				return nil, errors.New("exploded")
			},
			wantKind:    OutcomeFatal,
			wantMessage: MessageGenerateFailed,
		},
		{
			name: "unmappable payload",
			genFunc: func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error) {
				return []byte(`not json`), nil
			},
			wantKind:    OutcomeFatal,
			wantMessage: MessageGenerateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReportService(&MockScoutAPI{GenerateReportFunc: tt.genFunc}, zap.NewNop())
			out := svc.Generate(context.Background(), models.TitleLoL, scoutapi.GenerateRequest{TeamID: "47494"})
			if out.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", out.Kind, tt.wantKind)
			}
			if out.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", out.Message, tt.wantMessage)
			}
			if out.Fatal() && out.Report != nil {
				t.Errorf("fatal outcome carries a report")
			}
			if out.Fallback() {
				t.Errorf("generation must never fall back to demo data")
			}
		})
	}
}

func TestGenerate_TitleIDFromTitle(t *testing.T) {
	var got scoutapi.GenerateRequest
	svc := NewReportService(&MockScoutAPI{
		GenerateReportFunc: func(ctx context.Context, req scoutapi.GenerateRequest) ([]byte, error) {
			got = req
			return []byte(liveReport), nil
		},
	}, zap.NewNop())
	svc.Generate(context.Background(), models.TitleValorant, scoutapi.GenerateRequest{TeamID: "1079"})
	if got.TitleID != "6" {
		t.Errorf("TitleID = %q, want 6", got.TitleID)
	}
}

func TestCompare(t *testing.T) {
	req := scoutapi.MatchupRequest{Team1: fnc.ID, Team2: g2.ID, Title: models.TitleLoL}

	live := NewReportService(&MockScoutAPI{
		MatchupFunc: func(ctx context.Context, r scoutapi.MatchupRequest) ([]byte, error) {
			return []byte(`{"team1Id":"47376","team2Id":"47380","totalMatches":4,"team1Wins":1,"team2Wins":3}`), nil
		},
	}, zap.NewNop())
	out := live.Compare(context.Background(), req, fnc, g2)
	if !out.OK() || out.HeadToHead.Stats.Team2Wins != 3 || out.HeadToHead.Team1.Name != "Fnatic" {
		t.Errorf("live compare = %+v", out)
	}

	down := NewReportService(&MockScoutAPI{
		MatchupFunc: func(ctx context.Context, r scoutapi.MatchupRequest) ([]byte, error) { return nil, errDown },
	}, zap.NewNop())
	out = down.Compare(context.Background(), req, fnc, g2)
	if !out.Fallback() || out.Notice != NoticeCompareFallback {
		t.Fatalf("fallback compare = %+v", out)
	}
	h := out.HeadToHead
	if h.Team1 != fnc || h.Team2 != g2 {
		t.Errorf("fallback not relabeled: %+v vs %+v", h.Team1, h.Team2)
	}
	if h.Stats.TotalMatches != 8 {
		t.Errorf("fallback stats = %+v", h.Stats)
	}
}

func TestRecent(t *testing.T) {
	ok := NewReportService(&MockScoutAPI{
		ListReportsFunc: func(ctx context.Context) ([]models.ReportListItem, error) {
			return []models.ReportListItem{{ID: "r1", TeamName: "T1"}}, nil
		},
	}, zap.NewNop())
	items, notice := ok.Recent(context.Background())
	if len(items) != 1 || notice != "" {
		t.Errorf("Recent = %v, %q", items, notice)
	}

	failing := NewReportService(&MockScoutAPI{
		ListReportsFunc: func(ctx context.Context) ([]models.ReportListItem, error) { return nil, errDown },
	}, zap.NewNop())
	items, notice = failing.Recent(context.Background())
	if items == nil || len(items) != 0 || notice != NoticeRecentFailed {
		t.Errorf("Recent on failure = %v, %q", items, notice)
	}
}
