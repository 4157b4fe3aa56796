package scoutapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scout9/scout9-web/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
}

func TestGenerateReport_AppliesDefaults(t *testing.T) {
	var got map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/reports/generate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id":"r1"}`))
	})

	body, err := c.GenerateReport(context.Background(), GenerateRequest{TeamID: "47494"})
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if string(body) != `{"id":"r1"}` {
		t.Errorf("body = %s", body)
	}
	if got["teamId"] != "47494" || got["matchCount"] != float64(10) || got["titleId"] != "3" {
		t.Errorf("request body = %v", got)
	}
	if _, ok := got["teamName"]; ok {
		t.Errorf("teamName should be omitted when empty")
	}
}

func TestMatchup_QueryParameters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("team1") != "47494" || q.Get("team2") != "47558" || q.Get("title") != "lol" || q.Get("matches") != "20" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{}`))
	})
	if _, err := c.Matchup(context.Background(), MatchupRequest{Team1: "47494", Team2: "47558", Title: models.TitleLoL}); err != nil {
		t.Fatalf("Matchup: %v", err)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error field", http.StatusNotFound, `{"error":"Team not found"}`, "Team not found"},
		{"message field", http.StatusBadRequest, `{"message":"bad team"}`, "bad team"},
		{"error wins over message", http.StatusBadRequest, `{"error":"a","message":"b"}`, "a"},
		{"json without message", http.StatusInternalServerError, `{"detail":"x"}`, MessageRequestFailed},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, MessageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.Report(context.Background(), "r1")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if IsTransport(err) {
				t.Errorf("backend error reported as transport")
			}
		})
	}
}

func TestTimeoutMapsTo408(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx := WithTimeout(context.Background(), 50*time.Millisecond)
	_, err := c.Report(ctx, "slow")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if StatusOf(err) != StatusTimeout {
		t.Errorf("StatusOf = %d, want %d", StatusOf(err), StatusTimeout)
	}
	if MessageOf(err, "") != MessageTimeout {
		t.Errorf("MessageOf = %q", MessageOf(err, ""))
	}
}

func TestBackend408IsNotClientTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestTimeout)
		w.Write([]byte(`{"error":"Request timed out"}`))
	})

	_, err := c.Report(context.Background(), "r1")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrTimeout) {
		t.Errorf("backend 408 matched ErrTimeout")
	}
	if got := outcomeLabel(err); got != "error" {
		t.Errorf("outcomeLabel = %q, want error", got)
	}
	if StatusOf(err) != http.StatusRequestTimeout || MessageOf(err, "") != MessageTimeout {
		t.Errorf("err = %v, want backend status and message kept", err)
	}
}

func TestCallerCancellationPassesThrough(t *testing.T) {
	started := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.Report(ctx, "r1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Errorf("cancellation must not look like a timeout")
	}
}

func TestTransportFailureHasStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := New(Config{BaseURL: base, Timeout: time.Second})
	_, err := c.Health(context.Background())
	if !IsTransport(err) {
		t.Fatalf("err = %v, want transport error", err)
	}
	if StatusOf(err) != 0 {
		t.Errorf("StatusOf = %d, want 0", StatusOf(err))
	}
}

func TestListReports_Tolerant(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":12,"teamName":"T1","title":"lol","generatedAt":"2025-01-01","matchesAnalyzed":"10"}]`))
	})
	got, err := c.ListReports(context.Background())
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(got) != 1 || got[0].ID != "12" || got[0].MatchesAnalyzed != 10 || got[0].Title != models.TitleLoL {
		t.Errorf("ListReports = %+v", got)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	c := New(Config{BaseURL: "http://backend:8080///"})
	if c.BaseURL() != "http://backend:8080" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}
