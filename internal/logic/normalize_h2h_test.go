package logic

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/scout9/scout9-web/internal/fixtures"
	"github.com/scout9/scout9-web/internal/models"
)

var (
	t1    = models.Team{ID: "47494", Name: "T1"}
	geng  = models.Team{ID: "47558", Name: "Gen.G Esports"}
	fnc   = models.Team{ID: "47376", Name: "Fnatic"}
	g2    = models.Team{ID: "47380", Name: "G2 Esports"}
	noSel = models.Team{}
)

func TestNormalizeHeadToHead_Fixture(t *testing.T) {
	h, err := NormalizeHeadToHead(fixtures.Matchup(), models.TitleLoL, noSel, noSel)
	if err != nil {
		t.Fatalf("NormalizeHeadToHead: %v", err)
	}
	if h.Team1.ID != "47494" || h.Team2.Name != "Gen.G Esports" {
		t.Errorf("teams = %+v vs %+v", h.Team1, h.Team2)
	}
	if h.Stats.TotalMatches != 8 || h.Stats.Team1Wins != 5 || h.Stats.Team2Wins != 3 {
		t.Errorf("stats = %+v", h.Stats)
	}
	if got := h.Stats.WinRate() * 100; got != 62.5 {
		t.Errorf("team1 win share = %v, want 62.5", got)
	}
	if len(h.Stats.KeyMatchups) != 2 || h.Stats.KeyMatchups[0].Player2.Nickname != "Chovy" {
		t.Errorf("key matchups = %+v", h.Stats.KeyMatchups)
	}
	if len(h.MatchHistory) != 2 || len(h.MatchHistory[0].Games) != 3 {
		t.Errorf("match history = %+v", h.MatchHistory)
	}
	if h.Insights == nil || h.Warnings == nil {
		t.Errorf("nil slices in canonical output")
	}
}

func TestNormalizeHeadToHead_SelectionWins(t *testing.T) {
	h, err := NormalizeHeadToHead(fixtures.Matchup(), models.TitleLoL, fnc, g2)
	if err != nil {
		t.Fatalf("NormalizeHeadToHead: %v", err)
	}
	if h.Team1 != fnc || h.Team2 != g2 {
		t.Errorf("teams = %+v vs %+v, want selection", h.Team1, h.Team2)
	}
}

func TestNormalizeHeadToHead_FlatBackendShape(t *testing.T) {
	payload := `{
		"team1Id":"47494","team1Name":"T1","team2Id":47558,"team2Name":"Gen.G Esports",
		"title":"lol","team1Wins":"4","team2Wins":3,
		"insights":[{"text":"T1 wins early"},"Gen.G scales"," "],
		"warnings":["Small sample"],
		"confidenceScore":140,
		"styleComparison":{
			"team1EarlyGameRating":80,"team2EarlyGameRating":60,
			"team1MidGameRating":70,"team2MidGameRating":72,
			"team1LateGameRating":40,"team2LateGameRating":75,"lateGameAdvantage":"EVEN"
		}}`

	h, err := NormalizeHeadToHead([]byte(payload), "", noSel, noSel)
	if err != nil {
		t.Fatalf("NormalizeHeadToHead: %v", err)
	}
	if h.Title != models.TitleLoL {
		t.Errorf("Title = %q", h.Title)
	}
	if h.Team2.ID != "47558" {
		t.Errorf("Team2 = %+v", h.Team2)
	}
	if h.Stats.TotalMatches != 7 {
		t.Errorf("TotalMatches = %d, want wins sum 7", h.Stats.TotalMatches)
	}
	if !reflect.DeepEqual(h.Insights, []string{"T1 wins early", "Gen.G scales"}) {
		t.Errorf("Insights = %q", h.Insights)
	}
	if h.ConfidenceScore != 100 {
		t.Errorf("ConfidenceScore = %d, want 100", h.ConfidenceScore)
	}

	s := h.Style
	if s == nil {
		t.Fatal("style comparison missing")
	}
	if s.EarlyGameAdvantage != models.AdvantageTeam1 {
		t.Errorf("early = %q, want team1", s.EarlyGameAdvantage)
	}
	if s.MidGameAdvantage != models.AdvantageEven {
		t.Errorf("mid = %q, want even (within epsilon)", s.MidGameAdvantage)
	}
	if s.LateGameAdvantage != models.AdvantageEven {
		t.Errorf("late = %q, backend label should be kept", s.LateGameAdvantage)
	}
}

func TestResolveAdvantage(t *testing.T) {
	tests := []struct {
		name   string
		given  string
		r1, r2 float64
		want   string
	}{
		{"label kept", "team2", 90, 10, models.AdvantageTeam2},
		{"rating gap", "", 82, 70, models.AdvantageTeam1},
		{"rating within epsilon", "", 72, 70, models.AdvantageEven},
		{"rate gap", "", 0.45, 0.56, models.AdvantageTeam2},
		{"rate within epsilon", "", 0.52, 0.50, models.AdvantageEven},
		{"unknown label derived", "mystery", 50, 90, models.AdvantageTeam2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveAdvantage(tt.given, tt.r1, tt.r2); got != tt.want {
				t.Errorf("resolveAdvantage(%q, %v, %v) = %q, want %q", tt.given, tt.r1, tt.r2, got, tt.want)
			}
		})
	}
}

func TestNormalizeHeadToHead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		title   models.Title
	}{
		{"invalid json", `[`, models.TitleLoL},
		{"missing teams", `{"totalMatches":3}`, models.TitleLoL},
		{"missing team2", `{"team1":{"id":"1"}}`, models.TitleLoL},
		{"unknown title", `{"team1":{"id":"1"},"team2":{"id":"2"},"title":"chess"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NormalizeHeadToHead([]byte(tt.payload), tt.title, noSel, noSel); !errors.Is(err, ErrMapping) {
				t.Errorf("err = %v, want ErrMapping", err)
			}
		})
	}
}

func TestNormalizeHeadToHead_TotalAbsent(t *testing.T) {
	h, err := NormalizeHeadToHead([]byte(`{"team1":{"id":"1"},"team2":{"id":"2"}}`), models.TitleValorant, noSel, noSel)
	if err != nil {
		t.Fatalf("NormalizeHeadToHead: %v", err)
	}
	if h.Stats.TotalMatches != 0 || h.Stats.WinRate() != 0 {
		t.Errorf("stats = %+v", h.Stats)
	}
}

func TestNormalizeHeadToHead_Idempotent(t *testing.T) {
	first, err := NormalizeHeadToHead(fixtures.Matchup(), models.TitleLoL, t1, geng)
	if err != nil {
		t.Fatalf("NormalizeHeadToHead: %v", err)
	}
	encoded, _ := json.Marshal(first)
	second, err := NormalizeHeadToHead(encoded, "", noSel, noSel)
	if err != nil {
		t.Fatalf("canonical output rejected: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("canonical output does not normalize to itself\n%+v\n%+v", first, second)
	}
}
