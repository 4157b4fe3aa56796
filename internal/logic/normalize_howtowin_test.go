package logic

import (
	"reflect"
	"testing"

	"github.com/scout9/scout9-web/internal/models"
)

func draftLayout(h models.HowToWin) map[models.DraftType][]string {
	out := map[models.DraftType][]string{}
	for _, t := range []models.DraftType{models.DraftBan, models.DraftPick, models.DraftTarget} {
		for _, d := range h.Draft(t) {
			out[t] = append(out[t], d.Character)
		}
	}
	return out
}

func TestNormalizeHowToWin_LegacyMatchesModern(t *testing.T) {
	legacy := mustNormalize(t, `{"id":"a","opponentTeam":{"id":"1"},"title":"lol","howToWin":{
		"winCondition":"Scale","confidenceScore":78,
		"draftStrategy":{
			"priorityBans":[{"character":"Nautilus","reason":"Signature","playerName":"Keria"},{"character":"Xin Zhao","reason":"Oner comfort"}],
			"recommendedPicks":[{"character":"Ornn","reason":"Scaling"}],
			"targetPicks":[{"character":"Control Mages","reason":"Uncomfortable"}]
		},
		"actionableInsights":[
			{"recommendation":"Ban Jinx","actionType":"BAN","impact":"HIGH"},
			{"recommendation":"Draft scaling","dataBacking":"45% late","actionType":"STRATEGY","confidence":85}
		],
		"inGameStrategy":[{"phase":"Early Game","timing":"0-10 min","strategy":"Play safe"}]
	}}`).HowToWin

	modern := mustNormalize(t, `{"id":"a","opponentTeam":{"id":"1"},"title":"lol","howToWin":{
		"winCondition":"Scale","confidenceScore":78,
		"draftRecommendations":[
			{"type":"ban","character":"Nautilus","reason":"Signature (Keria)","priority":1},
			{"type":"ban","character":"Xin Zhao","reason":"Oner comfort","priority":2},
			{"type":"pick","character":"Ornn","reason":"Scaling","priority":1},
			{"type":"target","character":"Control Mages","reason":"Uncomfortable","priority":1}
		],
		"weaknesses":[{"title":"Draft scaling","description":"45% late","evidence":"45% late","impact":85}],
		"inGameStrategies":[{"title":"Early Game","description":"Play safe","timing":"0-10 min"}]
	}}`).HowToWin

	if !reflect.DeepEqual(legacy, modern) {
		t.Errorf("legacy and modern shapes differ\nlegacy: %+v\nmodern: %+v", legacy, modern)
	}
	want := map[models.DraftType][]string{
		models.DraftBan:    {"Nautilus", "Xin Zhao"},
		models.DraftPick:   {"Ornn"},
		models.DraftTarget: {"Control Mages"},
	}
	if got := draftLayout(legacy); !reflect.DeepEqual(got, want) {
		t.Errorf("draft layout = %v, want %v", got, want)
	}
}

func TestNormalizeHowToWin_InsightsWithoutDraftStrategy(t *testing.T) {
	h := mustNormalize(t, `{"id":"a","opponentTeam":{"id":"1"},"title":"valorant","howToWin":{
		"confidenceScore":-5,
		"sampleSizeWarning":"Only 3 matches analyzed",
		"actionableInsights":[
			{"recommendation":"Ban Jett","dataBacking":"TenZ 1.8 KD","actionType":"BAN","impact":"MEDIUM"},
			{"recommendation":"Pick Viper","actionType":"pick","impact":"LOW"},
			{"recommendation":"TenZ","dataBacking":"28% first bloods","actionType":"TARGET_PLAYER","impact":"HIGH"},
			{"recommendation":"Force Bind","actionType":"FORCE_MAP","confidence":60},
			{"recommendation":"","actionType":"BAN"}
		]}}`).HowToWin

	if h.ConfidenceScore != 0 {
		t.Errorf("ConfidenceScore = %d, want 0", h.ConfidenceScore)
	}
	if !reflect.DeepEqual(h.Warnings, []string{"Only 3 matches analyzed"}) {
		t.Errorf("Warnings = %q", h.Warnings)
	}
	bans := h.Draft(models.DraftBan)
	if len(bans) != 1 || bans[0].Character != "Ban Jett" || bans[0].Priority != 2 || bans[0].Reason != "TenZ 1.8 KD" {
		t.Errorf("bans = %+v", bans)
	}
	picks := h.Draft(models.DraftPick)
	if len(picks) != 1 || picks[0].Priority != 3 {
		t.Errorf("picks = %+v", picks)
	}
	if len(h.TargetPlayers) != 1 || h.TargetPlayers[0].PlayerName != "TenZ" || h.TargetPlayers[0].Priority != 1 {
		t.Errorf("targets = %+v", h.TargetPlayers)
	}
	if len(h.Weaknesses) != 1 || h.Weaknesses[0].Title != "Force Bind" || h.Weaknesses[0].Impact != 60 {
		t.Errorf("weaknesses = %+v", h.Weaknesses)
	}
}

func TestNormalizeHowToWin_Absent(t *testing.T) {
	h := mustNormalize(t, `{"id":"a","opponentTeam":{"id":"1"},"title":"lol"}`).HowToWin
	if h.WinCondition != "" || h.ConfidenceScore != 0 || len(h.DraftRecommendations) != 0 || h.TargetPlayers == nil {
		t.Errorf("HowToWin = %+v", h)
	}
}
