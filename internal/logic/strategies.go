package logic

import (
	"fmt"
	"math"

	"github.com/scout9/scout9-web/internal/models"
)

// deriveCommonStrategies builds the narrative strategy lines once, from the
// metric block that matches the report title.
func deriveCommonStrategies(r *models.ScoutingReport) models.CommonStrategies {
	cs := models.CommonStrategies{
		AttackPatterns:      []models.StrategyInsight{},
		DefenseSetups:       []models.StrategyInsight{},
		ObjectivePriorities: []models.StrategyInsight{},
		TimingPatterns:      []models.StrategyInsight{},
	}
	sample := r.MatchesAnalyzed

	if m := r.TeamStrategy.LoL; m != nil && r.Title == models.TitleLoL {
		cs.ObjectivePriorities = append(cs.ObjectivePriorities,
			models.StrategyInsight{
				Text:       fmt.Sprintf("Prioritizes first Drake (%d%% contest rate)", pct(m.FirstDragonRate)),
				Metric:     "firstDragonRate",
				Value:      m.FirstDragonRate,
				SampleSize: sample,
				Context:    "Early Game",
			},
			models.StrategyInsight{
				Text:       fmt.Sprintf("First tower at ~%s mins (%d%% first tower rate)", wholeOrUnknown(m.FirstTowerAvgTime), pct(m.FirstTowerRate)),
				Metric:     "firstTowerRate",
				Value:      m.FirstTowerRate,
				SampleSize: sample,
				Context:    "Early Game",
			},
		)
		duration := 0.0
		if m.AvgGameDuration != nil {
			duration = *m.AvgGameDuration
		}
		cs.TimingPatterns = append(cs.TimingPatterns, models.StrategyInsight{
			Text:       fmt.Sprintf("Average game duration: %s minutes", wholeOrUnknown(m.AvgGameDuration)),
			Metric:     "avgGameDuration",
			Value:      duration,
			SampleSize: sample,
			Context:    "Game Pace",
		})
	}

	if m := r.TeamStrategy.VAL; m != nil && r.Title == models.TitleValorant {
		cs.AttackPatterns = append(cs.AttackPatterns, models.StrategyInsight{
			Text:       fmt.Sprintf("Attack rounds won at %d%% (pistol %d%%)", pct(m.AttackWinRate), pct(m.AttackPistolWinRate)),
			Metric:     "attackWinRate",
			Value:      m.AttackWinRate,
			SampleSize: sample,
			Context:    "Attack",
		})
		cs.DefenseSetups = append(cs.DefenseSetups, models.StrategyInsight{
			Text:       fmt.Sprintf("Defense rounds held at %d%% (pistol %d%%)", pct(m.DefenseWinRate), pct(m.DefensePistolWinRate)),
			Metric:     "defenseWinRate",
			Value:      m.DefenseWinRate,
			SampleSize: sample,
			Context:    "Defense",
		})
		if len(m.MapPool) > 0 {
			best := m.MapPool[0]
			cs.ObjectivePriorities = append(cs.ObjectivePriorities, models.StrategyInsight{
				Text:       fmt.Sprintf("Most played map: %s (%d games, %d%% win rate)", best.MapName, best.GamesPlayed, pct(best.WinRate)),
				Metric:     "mapWinRate",
				Value:      best.WinRate,
				SampleSize: best.GamesPlayed,
				Context:    "Map Pool",
			})
		}
		cs.TimingPatterns = append(cs.TimingPatterns, models.StrategyInsight{
			Text:       fmt.Sprintf("Full buy rounds convert at %d%%", pct(m.FullBuyWinRate)),
			Metric:     "fullBuyWinRate",
			Value:      m.FullBuyWinRate,
			SampleSize: sample,
			Context:    "Economy",
		})
	}
	return cs
}

func pct(v float64) int {
	return int(math.Round(v * 100))
}

func wholeOrUnknown(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%.0f", *v)
}
