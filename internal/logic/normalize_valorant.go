package logic

import (
	"sort"
	"strings"

	"github.com/scout9/scout9-web/internal/models"
)

// Map strength thresholds on win rate when the backend omits a label.
const (
	strongMapWinRate  = 0.6
	averageMapWinRate = 0.45
)

func normalizeVALMetrics(m *models.RawVALMetrics) *models.VALMetrics {
	if m == nil {
		return nil
	}
	out := &models.VALMetrics{
		AttackWinRate:        rate(m.AttackWinRate),
		DefenseWinRate:       rate(m.DefenseWinRate),
		PistolWinRate:        rate(m.PistolWinRate),
		AttackPistolWinRate:  rate(m.AttackPistolWinRate),
		DefensePistolWinRate: rate(m.DefensePistolWinRate),
		FirstBloodRate:       rate(m.FirstBloodRate),
		FirstDeathRate:       rate(m.FirstDeathRate),
		AggressionScore:      nonNegative(m.AggressionScore),
		ClutchRate:           rate(m.ClutchRate),
		MapStats:             normalizeMapStats(m.MapStats),
	}

	eco := m.EconomyStats
	if eco == nil {
		eco = &models.RawEconomyStats{}
	}
	out.Economy = models.EconomyStats{
		EcoRounds:       resolveBucket(eco.EcoRounds, eco.EcoWins, eco.EcoWinRate, m.EcoRoundWinRate),
		ForceRounds:     resolveBucket(eco.ForceRounds, eco.ForceWins, eco.ForceWinRate, m.ForceBuyWinRate),
		FullBuyRounds:   resolveBucket(eco.FullBuyRounds, eco.FullBuyWins, eco.FullBuyWinRate, m.FullBuyWinRate),
		AvgLoadoutValue: nonNegative(eco.AvgLoadoutValue),
	}
	out.EcoRoundWinRate = clamp01(m.EcoRoundWinRate.Or(out.Economy.EcoRounds.WinRate))
	out.ForceBuyWinRate = clamp01(m.ForceBuyWinRate.Or(out.Economy.ForceRounds.WinRate))
	out.FullBuyWinRate = clamp01(m.FullBuyWinRate.Or(out.Economy.FullBuyRounds.WinRate))
	out.AvgTeamLoadout = nonNegative(models.FirstFloat(m.AvgTeamLoadout, eco.AvgLoadoutValue))

	out.MapPool = normalizeMapPool(m.MapPool)
	if len(out.MapPool) == 0 {
		out.MapPool = mapPoolFromStats(out.MapStats)
	}
	return out
}

// resolveBucket reads one spend tier. Rounds come from the number form or the
// object's total; wins from the flat field, then the object; the win rate
// from the flat field, the object, the metric-level rate, then wins/total.
// A total below the wins is raised to the wins.
func resolveBucket(rc models.RoundCount, flatWins, flatRate, metricRate models.FlexFloat) models.RoundBucket {
	total := rc.Total.Int()
	wins := models.FirstFloat(flatWins, rc.Won).Int()
	if wins > total {
		total = wins
	}
	winRate := models.FirstFloat(flatRate, rc.WinRate, metricRate)
	if !winRate.Valid {
		winRate = models.F(ratio(float64(wins), float64(total)))
	}
	return models.RoundBucket{
		Won:     wins,
		Total:   total,
		WinRate: clamp01(winRate.Value),
	}
}

func normalizeMapStats(raw map[string]models.RawMapStats) map[string]models.MapStats {
	out := make(map[string]models.MapStats, len(raw))
	for key, s := range raw {
		k := strings.ToLower(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		games := s.GamesPlayed.Int()
		wins := s.Wins.Int()
		winRate := s.WinRate
		if !winRate.Valid {
			winRate = models.F(ratio(float64(wins), float64(games)))
		}
		out[k] = models.MapStats{
			MapName:        models.FirstString(strings.TrimSpace(s.MapName), k),
			GamesPlayed:    games,
			Wins:           wins,
			WinRate:        clamp01(winRate.Value),
			AttackWinRate:  rate(s.AttackWinRate),
			DefenseWinRate: rate(s.DefenseWinRate),
		}
	}
	return out
}

// normalizeMapPool resolves name as mapName, map and games as gamesPlayed,
// games. Maps that were never played are dropped.
func normalizeMapPool(raw []models.RawMapPoolEntry) []models.MapPoolEntry {
	out := make([]models.MapPoolEntry, 0, len(raw))
	for _, e := range raw {
		games := models.FirstFloat(e.GamesPlayed, e.Games).Int()
		if games == 0 {
			continue
		}
		name := models.FirstString(strings.TrimSpace(e.MapName), strings.TrimSpace(e.Map), "unknown")
		winRate := rate(e.WinRate)
		out = append(out, models.MapPoolEntry{
			MapName:     strings.ToLower(name),
			GamesPlayed: games,
			WinRate:     winRate,
			Comfort:     rate(e.Comfort),
			Strength:    resolveStrength(e.Strength, winRate),
		})
	}
	return out
}

func mapPoolFromStats(stats map[string]models.MapStats) []models.MapPoolEntry {
	out := make([]models.MapPoolEntry, 0, len(stats))
	for key, s := range stats {
		if s.GamesPlayed == 0 {
			continue
		}
		out = append(out, models.MapPoolEntry{
			MapName:     key,
			GamesPlayed: s.GamesPlayed,
			WinRate:     s.WinRate,
			Strength:    resolveStrength("", s.WinRate),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GamesPlayed != out[j].GamesPlayed {
			return out[i].GamesPlayed > out[j].GamesPlayed
		}
		return out[i].MapName < out[j].MapName
	})
	return out
}

func resolveStrength(given string, winRate float64) models.MapStrength {
	switch models.MapStrength(strings.ToLower(strings.TrimSpace(given))) {
	case models.MapStrong:
		return models.MapStrong
	case models.MapAverage:
		return models.MapAverage
	case models.MapWeak:
		return models.MapWeak
	}
	switch {
	case winRate >= strongMapWinRate:
		return models.MapStrong
	case winRate >= averageMapWinRate:
		return models.MapAverage
	}
	return models.MapWeak
}
