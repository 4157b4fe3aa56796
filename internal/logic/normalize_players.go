package logic

import (
	"math"
	"strings"

	"github.com/scout9/scout9-web/internal/models"
)

const maxThreatLevel = 10

func normalizePlayer(raw *models.RawPlayerProfile, title models.Title) models.PlayerProfile {
	p := models.PlayerProfile{
		PlayerID:       raw.PlayerID.String(),
		Nickname:       models.FirstString(strings.TrimSpace(raw.Nickname), "Unknown"),
		Role:           strings.TrimSpace(raw.Role),
		TeamID:         raw.TeamID.String(),
		GamesPlayed:    raw.GamesPlayed.Int(),
		KDA:            nonNegative(raw.KDA),
		AvgKills:       nonNegative(raw.AvgKills),
		AvgDeaths:      nonNegative(raw.AvgDeaths),
		AvgAssists:     nonNegative(raw.AvgAssists),
		CharacterPool:  make([]models.CharacterStats, 0, len(raw.CharacterPool)),
		SignaturePicks: nonEmptyStrings(raw.SignaturePicks),
		ThreatLevel:    clampInt(int(math.Round(raw.ThreatLevel.Or(0))), 0, maxThreatLevel),
		ThreatReason:   raw.ThreatReason,
		Weaknesses:     normalizeInsights(raw.Weaknesses),
		Tendencies:     nonEmptyStrings(raw.Tendencies),
		AssistRatio:    nonNegativePtr(raw.AssistRatio),
	}

	for _, c := range raw.CharacterPool {
		if cs, ok := normalizeCharacter(c); ok {
			p.CharacterPool = append(p.CharacterPool, cs)
		}
	}

	p.Multikills = normalizeMultikills(raw.MultikillStats, p.GamesPlayed)

	// Weapon breakdowns only exist for VALORANT
	if title == models.TitleValorant && len(raw.WeaponStats) > 0 {
		p.WeaponStats = make([]models.WeaponStat, 0, len(raw.WeaponStats))
		for _, w := range raw.WeaponStats {
			p.WeaponStats = append(p.WeaponStats, normalizeWeapon(w))
		}
	}

	if len(raw.SynergyPartners) > 0 {
		p.SynergyPartners = make([]models.SynergyPartner, 0, len(raw.SynergyPartners))
		for _, s := range raw.SynergyPartners {
			p.SynergyPartners = append(p.SynergyPartners, models.SynergyPartner{
				PlayerID:        s.PlayerID.String(),
				PlayerName:      models.FirstString(s.PlayerName, s.PlayerID.String(), "Unknown"),
				AssistsGiven:    s.AssistsGiven.Int(),
				AssistsReceived: s.AssistsReceived.Int(),
				SynergyScore:    nonNegative(s.SynergyScore),
			})
		}
	}

	if len(raw.AbilityUsage) > 0 {
		p.AbilityUsage = make([]models.AbilityUsage, 0, len(raw.AbilityUsage))
		for _, a := range raw.AbilityUsage {
			p.AbilityUsage = append(p.AbilityUsage, normalizeAbility(a, p.GamesPlayed))
		}
	}
	return p
}

// normalizeCharacter resolves name as name, character and games as games,
// gamesPlayed. Entries with neither name alias are dropped.
func normalizeCharacter(c models.RawCharacterStats) (models.CharacterStats, bool) {
	name := models.FirstString(strings.TrimSpace(c.Name), strings.TrimSpace(c.Character))
	if name == "" {
		return models.CharacterStats{}, false
	}
	games := models.FirstFloat(c.Games, c.GamesPlayed).Int()
	wins := c.Wins.Int()
	losses := c.Losses.Int()
	if !c.Losses.Valid && c.Wins.Valid && games >= wins {
		losses = games - wins
	}

	winRate := c.WinRate
	if !winRate.Valid && c.Wins.Valid {
		winRate = models.F(ratio(float64(wins), float64(games)))
	}

	var avgKDA *float64
	if kda := models.FirstFloat(c.AvgKDA, c.KDA); kda.Valid {
		v := math.Max(0, kda.Value)
		avgKDA = &v
	}

	return models.CharacterStats{
		Name:     name,
		Games:    games,
		Wins:     wins,
		Losses:   losses,
		WinRate:  rate(winRate),
		AvgKDA:   avgKDA,
		PickRate: rate(c.PickRate),
	}, true
}

// normalizeMultikills prefers the short field names (doubles) over the long
// ones (doubleKills) per tier.
func normalizeMultikills(m *models.RawMultikillStats, gamesPlayed int) *models.MultikillStats {
	if m == nil {
		return nil
	}
	out := &models.MultikillStats{
		Doubles: models.FirstFloat(m.Doubles, m.DoubleKills).Int(),
		Triples: models.FirstFloat(m.Triples, m.TripleKills).Int(),
		Quadras: models.FirstFloat(m.Quadras, m.QuadraKills).Int(),
		Pentas:  models.FirstFloat(m.Pentas, m.PentaKills).Int(),
	}
	if m.TotalMultikills.Valid {
		out.Total = m.TotalMultikills.Int()
	} else {
		out.Total = out.Doubles + out.Triples + out.Quadras + out.Pentas
	}
	if m.AvgPerGame.Valid {
		out.AvgPerGame = math.Max(0, m.AvgPerGame.Value)
	} else {
		out.AvgPerGame = ratio(float64(out.Total), float64(gamesPlayed))
	}
	return out
}

func normalizeWeapon(w models.RawWeaponStat) models.WeaponStat {
	share := models.FirstFloat(w.KillShare, w.Percentage).Or(0)
	// Shares above 1 were sent as percentages
	if share > 1 {
		share /= 100
	}
	return models.WeaponStat{
		WeaponName: models.FirstString(strings.TrimSpace(w.WeaponName), strings.TrimSpace(w.Weapon), "Unknown"),
		Kills:      w.Kills.Int(),
		KillShare:  clamp01(share),
	}
}

func normalizeAbility(a models.RawAbilityUsage, gamesPlayed int) models.AbilityUsage {
	count := models.FirstFloat(a.UsageCount, a.Uses).Int()
	perGame := a.UsagePerGame.Or(ratio(float64(count), float64(gamesPlayed)))
	return models.AbilityUsage{
		AbilityName:  models.FirstString(strings.TrimSpace(a.AbilityName), strings.TrimSpace(a.Ability), strings.TrimSpace(a.AbilityID), "Unknown"),
		UsageCount:   count,
		UsagePerGame: math.Max(0, perGame),
		Kills:        a.Kills.Int(),
	}
}

func nonNegative(f models.FlexFloat) float64 {
	return math.Max(0, f.Or(0))
}
