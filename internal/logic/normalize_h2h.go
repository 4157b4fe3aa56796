package logic

import (
	"math"
	"strings"

	"github.com/scout9/scout9-web/internal/models"
)

// Ratings closer than this are reported as even. Ratings on a 0-100 scale use
// the ratingEpsilon, fractional rates the rateEpsilon.
const (
	ratingEpsilon = 5.0
	rateEpsilon   = 0.05
)

// NormalizeHeadToHead builds the comparison view model. team1 and team2 are
// the caller's selections and take precedence over any team the payload
// names; either may be zero, in which case the payload must identify it.
func NormalizeHeadToHead(data []byte, title models.Title, team1, team2 models.Team) (*models.HeadToHead, error) {
	var raw models.RawHeadToHead
	if err := models.UnmarshalFlex(data, &raw); err != nil {
		return nil, mappingError("%v", err)
	}

	t1 := pickTeam(team1, raw.Team1, raw.Team1ID.String(), raw.Team1Name)
	t2 := pickTeam(team2, raw.Team2, raw.Team2ID.String(), raw.Team2Name)
	if t1.ID == "" || t2.ID == "" {
		return nil, mappingError("matchup: missing team identifiers")
	}
	if !title.Valid() {
		parsed, ok := models.ParseTitle(raw.Title.String())
		if !ok {
			return nil, mappingError("matchup: missing or unknown title %q", raw.Title)
		}
		title = parsed
	}

	h := &models.HeadToHead{
		Team1:           t1,
		Team2:           t2,
		Title:           title,
		MatchHistory:    normalizeMatchHistory(raw.MatchHistory),
		Stats:           normalizeH2HStats(&raw),
		Insights:        nonEmptyStrings(raw.Insights),
		Warnings:        nonEmptyStrings(raw.Warnings),
		ConfidenceScore: clampInt(int(math.Round(raw.ConfidenceScore.Or(0))), 0, 100),
	}
	if raw.StyleComparison != nil {
		h.Style = normalizeStyle(raw.StyleComparison)
	}
	return h, nil
}

func pickTeam(selected models.Team, raw *models.RawTeam, flatID, flatName string) models.Team {
	if selected.ID != "" {
		return selected
	}
	if raw != nil && raw.ID != "" {
		return normalizeTeam(raw)
	}
	if flatID != "" {
		return normalizeTeam(&models.RawTeam{ID: models.FlexString(flatID), Name: flatName})
	}
	return models.Team{}
}

// normalizeH2HStats reads the flat record first, then the nested stats
// object. When the wins add up to more than the match count, the count is
// raised to match.
func normalizeH2HStats(raw *models.RawHeadToHead) models.H2HStats {
	nested := raw.Stats
	if nested == nil {
		nested = &models.RawH2HStats{}
	}
	s := models.H2HStats{
		TotalMatches:    models.FirstFloat(raw.TotalMatches, nested.TotalMatches).Int(),
		Team1Wins:       models.FirstFloat(raw.Team1Wins, nested.Team1Wins).Int(),
		Team2Wins:       models.FirstFloat(raw.Team2Wins, nested.Team2Wins).Int(),
		AvgGameDuration: math.Max(0, models.FirstFloat(raw.AvgGameDuration, nested.AvgGameDuration).Or(0)),
		CommonPicks:     models.CommonPicks{Team1: []string{}, Team2: []string{}},
		KeyMatchups:     make([]models.KeyMatchup, 0, len(nested.KeyMatchups)),
	}
	if s.Team1Wins+s.Team2Wins > s.TotalMatches {
		s.TotalMatches = s.Team1Wins + s.Team2Wins
	}
	if cp := nested.CommonPicks; cp != nil {
		s.CommonPicks.Team1 = nonEmptyStrings(cp.Team1)
		s.CommonPicks.Team2 = nonEmptyStrings(cp.Team2)
	}
	for _, km := range nested.KeyMatchups {
		s.KeyMatchups = append(s.KeyMatchups, models.KeyMatchup{
			Player1:      normalizeMatchupPlayer(km.Player1),
			Player2:      normalizeMatchupPlayer(km.Player2),
			GamesPlayed:  km.GamesPlayed.Int(),
			Significance: km.Significance,
		})
	}
	return s
}

func normalizeMatchupPlayer(p models.RawMatchupPlayer) models.MatchupPlayer {
	return models.MatchupPlayer{
		PlayerID: p.PlayerID.String(),
		Nickname: models.FirstString(p.Nickname, "Unknown"),
		Role:     p.Role,
		WinRate:  rate(p.WinRate),
		AvgKDA:   nonNegative(p.AvgKDA),
	}
}

func normalizeMatchHistory(raw []models.RawH2HMatch) []models.H2HMatch {
	out := make([]models.H2HMatch, 0, len(raw))
	for _, m := range raw {
		match := models.H2HMatch{
			MatchID:        m.MatchID.String(),
			Date:           m.Date,
			Winner:         m.Winner.String(),
			Score:          m.Score.String(),
			TournamentName: m.TournamentName,
			Games:          make([]models.H2HGame, 0, len(m.Games)),
		}
		for _, g := range m.Games {
			match.Games = append(match.Games, models.H2HGame{
				GameNumber: g.GameNumber.Int(),
				WinnerID:   g.WinnerID.String(),
				Duration:   nonNegative(g.Duration),
			})
		}
		out = append(out, match)
	}
	return out
}

func normalizeStyle(raw *models.RawStyleComparison) *models.StyleComparison {
	s := &models.StyleComparison{
		Team1EarlyGameRating: nonNegative(raw.Team1EarlyGameRating),
		Team2EarlyGameRating: nonNegative(raw.Team2EarlyGameRating),
		EarlyGameInsight:     raw.EarlyGameInsight,
		Team1MidGameRating:   nonNegative(raw.Team1MidGameRating),
		Team2MidGameRating:   nonNegative(raw.Team2MidGameRating),
		MidGameInsight:       raw.MidGameInsight,
		Team1LateGameRating:  nonNegative(raw.Team1LateGameRating),
		Team2LateGameRating:  nonNegative(raw.Team2LateGameRating),
		LateGameInsight:      raw.LateGameInsight,
		Team1Aggression:      nonNegative(raw.Team1Aggression),
		Team2Aggression:      nonNegative(raw.Team2Aggression),
		StyleInsight:         raw.StyleInsight,
	}
	s.EarlyGameAdvantage = resolveAdvantage(raw.EarlyGameAdvantage, s.Team1EarlyGameRating, s.Team2EarlyGameRating)
	s.MidGameAdvantage = resolveAdvantage(raw.MidGameAdvantage, s.Team1MidGameRating, s.Team2MidGameRating)
	s.LateGameAdvantage = resolveAdvantage(raw.LateGameAdvantage, s.Team1LateGameRating, s.Team2LateGameRating)
	return s
}

// resolveAdvantage keeps a recognised backend label and otherwise compares
// the two ratings, treating differences within the epsilon as even.
func resolveAdvantage(given string, r1, r2 float64) string {
	switch strings.ToLower(strings.TrimSpace(given)) {
	case models.AdvantageTeam1:
		return models.AdvantageTeam1
	case models.AdvantageTeam2:
		return models.AdvantageTeam2
	case models.AdvantageEven:
		return models.AdvantageEven
	}
	eps := ratingEpsilon
	if r1 <= 1 && r2 <= 1 {
		eps = rateEpsilon
	}
	switch diff := r1 - r2; {
	case diff > eps:
		return models.AdvantageTeam1
	case diff < -eps:
		return models.AdvantageTeam2
	}
	return models.AdvantageEven
}
