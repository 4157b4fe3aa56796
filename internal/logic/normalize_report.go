package logic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/scout9/scout9-web/internal/models"
)

// ErrMapping marks a payload that cannot be turned into a view model: it is
// not JSON, or an identifying field is missing.
var ErrMapping = errors.New("report mapping failed")

func mappingError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMapping, fmt.Sprintf(format, args...))
}

// NormalizeReport turns a raw backend payload into a fully populated
// ScoutingReport. It is pure: the same bytes always produce the same report,
// and the JSON encoding of a normalized report normalizes to itself.
func NormalizeReport(data []byte) (*models.ScoutingReport, error) {
	var raw models.RawReport
	if err := models.UnmarshalFlex(data, &raw); err != nil {
		return nil, mappingError("%v", err)
	}
	return NormalizeRawReport(&raw)
}

// NormalizeRawReport applies the alias and default policy to a decoded payload.
func NormalizeRawReport(raw *models.RawReport) (*models.ScoutingReport, error) {
	if raw == nil {
		return nil, mappingError("empty payload")
	}
	id := strings.TrimSpace(raw.ID.String())
	if id == "" {
		return nil, mappingError("missing id")
	}
	if raw.OpponentTeam == nil || (raw.OpponentTeam.ID == "" && strings.TrimSpace(raw.OpponentTeam.Name) == "") {
		return nil, mappingError("report %s: missing opponentTeam", id)
	}
	title, ok := models.ParseTitle(raw.Title.String())
	if !ok {
		return nil, mappingError("report %s: missing or unknown title %q", id, raw.Title)
	}

	report := &models.ScoutingReport{
		ID:               id,
		GeneratedAt:      raw.GeneratedAt,
		OpponentTeam:     normalizeTeam(raw.OpponentTeam),
		Title:            title,
		MatchesAnalyzed:  raw.MatchesAnalyzed.Int(),
		ExecutiveSummary: raw.ExecutiveSummary,
		HowToWin:         normalizeHowToWin(raw.HowToWin),
		PlayerProfiles:   make([]models.PlayerProfile, 0, len(raw.PlayerProfiles)),
		Compositions:     normalizeCompositions(raw.Compositions),
		TrendAnalysis:    normalizeTrends(raw.TrendAnalysis),
	}

	analysis := raw.TeamStrategy
	if analysis == nil {
		analysis = raw.TeamAnalysis
	}
	report.TeamStrategy = normalizeTeamAnalysis(analysis, report)

	for i := range raw.PlayerProfiles {
		report.PlayerProfiles = append(report.PlayerProfiles, normalizePlayer(&raw.PlayerProfiles[i], title))
	}

	report.CommonStrategies = deriveCommonStrategies(report)
	return report, nil
}

func normalizeTeam(t *models.RawTeam) models.Team {
	if t == nil {
		return models.Team{}
	}
	team := models.Team{
		ID:      t.ID.String(),
		Name:    strings.TrimSpace(t.Name),
		LogoURL: t.LogoURL,
		Color:   t.Color,
	}
	if team.Name == "" {
		team.Name = "Team " + team.ID
	}
	return team
}

func normalizeTeamAnalysis(raw *models.RawTeamAnalysis, report *models.ScoutingReport) models.TeamAnalysis {
	ta := models.TeamAnalysis{
		TeamID:          report.OpponentTeam.ID,
		TeamName:        report.OpponentTeam.Name,
		Title:           report.Title,
		MatchesAnalyzed: report.MatchesAnalyzed,
		RecentForm:      models.FormStable,
		Strengths:       []models.Insight{},
		Weaknesses:      []models.Insight{},
	}
	if raw == nil {
		return ta
	}

	if id := raw.TeamID.String(); id != "" {
		ta.TeamID = id
	}
	if name := strings.TrimSpace(raw.TeamName); name != "" {
		ta.TeamName = name
	}
	if raw.MatchesAnalyzed.Valid {
		ta.MatchesAnalyzed = raw.MatchesAnalyzed.Int()
	}
	ta.GamesAnalyzed = raw.GamesAnalyzed.Int()
	ta.WinRate = rate(raw.WinRate)
	ta.RecentForm = models.ParseForm(raw.RecentForm)
	ta.Strengths = normalizeInsights(raw.Strengths)
	ta.Weaknesses = normalizeInsights(raw.Weaknesses)

	// The report title decides which metric block is meaningful
	switch report.Title {
	case models.TitleLoL:
		ta.LoL = normalizeLoLMetrics(raw.LoLMetrics)
	case models.TitleValorant:
		ta.VAL = normalizeVALMetrics(raw.VALMetrics)
	}
	return ta
}

func normalizeLoLMetrics(m *models.RawLoLMetrics) *models.LoLMetrics {
	if m == nil {
		return nil
	}
	return &models.LoLMetrics{
		FirstBloodRate:    rate(m.FirstBloodRate),
		FirstDragonRate:   rate(m.FirstDragonRate),
		FirstTowerRate:    rate(m.FirstTowerRate),
		FirstTowerAvgTime: nonNegativePtr(m.FirstTowerAvgTime),
		GoldDiff15:        m.GoldDiff15.Or(0),
		DragonControlRate: rate(m.DragonControlRate),
		HeraldControlRate: rate(m.HeraldControlRate),
		BaronControlRate:  rate(m.BaronControlRate),
		ElderDragonRate:   rate(m.ElderDragonRate),
		AvgGameDuration:   nonNegativePtr(m.AvgGameDuration),
		EarlyGameRating:   m.EarlyGameRating.Or(0),
		MidGameRating:     m.MidGameRating.Or(0),
		LateGameRating:    m.LateGameRating.Or(0),
		AggressionScore:   m.AggressionScore.Or(0),
		WinConditions:     nonEmptyStrings(m.WinConditions),
	}
}

// normalizeInsights resolves heading text as title, text, description and
// body text as text, description, title.
func normalizeInsights(raw []models.RawInsight) []models.Insight {
	out := make([]models.Insight, 0, len(raw))
	for _, in := range raw {
		heading := models.FirstString(in.Title, in.Text, in.Description)
		if heading == "" {
			continue
		}
		out = append(out, models.Insight{
			Title:      heading,
			Text:       models.FirstString(in.Text, in.Description, in.Title),
			Importance: strings.ToUpper(strings.TrimSpace(in.Importance)),
			Value:      in.Value.Or(0),
			SampleSize: in.SampleSize.Int(),
		})
	}
	return out
}

func normalizeCompositions(raw *models.RawCompositions) models.CompositionAnalysis {
	out := models.CompositionAnalysis{
		TopCompositions:     []models.CompositionInsight{},
		FirstPickPriorities: []models.FirstPickPriority{},
		CommonBans:          []string{},
		FlexPicks:           []string{},
	}
	if raw == nil {
		return out
	}
	for _, c := range raw.TopCompositions {
		chars := nonEmptyStrings(c.Characters)
		if len(chars) == 0 {
			continue
		}
		out.TopCompositions = append(out.TopCompositions, models.CompositionInsight{
			Characters:  chars,
			Frequency:   rate(c.Frequency),
			WinRate:     rate(c.WinRate),
			GamesPlayed: c.GamesPlayed.Int(),
			Archetype:   c.Archetype,
		})
	}
	for _, p := range raw.FirstPickPriorities {
		if strings.TrimSpace(p.Character) == "" {
			continue
		}
		out.FirstPickPriorities = append(out.FirstPickPriorities, models.FirstPickPriority{
			Character:   p.Character,
			Rate:        rate(p.Rate),
			WinRate:     rate(p.WinRate),
			GamesPlayed: p.GamesPlayed.Int(),
		})
	}
	out.CommonBans = nonEmptyStrings(raw.CommonBans)
	out.FlexPicks = nonEmptyStrings(raw.FlexPicks)
	return out
}

func normalizeTrends(raw *models.RawTrendAnalysis) *models.TrendAnalysis {
	if raw == nil {
		return nil
	}
	out := &models.TrendAnalysis{
		FormTrend:     models.ParseForm(raw.FormTrend),
		RecentResults: make([]models.MatchResult, 0, len(raw.RecentResults)),
		WinRateTrend:  make([]float64, 0, len(raw.WinRateTrend)),
		KDATrend:      make([]float64, 0, len(raw.KDATrend)),
	}
	for _, r := range raw.RecentResults {
		out.RecentResults = append(out.RecentResults, models.MatchResult{
			Date:     r.Date,
			Opponent: r.Opponent,
			Won:      r.Won,
			Score:    r.Score.String(),
		})
	}
	for _, v := range raw.WinRateTrend {
		if v.Valid {
			out.WinRateTrend = append(out.WinRateTrend, clamp01(v.Value))
		}
	}
	for _, v := range raw.KDATrend {
		if v.Valid {
			out.KDATrend = append(out.KDATrend, math.Max(0, v.Value))
		}
	}
	return out
}

// ============================================================================
// numeric helpers
// ============================================================================

// rate reads a fraction, substituting 0 when absent and clamping to [0,1].
func rate(f models.FlexFloat) float64 {
	return clamp01(f.Or(0))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegativePtr(f models.FlexFloat) *float64 {
	if !f.Valid {
		return nil
	}
	v := math.Max(0, f.Value)
	return &v
}

// ratio divides with a guarded denominator.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func nonEmptyStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
