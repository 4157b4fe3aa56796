package logic

import (
	"math"
	"strings"

	"github.com/scout9/scout9-web/internal/models"
)

// normalizeHowToWin always yields the modern shape. When none of the modern
// lists carry entries it derives them from the legacy actionableInsights,
// draftStrategy and inGameStrategy fields.
func normalizeHowToWin(raw *models.RawHowToWin) models.HowToWin {
	h := models.HowToWin{
		Warnings:             []string{},
		Weaknesses:           []models.WeaknessTarget{},
		DraftRecommendations: []models.DraftRecommendation{},
		InGameStrategies:     []models.InGameStrategy{},
		TargetPlayers:        []models.PlayerTarget{},
	}
	if raw == nil {
		return h
	}

	h.WinCondition = strings.TrimSpace(raw.WinCondition)
	h.ConfidenceScore = clampInt(int(math.Round(raw.ConfidenceScore.Or(0))), 0, 100)
	h.Warnings = nonEmptyStrings(raw.Warnings)
	if w := strings.TrimSpace(raw.SampleSizeWarning); w != "" && !contains(h.Warnings, w) {
		h.Warnings = append(h.Warnings, w)
	}

	if hasModernShape(raw) {
		applyModern(&h, raw)
	} else {
		applyLegacy(&h, raw)
	}
	return h
}

func hasModernShape(raw *models.RawHowToWin) bool {
	return len(raw.DraftRecommendations) > 0 ||
		len(raw.InGameStrategies) > 0 ||
		len(raw.TargetPlayers) > 0 ||
		len(raw.Weaknesses) > 0
}

func applyModern(h *models.HowToWin, raw *models.RawHowToWin) {
	for _, w := range raw.Weaknesses {
		title := models.FirstString(w.Title, w.Description)
		if title == "" {
			continue
		}
		h.Weaknesses = append(h.Weaknesses, models.WeaknessTarget{
			Title:       title,
			Description: w.Description,
			Evidence:    w.Evidence,
			Impact:      math.Max(0, w.Impact.Or(0)),
		})
	}
	for i, d := range raw.DraftRecommendations {
		t, ok := parseDraftType(d.Type)
		if !ok || strings.TrimSpace(d.Character) == "" {
			continue
		}
		h.DraftRecommendations = append(h.DraftRecommendations, models.DraftRecommendation{
			Type:      t,
			Character: d.Character,
			Reason:    d.Reason,
			Priority:  priorityOr(d.Priority, i+1),
		})
	}
	for _, s := range raw.InGameStrategies {
		title := models.FirstString(s.Title, s.Description)
		if title == "" {
			continue
		}
		h.InGameStrategies = append(h.InGameStrategies, models.InGameStrategy{
			Title:       title,
			Description: s.Description,
			Timing:      s.Timing,
			Evidence:    s.Evidence,
		})
	}
	for i, p := range raw.TargetPlayers {
		if strings.TrimSpace(p.PlayerName) == "" {
			continue
		}
		h.TargetPlayers = append(h.TargetPlayers, models.PlayerTarget{
			PlayerName: p.PlayerName,
			Role:       p.Role,
			Reason:     p.Reason,
			Priority:   priorityOr(p.Priority, i+1),
		})
	}
}

func applyLegacy(h *models.HowToWin, raw *models.RawHowToWin) {
	if ds := raw.DraftStrategy; ds != nil {
		appendDraft(h, models.DraftBan, ds.PriorityBans)
		appendDraft(h, models.DraftPick, ds.RecommendedPicks)
		appendDraft(h, models.DraftTarget, ds.TargetPicks)
	}

	draftFromInsights := raw.DraftStrategy == nil
	rank := map[models.DraftType]int{}
	targets := 0
	for _, in := range raw.ActionableInsights {
		rec := strings.TrimSpace(in.Recommendation)
		if rec == "" {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(in.ActionType)) {
		case "BAN", "PICK":
			if !draftFromInsights {
				continue
			}
			t := models.DraftBan
			if strings.EqualFold(in.ActionType, "PICK") {
				t = models.DraftPick
			}
			rank[t]++
			h.DraftRecommendations = append(h.DraftRecommendations, models.DraftRecommendation{
				Type:      t,
				Character: rec,
				Reason:    in.DataBacking,
				Priority:  impactPriority(in.Impact, rank[t]),
			})
		case "TARGET_PLAYER":
			targets++
			h.TargetPlayers = append(h.TargetPlayers, models.PlayerTarget{
				PlayerName: rec,
				Reason:     in.DataBacking,
				Priority:   impactPriority(in.Impact, targets),
			})
		default:
			// STRATEGY, FORCE_MAP and unknown actions read as exploitable weaknesses
			h.Weaknesses = append(h.Weaknesses, models.WeaknessTarget{
				Title:       rec,
				Description: in.DataBacking,
				Evidence:    in.DataBacking,
				Impact:      math.Max(0, in.Confidence.Or(0)),
			})
		}
	}

	for _, s := range raw.InGameStrategy {
		title := models.FirstString(s.Phase, s.Strategy)
		if title == "" {
			continue
		}
		h.InGameStrategies = append(h.InGameStrategies, models.InGameStrategy{
			Title:       title,
			Description: s.Strategy,
			Timing:      s.Timing,
		})
	}
}

func appendDraft(h *models.HowToWin, t models.DraftType, items []models.RawDraftInsight) {
	n := 0
	for _, it := range items {
		if strings.TrimSpace(it.Character) == "" {
			continue
		}
		n++
		h.DraftRecommendations = append(h.DraftRecommendations, models.DraftRecommendation{
			Type:      t,
			Character: it.Character,
			Reason:    draftReason(it),
			Priority:  n,
		})
	}
}

// draftReason keeps the player a legacy entry was aimed at visible.
func draftReason(it models.RawDraftInsight) string {
	reason := strings.TrimSpace(it.Reason)
	if it.PlayerName == "" || strings.Contains(reason, it.PlayerName) {
		return reason
	}
	if reason == "" {
		return it.PlayerName
	}
	return reason + " (" + it.PlayerName + ")"
}

func parseDraftType(s string) (models.DraftType, bool) {
	switch models.DraftType(strings.ToLower(strings.TrimSpace(s))) {
	case models.DraftBan:
		return models.DraftBan, true
	case models.DraftPick:
		return models.DraftPick, true
	case models.DraftTarget:
		return models.DraftTarget, true
	}
	return "", false
}

// impactPriority ranks HIGH=1, MEDIUM=2, LOW=3 and falls back to position.
func impactPriority(impact string, position int) int {
	switch strings.ToUpper(strings.TrimSpace(impact)) {
	case "HIGH":
		return 1
	case "MEDIUM":
		return 2
	case "LOW":
		return 3
	}
	return position
}

func priorityOr(f models.FlexFloat, fallback int) int {
	if f.Valid && f.Value >= 1 {
		return int(f.Value)
	}
	return fallback
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
