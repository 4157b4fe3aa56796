package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/scout9/scout9-web/internal/models"
)

// Display caps per list.
const (
	maxSummaryInsights = 3
	maxTargetPlayers   = 6
	maxDraftEntries    = 6
	maxCompositions    = 5
	maxFirstPicks      = 5
	maxCommonBans      = 5
	maxMaps            = 6
)

// ReportPage renders a full scouting report. notice is shown above the
// report when the data is a fallback.
func ReportPage(r *models.ScoutingReport, notice string) templ.Component {
	sections := []templ.Component{
		Banner(notice),
		reportHeader(r),
		ExecutiveSummary(r),
		HowToWin(r.HowToWin),
		CommonStrategies(r.CommonStrategies),
	}
	if r.Title == models.TitleValorant {
		sections = append(sections, MapPerformance(r.TeamStrategy.VAL), Economy(r.TeamStrategy.VAL))
	}
	sections = append(sections,
		PlayerTendencies(r.PlayerProfiles, r.Title),
		Compositions(r.Compositions, r.Title),
		TrendAnalysis(r.TrendAnalysis),
	)
	return Page(r.OpponentTeam.Name+" Scouting Report", r.Title, Sequence(sections...))
}

func reportHeader(r *models.ScoutingReport) templ.Component {
	return component(func(b *writer) {
		b.open("div", "report-header")
		b.link(GenerateURL(r.Title), "back", "Back")
		b.el("h1", "", r.OpponentTeam.Name)
		b.openAttrs("p", "class", "report-meta", "data-report-id", r.ID)
		b.textf("%s scouting report · %d matches analyzed", r.Title.DisplayName(), r.MatchesAnalyzed)
		if r.GeneratedAt != "" {
			b.text(" · " + r.GeneratedAt)
		}
		b.close("p")
		b.close("div")
	})
}

func ExecutiveSummary(r *models.ScoutingReport) templ.Component {
	return component(func(b *writer) {
		ta := r.TeamStrategy
		b.openAttrs("section", "id", "executive-summary")
		b.el("h2", "", "Executive Summary")
		b.el("p", "summary", r.ExecutiveSummary)

		b.open("div", "stats")
		b.stat("Win Rate", FormatPercent(ta.WinRate, 0), WinRateClass(ta.WinRate))
		b.stat("Matches", strconv.Itoa(r.MatchesAnalyzed), "")
		b.stat("Form", FormLabel(ta.RecentForm), "form-"+string(ta.RecentForm))
		b.close("div")

		insightList(b, "strengths", "Key Strengths", limit(ta.Strengths, maxSummaryInsights))
		insightList(b, "weaknesses", "Exploitable Weaknesses", limit(ta.Weaknesses, maxSummaryInsights))

		if m := ta.LoL; m != nil {
			b.open("div", "playstyle")
			b.el("h3", "", "Playstyle Profile")
			b.stat("Early Game", strconv.Itoa(int(m.EarlyGameRating)), "")
			b.stat("Mid Game", strconv.Itoa(int(m.MidGameRating)), "")
			b.stat("Late Game", strconv.Itoa(int(m.LateGameRating)), "")
			b.close("div")
		}
		if m := ta.VAL; m != nil {
			b.open("div", "side-performance")
			b.el("h3", "", "Side Performance")
			b.stat("Attack", FormatPercent(m.AttackWinRate, 0), WinRateClass(m.AttackWinRate))
			b.stat("Defense", FormatPercent(m.DefenseWinRate, 0), WinRateClass(m.DefenseWinRate))
			b.close("div")
		}
		b.close("section")
	})
}

func insightList(b *writer, class, heading string, items []models.Insight) {
	if len(items) == 0 {
		return
	}
	b.open("div", class)
	b.el("h3", "", heading)
	b.open("ul", "")
	for _, in := range items {
		b.el("li", ImpactClass(in.Importance), in.Title)
	}
	b.close("ul")
	b.close("div")
}

func HowToWin(h models.HowToWin) templ.Component {
	return component(func(b *writer) {
		b.openAttrs("section", "id", "how-to-win")
		b.el("h2", "", "How to Win")

		b.open("div", "win-condition")
		b.el("h3", "", "Win Condition")
		b.el("p", "", h.WinCondition)
		b.close("div")
		b.stat("Confidence", strconv.Itoa(h.ConfidenceScore)+"%", ConfidenceClass(h.ConfidenceScore))

		if len(h.Warnings) > 0 {
			b.open("ul", "warnings")
			for _, w := range h.Warnings {
				b.el("li", "warning", w)
			}
			b.close("ul")
		}

		if targets := limit(h.TargetPlayers, maxTargetPlayers); len(targets) > 0 {
			b.open("div", "target-players")
			b.el("h3", "", "Target Players")
			b.open("ul", "")
			for _, p := range targets {
				b.open("li", "")
				b.el("strong", "", p.PlayerName)
				if p.Role != "" {
					b.el("span", "role", p.Role)
				}
				b.el("span", "reason", p.Reason)
				b.close("li")
			}
			b.close("ul")
			b.close("div")
		}

		if len(h.Weaknesses) > 0 {
			b.open("div", "exploitable-weaknesses")
			b.el("h3", "", "Exploitable Weaknesses")
			b.open("ul", "")
			for _, w := range h.Weaknesses {
				b.open("li", "")
				b.el("strong", "", w.Title)
				if w.Description != "" && w.Description != w.Title {
					b.el("span", "description", w.Description)
				}
				b.close("li")
			}
			b.close("ul")
			b.close("div")
		}

		b.open("div", "draft-strategy")
		b.el("h3", "", "Draft Strategy")
		draftList(b, "priority-bans", "Priority Bans", h.Draft(models.DraftBan))
		draftList(b, "recommended-picks", "Recommended Picks", h.Draft(models.DraftPick))
		draftList(b, "force-picks", "Force Their Picks", h.Draft(models.DraftTarget))
		b.close("div")

		if len(h.InGameStrategies) > 0 {
			b.open("div", "in-game-strategy")
			b.el("h3", "", "In-Game Strategy")
			b.open("ol", "timeline")
			for _, s := range h.InGameStrategies {
				b.open("li", "")
				b.el("strong", "", s.Title)
				if s.Timing != "" {
					b.el("span", "timing", s.Timing)
				}
				b.el("p", "", s.Description)
				b.close("li")
			}
			b.close("ol")
			b.close("div")
		}
		b.close("section")
	})
}

func draftList(b *writer, class, heading string, items []models.DraftRecommendation) {
	items = limit(items, maxDraftEntries)
	if len(items) == 0 {
		return
	}
	b.open("div", class)
	b.el("h4", "", heading)
	b.open("ul", "")
	for _, d := range items {
		b.open("li", "")
		b.el("strong", "character", d.Character)
		b.el("span", "reason", d.Reason)
		b.close("li")
	}
	b.close("ul")
	b.close("div")
}

func Compositions(c models.CompositionAnalysis, title models.Title) templ.Component {
	return component(func(b *writer) {
		b.openAttrs("section", "id", "compositions")
		if title == models.TitleValorant {
			b.el("h2", "", "Agent Compositions")
		} else {
			b.el("h2", "", "Team Compositions")
		}

		if comps := limit(c.TopCompositions, maxCompositions); len(comps) > 0 {
			b.open("div", "top-compositions")
			b.el("h3", "", "Most Played Compositions")
			for _, comp := range comps {
				b.open("div", "composition")
				b.el("p", "characters", strings.Join(comp.Characters, ", "))
				if comp.Archetype != "" {
					b.el("span", "archetype", comp.Archetype)
				}
				b.stat("Played", FormatPercent(comp.Frequency, 0)+" ("+strconv.Itoa(comp.GamesPlayed)+")", "played")
				b.stat("Win Rate", FormatPercent(comp.WinRate, 0), WinRateClass(comp.WinRate))
				b.close("div")
			}
			b.close("div")
		}

		if picks := limit(c.FirstPickPriorities, maxFirstPicks); len(picks) > 0 {
			b.open("div", "first-picks")
			b.el("h3", "", "First Pick Priorities")
			b.open("ul", "")
			for _, p := range picks {
				b.open("li", "")
				b.el("strong", "", p.Character)
				b.el("span", "rate", FormatPercent(p.Rate, 0))
				b.close("li")
			}
			b.close("ul")
			b.close("div")
		}

		if bans := limit(c.CommonBans, maxCommonBans); len(bans) > 0 {
			b.open("div", "common-bans")
			b.el("h3", "", "Common Bans")
			b.open("ul", "")
			for _, ban := range bans {
				b.el("li", "", ban)
			}
			b.close("ul")
			b.close("div")
		}
		b.close("section")
	})
}

func PlayerTendencies(players []models.PlayerProfile, title models.Title) templ.Component {
	return component(func(b *writer) {
		if len(players) == 0 {
			return
		}
		b.openAttrs("section", "id", "player-tendencies")
		b.el("h2", "", "Player Tendencies")
		b.open("div", "players")
		for _, p := range players {
			playerCard(b, p, title)
		}
		b.close("div")
		b.close("section")
	})
}

func playerCard(b *writer, p models.PlayerProfile, title models.Title) {
	b.openAttrs("article", "class", "player", "data-player", p.Nickname)
	b.el("h3", "", p.Nickname)
	b.el("span", "role", p.Role)
	b.stat("Threat", strconv.Itoa(p.ThreatLevel)+"/10", ThreatClass(p.ThreatLevel))
	b.stat("KDA:", FormatDecimal(p.KDA), "")
	if p.ThreatReason != "" {
		b.el("p", "threat-reason", p.ThreatReason)
	}

	if picks := limit(p.SignaturePicks, 3); len(picks) > 0 {
		b.el("p", "signature-picks", strings.Join(picks, ", "))
	}
	if pool := limit(p.CharacterPool, 3); len(pool) > 0 {
		b.open("ul", "character-pool")
		for _, c := range pool {
			b.open("li", "")
			b.el("strong", "", c.Name)
			b.textf(" %d games ", c.Games)
			b.el("span", WinRateClass(c.WinRate), FormatPercent(c.WinRate, 0))
			b.close("li")
		}
		b.close("ul")
	}
	if tendencies := limit(p.Tendencies, 2); len(tendencies) > 0 {
		b.open("ul", "tendencies")
		for _, t := range tendencies {
			b.el("li", "", t)
		}
		b.close("ul")
	}

	if mk := p.Multikills; mk != nil && mk.Total > 0 {
		b.open("div", "multikills")
		b.el("h4", "", "Multikills")
		if title == models.TitleValorant {
			b.stat("2K", strconv.Itoa(mk.Doubles), "")
			b.stat("3K", strconv.Itoa(mk.Triples), "")
			b.stat("4K", strconv.Itoa(mk.Quadras), "")
			b.stat("ACE", strconv.Itoa(mk.Pentas), "")
		} else {
			b.stat("Double", strconv.Itoa(mk.Doubles), "")
			b.stat("Triple", strconv.Itoa(mk.Triples), "")
			b.stat("Quadra", strconv.Itoa(mk.Quadras), "")
			b.stat("Penta", strconv.Itoa(mk.Pentas), "")
		}
		b.close("div")
	}

	if partners := limit(p.SynergyPartners, 2); len(partners) > 0 {
		b.open("div", "synergy")
		b.el("h4", "", "Best Synergy")
		b.open("ul", "")
		for _, s := range partners {
			b.el("li", "", s.PlayerName)
		}
		b.close("ul")
		b.close("div")
	}

	if weapons := limit(p.WeaponStats, 3); len(weapons) > 0 {
		b.open("div", "weapons")
		b.el("h4", "", "Top Weapons")
		b.open("ul", "")
		for _, w := range weapons {
			b.open("li", "")
			b.el("strong", "", w.WeaponName)
			b.el("span", "share", FormatPercent(w.KillShare, 0))
			b.close("li")
		}
		b.close("ul")
		b.close("div")
	}

	if abilities := limit(p.AbilityUsage, 4); len(abilities) > 0 {
		b.open("div", "abilities")
		b.el("h4", "", "Ability Usage")
		b.open("ul", "")
		for _, a := range abilities {
			b.open("li", "")
			b.el("strong", "", a.AbilityName)
			b.textf(" %s per game", FormatDecimal(a.UsagePerGame))
			b.close("li")
		}
		b.close("ul")
		b.close("div")
	}
	b.close("article")
}

// MapPerformance renders the VALORANT map pool. Nil metrics render nothing.
func MapPerformance(m *models.VALMetrics) templ.Component {
	return component(func(b *writer) {
		if m == nil || len(m.MapPool) == 0 {
			return
		}
		b.openAttrs("section", "id", "map-performance")
		b.el("h2", "", "Map Performance")
		b.open("div", "maps")
		for _, entry := range limit(m.MapPool, maxMaps) {
			b.openAttrs("div", "class", "map map-"+string(entry.Strength), "data-map", entry.MapName)
			b.el("h3", "", MapDisplayName(entry.MapName))
			b.stat("Games", strconv.Itoa(entry.GamesPlayed), "")
			b.stat("Win Rate", FormatPercent(entry.WinRate, 0), WinRateClass(entry.WinRate))
			if s, ok := m.MapStats[entry.MapName]; ok {
				b.stat("Attack Side", FormatPercent(s.AttackWinRate, 0), "")
				b.stat("Defense Side", FormatPercent(s.DefenseWinRate, 0), "")
			}
			b.close("div")
		}
		b.close("div")
		b.close("section")
	})
}

// Economy renders VALORANT round conversion by spend tier.
func Economy(m *models.VALMetrics) templ.Component {
	return component(func(b *writer) {
		if m == nil {
			return
		}
		e := m.Economy
		b.openAttrs("section", "id", "economy")
		b.el("h2", "", "Economy")
		bucket := func(label string, r models.RoundBucket) {
			value := FormatPercent(r.WinRate, 0)
			if r.Total > 0 {
				value += " (" + strconv.Itoa(r.Won) + "/" + strconv.Itoa(r.Total) + ")"
			}
			b.stat(label, value, WinRateClass(r.WinRate))
		}
		bucket("Eco Rounds", e.EcoRounds)
		bucket("Force Buys", e.ForceRounds)
		bucket("Full Buys", e.FullBuyRounds)
		if m.AvgTeamLoadout > 0 {
			b.stat("Average Team Loadout", strconv.Itoa(int(m.AvgTeamLoadout))+" credits", "")
		}
		b.close("section")
	})
}

func CommonStrategies(cs models.CommonStrategies) templ.Component {
	return component(func(b *writer) {
		if cs.Empty() {
			return
		}
		b.openAttrs("section", "id", "common-strategies")
		b.el("h2", "", "Common Strategies")
		strategyList(b, "objective-priorities", "Key Patterns", limit(cs.ObjectivePriorities, 4))
		strategyList(b, "attack-patterns", "Attack Patterns", limit(cs.AttackPatterns, 3))
		strategyList(b, "defense-setups", "Defense Setups", limit(cs.DefenseSetups, 3))
		strategyList(b, "timing-patterns", "Timing", cs.TimingPatterns)
		b.close("section")
	})
}

func strategyList(b *writer, class, heading string, items []models.StrategyInsight) {
	if len(items) == 0 {
		return
	}
	b.open("div", class)
	b.el("h3", "", heading)
	b.open("ul", "")
	for _, s := range items {
		b.open("li", "")
		b.text(s.Text)
		if s.Context != "" {
			b.el("span", "context", s.Context)
		}
		b.close("li")
	}
	b.close("ul")
	b.close("div")
}

// TrendAnalysis renders recent form. Reports without trends render nothing.
func TrendAnalysis(t *models.TrendAnalysis) templ.Component {
	return component(func(b *writer) {
		if t == nil {
			return
		}
		b.openAttrs("section", "id", "trend-analysis")
		b.el("h2", "", "Trend Analysis")
		b.stat("Recent Form:", FormLabel(t.FormTrend), "form-"+string(t.FormTrend))
		if len(t.RecentResults) > 0 {
			b.open("ol", "recent-results")
			for _, r := range t.RecentResults {
				result, class := "L", "loss"
				if r.Won {
					result, class = "W", "win"
				}
				b.open("li", class)
				b.el("span", "result", result)
				b.text(" vs " + r.Opponent)
				if r.Score != "" {
					b.text(" " + r.Score)
				}
				b.close("li")
			}
			b.close("ol")
		}
		if n := len(t.WinRateTrend); n > 0 {
			b.stat("Latest Win Rate", FormatPercent(t.WinRateTrend[n-1], 0), WinRateClass(t.WinRateTrend[n-1]))
		}
		if n := len(t.KDATrend); n > 0 {
			b.stat("Latest KDA", FormatDecimal(t.KDATrend[n-1]), "")
		}
		b.close("section")
	})
}
