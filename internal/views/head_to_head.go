package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/scout9/scout9-web/internal/models"
)

// HeadToHead renders the comparison of two teams.
func HeadToHead(h *models.HeadToHead) templ.Component {
	return component(func(b *writer) {
		if h == nil {
			return
		}
		s := h.Stats
		b.openAttrs("section", "id", "head-to-head")

		b.open("div", "matchup-header")
		b.el("h2", "team1-name", h.Team1.Name)
		b.el("span", "versus", "vs")
		b.el("h2", "team2-name", h.Team2.Name)
		b.close("div")

		left, right := WinBar(s)
		b.open("div", "record")
		b.el("span", "team1-wins", strconv.Itoa(s.Team1Wins))
		b.el("span", "total-matches", strconv.Itoa(s.TotalMatches)+" matches")
		b.el("span", "team2-wins", strconv.Itoa(s.Team2Wins))
		b.close("div")
		b.bar("win-bar", left, right)
		b.open("div", "win-share")
		b.el("span", "team1-share", FormatPercent(left/100, 0))
		b.el("span", "team2-share", FormatPercent(right/100, 0))
		b.close("div")

		if s.AvgGameDuration > 0 {
			b.stat("Avg Game Duration", FormatDuration(s.AvgGameDuration), "")
		}
		if h.ConfidenceScore > 0 {
			b.stat("Confidence", strconv.Itoa(h.ConfidenceScore)+"%", ConfidenceClass(h.ConfidenceScore))
		}

		if st := h.Style; st != nil {
			b.open("div", "style-comparison")
			b.el("h3", "", "Style Comparison")
			phases := []struct {
				label, advantage, insight string
				r1, r2                    float64
			}{
				{"Early Game", st.EarlyGameAdvantage, st.EarlyGameInsight, st.Team1EarlyGameRating, st.Team2EarlyGameRating},
				{"Mid Game", st.MidGameAdvantage, st.MidGameInsight, st.Team1MidGameRating, st.Team2MidGameRating},
				{"Late Game", st.LateGameAdvantage, st.LateGameInsight, st.Team1LateGameRating, st.Team2LateGameRating},
			}
			if h.Title == models.TitleValorant {
				phases[0].label, phases[1].label, phases[2].label = "Pistol Rounds", "Attack", "Defense"
			}
			for _, ph := range phases {
				a, c := Split(ph.r1, ph.r2)
				b.openAttrs("div", "class", "phase", "data-phase", ph.label)
				b.el("h4", "", ph.label)
				b.bar("style-bar", a, c)
				b.el("span", "advantage", AdvantageLabel(ph.advantage, h.Team1, h.Team2))
				if ph.insight != "" {
					b.el("p", "insight", ph.insight)
				}
				b.close("div")
			}
			a, c := Split(st.Team1Aggression, st.Team2Aggression)
			b.openAttrs("div", "class", "phase", "data-phase", "Aggression")
			b.el("h4", "", "Aggression")
			b.bar("style-bar", a, c)
			b.close("div")
			if st.StyleInsight != "" {
				b.el("p", "style-insight", st.StyleInsight)
			}
			b.close("div")
		}

		if len(s.CommonPicks.Team1)+len(s.CommonPicks.Team2) > 0 {
			b.open("div", "common-picks")
			b.el("h3", "", "Common Picks")
			b.el("p", "team1-picks", h.Team1.Name+": "+strings.Join(s.CommonPicks.Team1, ", "))
			b.el("p", "team2-picks", h.Team2.Name+": "+strings.Join(s.CommonPicks.Team2, ", "))
			b.close("div")
		}

		if len(s.KeyMatchups) > 0 {
			b.open("div", "key-matchups")
			b.el("h3", "", "Key Matchups")
			for _, km := range s.KeyMatchups {
				b.open("div", "key-matchup")
				b.el("strong", "", km.Player1.Nickname+" vs "+km.Player2.Nickname)
				if km.Player1.Role != "" {
					b.el("span", "role", km.Player1.Role)
				}
				a, c := Split(km.Player1.WinRate, km.Player2.WinRate)
				b.bar("matchup-bar", a, c)
				b.el("p", "significance", km.Significance)
				b.close("div")
			}
			b.close("div")
		}

		if len(h.MatchHistory) > 0 {
			b.open("div", "match-history")
			b.el("h3", "", "Match History")
			b.open("ul", "")
			for _, m := range h.MatchHistory {
				b.open("li", "")
				b.el("span", "date", m.Date)
				b.el("span", "tournament", m.TournamentName)
				b.el("span", "score", m.Score)
				b.el("strong", "winner", winnerName(h, m.Winner))
				b.close("li")
			}
			b.close("ul")
			b.close("div")
		}

		if len(h.Insights) > 0 {
			b.open("ul", "insights")
			for _, in := range h.Insights {
				b.el("li", "", in)
			}
			b.close("ul")
		}
		if len(h.Warnings) > 0 {
			b.open("ul", "warnings")
			for _, w := range h.Warnings {
				b.el("li", "warning", w)
			}
			b.close("ul")
		}
		b.close("section")
	})
}

// winnerName resolves a match winner given as a team id or side number.
func winnerName(h *models.HeadToHead, winner string) string {
	switch winner {
	case "":
		return ""
	case h.Team1.ID, "1":
		return h.Team1.Name
	case h.Team2.ID, "2":
		return h.Team2.Name
	}
	return winner
}
