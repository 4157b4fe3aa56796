package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/scout9/scout9-web/internal/models"
)

// CompareFeaturedLimit caps each picker's default grid on the compare page.
const CompareFeaturedLimit = 8

// PickerProps configures one team picker. Teams is either the featured grid
// or the search results; Exclude is the team already chosen on the other side.
type PickerProps struct {
	Field      string
	QueryField string
	Label      string
	Query      string
	Teams      []models.Team
	Selected   string
	Exclude    string
	Limit      int
}

// TeamPicker renders a search box and a selectable team grid as part of the
// enclosing form.
func TeamPicker(p PickerProps) templ.Component {
	return component(func(b *writer) {
		b.openAttrs("fieldset", "class", "team-picker", "data-field", p.Field)
		b.el("legend", "", p.Label)
		b.openAttrs("input", "type", "search", "name", p.QueryField, "value", p.Query, "placeholder", "Search teams...", "minlength", "2")

		teams := make([]models.Team, 0, len(p.Teams))
		for _, t := range p.Teams {
			if p.Exclude != "" && t.ID == p.Exclude {
				continue
			}
			teams = append(teams, t)
		}
		if p.Limit > 0 {
			teams = limit(teams, p.Limit)
		}

		if len(teams) == 0 && p.Query != "" {
			b.el("p", "no-results", "No teams found")
		}
		b.open("div", "team-grid")
		for _, t := range teams {
			b.open("label", "team-option")
			attrs := []string{"type", "radio", "name", p.Field, "value", t.ID}
			if t.ID == p.Selected {
				attrs = append(attrs, "checked", "checked")
			}
			b.openAttrs("input", attrs...)
			teamBadge(b, t)
			b.close("label")
		}
		b.close("div")
		b.close("fieldset")
	})
}

func teamBadge(b *writer, t models.Team) {
	if t.LogoURL != "" {
		b.openAttrs("img", "src", string(templ.URL(t.LogoURL)), "alt", t.Name, "width", "32", "height", "32", "loading", "lazy")
	} else {
		b.el("span", "initials", t.Initials())
	}
	b.el("span", "team-name", t.Name)
}

// ReportList renders generated reports, newest first as given.
func ReportList(items []models.ReportListItem) templ.Component {
	return component(func(b *writer) {
		b.openAttrs("section", "id", "report-list")
		b.el("h2", "", "Generated Reports")
		if len(items) == 0 {
			b.el("p", "empty", "No reports generated yet")
			b.close("section")
			return
		}
		b.raw("<table><thead><tr><th>Team</th><th>Game</th><th>Matches</th><th>Generated</th></tr></thead><tbody>")
		for _, it := range items {
			title := it.Title.OrDefault()
			b.raw("<tr><td>")
			b.link(ReportURL(title, it.ID), "report-link", it.TeamName)
			b.raw("</td><td>")
			b.text(title.DisplayName())
			b.raw("</td><td>")
			b.text(strconv.Itoa(it.MatchesAnalyzed))
			b.raw("</td><td>")
			b.text(it.GeneratedAt)
			b.raw("</td></tr>")
		}
		b.raw("</tbody></table>")
		b.close("section")
	})
}

// HomePage lists the supported titles and the latest reports.
func HomePage(recent []models.ReportListItem, notice string) templ.Component {
	body := component(func(b *writer) {
		b.el("h1", "", "Scout9")
		b.el("p", "tagline", "Automated scouting reports for League of Legends and VALORANT")
		b.render(Banner(notice))
		b.open("div", "titles")
		for _, t := range models.Titles {
			b.openAttrs("a", "href", GenerateURL(t), "class", "title-card", "data-title", string(t))
			b.el("h2", "", t.DisplayName())
			b.el("span", "", "Generate a report")
			b.close("a")
		}
		b.link("/compare", "title-card compare", "Compare two teams")
		b.close("div")
		b.render(ReportList(limit(recent, 5)))
	})
	return Page("", models.TitleLoL, body)
}

// GenerateProps is the state of the team selection page.
type GenerateProps struct {
	Title      models.Title
	Query      string
	Teams      []models.Team
	Selected   string
	MatchCount int
	// Error and RetryURL are set after a failed generation.
	Error    string
	RetryURL string
}

func GeneratePage(p GenerateProps) templ.Component {
	body := component(func(b *writer) {
		b.el("h1", "", p.Title.DisplayName()+" Scouting")
		if p.Error != "" {
			b.render(ErrorState(p.Error, p.RetryURL))
		}

		b.openAttrs("form", "method", "get", "action", GenerateURL(p.Title), "class", "team-search")
		b.openAttrs("input", "type", "search", "name", "q", "value", p.Query, "placeholder", "Search teams...", "minlength", "2")
		b.raw(`<button type="submit">Search</button>`)
		b.close("form")

		if len(p.Teams) == 0 && p.Query != "" {
			b.el("p", "no-results", "No teams found")
		}

		matches := p.MatchCount
		if matches <= 0 {
			matches = 10
		}
		b.open("div", "team-grid")
		for _, t := range p.Teams {
			class := "team-card"
			if t.ID == p.Selected {
				class += " selected"
			}
			b.openAttrs("form", "method", "post", "action", GenerateURL(p.Title), "class", class)
			b.openAttrs("input", "type", "hidden", "name", "teamId", "value", t.ID)
			b.openAttrs("input", "type", "hidden", "name", "teamName", "value", t.Name)
			b.openAttrs("input", "type", "hidden", "name", "matchCount", "value", strconv.Itoa(matches))
			teamBadge(b, t)
			b.raw(`<button type="submit">Generate report</button>`)
			b.close("form")
		}
		b.close("div")
	})
	return Page(p.Title.DisplayName()+" Scouting", p.Title, body)
}

// CompareProps is the state of the comparison page.
type CompareProps struct {
	Title      models.Title
	Team1      PickerProps
	Team2      PickerProps
	HeadToHead *models.HeadToHead
	Notice     string
	Error      string
}

func ComparePage(p CompareProps) templ.Component {
	body := component(func(b *writer) {
		b.el("h1", "", "Head to Head")
		b.render(Banner(p.Notice))
		if p.Error != "" {
			b.openAttrs("p", "class", "form-error", "role", "alert")
			b.text(p.Error)
			b.close("p")
		}

		b.openAttrs("form", "method", "get", "action", "/compare", "class", "compare-form")
		b.open("div", "title-toggle")
		for _, t := range models.Titles {
			attrs := []string{"type", "radio", "name", "title", "value", string(t)}
			if t == p.Title {
				attrs = append(attrs, "checked", "checked")
			}
			b.open("label", "")
			b.openAttrs("input", attrs...)
			b.text(t.DisplayName())
			b.close("label")
		}
		b.close("div")

		team1, team2 := p.Team1, p.Team2
		team1.Exclude, team2.Exclude = p.Team2.Selected, p.Team1.Selected
		b.render(TeamPicker(team1))
		b.render(TeamPicker(team2))
		b.raw(`<button type="submit">Compare</button>`)
		b.close("form")

		b.render(HeadToHead(p.HeadToHead))
	})
	return Page("Compare", p.Title, body)
}

// ReportsPage lists every generated report.
func ReportsPage(items []models.ReportListItem, notice string) templ.Component {
	return Page("Reports", models.TitleLoL, Sequence(Banner(notice), ReportList(items)))
}

// CompareURL links a preselected comparison.
func CompareURL(title models.Title, team1, team2 string) string {
	q := url.Values{"title": {string(title)}}
	if team1 != "" {
		q.Set("team1", team1)
	}
	if team2 != "" {
		q.Set("team2", team2)
	}
	return "/compare?" + q.Encode()
}
