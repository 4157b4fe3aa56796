package models

// Team is a roster entry or report subject.
type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Initials returns the two letter placeholder shown when a team has no logo.
func (t Team) Initials() string {
	r := []rune(t.Name)
	if len(r) > 2 {
		r = r[:2]
	}
	return upper(string(r))
}

// ReportListItem is one row of the generated reports listing.
type ReportListItem struct {
	ID              string `json:"id"`
	TeamName        string `json:"teamName"`
	Title           Title  `json:"title"`
	GeneratedAt     string `json:"generatedAt"`
	MatchesAnalyzed int    `json:"matchesAnalyzed"`
}
