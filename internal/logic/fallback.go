package logic

import (
	"sync"

	"github.com/scout9/scout9-web/internal/fixtures"
	"github.com/scout9/scout9-web/internal/models"
)

var (
	fallbackOnce    sync.Once
	fallbackReports map[models.Title]*models.ScoutingReport
)

// FallbackReport returns the normalized demo report for title, or nil for an
// unknown title. The result is shared; callers must not modify it.
func FallbackReport(title models.Title) *models.ScoutingReport {
	fallbackOnce.Do(func() {
		fallbackReports = make(map[models.Title]*models.ScoutingReport, len(models.Titles))
		for _, t := range models.Titles {
			r, err := NormalizeReport(fixtures.Report(t))
			if err != nil {
				panic("logic: invalid " + string(t) + " fixture: " + err.Error())
			}
			fallbackReports[t] = r
		}
	})
	return fallbackReports[title]
}

// FallbackHeadToHead returns the demo matchup labeled with the selected
// teams. Each call returns a fresh value.
func FallbackHeadToHead(title models.Title, team1, team2 models.Team) *models.HeadToHead {
	h2h, err := NormalizeHeadToHead(fixtures.Matchup(), title, team1, team2)
	if err != nil {
		// Only reachable when neither the selection nor the fixture names
		// the teams
		return nil
	}
	return h2h
}
