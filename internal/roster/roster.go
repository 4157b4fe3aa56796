// Package roster is the compiled-in team index used for instant search and
// the featured team grids. It never calls the backend.
package roster

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/scout9/scout9-web/internal/models"
)

const (
	// MinQueryLength is the shortest query the portal forwards to Search.
	MinQueryLength = 2
	// FeaturedCount is the size of the default team grid.
	FeaturedCount = 12
)

//go:embed roster.json
var rosterJSON []byte

var (
	loadOnce sync.Once
	teams    map[models.Title][]models.Team
)

func index() map[models.Title][]models.Team {
	loadOnce.Do(func() {
		teams = make(map[models.Title][]models.Team)
		if err := json.Unmarshal(rosterJSON, &teams); err != nil {
			// The file is embedded, so this only trips on a bad edit
			panic("roster: invalid roster.json: " + err.Error())
		}
	})
	return teams
}

// Search returns teams of title whose name contains query, case-insensitive,
// in roster order. A blank query matches nothing.
func Search(query string, title models.Title) []models.Team {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Team{}
	}
	out := []models.Team{}
	for _, t := range index()[title] {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// Featured returns the leading roster entries for title, without excludeID.
func Featured(title models.Title, excludeID string) []models.Team {
	all := index()[title]
	if len(all) > FeaturedCount {
		all = all[:FeaturedCount]
	}
	out := make([]models.Team, 0, len(all))
	for _, t := range all {
		if excludeID != "" && t.ID == excludeID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FindByID returns the first team of title with the given id.
func FindByID(id string, title models.Title) (models.Team, bool) {
	for _, t := range index()[title] {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

// All returns a copy of the full roster for title.
func All(title models.Title) []models.Team {
	src := index()[title]
	out := make([]models.Team, len(src))
	copy(out, src)
	return out
}
