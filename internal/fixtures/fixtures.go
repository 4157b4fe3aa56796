// Package fixtures holds the demo payloads rendered when the backend cannot
// be reached. They are stored in the backend's own wire shape and go through
// the same normalizer as live responses.
package fixtures

import (
	_ "embed"

	"github.com/scout9/scout9-web/internal/models"
)

//go:embed lol_report.json
var lolReport []byte

//go:embed valorant_report.json
var valorantReport []byte

//go:embed matchup.json
var matchup []byte

// Report returns the demo report payload for title, or nil for an unknown
// title. The returned slice is a copy.
func Report(title models.Title) []byte {
	switch title {
	case models.TitleLoL:
		return clone(lolReport)
	case models.TitleValorant:
		return clone(valorantReport)
	}
	return nil
}

// Matchup returns the demo head-to-head payload.
func Matchup() []byte {
	return clone(matchup)
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
