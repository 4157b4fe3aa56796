package models

import "strings"

// Title is a game supported by the scouting backend.
type Title string

const (
	TitleLoL      Title = "lol"
	TitleValorant Title = "valorant"
)

// Titles lists every supported title in display order.
var Titles = []Title{TitleLoL, TitleValorant}

// ParseTitle resolves the names and backend title ids a title may arrive as.
// The backend identifies League of Legends as "3" and VALORANT as "6".
func ParseTitle(s string) (Title, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lol", "league", "leagueoflegends", "league-of-legends", "3":
		return TitleLoL, true
	case "valorant", "val", "6":
		return TitleValorant, true
	}
	return "", false
}

// BackendID returns the title id the report generator expects.
func (t Title) BackendID() string {
	if t == TitleValorant {
		return "6"
	}
	return "3"
}

// DisplayName returns the human readable name of the title.
func (t Title) DisplayName() string {
	switch t {
	case TitleLoL:
		return "League of Legends"
	case TitleValorant:
		return "VALORANT"
	}
	return string(t)
}

func (t Title) Valid() bool {
	return t == TitleLoL || t == TitleValorant
}

// OrDefault returns t, or League of Legends when t is not a known title.
func (t Title) OrDefault() Title {
	if t.Valid() {
		return t
	}
	return TitleLoL
}
