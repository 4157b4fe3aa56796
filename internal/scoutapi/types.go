package scoutapi

import "github.com/scout9/scout9-web/internal/models"

const (
	DefaultMatchCount   = 10
	DefaultSeriesLimit  = 10
	DefaultMatchupGames = 20
)

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type TitleInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Tournament struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// GenerateRequest is the body of POST /api/reports/generate.
type GenerateRequest struct {
	TeamID     string `json:"teamId" validate:"required"`
	TeamName   string `json:"teamName,omitempty"`
	MatchCount int    `json:"matchCount" validate:"min=0,max=50"`
	TitleID    string `json:"titleId" validate:"omitempty,oneof=3 6"`
}

// MatchupRequest holds the query of GET /api/matchup.
type MatchupRequest struct {
	Team1   string       `validate:"required"`
	Team2   string       `validate:"required,nefield=Team1"`
	Title   models.Title `validate:"required,oneof=lol valorant"`
	Matches int          `validate:"min=0,max=50"`
}

func (r GenerateRequest) withDefaults() GenerateRequest {
	if r.MatchCount <= 0 {
		r.MatchCount = DefaultMatchCount
	}
	if r.TitleID == "" {
		r.TitleID = models.TitleLoL.BackendID()
	}
	return r
}
