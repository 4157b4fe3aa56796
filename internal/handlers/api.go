package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/roster"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

type ReportResponse struct {
	Report     *models.ScoutingReport `json:"report"`
	Provenance string                 `json:"provenance"`
	Notice     string                 `json:"notice,omitempty"`
}

type MatchupResponse struct {
	HeadToHead *models.HeadToHead `json:"headToHead"`
	Provenance string             `json:"provenance"`
	Notice     string             `json:"notice,omitempty"`
}

type ReportsResponse struct {
	Reports []models.ReportListItem `json:"reports"`
	Notice  string                  `json:"notice,omitempty"`
}

// GenerateBody is the JSON body of POST /api/v1/reports/generate.
type GenerateBody struct {
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName,omitempty"`
	MatchCount int    `json:"matchCount,omitempty"`
	Title      string `json:"title,omitempty"`
}

// GetReport returns the normalized view model of a stored report
// @Summary Get report view model
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Param title query string false "lol or valorant"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string
// @Router /reports/{id} [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	title, ok := queryTitle(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, MessageUnknownTitle)
		return
	}
	o, status := h.view(w, r, chi.URLParam(r, "id"), title)
	if status != http.StatusOK {
		h.errorResponse(w, status, o.Message)
		return
	}
	markProvenance(w, o)
	h.jsonResponse(w, http.StatusOK, ReportResponse{Report: o.Report, Provenance: provenance(o), Notice: o.Notice})
}

// GenerateReport generates a report and returns its view model
// @Summary Generate report
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body GenerateBody true "Team to scout"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reports/generate [post]
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	var body GenerateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	title := models.TitleLoL
	if strings.TrimSpace(body.Title) != "" {
		var ok bool
		if title, ok = models.ParseTitle(body.Title); !ok {
			h.errorResponse(w, http.StatusBadRequest, MessageUnknownTitle)
			return
		}
	}
	if body.MatchCount == 0 {
		body.MatchCount = h.defaultMatchCount
	}

	o, status := h.generate(w, r, title, scoutapi.GenerateRequest{
		TeamID:     strings.TrimSpace(body.TeamID),
		TeamName:   strings.TrimSpace(body.TeamName),
		MatchCount: body.MatchCount,
	})
	if status != http.StatusOK {
		h.errorResponse(w, status, o.Message)
		return
	}
	h.jsonResponse(w, http.StatusOK, ReportResponse{Report: o.Report, Provenance: provenance(o)})
}

// GetMatchup compares two teams
// @Summary Head-to-head
// @Tags Matchup
// @Produce json
// @Param team1 query string true "First team ID"
// @Param team2 query string true "Second team ID"
// @Param title query string false "lol or valorant"
// @Param matches query int false "Recent matches to compare"
// @Success 200 {object} MatchupResponse
// @Failure 400 {object} map[string]string
// @Router /matchup [get]
func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	title, ok := queryTitle(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, MessageUnknownTitle)
		return
	}
	q := r.URL.Query()
	o, status := h.compare(w, r, scoutapi.MatchupRequest{
		Team1:   strings.TrimSpace(q.Get("team1")),
		Team2:   strings.TrimSpace(q.Get("team2")),
		Title:   title,
		Matches: intParam(q.Get("matches"), h.defaultMatchupGames),
	})
	if status != http.StatusOK {
		h.errorResponse(w, status, o.Message)
		return
	}
	markProvenance(w, o)
	h.jsonResponse(w, http.StatusOK, MatchupResponse{HeadToHead: o.HeadToHead, Provenance: provenance(o), Notice: o.Notice})
}

// SearchTeams searches the local team index
// @Summary Search teams
// @Tags Teams
// @Produce json
// @Param q query string false "Name fragment, at least 2 characters"
// @Param title query string false "lol or valorant"
// @Success 200 {array} models.Team
// @Router /teams/search [get]
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	title, ok := queryTitle(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, MessageUnknownTitle)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(q) < roster.MinQueryLength {
		h.jsonResponse(w, http.StatusOK, []models.Team{})
		return
	}
	h.jsonResponse(w, http.StatusOK, roster.Search(q, title))
}

// FeaturedTeams returns the default team grid of a title
// @Summary Featured teams
// @Tags Teams
// @Produce json
// @Param title query string false "lol or valorant"
// @Param exclude query string false "Team ID to leave out"
// @Success 200 {array} models.Team
// @Router /teams/featured [get]
func (h *Handler) FeaturedTeams(w http.ResponseWriter, r *http.Request) {
	title, ok := queryTitle(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, MessageUnknownTitle)
		return
	}
	h.jsonResponse(w, http.StatusOK, roster.Featured(title, strings.TrimSpace(r.URL.Query().Get("exclude"))))
}

// ListReports lists generated reports
// @Summary List reports
// @Tags Reports
// @Produce json
// @Success 200 {object} ReportsResponse
// @Router /reports [get]
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, notice := h.reports.Recent(r.Context())
	h.jsonResponse(w, http.StatusOK, ReportsResponse{Reports: reports, Notice: notice})
}
