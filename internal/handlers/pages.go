package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/scout9/scout9-web/internal/logic"
	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/roster"
	"github.com/scout9/scout9-web/internal/scoutapi"
	"github.com/scout9/scout9-web/internal/views"
)

// NoticeBackendOffline is shown on the home page when the backend fails its
// health check.
const NoticeBackendOffline = "Scouting backend is offline - reports may use demo data"

// ============================================================================
// HOME & LISTS
// ============================================================================

// Home renders the title picker with the latest reports
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	var (
		recent      []models.ReportListItem
		notice      string
		upstreamErr error
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		recent, notice = h.reports.Recent(ctx)
		return nil
	})
	g.Go(func() error {
		if h.upstream == nil {
			return nil
		}
		hctx, cancel := context.WithTimeout(ctx, readyTimeout)
		defer cancel()
		_, upstreamErr = h.upstream.Health(hctx)
		return nil
	})
	g.Wait()

	if upstreamErr != nil {
		h.logger.Warnw("backend health check failed", "error", upstreamErr)
		if notice == "" {
			notice = NoticeBackendOffline
		}
	}
	h.render(w, r, http.StatusOK, views.HomePage(recent, notice))
}

// ReportsPage lists every generated report
func (h *Handler) ReportsPage(w http.ResponseWriter, r *http.Request) {
	recent, notice := h.reports.Recent(r.Context())
	h.render(w, r, http.StatusOK, views.ReportsPage(recent, notice))
}

// ============================================================================
// GENERATE
// ============================================================================

// GeneratePage renders team selection for a title
func (h *Handler) GeneratePage(w http.ResponseWriter, r *http.Request) {
	title, ok := pathTitle(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	h.render(w, r, http.StatusOK, views.GeneratePage(views.GenerateProps{
		Title:      title,
		Query:      q,
		Teams:      teamsFor(title, q, ""),
		Selected:   r.URL.Query().Get("team"),
		MatchCount: h.defaultMatchCount,
	}))
}

// GenerateSubmit generates a report for the posted team and redirects to it
func (h *Handler) GenerateSubmit(w http.ResponseWriter, r *http.Request) {
	title, ok := pathTitle(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, views.GeneratePage(views.GenerateProps{
			Title:    title,
			Teams:    roster.Featured(title, ""),
			Error:    "Invalid form submission",
			RetryURL: views.GenerateURL(title),
		}))
		return
	}

	req := scoutapi.GenerateRequest{
		TeamID:     strings.TrimSpace(r.PostForm.Get("teamId")),
		TeamName:   strings.TrimSpace(r.PostForm.Get("teamName")),
		MatchCount: intParam(r.PostForm.Get("matchCount"), h.defaultMatchCount),
	}

	o, status := h.generate(w, r, title, req)
	if status != http.StatusOK {
		h.logger.Warnw("report generation rejected",
			"title", title, "team_id", req.TeamID, "status", status, "message", o.Message)
		h.render(w, r, status, views.GeneratePage(views.GenerateProps{
			Title:      title,
			Teams:      roster.Featured(title, ""),
			Selected:   req.TeamID,
			MatchCount: req.MatchCount,
			Error:      o.Message,
			RetryURL:   views.GenerateURL(title),
		}))
		return
	}

	if o.Report.ID != "" {
		http.Redirect(w, r, views.ReportURL(title, o.Report.ID), http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, views.ReportPage(o.Report, ""))
}

// ============================================================================
// REPORT
// ============================================================================

// ReportPage renders a stored report, falling back to demo data
func (h *Handler) ReportPage(w http.ResponseWriter, r *http.Request) {
	title, ok := pathTitle(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	o, status := h.view(w, r, chi.URLParam(r, "id"), title)
	if status != http.StatusOK {
		http.Error(w, o.Message, status)
		return
	}
	markProvenance(w, o)
	h.render(w, r, http.StatusOK, views.ReportPage(o.Report, o.Notice))
}

// ============================================================================
// COMPARE
// ============================================================================

// ComparePage renders the two team pickers and, once both are chosen, the
// head-to-head
func (h *Handler) ComparePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	title, ok := queryTitle(r)
	status := http.StatusOK
	var errMsg string
	if !ok {
		title, status, errMsg = models.TitleLoL, http.StatusBadRequest, MessageUnknownTitle
	}

	id1, id2 := strings.TrimSpace(q.Get("team1")), strings.TrimSpace(q.Get("team2"))
	props := views.CompareProps{
		Title: title,
		Team1: pickerFor(title, "team1", "q1", "Team 1", q.Get("q1"), id1),
		Team2: pickerFor(title, "team2", "q2", "Team 2", q.Get("q2"), id2),
		Error: errMsg,
	}

	if ok && id1 != "" && id2 != "" {
		var o logic.Outcome
		o, status = h.compare(w, r, scoutapi.MatchupRequest{
			Team1:   id1,
			Team2:   id2,
			Title:   title,
			Matches: intParam(q.Get("matches"), h.defaultMatchupGames),
		})
		if status == http.StatusConflict {
			http.Error(w, o.Message, status)
			return
		}
		if status != http.StatusOK {
			props.Error = o.Message
		} else {
			markProvenance(w, o)
			props.HeadToHead = o.HeadToHead
			props.Notice = o.Notice
		}
	}
	h.render(w, r, status, views.ComparePage(props))
}

func pickerFor(title models.Title, field, queryField, label, query, selected string) views.PickerProps {
	query = strings.TrimSpace(query)
	p := views.PickerProps{
		Field:      field,
		QueryField: queryField,
		Label:      label,
		Query:      query,
		Selected:   selected,
		Teams:      teamsFor(title, query, ""),
		Limit:      views.CompareFeaturedLimit,
	}
	// Keep the current selection visible when it is outside the grid
	if selected != "" && !containsTeam(p.Teams, selected) {
		if t, ok := roster.FindByID(selected, title); ok {
			p.Teams = append([]models.Team{t}, p.Teams...)
		}
	}
	return p
}

func containsTeam(teams []models.Team, id string) bool {
	for _, t := range teams {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound,
		views.Page("Not Found", models.TitleLoL, views.ErrorState(MessageNotFound, "/")))
}
