package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/scout9/scout9-web/internal/guard"
	"github.com/scout9/scout9-web/internal/logic"
	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/roster"
	"github.com/scout9/scout9-web/internal/scoutapi"
	"github.com/scout9/scout9-web/internal/worker"
)

const (
	MessageDuplicateGenerate = "A report for this team is already being generated"
	MessageSameTeam          = "Select two different teams"
	MessageBusy              = "Too many reports are being generated, try again shortly"
	MessageSuperseded        = "Request superseded by a newer one"
	MessageUnknownTitle      = "Unknown game title"
	MessageNotFound          = "Page not found"
)

// Supersede actions. A new request for the same session and action cancels
// the one still in flight.
const (
	actionGenerate = "generate"
	actionView     = "view"
	actionCompare  = "compare"
)

func rejected(msg string) logic.Outcome {
	return logic.Outcome{Kind: logic.OutcomeFatal, Message: msg}
}

// generate runs one report generation under the session's submission lock.
// Any status other than 200 comes with the message in Outcome.Message.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request, title models.Title, req scoutapi.GenerateRequest) (logic.Outcome, int) {
	if err := h.validator.Struct(req); err != nil {
		return rejected(validationMessage(err)), http.StatusBadRequest
	}

	sess := h.session(w, r)
	lockKey := guard.Key(sess, string(title), req.TeamID)
	lockToken, acquired, err := h.guard.Acquire(r.Context(), lockKey, h.lockTTL)
	switch {
	case err != nil:
		// Lock store outage degrades to unguarded generation
		h.logger.Warnw("submission lock unavailable", "team_id", req.TeamID, "error", err)
	case !acquired:
		return rejected(MessageDuplicateGenerate), http.StatusConflict
	default:
		defer func() {
			if err := h.guard.Release(context.WithoutCancel(r.Context()), lockKey, lockToken); err != nil {
				h.logger.Warnw("failed to release submission lock", "key", lockKey, "error", err)
			}
		}()
	}

	key := guard.Key(sess, actionGenerate)
	ctx, token, done := h.supersede.Begin(r.Context(), key)
	defer done()

	var o logic.Outcome
	run := func(ctx context.Context) { o = h.reports.Generate(ctx, title, req) }
	if h.queue == nil {
		run(ctx)
	} else if err := h.queue.Submit(ctx, run); err != nil {
		switch {
		case errors.Is(err, worker.ErrQueueFull), errors.Is(err, worker.ErrStopped):
			return rejected(MessageBusy), http.StatusServiceUnavailable
		case !h.supersede.Current(key, token):
			return rejected(MessageSuperseded), http.StatusConflict
		}
		return rejected(logic.MessageGenerateFailed), http.StatusGatewayTimeout
	}

	if !h.supersede.Current(key, token) {
		return rejected(MessageSuperseded), http.StatusConflict
	}
	if o.Fatal() {
		return o, upstreamStatus(o.Err)
	}
	return o, http.StatusOK
}

// view loads a stored report. It only fails when a newer view superseded it.
func (h *Handler) view(w http.ResponseWriter, r *http.Request, id string, title models.Title) (logic.Outcome, int) {
	key := guard.Key(h.session(w, r), actionView)
	ctx, token, done := h.supersede.Begin(r.Context(), key)
	defer done()

	o := h.reports.View(ctx, id, title)
	if !h.supersede.Current(key, token) {
		return rejected(MessageSuperseded), http.StatusConflict
	}
	return o, http.StatusOK
}

// compare loads a head-to-head for two distinct teams.
func (h *Handler) compare(w http.ResponseWriter, r *http.Request, req scoutapi.MatchupRequest) (logic.Outcome, int) {
	if req.Team1 != "" && req.Team1 == req.Team2 {
		return rejected(MessageSameTeam), http.StatusBadRequest
	}
	if err := h.validator.Struct(req); err != nil {
		return rejected(validationMessage(err)), http.StatusBadRequest
	}

	key := guard.Key(h.session(w, r), actionCompare)
	ctx, token, done := h.supersede.Begin(r.Context(), key)
	defer done()

	o := h.reports.Compare(ctx, req, lookupTeam(req.Team1, req.Title), lookupTeam(req.Team2, req.Title))
	if !h.supersede.Current(key, token) {
		return rejected(MessageSuperseded), http.StatusConflict
	}
	return o, http.StatusOK
}

// lookupTeam names a team from the local index, or by id when unknown.
func lookupTeam(id string, title models.Title) models.Team {
	if t, ok := roster.FindByID(id, title); ok {
		return t
	}
	return models.Team{ID: id, Name: "Team " + id}
}

// teamsFor returns search results for a long enough query, else the
// featured grid.
func teamsFor(title models.Title, query, excludeID string) []models.Team {
	if utf8.RuneCountInString(strings.TrimSpace(query)) >= roster.MinQueryLength {
		return roster.Search(query, title)
	}
	return roster.Featured(title, excludeID)
}

// intParam parses an optional integer. Blank yields fallback, garbage -1 so
// validation rejects it.
func intParam(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}
