package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/swaggo/swag"
	"golang.org/x/sync/errgroup"

	_ "github.com/scout9/scout9-web/internal/docs"
)

const readyTimeout = 3 * time.Second

// Health check endpoint
// @Summary Liveness
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "scout9-web",
	})
}

// Ready checks the scouting backend and the submission lock store
// @Summary Readiness
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	var upstreamOK, guardOK bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if h.upstream == nil {
			upstreamOK = true
			return nil
		}
		_, err := h.upstream.Health(gctx)
		upstreamOK = err == nil
		if err != nil {
			h.logger.Warnw("upstream not ready", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		err := h.guard.Ping(gctx)
		guardOK = err == nil
		if err != nil {
			h.logger.Warnw("lock store not ready", "error", err)
		}
		return nil
	})
	g.Wait()

	checks := map[string]bool{
		"upstream":   upstreamOK,
		"lock_store": guardOK,
	}
	status := http.StatusOK
	if !upstreamOK || !guardOK {
		status = http.StatusServiceUnavailable
	}
	resp := map[string]interface{}{
		"ready":    status == http.StatusOK,
		"checks":   checks,
		"inFlight": h.supersede.InFlight(),
	}
	if h.queue != nil {
		resp["queueDepth"] = h.queue.QueueDepth()
	}
	h.jsonResponse(w, status, resp)
}

// APIDoc serves the OpenAPI document
func (h *Handler) APIDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.errorResponse(w, http.StatusInternalServerError, "API documentation unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
