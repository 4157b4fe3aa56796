package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/scout9/scout9-web/internal/logic"
	"github.com/scout9/scout9-web/internal/models"
	"github.com/scout9/scout9-web/internal/scoutapi"
)

const (
	// SessionCookie scopes submission locks and superseded requests to one browser.
	SessionCookie = "scout9_session"
	// ProvenanceHeader is "demo" when the response carries fallback data.
	ProvenanceHeader = "X-Scout-Provenance"

	sessionMaxAge = 30 * 24 * 60 * 60
)

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// render writes a component as a complete HTML response. The component is
// buffered so a failed render still produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Errorw("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// session returns the caller's session id, issuing a new cookie when the
// request has none.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// pathTitle resolves the {title} URL parameter.
func pathTitle(r *http.Request) (models.Title, bool) {
	return models.ParseTitle(chi.URLParam(r, "title"))
}

// queryTitle resolves ?title=, defaulting to League of Legends.
func queryTitle(r *http.Request) (models.Title, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("title"))
	if raw == "" {
		return models.TitleLoL, true
	}
	return models.ParseTitle(raw)
}

func markProvenance(w http.ResponseWriter, o logic.Outcome) {
	if o.Fallback() {
		w.Header().Set(ProvenanceHeader, "demo")
	}
}

func provenance(o logic.Outcome) string {
	if o.Fallback() {
		return "demo"
	}
	return "live"
}

// upstreamStatus maps a failed backend call onto the portal's response code.
func upstreamStatus(err error) int {
	switch status := scoutapi.StatusOf(err); {
	case status == scoutapi.StatusTimeout:
		return http.StatusGatewayTimeout
	case status >= 400 && status < 500:
		return status
	}
	return http.StatusBadGateway
}

// validationMessage describes the first field that failed validation.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: failed %s", fe.Field(), fe.Tag())
	}
	return "Invalid request"
}
