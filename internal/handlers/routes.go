package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the portal's HTTP surface.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(h.requestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{ProvenanceHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Pages
	r.Get("/", h.Home)
	r.Get("/compare", h.ComparePage)
	r.Get("/reports", h.ReportsPage)
	r.Route("/{title}", func(r chi.Router) {
		r.Get("/generate", h.GeneratePage)
		r.Post("/generate", h.GenerateSubmit)
		r.Get("/report/{id}", h.ReportPage)
	})

	// JSON view models
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/docs/doc.json", h.APIDoc)
		r.Get("/reports", h.ListReports)
		r.Post("/reports/generate", h.GenerateReport)
		r.Get("/reports/{id}", h.GetReport)
		r.Get("/matchup", h.GetMatchup)
		r.Get("/teams/search", h.SearchTeams)
		r.Get("/teams/featured", h.FeaturedTeams)
	})

	return r
}

// requestLogger logs one line per request with the chi request id.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			h.logger.Warnw("request", fields...)
			return
		}
		h.logger.Infow("request", fields...)
	})
}
