package transport

import (
	"net/http"
	"time"

	"shopstock/internal/metrics"
	"shopstock/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardHandler serves the derived dashboard aggregates. Everything is
// recomputed from the live stores on each request.
type DashboardHandler struct {
	engine *metrics.Engine
	logger *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(engine *metrics.Engine, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{engine: engine, logger: logger}
}

// RegisterRoutes registers the dashboard routes. Any authenticated role
// may read the dashboard.
func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.Summary)
	})
}

// Summary returns the full dashboard snapshot
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.engine.Summary(time.Now()))
}
