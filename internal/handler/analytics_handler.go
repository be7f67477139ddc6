package handler

import (
	"net/http"

	"glowkart/internal/service"

	"github.com/rs/zerolog"
)

// AnalyticsHandler serves the admin dashboard report.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
	logger    zerolog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		logger:    logger.With().Str("handler", "analytics").Logger(),
	}
}

// Report handles GET /api/admin/analytics.
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.analytics.Report(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, report)
}
