package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/service"
)

// DashboardHandler serves the dashboard and calendar read-models.
type DashboardHandler struct {
	svc    *service.DashboardService
	logger *zap.Logger
}

func NewDashboardHandler(svc *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: logger}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

// CalendarDay serves GET /calendar/{date} where date is YYYY-MM-DD.
func (h *DashboardHandler) CalendarDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.CalendarDay(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, day)
}
