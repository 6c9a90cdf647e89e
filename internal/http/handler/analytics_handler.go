package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/service"
)

// AnalyticsHandler serves the analytics read-model.
type AnalyticsHandler struct {
	svc    *service.AnalyticsService
	logger *zap.Logger
}

func NewAnalyticsHandler(svc *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, logger: logger}
}

func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.svc.Analytics(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, analytics)
}
