package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/service"
)

// ExportHandler serves CSV downloads.
type ExportHandler struct {
	svc    *service.ExportService
	logger *zap.Logger
}

func NewExportHandler(svc *service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, logger: logger}
}

// Download serves GET /export/{entity} as a CSV attachment.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	export, err := h.svc.Render(r.Context(), chi.URLParam(r, "entity"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}
