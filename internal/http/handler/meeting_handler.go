package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/service"
)

// MeetingHandler serves meetings.
type MeetingHandler struct {
	svc    *service.MeetingService
	logger *zap.Logger
}

func NewMeetingHandler(svc *service.MeetingService, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, logger: logger}
}

func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.svc.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, meetings)
}

func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "meetingID")
	if !ok {
		return
	}
	meeting, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, meeting)
}

func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMeetingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	meeting, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, meeting)
}

func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "meetingID")
	if !ok {
		return
	}
	var req domain.UpdateMeetingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	meeting, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, meeting)
}

func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "meetingID")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
