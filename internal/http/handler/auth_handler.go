package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/auth"
	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/service"
)

// AuthHandler serves login, registration and the current-user lookup.
type AuthHandler struct {
	svc    *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := h.svc.Login(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "missing token")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "invalid subject")
		return
	}
	resp, err := h.svc.Me(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
