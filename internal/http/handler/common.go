// Package handler contains the chi HTTP handlers.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/domain"
	"github.com/labcrm/crm-api/internal/service"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func respondError(w http.ResponseWriter, status int, title, detail string) {
	respondJSON(w, status, domain.NewAPIError(status, title, detail))
}

// respondServiceError maps service sentinel errors onto HTTP statuses;
// anything unrecognized is a 500 with the detail withheld.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound),
		errors.Is(err, service.ErrContactNotFound),
		errors.Is(err, service.ErrQuotationNotFound),
		errors.Is(err, service.ErrContractNotFound),
		errors.Is(err, service.ErrStudyNotFound),
		errors.Is(err, service.ErrMeetingNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrNotificationNotFound),
		errors.Is(err, service.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, service.ErrInvalidTaskStatus),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrUnknownExportEntity):
		respondError(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// decodeAndValidate parses the JSON body into dst and runs validation,
// writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			apiErr := domain.NewAPIError(http.StatusBadRequest, "Validation Failed", "")
			for _, fe := range verrs {
				apiErr.Errors = append(apiErr.Errors, domain.FieldError{
					Field:   fe.Field(),
					Message: fe.Tag(),
				})
			}
			respondJSON(w, http.StatusBadRequest, apiErr)
			return false
		}
		respondError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return false
	}
	return true
}

// pathUUID parses a UUID path parameter, writing the error response on
// failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Bad Request", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
