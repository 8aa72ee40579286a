package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// errorStatus maps a service error to its HTTP status and error code.
// Anything unmapped is an internal error whose detail stays out of the body.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		return http.StatusConflict, "email_taken"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, apperrors.ErrZipCodeNotFound):
		return http.StatusNotFound, "zip_code_not_found"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrLocationNotSet):
		return http.StatusUnprocessableEntity, "location_not_set"
	case errors.Is(err, apperrors.ErrPasswordTooShort):
		return http.StatusBadRequest, "password_too_short"
	case errors.Is(err, apperrors.ErrInvalidReview):
		return http.StatusBadRequest, "invalid_review"
	case errors.Is(err, apperrors.ErrUnsafeContent):
		return http.StatusBadRequest, "unsafe_content"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// ServiceError writes the JSON error response for a service-layer error.
func ServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, code := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))
		message = "internal server error"
	}
	if err := ErrorResponse(w, status, code, message); err != nil {
		logger.Error("Failed to write error response", zap.Error(err))
	}
}
