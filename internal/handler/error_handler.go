package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/club-membership/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "VALIDATION", "BAD_REQUEST":
		return http.StatusBadRequest
	case "NOT_AUTHORIZED":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	case "CAPACITY_EXCEEDED", "CONFLICT", "INVALID_TRANSITION", "PRIVATE_CLUB":
		return http.StatusConflict
	case "INVARIANT_VIOLATION":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// validateRequest прогоняет DTO через validator и переводит ошибку в VALIDATION
func (h *Handler) validateRequest(req any) error {
	if err := h.validate.Struct(req); err != nil {
		return domain.NewValidationError(err.Error())
	}
	return nil
}
