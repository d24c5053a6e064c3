package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/service"
)

// CheckPermission отвечает на "авторизован ли вызывающий для ресурса".
// Недостаточная роль - allowed=false, отсутствующий/неактивный ресурс - 404.
func (h *Handler) CheckPermission(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("resource")
	callerID := r.URL.Query().Get("user_id")
	if callerID == "" {
		h.handleError(w, domain.NewValidationError("user_id parameter is required"))
		return
	}

	resourceID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		h.handleError(w, domain.NewValidationError("id parameter is required"))
		return
	}

	level, err := service.ParseAccessLevel(r.URL.Query().Get("level"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	var allowed bool
	switch resource {
	case "club":
		allowed, err = h.permissionService.CheckClub(r.Context(), resourceID, callerID, level)
	case "schedule":
		allowed, err = h.permissionService.CheckSchedule(r.Context(), resourceID, callerID, level)
	case "checklist":
		allowed, err = h.permissionService.CheckChecklist(r.Context(), resourceID, callerID, level)
	default:
		h.handleError(w, domain.NewValidationError("resource must be one of: club, schedule, checklist"))
		return
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(PermissionCheckResponse{Allowed: allowed})
}
