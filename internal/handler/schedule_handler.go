package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/club-membership/internal/domain"
)

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(r.Context(), req.ClubID, req.MemberID, req.Title)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainScheduleToHTTP(schedule))
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	var req DeleteScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.scheduleService.DeleteSchedule(r.Context(), req.ScheduleID, req.MemberID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	var req CreateChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	checklist, err := h.scheduleService.CreateChecklist(r.Context(), req.ScheduleID, req.MemberID, req.Title)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainChecklistToHTTP(checklist))
}
