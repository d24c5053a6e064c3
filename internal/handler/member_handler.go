package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/club-membership/internal/domain"
)

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), &domain.Member{
		Name:  req.Name,
		Email: req.Email,
		Tag:   req.Tag,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateMemberResponse{
		Member: domainMemberToHTTP(member),
	})
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("member_id")
	if memberID == "" {
		h.handleError(w, domain.NewValidationError("member_id parameter is required"))
		return
	}

	member, err := h.memberService.GetMember(r.Context(), memberID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainMemberToHTTP(member))
}
