package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/service"
)

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req CreateClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	club, err := httpClubToDomain(req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	createdClub, err := h.membershipService.CreateClub(r.Context(), club)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateClubResponse{
		Club: domainClubToHTTP(createdClub),
	})
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.Atoi(r.URL.Query().Get("club_id"))
	if err != nil {
		h.handleError(w, domain.NewValidationError("club_id parameter is required"))
		return
	}

	club, err := h.membershipService.GetClub(r.Context(), clubID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainClubToHTTP(club))
}

func (h *Handler) InviteBatch(w http.ResponseWriter, r *http.Request) {
	var req InviteBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	invitations := make([]service.Invitation, 0, len(req.Invitations))
	for _, inv := range req.Invitations {
		role, err := domain.ParseRole(inv.Role)
		if err != nil {
			h.handleError(w, err)
			return
		}
		invitations = append(invitations, service.Invitation{Email: inv.Email, Role: role})
	}

	if err := h.membershipService.InviteBatch(r.Context(), req.ClubID, req.ActorID, invitations); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	h.membershipAction(w, r, h.membershipService.AcceptInvitation)
}

func (h *Handler) DeclineInvitation(w http.ResponseWriter, r *http.Request) {
	h.membershipAction(w, r, h.membershipService.DeclineInvitation)
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	h.membershipAction(w, r, h.membershipService.Apply)
}

func (h *Handler) CancelApplication(w http.ResponseWriter, r *http.Request) {
	h.membershipAction(w, r, h.membershipService.CancelApplication)
}

func (h *Handler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	var req ReviewApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	err := h.membershipService.Review(r.Context(), req.ClubID, req.ActorID, req.TargetID, req.Approve)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	err := h.membershipService.Withdraw(r.Context(), req.ClubID, req.ActorID, req.TargetID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.handleError(w, err)
		return
	}

	err = h.membershipService.ChangeRole(r.Context(), req.ClubID, req.ActorID, req.TargetID, role)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// membershipAction - общий путь для операций вида (club_id, member_id)
func (h *Handler) membershipAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, clubID int, memberID string) error,
) {
	var req MembershipActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := action(r.Context(), req.ClubID, req.MemberID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
