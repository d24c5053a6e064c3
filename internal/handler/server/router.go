package server

import (
	"net/http"

	"github.com/bagdasarian/club-membership/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /club/create", h.CreateClub)
	mux.HandleFunc("GET /club/get", h.GetClub)
	mux.HandleFunc("POST /club/invite", h.InviteBatch)
	mux.HandleFunc("POST /club/invitation/accept", h.AcceptInvitation)
	mux.HandleFunc("POST /club/invitation/decline", h.DeclineInvitation)
	mux.HandleFunc("POST /club/apply", h.Apply)
	mux.HandleFunc("POST /club/application/cancel", h.CancelApplication)
	mux.HandleFunc("POST /club/application/review", h.ReviewApplication)
	mux.HandleFunc("POST /club/withdraw", h.Withdraw)
	mux.HandleFunc("POST /club/changeRole", h.ChangeRole)
	mux.HandleFunc("POST /member/add", h.CreateMember)
	mux.HandleFunc("GET /member/get", h.GetMember)
	mux.HandleFunc("POST /schedule/create", h.CreateSchedule)
	mux.HandleFunc("POST /schedule/delete", h.DeleteSchedule)
	mux.HandleFunc("POST /checklist/create", h.CreateChecklist)
	mux.HandleFunc("GET /permission/check", h.CheckPermission)
}
