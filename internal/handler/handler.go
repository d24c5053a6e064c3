package handler

import (
	"github.com/bagdasarian/club-membership/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	membershipService service.MembershipService
	memberService     service.MemberService
	scheduleService   service.ScheduleService
	permissionService service.PermissionService
	validate          *validator.Validate
}

func NewHandler(
	membershipService service.MembershipService,
	memberService service.MemberService,
	scheduleService service.ScheduleService,
	permissionService service.PermissionService,
) *Handler {
	return &Handler{
		membershipService: membershipService,
		memberService:     memberService,
		scheduleService:   scheduleService,
		permissionService: permissionService,
		validate:          validator.New(),
	}
}
