package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateClubRequest struct {
	Name     string  `json:"name" validate:"required"`
	Capacity int     `json:"capacity" validate:"required,gt=0"`
	LeaderID string  `json:"leader_id" validate:"required"`
	IsPublic bool    `json:"is_public"`
	EndDate  *string `json:"end_date,omitempty"`
}

type MembershipResponse struct {
	MemberID string `json:"member_id"`
	Role     string `json:"role"`
	State    string `json:"state"`
}

type ClubResponse struct {
	ClubID   int                  `json:"club_id"`
	Name     string               `json:"name"`
	Capacity int                  `json:"capacity"`
	LeaderID string               `json:"leader_id"`
	IsPublic bool                 `json:"is_public"`
	IsActive bool                 `json:"is_active"`
	EndDate  *string              `json:"end_date,omitempty"`
	Members  []MembershipResponse `json:"members"`
}

type CreateClubResponse struct {
	Club ClubResponse `json:"club"`
}

type InvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

type InviteBatchRequest struct {
	ClubID      int                 `json:"club_id" validate:"required"`
	ActorID     string              `json:"actor_id" validate:"required"`
	Invitations []InvitationRequest `json:"invitations" validate:"required,min=1,dive"`
}

type MembershipActionRequest struct {
	ClubID   int    `json:"club_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
}

type ReviewApplicationRequest struct {
	ClubID   int    `json:"club_id" validate:"required"`
	ActorID  string `json:"actor_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
	Approve  bool   `json:"approve"`
}

type WithdrawRequest struct {
	ClubID   int    `json:"club_id" validate:"required"`
	ActorID  string `json:"actor_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
}

type ChangeRoleRequest struct {
	ClubID   int    `json:"club_id" validate:"required"`
	ActorID  string `json:"actor_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type CreateMemberRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Tag   string `json:"tag,omitempty"`
}

type MemberResponse struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Tag      string `json:"tag"`
	Email    string `json:"email"`
	IsGuest  bool   `json:"is_guest"`
}

type CreateMemberResponse struct {
	Member MemberResponse `json:"member"`
}

type CreateScheduleRequest struct {
	ClubID   int    `json:"club_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
}

type ScheduleResponse struct {
	ScheduleID  int    `json:"schedule_id"`
	ClubID      int    `json:"club_id"`
	Title       string `json:"title"`
	IsActive    bool   `json:"is_active"`
	ChecklistID *int   `json:"checklist_id,omitempty"`
}

type DeleteScheduleRequest struct {
	ScheduleID int    `json:"schedule_id" validate:"required"`
	MemberID   string `json:"member_id" validate:"required"`
}

type CreateChecklistRequest struct {
	ScheduleID int    `json:"schedule_id" validate:"required"`
	MemberID   string `json:"member_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
}

type ChecklistResponse struct {
	ChecklistID int    `json:"checklist_id"`
	ScheduleID  int    `json:"schedule_id"`
	Title       string `json:"title"`
	IsActive    bool   `json:"is_active"`
}

type PermissionCheckResponse struct {
	Allowed bool `json:"allowed"`
}
