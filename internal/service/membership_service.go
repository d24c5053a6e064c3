package service

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

// Invitation - один элемент пакета приглашений: email и желаемая роль.
type Invitation struct {
	Email string
	Role  domain.Role
}

type MembershipService interface {
	// CreateClub создает клуб и членство HOST для лидера.
	CreateClub(ctx context.Context, club *domain.Club) (*domain.Club, error)
	GetClub(ctx context.Context, clubID int) (*domain.Club, error)

	// InviteBatch приглашает пакет (email, роль). Дедупликация по email
	// (роль из последнего вхождения), WITHDRAWN-членства воскрешаются,
	// активные пропускаются, превышение вместимости отклоняет весь пакет.
	InviteBatch(ctx context.Context, clubID int, actorID string, invitations []Invitation) error

	AcceptInvitation(ctx context.Context, clubID int, callerID string) error
	DeclineInvitation(ctx context.Context, clubID int, callerID string) error
	Apply(ctx context.Context, clubID int, callerID string) error
	CancelApplication(ctx context.Context, clubID int, callerID string) error
	// Review одобряет (approve=true) или отклоняет заявку targetID. Только HOST.
	Review(ctx context.Context, clubID int, actorID, targetID string, approve bool) error
	// Withdraw выводит участника: сам себя либо HOST другого; HOST не выходит сам.
	Withdraw(ctx context.Context, clubID int, actorID, targetID string) error
	// ChangeRole меняет роль участника. Только HOST, не себе, HOST не выдается.
	ChangeRole(ctx context.Context, clubID int, actorID, targetID string, newRole domain.Role) error
}
