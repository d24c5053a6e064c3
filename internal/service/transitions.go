package service

import (
	"fmt"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type lifecycleEvent string

const (
	eventInvite   lifecycleEvent = "invite"
	eventAccept   lifecycleEvent = "accept"
	eventDecline  lifecycleEvent = "decline"
	eventApply    lifecycleEvent = "apply"
	eventApprove  lifecycleEvent = "approve"
	eventReject   lifecycleEvent = "reject"
	eventCancel   lifecycleEvent = "cancel"
	eventWithdraw lifecycleEvent = "withdraw"
)

// transition - результат события: либо новое состояние, либо удаление записи.
type transition struct {
	next   domain.MembershipState
	remove bool
}

// transitionTable - единственное место, где описаны разрешенные переходы
// жизненного цикла членства. Новые состояния и события добавляются здесь.
var transitionTable = map[domain.MembershipState]map[lifecycleEvent]transition{
	domain.StateInvited: {
		eventAccept:  {next: domain.StateJoining},
		eventDecline: {remove: true},
	},
	domain.StateApplying: {
		eventApprove: {next: domain.StateJoining},
		eventReject:  {remove: true},
		eventCancel:  {remove: true},
	},
	domain.StateJoining: {
		eventWithdraw: {next: domain.StateWithdrawn},
	},
	domain.StateWithdrawn: {
		eventInvite: {next: domain.StateInvited},
		eventApply:  {next: domain.StateApplying},
	},
}

// nextState возвращает переход для пары (состояние, событие) либо
// INVALID_TRANSITION с описательной причиной. Молчаливых no-op здесь нет.
func nextState(state domain.MembershipState, event lifecycleEvent) (transition, error) {
	if t, ok := transitionTable[state][event]; ok {
		return t, nil
	}
	return transition{}, domain.NewInvalidTransitionError(rejectionReason(state, event))
}

// rejectionReason различает причины отказа по текущему состоянию, чтобы
// вызывающий мог отличить "уже вступил" от "это не заявка".
func rejectionReason(state domain.MembershipState, event lifecycleEvent) string {
	switch {
	case state == domain.StateJoining && (event == eventInvite || event == eventApply):
		return "member already joined this club"
	case state == domain.StateJoining && (event == eventApprove || event == eventReject):
		return "member already joined this club, nothing to review"
	case state == domain.StateApplying && event == eventInvite:
		return "member is already applying to this club"
	case state == domain.StateApplying && event == eventApply:
		return "member is already applying to this club"
	case state == domain.StateInvited && event == eventApply:
		return "member is already invited, accept the invitation instead"
	case state == domain.StateInvited && (event == eventApprove || event == eventReject):
		return "membership is an invitation, not an application"
	case state == domain.StateWithdrawn:
		return fmt.Sprintf("member has withdrawn, %s is not allowed", event)
	default:
		return fmt.Sprintf("%s is not allowed for membership in state %s", event, state)
	}
}
