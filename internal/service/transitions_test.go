package service

import (
	"errors"
	"testing"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNextState_AllowedTransitions проверяет всю таблицу разрешенных переходов
func TestNextState_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name   string
		state  domain.MembershipState
		event  lifecycleEvent
		next   domain.MembershipState
		remove bool
	}{
		{"INVITED + accept -> JOINING", domain.StateInvited, eventAccept, domain.StateJoining, false},
		{"INVITED + decline -> удаление", domain.StateInvited, eventDecline, "", true},
		{"APPLYING + approve -> JOINING", domain.StateApplying, eventApprove, domain.StateJoining, false},
		{"APPLYING + reject -> удаление", domain.StateApplying, eventReject, "", true},
		{"APPLYING + cancel -> удаление", domain.StateApplying, eventCancel, "", true},
		{"JOINING + withdraw -> WITHDRAWN", domain.StateJoining, eventWithdraw, domain.StateWithdrawn, false},
		{"WITHDRAWN + invite -> INVITED (воскрешение)", domain.StateWithdrawn, eventInvite, domain.StateInvited, false},
		{"WITHDRAWN + apply -> APPLYING (повторная заявка)", domain.StateWithdrawn, eventApply, domain.StateApplying, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := nextState(tt.state, tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.remove, tr.remove)
			if !tt.remove {
				assert.Equal(t, tt.next, tr.next)
			}
		})
	}
}

// TestNextState_RejectedTransitions: любое событие вне таблицы отклоняется
// с описательной ошибкой, молчаливых no-op нет
func TestNextState_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		state   domain.MembershipState
		event   lifecycleEvent
		message string
	}{
		{"JOINING + invite: уже вступил", domain.StateJoining, eventInvite, "member already joined this club"},
		{"JOINING + apply: уже вступил", domain.StateJoining, eventApply, "member already joined this club"},
		{"JOINING + approve: нечего одобрять", domain.StateJoining, eventApprove, "member already joined this club, nothing to review"},
		{"APPLYING + invite: уже подал заявку", domain.StateApplying, eventInvite, "member is already applying to this club"},
		{"APPLYING + apply: уже подал заявку", domain.StateApplying, eventApply, "member is already applying to this club"},
		{"INVITED + apply: надо принять приглашение", domain.StateInvited, eventApply, "member is already invited, accept the invitation instead"},
		{"INVITED + approve: это приглашение, а не заявка", domain.StateInvited, eventApprove, "membership is an invitation, not an application"},
		{"INVITED + reject: это приглашение, а не заявка", domain.StateInvited, eventReject, "membership is an invitation, not an application"},
		{"WITHDRAWN + accept: участник вышел", domain.StateWithdrawn, eventAccept, "member has withdrawn, accept is not allowed"},
		{"WITHDRAWN + withdraw: участник уже вышел", domain.StateWithdrawn, eventWithdraw, "member has withdrawn, withdraw is not allowed"},
		{"INVITED + withdraw: еще не вступил", domain.StateInvited, eventWithdraw, "withdraw is not allowed for membership in state INVITED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nextState(tt.state, tt.event)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
