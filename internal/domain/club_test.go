package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("разбор без учета регистра", func(t *testing.T) {
		role, err := ParseRole("manager")
		require.NoError(t, err)
		assert.Equal(t, RoleManager, role)

		role, err = ParseRole("  HOST ")
		require.NoError(t, err)
		assert.Equal(t, RoleHost, role)

		role, err = ParseRole("Participant")
		require.NoError(t, err)
		assert.Equal(t, RoleParticipant, role)
	})

	t.Run("неизвестная роль - ошибка валидации, без дефолта", func(t *testing.T) {
		_, err := ParseRole("admin")
		require.Error(t, err)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
	})
}

func TestRole_Level(t *testing.T) {
	// PARTICIPANT < MANAGER < HOST
	assert.Less(t, RoleParticipant.Level(), RoleManager.Level())
	assert.Less(t, RoleManager.Level(), RoleHost.Level())
}

func TestParseMembershipState(t *testing.T) {
	state, err := ParseMembershipState("joining")
	require.NoError(t, err)
	assert.Equal(t, StateJoining, state)

	_, err = ParseMembershipState("left")
	require.Error(t, err)
}

func TestClub_Expired(t *testing.T) {
	now := time.Now()

	t.Run("клуб без end_date не истекает", func(t *testing.T) {
		club := &Club{}
		assert.False(t, club.Expired(now))
	})

	t.Run("end_date в прошлом - клуб истек", func(t *testing.T) {
		past := now.Add(-24 * time.Hour)
		club := &Club{EndDate: &past}
		assert.True(t, club.Expired(now))
	})

	t.Run("end_date в будущем - клуб живой", func(t *testing.T) {
		future := now.Add(24 * time.Hour)
		club := &Club{EndDate: &future}
		assert.False(t, club.Expired(now))
	})

	// end_date - дата без времени (полночь): день end_date клуб
	// действует целиком и истекает только со следующих суток
	t.Run("end_date сегодня - клуб действует весь день", func(t *testing.T) {
		endDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		club := &Club{EndDate: &endDate}

		assert.False(t, club.Expired(time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC)))
		assert.False(t, club.Expired(time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC)))
		assert.True(t, club.Expired(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)))
	})
}

func TestMembership_Active(t *testing.T) {
	// Слот вместимости занимают все состояния, кроме WITHDRAWN
	for _, state := range []MembershipState{StateInvited, StateApplying, StateJoining} {
		m := &Membership{State: state}
		assert.True(t, m.Active(), "state %s должен занимать слот", state)
	}

	m := &Membership{State: StateWithdrawn}
	assert.False(t, m.Active())
}
