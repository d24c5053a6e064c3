package domain

import (
	"strings"
	"time"
)

// Role - роль участника внутри клуба. Иерархия: PARTICIPANT < MANAGER < HOST.
type Role string

const (
	RoleParticipant Role = "PARTICIPANT"
	RoleManager     Role = "MANAGER"
	RoleHost        Role = "HOST"
)

// ParseRole разбирает роль из строки без учета регистра.
// Неизвестные значения - ошибка валидации, дефолта нет.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleParticipant):
		return RoleParticipant, nil
	case string(RoleManager):
		return RoleManager, nil
	case string(RoleHost):
		return RoleHost, nil
	default:
		return "", NewValidationError("unknown role: " + s)
	}
}

// Level возвращает позицию роли в иерархии для сравнений.
func (r Role) Level() int {
	switch r {
	case RoleHost:
		return 3
	case RoleManager:
		return 2
	case RoleParticipant:
		return 1
	default:
		return 0
	}
}

// MembershipState - состояние жизненного цикла членства.
type MembershipState string

const (
	StateInvited   MembershipState = "INVITED"
	StateApplying  MembershipState = "APPLYING"
	StateJoining   MembershipState = "JOINING"
	StateWithdrawn MembershipState = "WITHDRAWN"
)

// ParseMembershipState разбирает состояние из строки без учета регистра.
func ParseMembershipState(s string) (MembershipState, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(StateInvited):
		return StateInvited, nil
	case string(StateApplying):
		return StateApplying, nil
	case string(StateJoining):
		return StateJoining, nil
	case string(StateWithdrawn):
		return StateWithdrawn, nil
	default:
		return "", NewValidationError("unknown membership state: " + s)
	}
}

type Club struct {
	ID        int
	Name      string
	Capacity  int
	LeaderID  string
	IsPublic  bool
	IsActive  bool
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time

	Memberships []Membership
}

// Expired сообщает, истек ли клуб к моменту now. Клуб без end_date не истекает.
// end_date хранится как дата: день end_date включительно клуб еще действует,
// поэтому сравнение идет с началом текущих суток, а не с самим now.
func (c *Club) Expired(now time.Time) bool {
	if c.EndDate == nil {
		return false
	}
	d := now.In(c.EndDate.Location())
	today := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return c.EndDate.Before(today)
}

type Member struct {
	ID        string
	Name      string
	Tag       string
	Email     string
	IsGuest   bool
	CreatedAt time.Time
}

// Membership - связь (клуб, участник) с ролью и состоянием.
// При выходе запись не удаляется (state -> WITHDRAWN); жесткое удаление
// только при отклонении приглашения или заявки.
type Membership struct {
	ID        int
	ClubID    int
	MemberID  string
	Role      Role
	State     MembershipState
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Active - занимает ли членство слот вместимости клуба.
func (m *Membership) Active() bool {
	return m.State != StateWithdrawn
}
