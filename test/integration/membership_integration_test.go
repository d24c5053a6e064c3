//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/repository/postgres"
	"github.com/bagdasarian/club-membership/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(db *sql.DB) (service.MembershipService, service.MemberService) {
	clubRepo := postgres.NewClubRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)

	membershipService := service.NewMembershipService(db, clubRepo, memberRepo, membershipRepo)
	memberService := service.NewMemberService(memberRepo)
	return membershipService, memberService
}

func createMember(t *testing.T, ctx context.Context, svc service.MemberService, name, email string) *domain.Member {
	member, err := svc.CreateMember(ctx, &domain.Member{Name: name, Email: email})
	require.NoError(t, err)
	return member
}

func TestMembershipLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	membershipService, memberService := newServices(db)
	membershipRepo := postgres.NewMembershipRepository(db)

	alice := createMember(t, ctx, memberService, "Alice", "alice@example.com")
	bob := createMember(t, ctx, memberService, "Bob", "bob@example.com")

	// 1. Клуб создаётся сразу с членством HOST для лидера
	club, err := membershipService.CreateClub(ctx, &domain.Club{
		Name:     "Шахматный клуб",
		Capacity: 5,
		LeaderID: alice.ID,
		IsPublic: true,
	})
	require.NoError(t, err)
	require.Len(t, club.Memberships, 1)
	assert.Equal(t, domain.RoleHost, club.Memberships[0].Role)
	assert.Equal(t, domain.StateJoining, club.Memberships[0].State)

	// 2. Приглашение и принятие: INVITED -> JOINING
	err = membershipService.InviteBatch(ctx, club.ID, alice.ID, []service.Invitation{
		{Email: "bob@example.com", Role: domain.RoleManager},
	})
	require.NoError(t, err)

	membership, err := membershipRepo.GetByClubAndMember(ctx, club.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInvited, membership.State)
	assert.Equal(t, domain.RoleManager, membership.Role)

	require.NoError(t, membershipService.AcceptInvitation(ctx, club.ID, bob.ID))

	membership, err = membershipRepo.GetByClubAndMember(ctx, club.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateJoining, membership.State)

	// 3. Выход: JOINING -> WITHDRAWN, строка остаётся
	require.NoError(t, membershipService.Withdraw(ctx, club.ID, bob.ID, bob.ID))

	membership, err = membershipRepo.GetByClubAndMember(ctx, club.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateWithdrawn, membership.State)
	withdrawnID := membership.ID

	// 4. Повторное приглашение воскрешает ту же строку
	err = membershipService.InviteBatch(ctx, club.ID, alice.ID, []service.Invitation{
		{Email: "bob@example.com", Role: domain.RoleParticipant},
	})
	require.NoError(t, err)

	membership, err = membershipRepo.GetByClubAndMember(ctx, club.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, withdrawnID, membership.ID, "воскрешение не должно создавать новую строку")
	assert.Equal(t, domain.StateInvited, membership.State)
	assert.Equal(t, domain.RoleParticipant, membership.Role)

	// 5. Отклонение приглашения удаляет строку
	require.NoError(t, membershipService.DeclineInvitation(ctx, club.ID, bob.ID))

	_, err = membershipRepo.GetByClubAndMember(ctx, club.ID, bob.ID)
	require.Error(t, err)
}

func TestInviteBatchDedupAndGuests(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	membershipService, memberService := newServices(db)
	memberRepo := postgres.NewMemberRepository(db)

	alice := createMember(t, ctx, memberService, "Alice", "alice@example.com")
	club, err := membershipService.CreateClub(ctx, &domain.Club{
		Name:     "Книжный клуб",
		Capacity: 10,
		LeaderID: alice.ID,
		IsPublic: false,
	})
	require.NoError(t, err)

	// Дубликат email: роль из последнего вхождения; незнакомый email
	// порождает гостевого участника
	err = membershipService.InviteBatch(ctx, club.ID, alice.ID, []service.Invitation{
		{Email: "carol@example.com", Role: domain.RoleParticipant},
		{Email: "Carol@Example.com", Role: domain.RoleManager},
	})
	require.NoError(t, err)

	guest, err := memberRepo.GetByEmail(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.True(t, guest.IsGuest)
	assert.Equal(t, "carol", guest.Name)

	loaded, err := membershipService.GetClub(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Memberships, 2, "ровно одна строка на email")

	var carolMembership *domain.Membership
	for i := range loaded.Memberships {
		if loaded.Memberships[i].MemberID == guest.ID {
			carolMembership = &loaded.Memberships[i]
		}
	}
	require.NotNil(t, carolMembership)
	assert.Equal(t, domain.RoleManager, carolMembership.Role)
	assert.Equal(t, domain.StateInvited, carolMembership.State)
}

func TestInviteBatchCapacity(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	membershipService, memberService := newServices(db)

	alice := createMember(t, ctx, memberService, "Alice", "alice@example.com")
	club, err := membershipService.CreateClub(ctx, &domain.Club{
		Name:     "Камерный клуб",
		Capacity: 2,
		LeaderID: alice.ID,
		IsPublic: true,
	})
	require.NoError(t, err)

	// HOST занимает один слот; пакет на два приглашения не влезает
	err = membershipService.InviteBatch(ctx, club.ID, alice.ID, []service.Invitation{
		{Email: "bob@example.com", Role: domain.RoleParticipant},
		{Email: "carol@example.com", Role: domain.RoleParticipant},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCapacityExceeded))

	// Отклонённый пакет не оставляет частичных записей
	loaded, err := membershipService.GetClub(ctx, club.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Memberships, 1)

	// Пакет на одно приглашение проходит
	err = membershipService.InviteBatch(ctx, club.ID, alice.ID, []service.Invitation{
		{Email: "bob@example.com", Role: domain.RoleParticipant},
	})
	require.NoError(t, err)
}

func TestApplyAndReview(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	membershipService, memberService := newServices(db)
	membershipRepo := postgres.NewMembershipRepository(db)

	alice := createMember(t, ctx, memberService, "Alice", "alice@example.com")
	bob := createMember(t, ctx, memberService, "Bob", "bob@example.com")
	carol := createMember(t, ctx, memberService, "Carol", "carol@example.com")

	club, err := membershipService.CreateClub(ctx, &domain.Club{
		Name:     "Беговой клуб",
		Capacity: 5,
		LeaderID: alice.ID,
		IsPublic: true,
	})
	require.NoError(t, err)

	// Заявка и одобрение: APPLYING -> JOINING
	require.NoError(t, membershipService.Apply(ctx, club.ID, bob.ID))

	membership, err := membershipRepo.GetByClubAndMember(ctx, club.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApplying, membership.State)

	require.NoError(t, membershipService.Review(ctx, club.ID, alice.ID, bob.ID, true))

	membership, err = membershipRepo.GetByClubAndMember(ctx, club.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateJoining, membership.State)

	// Отклонённая заявка удаляется
	require.NoError(t, membershipService.Apply(ctx, club.ID, carol.ID))
	require.NoError(t, membershipService.Review(ctx, club.ID, alice.ID, carol.ID, false))

	_, err = membershipRepo.GetByClubAndMember(ctx, club.ID, carol.ID)
	require.Error(t, err)

	// Заявка в непубличный клуб отклоняется
	private, err := membershipService.CreateClub(ctx, &domain.Club{
		Name:     "Закрытый клуб",
		Capacity: 5,
		LeaderID: alice.ID,
		IsPublic: false,
	})
	require.NoError(t, err)

	err = membershipService.Apply(ctx, private.ID, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPrivateClub))
}

func TestHostInvariants(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	membershipService, memberService := newServices(db)

	alice := createMember(t, ctx, memberService, "Alice", "alice@example.com")
	bob := createMember(t, ctx, memberService, "Bob", "bob@example.com")

	club, err := membershipService.CreateClub(ctx, &domain.Club{
		Name:     "Клуб дебатов",
		Capacity: 5,
		LeaderID: alice.ID,
		IsPublic: true,
	})
	require.NoError(t, err)

	// HOST не может выйти из собственного клуба
	err = membershipService.Withdraw(ctx, club.ID, alice.ID, alice.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvariantViolation))

	// Членство HOST не тронуто
	loaded, err := membershipService.GetClub(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Memberships, 1)
	assert.Equal(t, domain.StateJoining, loaded.Memberships[0].State)

	// Смена роли: только HOST, и не на HOST
	require.NoError(t, membershipService.InviteBatch(ctx, club.ID, alice.ID, []service.Invitation{
		{Email: "bob@example.com", Role: domain.RoleParticipant},
	}))
	require.NoError(t, membershipService.AcceptInvitation(ctx, club.ID, bob.ID))

	err = membershipService.ChangeRole(ctx, club.ID, bob.ID, bob.ID, domain.RoleManager)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotAuthorized))

	err = membershipService.ChangeRole(ctx, club.ID, alice.ID, bob.ID, domain.RoleHost)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvariantViolation))

	require.NoError(t, membershipService.ChangeRole(ctx, club.ID, alice.ID, bob.ID, domain.RoleManager))
}
