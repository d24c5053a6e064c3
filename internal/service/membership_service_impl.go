package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/repository"
	"github.com/bagdasarian/club-membership/internal/repository/postgres"
	"github.com/google/uuid"
)

type membershipService struct {
	db             *sql.DB
	clubRepo       repository.ClubRepository
	memberRepo     repository.MemberRepository
	membershipRepo repository.MembershipRepository
}

// NewMembershipService создает новый экземпляр MembershipService.
// db нужен для транзакционных операций: каждая мутация выполняется
// под блокировкой строки клуба (SELECT ... FOR UPDATE).
func NewMembershipService(
	db *sql.DB,
	clubRepo repository.ClubRepository,
	memberRepo repository.MemberRepository,
	membershipRepo repository.MembershipRepository,
) MembershipService {
	return &membershipService{
		db:             db,
		clubRepo:       clubRepo,
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
	}
}

// CreateClub создает клуб и членство HOST для лидера
func (s *membershipService) CreateClub(ctx context.Context, club *domain.Club) (*domain.Club, error) {
	if club.Capacity <= 0 {
		return nil, domain.NewValidationError("club capacity must be positive")
	}

	_, err := s.memberRepo.GetByID(ctx, club.LeaderID)
	if err != nil {
		if err.Error() == "member not found" || err.Error() == "invalid member ID" {
			return nil, domain.NewNotFoundError("member with id " + club.LeaderID)
		}
		return nil, err
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	return club, nil
}

// GetClub получает клуб вместе с членствами
func (s *membershipService) GetClub(ctx context.Context, clubID int) (*domain.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		if err.Error() == "club not found" {
			return nil, domain.NewNotFoundError("club")
		}
		return nil, err
	}

	return club, nil
}

// InviteBatch приглашает пакет (email, роль) под блокировкой строки клуба.
// Проверка вместимости и все записи атомарны относительно конкурентных
// пакетов по тому же клубу.
func (s *membershipService) InviteBatch(ctx context.Context, clubID int, actorID string, invitations []Invitation) error {
	// Дедупликация по email: роль берется из последнего вхождения
	deduped := dedupeInvitations(invitations)
	if len(deduped) == 0 {
		return nil
	}
	for _, inv := range deduped {
		if inv.Role == domain.RoleHost {
			return domain.NewInvariantViolationError("cannot grant HOST via invitation")
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	club, err := s.lockClub(ctx, tx, clubID)
	if err != nil {
		return err
	}
	if club.LeaderID != actorID {
		return domain.ErrNotAuthorized
	}

	emails := make([]string, 0, len(deduped))
	for _, inv := range deduped {
		emails = append(emails, inv.Email)
	}

	txMemberships := postgres.NewMembershipRepositoryWithTx(tx)
	existing, err := txMemberships.GetByClubAndEmails(ctx, clubID, emails)
	if err != nil {
		return err
	}

	var resurrected []*domain.Membership
	var pending []Invitation
	for _, inv := range deduped {
		membership, ok := existing[inv.Email]
		switch {
		case !ok:
			pending = append(pending, inv)
		case membership.State == domain.StateWithdrawn:
			// Воскрешение: состояние и роль из запроса
			if _, err := nextState(membership.State, eventInvite); err != nil {
				return err
			}
			membership.State = domain.StateInvited
			membership.Role = inv.Role
			resurrected = append(resurrected, membership)
		default:
			// Повторное приглашение активной связи - идемпотентный пропуск
		}
	}

	// Вместимость: воскрешенные членства в арифметике не участвуют,
	// считаются только действительно новые строки
	active, err := txMemberships.CountActive(ctx, clubID)
	if err != nil {
		return err
	}
	if active+len(pending) > club.Capacity {
		return domain.ErrCapacityExceeded
	}

	fresh, err := s.resolveInvitedMembers(ctx, tx, clubID, pending)
	if err != nil {
		return err
	}

	if err := txMemberships.UpdateBatch(ctx, resurrected); err != nil {
		return err
	}
	if err := txMemberships.CreateBatch(ctx, fresh); err != nil {
		return err
	}

	return tx.Commit()
}

// AcceptInvitation переводит приглашение вызывающего в JOINING
func (s *membershipService) AcceptInvitation(ctx context.Context, clubID int, callerID string) error {
	return s.applyEvent(ctx, clubID, callerID, eventAccept)
}

// DeclineInvitation удаляет отклоненное приглашение вызывающего
func (s *membershipService) DeclineInvitation(ctx context.Context, clubID int, callerID string) error {
	return s.applyEvent(ctx, clubID, callerID, eventDecline)
}

// Apply подает заявку вызывающего в публичный клуб (или возобновляет
// ее после выхода). Новая заявка проходит проверку вместимости.
func (s *membershipService) Apply(ctx context.Context, clubID int, callerID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	club, err := s.lockClub(ctx, tx, clubID)
	if err != nil {
		return err
	}
	if !club.IsPublic {
		return domain.ErrPrivateClub
	}

	txMemberships := postgres.NewMembershipRepositoryWithTx(tx)
	membership, err := txMemberships.GetByClubAndMember(ctx, clubID, callerID)
	if err != nil && err.Error() != "membership not found" {
		if err.Error() == "invalid member ID" {
			return domain.NewNotFoundError("member with id " + callerID)
		}
		return err
	}

	if membership != nil {
		// Повторная заявка после выхода; остальные состояния отклоняет таблица
		t, err := nextState(membership.State, eventApply)
		if err != nil {
			return err
		}
		membership.State = t.next
		if err := txMemberships.Update(ctx, membership); err != nil {
			return err
		}
		return tx.Commit()
	}

	txMembers := postgres.NewMemberRepositoryWithTx(tx)
	if _, err := txMembers.GetByID(ctx, callerID); err != nil {
		if err.Error() == "member not found" {
			return domain.NewNotFoundError("member with id " + callerID)
		}
		return err
	}

	active, err := txMemberships.CountActive(ctx, clubID)
	if err != nil {
		return err
	}
	if active+1 > club.Capacity {
		return domain.ErrCapacityExceeded
	}

	err = txMemberships.Create(ctx, &domain.Membership{
		ClubID:   clubID,
		MemberID: callerID,
		Role:     domain.RoleParticipant,
		State:    domain.StateApplying,
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CancelApplication удаляет заявку самого вызывающего
func (s *membershipService) CancelApplication(ctx context.Context, clubID int, callerID string) error {
	return s.applyEvent(ctx, clubID, callerID, eventCancel)
}

// Review обрабатывает заявку targetID: approve=true переводит в JOINING,
// approve=false удаляет запись. Доступно только HOST клуба.
func (s *membershipService) Review(ctx context.Context, clubID int, actorID, targetID string, approve bool) error {
	event := eventReject
	if approve {
		event = eventApprove
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	club, err := s.lockClub(ctx, tx, clubID)
	if err != nil {
		return err
	}
	if club.LeaderID != actorID {
		return domain.ErrNotAuthorized
	}

	if err := s.transitionMembership(ctx, tx, clubID, targetID, event); err != nil {
		return err
	}

	return tx.Commit()
}

// Withdraw выводит участника из клуба. Сам участник выходит всегда,
// HOST может вывести другого; выход самого HOST запрещен.
func (s *membershipService) Withdraw(ctx context.Context, clubID int, actorID, targetID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	club, err := s.lockClub(ctx, tx, clubID)
	if err != nil {
		return err
	}

	if actorID != targetID && actorID != club.LeaderID {
		return domain.ErrNotAuthorized
	}
	if targetID == club.LeaderID {
		return domain.NewInvariantViolationError("host cannot withdraw from their own club")
	}

	if err := s.transitionMembership(ctx, tx, clubID, targetID, eventWithdraw); err != nil {
		return err
	}

	return tx.Commit()
}

// ChangeRole меняет роль участника. Только HOST, не самому себе;
// выдача HOST этим путем не поддерживается.
func (s *membershipService) ChangeRole(ctx context.Context, clubID int, actorID, targetID string, newRole domain.Role) error {
	if newRole == domain.RoleHost {
		return domain.NewInvariantViolationError("cannot grant HOST via role change")
	}
	if newRole != domain.RoleParticipant && newRole != domain.RoleManager {
		return domain.NewValidationError("unknown role: " + string(newRole))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	club, err := s.lockClub(ctx, tx, clubID)
	if err != nil {
		return err
	}
	if club.LeaderID != actorID {
		return domain.ErrNotAuthorized
	}
	if actorID == targetID {
		return domain.NewInvariantViolationError("host cannot change their own role")
	}

	txMemberships := postgres.NewMembershipRepositoryWithTx(tx)
	membership, err := txMemberships.GetByClubAndMember(ctx, clubID, targetID)
	if err != nil {
		if err.Error() == "membership not found" || err.Error() == "invalid member ID" {
			return domain.NewNotFoundError("membership")
		}
		return err
	}
	if membership.State == domain.StateWithdrawn {
		return domain.NewInvalidTransitionError("member has withdrawn, role change is not allowed")
	}

	membership.Role = newRole
	if err := txMemberships.Update(ctx, membership); err != nil {
		return err
	}

	return tx.Commit()
}

// applyEvent - общий путь для событий, инициируемых самим участником
// (accept/decline/cancel): блокировка клуба, переход, запись.
func (s *membershipService) applyEvent(ctx context.Context, clubID int, callerID string, event lifecycleEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := s.lockClub(ctx, tx, clubID); err != nil {
		return err
	}

	if err := s.transitionMembership(ctx, tx, clubID, callerID, event); err != nil {
		return err
	}

	return tx.Commit()
}

// transitionMembership применяет событие к членству (club, member) внутри
// транзакции: переход по таблице, затем update либо delete.
func (s *membershipService) transitionMembership(ctx context.Context, tx *sql.Tx, clubID int, memberID string, event lifecycleEvent) error {
	txMemberships := postgres.NewMembershipRepositoryWithTx(tx)
	membership, err := txMemberships.GetByClubAndMember(ctx, clubID, memberID)
	if err != nil {
		if err.Error() == "membership not found" || err.Error() == "invalid member ID" {
			return domain.NewNotFoundError("membership")
		}
		return err
	}

	t, err := nextState(membership.State, event)
	if err != nil {
		return err
	}

	if t.remove {
		return txMemberships.Delete(ctx, membership.ID)
	}

	membership.State = t.next
	return txMemberships.Update(ctx, membership)
}

// lockClub читает клуб с блокировкой строки; мягко удаленный клуб
// для мутаций неотличим от отсутствующего.
func (s *membershipService) lockClub(ctx context.Context, tx *sql.Tx, clubID int) (*domain.Club, error) {
	txClubs := postgres.NewClubRepositoryWithTx(tx)
	club, err := txClubs.GetByIDForUpdate(ctx, clubID)
	if err != nil {
		if err.Error() == "club not found" {
			return nil, domain.NewNotFoundError("club")
		}
		return nil, err
	}
	if !club.IsActive {
		return nil, domain.NewNotFoundError("club")
	}

	return club, nil
}

// resolveInvitedMembers превращает оставшиеся приглашения в новые членства.
// Для неизвестного email создается гостевой участник: имя из локальной
// части адреса, тег из uuid.
func (s *membershipService) resolveInvitedMembers(ctx context.Context, tx *sql.Tx, clubID int, pending []Invitation) ([]*domain.Membership, error) {
	if len(pending) == 0 {
		return nil, nil
	}

	emails := make([]string, 0, len(pending))
	for _, inv := range pending {
		emails = append(emails, inv.Email)
	}

	txMembers := postgres.NewMemberRepositoryWithTx(tx)
	members, err := txMembers.GetByEmails(ctx, emails)
	if err != nil {
		return nil, err
	}

	fresh := make([]*domain.Membership, 0, len(pending))
	for _, inv := range pending {
		member, ok := members[inv.Email]
		if !ok {
			member = &domain.Member{
				Name:    guestNameFromEmail(inv.Email),
				Tag:     uuid.NewString()[:8],
				Email:   inv.Email,
				IsGuest: true,
			}
			if err := txMembers.Create(ctx, member); err != nil {
				return nil, err
			}
		}
		fresh = append(fresh, &domain.Membership{
			ClubID:   clubID,
			MemberID: member.ID,
			Role:     inv.Role,
			State:    domain.StateInvited,
		})
	}

	return fresh, nil
}

// dedupeInvitations убирает дубликаты email, сохраняя порядок первого
// вхождения; роль побеждает из последнего вхождения.
func dedupeInvitations(invitations []Invitation) []Invitation {
	index := make(map[string]int, len(invitations))
	deduped := make([]Invitation, 0, len(invitations))
	for _, inv := range invitations {
		email := strings.ToLower(strings.TrimSpace(inv.Email))
		if email == "" {
			continue
		}
		inv.Email = email
		if i, ok := index[email]; ok {
			deduped[i].Role = inv.Role
			continue
		}
		index[email] = len(deduped)
		deduped = append(deduped, inv)
	}
	return deduped
}

func guestNameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
