package service

import (
	"context"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/repository"
)

type permissionService struct {
	clubRepo      repository.ClubRepository
	scheduleRepo  repository.ScheduleRepository
	checklistRepo repository.ChecklistRepository
}

// NewPermissionService создает новый экземпляр PermissionService.
// Сервис только читает; членства приходят вместе с клубом, поэтому
// клуб на один запрос загружается ровно один раз.
func NewPermissionService(
	clubRepo repository.ClubRepository,
	scheduleRepo repository.ScheduleRepository,
	checklistRepo repository.ChecklistRepository,
) PermissionService {
	return &permissionService{
		clubRepo:      clubRepo,
		scheduleRepo:  scheduleRepo,
		checklistRepo: checklistRepo,
	}
}

// CheckClub проверяет уровень доступа вызывающего напрямую на клубе.
func (s *permissionService) CheckClub(ctx context.Context, clubID int, callerID string, level AccessLevel) (bool, error) {
	club, err := s.resolveClub(ctx, clubID)
	if err != nil {
		return false, err
	}
	return checkResolvedClub(club, callerID, level, false)
}

// CheckSchedule резолвит расписание к владеющему клубу и делегирует вниз
// строгие клубные предикаты.
func (s *permissionService) CheckSchedule(ctx context.Context, scheduleID int, callerID string, level AccessLevel) (bool, error) {
	schedule, err := s.resolveActiveSchedule(ctx, scheduleID)
	if err != nil {
		return false, err
	}

	club, err := s.resolveClub(ctx, schedule.ClubID)
	if err != nil {
		return false, err
	}
	return checkResolvedClub(club, callerID, level, true)
}

// CheckChecklist резолвит чек-лист через расписание к клубу, по пути
// сверяя обратную ссылку расписания на этот же чек-лист.
func (s *permissionService) CheckChecklist(ctx context.Context, checklistID int, callerID string, level AccessLevel) (bool, error) {
	checklist, err := s.checklistRepo.GetByID(ctx, checklistID)
	if err != nil {
		if err.Error() == "checklist not found" {
			return false, domain.NewNotFoundError("checklist")
		}
		return false, err
	}
	if !checklist.IsActive {
		return false, domain.NewNotFoundError("checklist")
	}

	schedule, err := s.resolveActiveSchedule(ctx, checklist.ScheduleID)
	if err != nil {
		return false, err
	}
	// Защита инварианта "один чек-лист на расписание" и со стороны
	// чек-листа: расписание обязано ссылаться именно на него
	if schedule.ChecklistID == nil || *schedule.ChecklistID != checklist.ID {
		return false, domain.ErrConflict
	}

	club, err := s.resolveClub(ctx, schedule.ClubID)
	if err != nil {
		return false, err
	}
	return checkResolvedClub(club, callerID, level, true)
}

// CheckChecklistSlot проверяет право создать чек-лист для расписания:
// расписание активно и еще не имеет живого чек-листа.
func (s *permissionService) CheckChecklistSlot(ctx context.Context, scheduleID int, callerID string, level AccessLevel) (bool, error) {
	schedule, err := s.resolveActiveSchedule(ctx, scheduleID)
	if err != nil {
		return false, err
	}
	if schedule.ChecklistID != nil {
		return false, domain.ErrConflict
	}

	club, err := s.resolveClub(ctx, schedule.ClubID)
	if err != nil {
		return false, err
	}
	return checkResolvedClub(club, callerID, level, true)
}

// IsClubHost - разрешительная проверка HOST: активность и истечение клуба
// не учитываются, сравнивается только лидер.
func (s *permissionService) IsClubHost(ctx context.Context, clubID int, callerID string) (bool, error) {
	club, err := s.resolveClub(ctx, clubID)
	if err != nil {
		return false, err
	}
	return club.LeaderID == callerID, nil
}

func (s *permissionService) resolveClub(ctx context.Context, clubID int) (*domain.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		if err.Error() == "club not found" {
			return nil, domain.NewNotFoundError("club")
		}
		return nil, err
	}
	return club, nil
}

func (s *permissionService) resolveActiveSchedule(ctx context.Context, scheduleID int) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if err.Error() == "schedule not found" {
			return nil, domain.NewNotFoundError("schedule")
		}
		return nil, err
	}
	if !schedule.IsActive {
		return nil, domain.NewNotFoundError("schedule")
	}
	return schedule, nil
}

// checkResolvedClub - базовые клубные предикаты над уже загруженным клубом.
// strict требует живой (не удаленный, не истекший) клуб для всех уровней;
// без strict это касается только ролевых проверок, как их видит сам клуб.
// Отсутствие строки членства - отказ (false, nil), а не NOT_FOUND:
// "тебе сюда нельзя" отличается от "ресурса нет".
func checkResolvedClub(club *domain.Club, callerID string, level AccessLevel, strict bool) (bool, error) {
	alive := club.IsActive && !club.Expired(time.Now())

	switch level {
	case LevelMember:
		if strict && !alive {
			return false, domain.NewNotFoundError("club")
		}
		if !club.IsActive {
			return false, nil
		}
		m := membershipOf(club, callerID)
		return m != nil && m.State == domain.StateJoining, nil

	case LevelHost, LevelManager, LevelManagerOrHost:
		if !alive {
			return false, domain.NewNotFoundError("club")
		}
		if level == LevelHost {
			return club.LeaderID == callerID, nil
		}
		if level == LevelManagerOrHost && club.LeaderID == callerID {
			return true, nil
		}
		m := membershipOf(club, callerID)
		if m == nil || m.State != domain.StateJoining {
			return false, nil
		}
		if level == LevelManager {
			// manager - ровно MANAGER, без иерархии
			return m.Role == domain.RoleManager, nil
		}
		return m.Role.Level() >= domain.RoleManager.Level(), nil

	default:
		return false, domain.NewValidationError("unknown access level: " + string(level))
	}
}

func membershipOf(club *domain.Club, memberID string) *domain.Membership {
	for i := range club.Memberships {
		if club.Memberships[i].MemberID == memberID {
			return &club.Memberships[i]
		}
	}
	return nil
}
