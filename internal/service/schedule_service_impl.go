package service

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/repository"
	"github.com/bagdasarian/club-membership/internal/repository/postgres"
)

type scheduleService struct {
	db            *sql.DB
	scheduleRepo  repository.ScheduleRepository
	checklistRepo repository.ChecklistRepository
	permissions   PermissionService
}

// NewScheduleService создает новый экземпляр ScheduleService
func NewScheduleService(
	db *sql.DB,
	scheduleRepo repository.ScheduleRepository,
	checklistRepo repository.ChecklistRepository,
	permissions PermissionService,
) ScheduleService {
	return &scheduleService{
		db:            db,
		scheduleRepo:  scheduleRepo,
		checklistRepo: checklistRepo,
		permissions:   permissions,
	}
}

func (s *scheduleService) CreateSchedule(ctx context.Context, clubID int, callerID, title string) (*domain.Schedule, error) {
	allowed, err := s.permissions.CheckClub(ctx, clubID, callerID, LevelManagerOrHost)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrNotAuthorized
	}

	schedule := &domain.Schedule{
		ClubID: clubID,
		Title:  title,
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// DeleteSchedule мягко удаляет расписание. Чек-лист не удаляется,
// а деактивируется вместе с ним; обе записи меняются в одной транзакции.
func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID int, callerID string) error {
	allowed, err := s.permissions.CheckSchedule(ctx, scheduleID, callerID, LevelManagerOrHost)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrNotAuthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	txSchedules := postgres.NewScheduleRepositoryWithTx(tx)
	if err := txSchedules.SetIsActive(ctx, scheduleID, false); err != nil {
		if err.Error() == "schedule not found" {
			return domain.NewNotFoundError("schedule")
		}
		return err
	}

	txChecklists := postgres.NewChecklistRepositoryWithTx(tx)
	if err := txChecklists.DeactivateBySchedule(ctx, scheduleID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *scheduleService) CreateChecklist(ctx context.Context, scheduleID int, callerID, title string) (*domain.Checklist, error) {
	// Проверка слота: активность расписания и отсутствие живого чек-листа
	allowed, err := s.permissions.CheckChecklistSlot(ctx, scheduleID, callerID, LevelManagerOrHost)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrNotAuthorized
	}

	checklist := &domain.Checklist{
		ScheduleID: scheduleID,
		Title:      title,
	}
	if err := s.checklistRepo.Create(ctx, checklist); err != nil {
		return nil, err
	}

	return checklist, nil
}
