package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type scheduleRepository struct {
	executor DBExecutor
}

func NewScheduleRepository(db *sql.DB) *scheduleRepository {
	return &scheduleRepository{executor: db}
}

func NewScheduleRepositoryWithTx(tx *sql.Tx) *scheduleRepository {
	return &scheduleRepository{executor: tx}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	query := `
		INSERT INTO schedules (club_id, title, is_active, created_at)
		VALUES ($1, $2, TRUE, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		schedule.ClubID,
		schedule.Title,
		time.Now(),
	).Scan(&schedule.ID, &schedule.CreatedAt)
	if err != nil {
		return err
	}
	schedule.IsActive = true

	return nil
}

// GetByID загружает расписание вместе с id его живого чек-листа (если есть).
func (r *scheduleRepository) GetByID(ctx context.Context, id int) (*domain.Schedule, error) {
	query := `
		SELECT s.id, s.club_id, s.title, s.is_active, s.created_at, c.id
		FROM schedules s
		LEFT JOIN checklists c ON c.schedule_id = s.id AND c.is_active
		WHERE s.id = $1
	`

	schedule := &domain.Schedule{}
	var checklistID sql.NullInt64
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.ClubID,
		&schedule.Title,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&checklistID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("schedule not found")
		}
		return nil, err
	}

	if checklistID.Valid {
		cid := int(checklistID.Int64)
		schedule.ChecklistID = &cid
	}

	return schedule, nil
}

func (r *scheduleRepository) SetIsActive(ctx context.Context, id int, isActive bool) error {
	result, err := r.executor.ExecContext(ctx, `
		UPDATE schedules
		SET is_active = $2
		WHERE id = $1
	`, id, isActive)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("schedule not found")
	}

	return nil
}

type checklistRepository struct {
	executor DBExecutor
}

func NewChecklistRepository(db *sql.DB) *checklistRepository {
	return &checklistRepository{executor: db}
}

func NewChecklistRepositoryWithTx(tx *sql.Tx) *checklistRepository {
	return &checklistRepository{executor: tx}
}

func (r *checklistRepository) Create(ctx context.Context, checklist *domain.Checklist) error {
	query := `
		INSERT INTO checklists (schedule_id, title, is_active, created_at)
		VALUES ($1, $2, TRUE, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		checklist.ScheduleID,
		checklist.Title,
		time.Now(),
	).Scan(&checklist.ID, &checklist.CreatedAt)
	if err != nil {
		return err
	}
	checklist.IsActive = true

	return nil
}

func (r *checklistRepository) GetByID(ctx context.Context, id int) (*domain.Checklist, error) {
	query := `
		SELECT id, schedule_id, title, is_active, created_at
		FROM checklists
		WHERE id = $1
	`

	checklist := &domain.Checklist{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&checklist.ID,
		&checklist.ScheduleID,
		&checklist.Title,
		&checklist.IsActive,
		&checklist.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("checklist not found")
		}
		return nil, err
	}

	return checklist, nil
}

// DeactivateBySchedule гасит живой чек-лист расписания. Отсутствие живого
// чек-листа не является ошибкой: гасить нечего.
func (r *checklistRepository) DeactivateBySchedule(ctx context.Context, scheduleID int) error {
	_, err := r.executor.ExecContext(ctx, `
		UPDATE checklists
		SET is_active = FALSE
		WHERE schedule_id = $1 AND is_active
	`, scheduleID)
	return err
}
