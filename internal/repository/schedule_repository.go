package repository

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	// GetByID возвращает расписание с заполненным ChecklistID живого чек-листа.
	GetByID(ctx context.Context, id int) (*domain.Schedule, error)
	SetIsActive(ctx context.Context, id int, isActive bool) error
}

type ChecklistRepository interface {
	Create(ctx context.Context, checklist *domain.Checklist) error
	GetByID(ctx context.Context, id int) (*domain.Checklist, error)
	// DeactivateBySchedule гасит живой чек-лист расписания (мягкое удаление).
	DeactivateBySchedule(ctx context.Context, scheduleID int) error
}
