package service

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type ScheduleService interface {
	// CreateSchedule создает расписание клуба. Требуется MANAGER или HOST.
	CreateSchedule(ctx context.Context, clubID int, callerID, title string) (*domain.Schedule, error)
	// DeleteSchedule мягко удаляет расписание и гасит его живой чек-лист.
	DeleteSchedule(ctx context.Context, scheduleID int, callerID string) error
	// CreateChecklist создает чек-лист расписания через проверку слота.
	CreateChecklist(ctx context.Context, scheduleID int, callerID, title string) (*domain.Checklist, error)
}
