package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupScheduleMockDB(t *testing.T) (*scheduleRepository, *checklistRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewScheduleRepository(db), NewChecklistRepository(db), mock
}

func TestScheduleRepository_GetByID(t *testing.T) {
	t.Run("расписание с живым чек-листом", func(t *testing.T) {
		schedules, _, mock := setupScheduleMockDB(t)

		mock.ExpectQuery("LEFT JOIN checklists").WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "club_id", "title", "is_active", "created_at", "c.id"}).
				AddRow(5, 1, "Тренировки", true, time.Now(), 7))

		schedule, err := schedules.GetByID(context.Background(), 5)

		require.NoError(t, err)
		require.NotNil(t, schedule.ChecklistID)
		assert.Equal(t, 7, *schedule.ChecklistID)
	})

	t.Run("расписание без чек-листа", func(t *testing.T) {
		schedules, _, mock := setupScheduleMockDB(t)

		mock.ExpectQuery("LEFT JOIN checklists").WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "club_id", "title", "is_active", "created_at", "c.id"}).
				AddRow(5, 1, "Тренировки", true, time.Now(), nil))

		schedule, err := schedules.GetByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Nil(t, schedule.ChecklistID)
	})

	t.Run("расписание не найдено", func(t *testing.T) {
		schedules, _, mock := setupScheduleMockDB(t)

		mock.ExpectQuery("LEFT JOIN checklists").WithArgs(42).
			WillReturnRows(sqlmock.NewRows([]string{"id", "club_id", "title", "is_active", "created_at", "c.id"}))

		_, err := schedules.GetByID(context.Background(), 42)

		require.Error(t, err)
		assert.Equal(t, "schedule not found", err.Error())
	})
}

func TestScheduleRepository_Create(t *testing.T) {
	t.Run("успешное создание", func(t *testing.T) {
		schedules, _, mock := setupScheduleMockDB(t)

		mock.ExpectQuery("INSERT INTO schedules").
			WithArgs(1, "Тренировки", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))

		schedule := &domain.Schedule{ClubID: 1, Title: "Тренировки"}
		err := schedules.Create(context.Background(), schedule)

		require.NoError(t, err)
		assert.Equal(t, 5, schedule.ID)
		assert.True(t, schedule.IsActive)
	})
}

func TestChecklistRepository_Create(t *testing.T) {
	t.Run("успешное создание", func(t *testing.T) {
		_, checklists, mock := setupScheduleMockDB(t)

		mock.ExpectQuery("INSERT INTO checklists").
			WithArgs(5, "Инвентарь", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

		checklist := &domain.Checklist{ScheduleID: 5, Title: "Инвентарь"}
		err := checklists.Create(context.Background(), checklist)

		require.NoError(t, err)
		assert.Equal(t, 7, checklist.ID)
		assert.True(t, checklist.IsActive)
	})
}

func TestChecklistRepository_DeactivateBySchedule(t *testing.T) {
	t.Run("отсутствие живого чек-листа не ошибка", func(t *testing.T) {
		_, checklists, mock := setupScheduleMockDB(t)

		mock.ExpectExec("UPDATE checklists").WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := checklists.DeactivateBySchedule(context.Background(), 5)

		require.NoError(t, err)
	})
}
