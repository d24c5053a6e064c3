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

func setupMemberMockDB(t *testing.T) (*memberRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(sliceValueConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMemberRepository(db), mock
}

func memberColumns() []string {
	return []string{"id", "name", "tag", "email", "is_guest", "created_at"}
}

func TestMemberRepository_Create(t *testing.T) {
	t.Run("ID получает префикс m", func(t *testing.T) {
		repo, mock := setupMemberMockDB(t)

		mock.ExpectQuery("INSERT INTO members").
			WithArgs("Alice", "alice#1", "alice@example.com", false, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		member := &domain.Member{Name: "Alice", Tag: "alice#1", Email: "alice@example.com"}
		err := repo.Create(context.Background(), member)

		require.NoError(t, err)
		assert.Equal(t, "m1", member.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_GetByID(t *testing.T) {
	t.Run("успешное получение", func(t *testing.T) {
		repo, mock := setupMemberMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM members").WithArgs(1).
			WillReturnRows(sqlmock.NewRows(memberColumns()).
				AddRow(1, "Alice", "alice#1", "alice@example.com", false, time.Now()))

		member, err := repo.GetByID(context.Background(), "m1")

		require.NoError(t, err)
		assert.Equal(t, "m1", member.ID)
		assert.Equal(t, "alice@example.com", member.Email)
	})

	t.Run("ошибка: некорректный ID", func(t *testing.T) {
		repo, _ := setupMemberMockDB(t)

		_, err := repo.GetByID(context.Background(), "abc")

		require.Error(t, err)
		assert.Equal(t, "invalid member ID", err.Error())
	})

	t.Run("участник не найден", func(t *testing.T) {
		repo, mock := setupMemberMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM members").WithArgs(42).
			WillReturnRows(sqlmock.NewRows(memberColumns()))

		_, err := repo.GetByID(context.Background(), "m42")

		require.Error(t, err)
		assert.Equal(t, "member not found", err.Error())
	})
}

func TestMemberRepository_GetByEmails(t *testing.T) {
	t.Run("найденные участники по ключу email", func(t *testing.T) {
		repo, mock := setupMemberMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM members").WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(memberColumns()).
				AddRow(1, "Alice", "alice#1", "alice@example.com", false, time.Now()))

		result, err := repo.GetByEmails(context.Background(), []string{"alice@example.com", "unknown@example.com"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "m1", result["alice@example.com"].ID)
	})

	t.Run("пустой список - без запроса", func(t *testing.T) {
		repo, mock := setupMemberMockDB(t)

		result, err := repo.GetByEmails(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
