package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

func memberIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "m")
	return strconv.Atoi(idStr)
}

func intToMemberID(id int) string {
	return fmt.Sprintf("m%d", id)
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (name, tag, email, is_guest, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	var dbID int
	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.Name,
		member.Tag,
		member.Email,
		member.IsGuest,
		time.Now(),
	).Scan(&dbID, &member.CreatedAt)
	if err != nil {
		return err
	}

	member.ID = intToMemberID(dbID)

	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	dbID, err := memberIDToInt(id)
	if err != nil {
		return nil, errors.New("invalid member ID")
	}

	query := `
		SELECT id, name, tag, email, is_guest, created_at
		FROM members
		WHERE id = $1
	`

	return r.scanMember(r.executor.QueryRowContext(ctx, query, dbID))
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `
		SELECT id, name, tag, email, is_guest, created_at
		FROM members
		WHERE email = $1
	`

	return r.scanMember(r.executor.QueryRowContext(ctx, query, email))
}

// GetByEmails возвращает участников по email одним запросом, ключ - email.
// Отсутствующие email просто не попадают в результат.
func (r *memberRepository) GetByEmails(ctx context.Context, emails []string) (map[string]*domain.Member, error) {
	result := make(map[string]*domain.Member, len(emails))
	if len(emails) == 0 {
		return result, nil
	}

	query := `
		SELECT id, name, tag, email, is_guest, created_at
		FROM members
		WHERE email = ANY($1)
	`

	rows, err := r.executor.QueryContext(ctx, query, emails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		member := &domain.Member{}
		var dbID int
		err := rows.Scan(&dbID, &member.Name, &member.Tag, &member.Email, &member.IsGuest, &member.CreatedAt)
		if err != nil {
			return nil, err
		}
		member.ID = intToMemberID(dbID)
		result[member.Email] = member
	}

	return result, rows.Err()
}

func (r *memberRepository) scanMember(row *sql.Row) (*domain.Member, error) {
	member := &domain.Member{}
	var dbID int
	err := row.Scan(&dbID, &member.Name, &member.Tag, &member.Email, &member.IsGuest, &member.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("member not found")
		}
		return nil, err
	}

	member.ID = intToMemberID(dbID)

	return member, nil
}
