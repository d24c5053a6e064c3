package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

func NewMembershipRepositoryWithTx(tx *sql.Tx) *membershipRepository {
	return &membershipRepository{executor: tx}
}

func (r *membershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	memberDBID, err := memberIDToInt(membership.MemberID)
	if err != nil {
		return errors.New("invalid member ID")
	}

	query := `
		INSERT INTO memberships (club_id, member_id, role, state, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = r.executor.QueryRowContext(
		ctx,
		query,
		membership.ClubID,
		memberDBID,
		string(membership.Role),
		string(membership.State),
		time.Now(),
	).Scan(&membership.ID, &membership.CreatedAt)
	if err != nil {
		return err
	}
	membership.UpdatedAt = nil

	return nil
}

func (r *membershipRepository) CreateBatch(ctx context.Context, memberships []*domain.Membership) error {
	for _, membership := range memberships {
		if err := r.Create(ctx, membership); err != nil {
			return err
		}
	}
	return nil
}

func (r *membershipRepository) GetByClubAndMember(ctx context.Context, clubID int, memberID string) (*domain.Membership, error) {
	memberDBID, err := memberIDToInt(memberID)
	if err != nil {
		return nil, errors.New("invalid member ID")
	}

	query := `
		SELECT id, club_id, member_id, role, state, created_at, updated_at
		FROM memberships
		WHERE club_id = $1 AND member_id = $2
	`

	return r.scanMembership(r.executor.QueryRowContext(ctx, query, clubID, memberDBID))
}

// GetByClubAndEmails возвращает членства клуба по email участников одним
// bulk-запросом; ключ результата - email. Email без членства в результат не попадают.
func (r *membershipRepository) GetByClubAndEmails(ctx context.Context, clubID int, emails []string) (map[string]*domain.Membership, error) {
	result := make(map[string]*domain.Membership, len(emails))
	if len(emails) == 0 {
		return result, nil
	}

	query := `
		SELECT ms.id, ms.club_id, ms.member_id, ms.role, ms.state, ms.created_at, ms.updated_at, m.email
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		WHERE ms.club_id = $1 AND m.email = ANY($2)
	`

	rows, err := r.executor.QueryContext(ctx, query, clubID, emails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		membership := &domain.Membership{}
		var memberDBID int
		var role, state, email string
		var updatedAt sql.NullTime
		err := rows.Scan(
			&membership.ID,
			&membership.ClubID,
			&memberDBID,
			&role,
			&state,
			&membership.CreatedAt,
			&updatedAt,
			&email,
		)
		if err != nil {
			return nil, err
		}
		membership.MemberID = intToMemberID(memberDBID)
		membership.Role = domain.Role(role)
		membership.State = domain.MembershipState(state)
		if updatedAt.Valid {
			membership.UpdatedAt = &updatedAt.Time
		}
		result[email] = membership
	}

	return result, rows.Err()
}

func (r *membershipRepository) GetByClub(ctx context.Context, clubID int) ([]*domain.Membership, error) {
	query := `
		SELECT id, club_id, member_id, role, state, created_at, updated_at
		FROM memberships
		WHERE club_id = $1
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []*domain.Membership
	for rows.Next() {
		membership := &domain.Membership{}
		var memberDBID int
		var role, state string
		var updatedAt sql.NullTime
		err := rows.Scan(
			&membership.ID,
			&membership.ClubID,
			&memberDBID,
			&role,
			&state,
			&membership.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		membership.MemberID = intToMemberID(memberDBID)
		membership.Role = domain.Role(role)
		membership.State = domain.MembershipState(state)
		if updatedAt.Valid {
			membership.UpdatedAt = &updatedAt.Time
		}
		memberships = append(memberships, membership)
	}

	return memberships, rows.Err()
}

func (r *membershipRepository) CountActive(ctx context.Context, clubID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM memberships
		WHERE club_id = $1 AND state != $2
	`

	var count int
	err := r.executor.QueryRowContext(ctx, query, clubID, string(domain.StateWithdrawn)).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *membershipRepository) Update(ctx context.Context, membership *domain.Membership) error {
	query := `
		UPDATE memberships
		SET role = $2, state = $3, updated_at = $4
		WHERE id = $1
	`

	now := time.Now()
	result, err := r.executor.ExecContext(
		ctx,
		query,
		membership.ID,
		string(membership.Role),
		string(membership.State),
		now,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("membership not found")
	}
	membership.UpdatedAt = &now

	return nil
}

func (r *membershipRepository) UpdateBatch(ctx context.Context, memberships []*domain.Membership) error {
	for _, membership := range memberships {
		if err := r.Update(ctx, membership); err != nil {
			return err
		}
	}
	return nil
}

func (r *membershipRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("membership not found")
	}

	return nil
}

func (r *membershipRepository) scanMembership(row *sql.Row) (*domain.Membership, error) {
	membership := &domain.Membership{}
	var memberDBID int
	var role, state string
	var updatedAt sql.NullTime
	err := row.Scan(
		&membership.ID,
		&membership.ClubID,
		&memberDBID,
		&role,
		&state,
		&membership.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("membership not found")
		}
		return nil, err
	}

	membership.MemberID = intToMemberID(memberDBID)
	membership.Role = domain.Role(role)
	membership.State = domain.MembershipState(state)
	if updatedAt.Valid {
		membership.UpdatedAt = &updatedAt.Time
	}

	return membership, nil
}
