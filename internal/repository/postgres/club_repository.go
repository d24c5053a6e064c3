package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type clubRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewClubRepository(db *sql.DB) *clubRepository {
	return &clubRepository{db: db, executor: db}
}

func NewClubRepositoryWithTx(tx *sql.Tx) *clubRepository {
	return &clubRepository{executor: tx}
}

// Create создает клуб и членство HOST для лидера в одной транзакции.
// Лидер обязан существовать как участник; его членство сразу в состоянии JOINING.
func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	leaderDBID, err := memberIDToInt(club.LeaderID)
	if err != nil {
		return errors.New("invalid leader ID")
	}

	query := `
		INSERT INTO clubs (name, capacity, leader_id, is_public, is_active, end_date, created_at)
		VALUES ($1, $2, $3, $4, TRUE, $5, $6)
		RETURNING id, created_at
	`

	now := time.Now()
	var endDate sql.NullTime
	if club.EndDate != nil {
		endDate = sql.NullTime{Time: *club.EndDate, Valid: true}
	}
	err = tx.QueryRowContext(
		ctx,
		query,
		club.Name,
		club.Capacity,
		leaderDBID,
		club.IsPublic,
		endDate,
		now,
	).Scan(&club.ID, &club.CreatedAt)
	if err != nil {
		return err
	}
	club.IsActive = true
	club.UpdatedAt = nil

	membershipQuery := `
		INSERT INTO memberships (club_id, member_id, role, state, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	hostMembership := domain.Membership{
		ClubID:    club.ID,
		MemberID:  club.LeaderID,
		Role:      domain.RoleHost,
		State:     domain.StateJoining,
		CreatedAt: now,
	}
	err = tx.QueryRowContext(
		ctx,
		membershipQuery,
		club.ID,
		leaderDBID,
		string(domain.RoleHost),
		string(domain.StateJoining),
		now,
	).Scan(&hostMembership.ID)
	if err != nil {
		return err
	}
	club.Memberships = []domain.Membership{hostMembership}

	return tx.Commit()
}

func (r *clubRepository) GetByID(ctx context.Context, id int) (*domain.Club, error) {
	club, err := r.scanClub(ctx, `
		SELECT id, name, capacity, leader_id, is_public, is_active, end_date, created_at, updated_at
		FROM clubs
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	membershipRepo := &membershipRepository{executor: r.executor}
	memberships, err := membershipRepo.GetByClub(ctx, club.ID)
	if err != nil {
		return nil, err
	}

	club.Memberships = make([]domain.Membership, 0, len(memberships))
	for _, m := range memberships {
		club.Memberships = append(club.Memberships, *m)
	}

	return club, nil
}

// GetByIDForUpdate читает клуб с блокировкой строки. Членства не загружаются:
// метод нужен только как эксклюзивная граница для мутаций внутри транзакции.
func (r *clubRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Club, error) {
	return r.scanClub(ctx, `
		SELECT id, name, capacity, leader_id, is_public, is_active, end_date, created_at, updated_at
		FROM clubs
		WHERE id = $1
		FOR UPDATE
	`, id)
}

func (r *clubRepository) SetIsActive(ctx context.Context, id int, isActive bool) error {
	result, err := r.executor.ExecContext(ctx, `
		UPDATE clubs
		SET is_active = $2, updated_at = $3
		WHERE id = $1
	`, id, isActive, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("club not found")
	}

	return nil
}

func (r *clubRepository) scanClub(ctx context.Context, query string, id int) (*domain.Club, error) {
	club := &domain.Club{}
	var leaderDBID int
	var endDate, updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&club.ID,
		&club.Name,
		&club.Capacity,
		&leaderDBID,
		&club.IsPublic,
		&club.IsActive,
		&endDate,
		&club.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("club not found")
		}
		return nil, err
	}

	club.LeaderID = intToMemberID(leaderDBID)
	if endDate.Valid {
		club.EndDate = &endDate.Time
	}
	if updatedAt.Valid {
		club.UpdatedAt = &updatedAt.Time
	}

	return club, nil
}
