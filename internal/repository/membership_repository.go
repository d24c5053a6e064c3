package repository

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	CreateBatch(ctx context.Context, memberships []*domain.Membership) error
	GetByClubAndMember(ctx context.Context, clubID int, memberID string) (*domain.Membership, error)
	// GetByClubAndEmails возвращает членства клуба по email участников,
	// ключ результата - email (одним bulk-запросом).
	GetByClubAndEmails(ctx context.Context, clubID int, emails []string) (map[string]*domain.Membership, error)
	GetByClub(ctx context.Context, clubID int) ([]*domain.Membership, error)
	// CountActive считает членства клуба в состояниях, занимающих слот (state != WITHDRAWN).
	CountActive(ctx context.Context, clubID int) (int, error)
	Update(ctx context.Context, membership *domain.Membership) error
	UpdateBatch(ctx context.Context, memberships []*domain.Membership) error
	Delete(ctx context.Context, id int) error
}
