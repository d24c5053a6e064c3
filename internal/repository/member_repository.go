package repository

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	GetByEmails(ctx context.Context, emails []string) (map[string]*domain.Member, error)
}
