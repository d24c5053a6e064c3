package service

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/repository"
	"github.com/google/uuid"
)

type MemberService interface {
	// CreateMember регистрирует участника. Пустой тег заменяется сгенерированным.
	CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	existing, err := s.memberRepo.GetByEmail(ctx, member.Email)
	if err == nil && existing != nil {
		return nil, &domain.DomainError{
			Code:    "CONFLICT",
			Message: "member with this email already exists",
		}
	}

	if member.Tag == "" {
		member.Tag = uuid.NewString()[:8]
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if err.Error() == "member not found" || err.Error() == "invalid member ID" {
			return nil, domain.NewNotFoundError("member with id " + memberID)
		}
		return nil, err
	}

	return member, nil
}
