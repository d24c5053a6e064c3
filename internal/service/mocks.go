package service

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockClubRepository struct {
	mock.Mock
}

func (m *MockClubRepository) Create(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockClubRepository) GetByID(ctx context.Context, id int) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}

func (m *MockClubRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}

func (m *MockClubRepository) SetIsActive(ctx context.Context, id int, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByEmails(ctx context.Context, emails []string) (map[string]*domain.Member, error) {
	args := m.Called(ctx, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Member), args.Error(1)
}

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) CreateBatch(ctx context.Context, memberships []*domain.Membership) error {
	args := m.Called(ctx, memberships)
	return args.Error(0)
}

func (m *MockMembershipRepository) GetByClubAndMember(ctx context.Context, clubID int, memberID string) (*domain.Membership, error) {
	args := m.Called(ctx, clubID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *MockMembershipRepository) GetByClubAndEmails(ctx context.Context, clubID int, emails []string) (map[string]*domain.Membership, error) {
	args := m.Called(ctx, clubID, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Membership), args.Error(1)
}

func (m *MockMembershipRepository) GetByClub(ctx context.Context, clubID int) ([]*domain.Membership, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}

func (m *MockMembershipRepository) CountActive(ctx context.Context, clubID int) (int, error) {
	args := m.Called(ctx, clubID)
	return args.Int(0), args.Error(1)
}

func (m *MockMembershipRepository) Update(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) UpdateBatch(ctx context.Context, memberships []*domain.Membership) error {
	args := m.Called(ctx, memberships)
	return args.Error(0)
}

func (m *MockMembershipRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id int) (*domain.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) SetIsActive(ctx context.Context, id int, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

type MockChecklistRepository struct {
	mock.Mock
}

func (m *MockChecklistRepository) Create(ctx context.Context, checklist *domain.Checklist) error {
	args := m.Called(ctx, checklist)
	return args.Error(0)
}

func (m *MockChecklistRepository) GetByID(ctx context.Context, id int) (*domain.Checklist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checklist), args.Error(1)
}

func (m *MockChecklistRepository) DeactivateBySchedule(ctx context.Context, scheduleID int) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) CheckClub(ctx context.Context, clubID int, callerID string, level AccessLevel) (bool, error) {
	args := m.Called(ctx, clubID, callerID, level)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionService) CheckSchedule(ctx context.Context, scheduleID int, callerID string, level AccessLevel) (bool, error) {
	args := m.Called(ctx, scheduleID, callerID, level)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionService) CheckChecklist(ctx context.Context, checklistID int, callerID string, level AccessLevel) (bool, error) {
	args := m.Called(ctx, checklistID, callerID, level)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionService) CheckChecklistSlot(ctx context.Context, scheduleID int, callerID string, level AccessLevel) (bool, error) {
	args := m.Called(ctx, scheduleID, callerID, level)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionService) IsClubHost(ctx context.Context, clubID int, callerID string) (bool, error) {
	args := m.Called(ctx, clubID, callerID)
	return args.Bool(0), args.Error(1)
}
