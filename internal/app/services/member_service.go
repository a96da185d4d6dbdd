package services

//go:generate mockgen -source=member_service.go -destination=mocks/mock_member.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/memberapi/internal/app/models"
	"github.com/yigit/memberapi/internal/pkg/apperrors"
)

// DefaultMemberID is the member served by /memberOne.
const DefaultMemberID int64 = 1

// MemberRepository is the storage the member service reads from.
type MemberRepository interface {
	FindAll(ctx context.Context) ([]*models.Member, error)
	FindByID(ctx context.Context, id int64) (*models.Member, error)
}

// MemberService defines the interface for member-related operations
type MemberService interface {
	FindAll(ctx context.Context) ([]*models.Member, error)
	FindMemberOne(ctx context.Context, id int64) (*models.Member, error)
}

// memberServiceImpl implements the MemberService interface
type memberServiceImpl struct {
	memberRepo MemberRepository
}

// NewMemberService creates a new member service instance
func NewMemberService(memberRepo MemberRepository) MemberService {
	return &memberServiceImpl{
		memberRepo: memberRepo,
	}
}

// FindAll retrieves all members
func (s *memberServiceImpl) FindAll(ctx context.Context) ([]*models.Member, error) {
	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members: %w", err)
	}
	if members == nil {
		members = []*models.Member{}
	}
	return members, nil
}

// FindMemberOne retrieves a member by ID
func (s *memberServiceImpl) FindMemberOne(ctx context.Context, id int64) (*models.Member, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidMemberID
	}

	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}
	return member, nil
}
