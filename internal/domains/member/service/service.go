package service

import (
	"context"
	"fmt"

	"rebook-backend/internal/domains/member/model"
	"rebook-backend/internal/domains/member/repository"
)

// ServiceInterface is the member business-logic contract
type ServiceInterface interface {
	// GetProfile returns the profile of an authenticated member
	GetProfile(ctx context.Context, memberID string) (*model.Member, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) ServiceInterface {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) GetProfile(ctx context.Context, memberID string) (*model.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if err == model.ErrMemberNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}
