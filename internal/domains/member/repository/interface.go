package repository

import (
	"context"

	"rebook-backend/internal/domains/member/model"
)

// MemberRepository is the member store contract
type MemberRepository interface {
	// GetByID returns model.ErrMemberNotFound when the id is unknown
	GetByID(ctx context.Context, id string) (*model.Member, error)
}
