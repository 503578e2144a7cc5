package service

import (
	"context"

	"rebook-backend/internal/domains/review/model"
)

// ServiceInterface is the review business-logic contract.
// The authenticated member id is always an explicit parameter.
type ServiceInterface interface {
	// Register creates a review on a book for a member and returns it with
	// the owner's nickname resolved
	Register(ctx context.Context, bookID string, req model.CreateReviewRequest, memberID string) (*model.Review, error)

	// Update replaces the content of a review. Returns model.ErrNotOwner
	// when memberID is not the review's owner; the review is untouched.
	Update(ctx context.Context, reviewID, content, memberID string) (*model.Review, error)

	// Delete removes a review, subject to the same ownership rule
	Delete(ctx context.Context, reviewID, memberID string) error

	// ListByBook returns one zero-based page of a book's reviews
	ListByBook(ctx context.Context, bookID string, page, size int) (*model.ReviewPage, error)
}
