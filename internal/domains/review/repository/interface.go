package repository

import (
	"context"

	"rebook-backend/internal/domains/review/model"
)

// ReviewRepository is the review store contract
type ReviewRepository interface {
	// Create persists a new review. Returns model.ErrAlreadyReviewed when
	// the member already reviewed the book.
	Create(ctx context.Context, review *model.Review) error

	// GetByID loads a review with the owner's nickname resolved.
	// Returns model.ErrReviewNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*model.Review, error)

	// UpdateContent replaces the content of an existing review
	UpdateContent(ctx context.Context, id, content string) error

	// Delete removes a review
	Delete(ctx context.Context, id string) error

	// ListByBook returns one zero-based page of a book's reviews, newest
	// first, plus the total row count for the book.
	ListByBook(ctx context.Context, bookID string, page, size int) ([]*model.Review, int, error)
}
