package repository

import (
	"context"

	"rebook-backend/internal/domains/book/model"
)

// BookRepository is the catalog store contract
type BookRepository interface {
	// List returns one zero-based page of catalog summaries plus the total
	// number of books
	List(ctx context.Context, page, size int) ([]model.BookSummary, int, error)

	// GetDetail returns model.ErrBookNotFound when the id is unknown
	GetDetail(ctx context.Context, id string) (*model.BookDetail, error)
}
