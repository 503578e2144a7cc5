package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"rebook-backend/internal/domains/book/model"
	"rebook-backend/internal/domains/book/repository"
	"rebook-backend/pkg/cache"
)

const detailCacheTTL = 5 * time.Minute

// ServiceInterface is the catalog business-logic contract
type ServiceInterface interface {
	// List returns one zero-based page of catalog summaries
	List(ctx context.Context, page, size int) (*model.BookPage, error)

	// GetDetail returns a book with its review aggregates
	GetDetail(ctx context.Context, id string) (*model.BookDetail, error)
}

type bookService struct {
	bookRepo repository.BookRepository
	cache    cache.Cache
}

func NewBookService(bookRepo repository.BookRepository, c cache.Cache) ServiceInterface {
	return &bookService{
		bookRepo: bookRepo,
		cache:    c,
	}
}

func (s *bookService) List(ctx context.Context, page, size int) (*model.BookPage, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 || size > model.MaxPageSize {
		size = model.DefaultPageSize
	}

	books, total, err := s.bookRepo.List(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	if books == nil {
		books = []model.BookSummary{}
	}

	return &model.BookPage{
		Books:       books,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  (total + size - 1) / size,
	}, nil
}

func (s *bookService) GetDetail(ctx context.Context, id string) (*model.BookDetail, error) {
	cacheKey := "books:detail:" + id

	cached := &model.BookDetail{}
	if found, err := s.cache.Get(ctx, cacheKey, cached); err == nil && found {
		return cached, nil
	}

	detail, err := s.bookRepo.GetDetail(ctx, id)
	if err != nil {
		if err == model.ErrBookNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get book detail: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, detail, detailCacheTTL); err != nil {
		log.Debug().Err(err).Str("book_id", id).Msg("book detail cache set failed")
	}

	return detail, nil
}
