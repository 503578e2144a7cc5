package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rebook-backend/internal/domains/review/model"
	"rebook-backend/internal/domains/review/repository"
	"rebook-backend/pkg/cache"
)

const listCacheTTL = 5 * time.Minute

type reviewService struct {
	reviewRepo repository.ReviewRepository
	cache      cache.Cache
}

func NewReviewService(reviewRepo repository.ReviewRepository, c cache.Cache) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		cache:      c,
	}
}

// =====================================================
// REGISTER
// =====================================================

func (s *reviewService) Register(
	ctx context.Context,
	bookID string,
	req model.CreateReviewRequest,
	memberID string,
) (*model.Review, error) {
	now := time.Now()
	review := &model.Review{
		ID:        uuid.NewString(),
		BookID:    bookID,
		MemberID:  memberID,
		Content:   req.Content,
		Rating:    req.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if err == model.ErrAlreadyReviewed {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Re-read to resolve the owner's nickname
	saved, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created review: %w", err)
	}

	s.invalidateBook(ctx, bookID)

	return saved, nil
}

// =====================================================
// UPDATE
// =====================================================

func (s *reviewService) Update(
	ctx context.Context,
	reviewID, content, memberID string,
) (*model.Review, error) {
	// Fetch the current owner before touching anything
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if !review.IsOwnedBy(memberID) {
		return nil, model.ErrNotOwner
	}

	if err := s.reviewRepo.UpdateContent(ctx, reviewID, content); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	updated, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated review: %w", err)
	}

	s.invalidateBook(ctx, review.BookID)

	return updated, nil
}

// =====================================================
// DELETE
// =====================================================

func (s *reviewService) Delete(ctx context.Context, reviewID, memberID string) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to get review: %w", err)
	}

	if !review.IsOwnedBy(memberID) {
		return model.ErrNotOwner
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidateBook(ctx, review.BookID)

	return nil
}

// =====================================================
// LIST BY BOOK
// =====================================================

func (s *reviewService) ListByBook(
	ctx context.Context,
	bookID string,
	page, size int,
) (*model.ReviewPage, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 || size > model.MaxPageSize {
		size = model.DefaultPageSize
	}

	cacheKey := listCacheKey(bookID, page, size)

	// Cache errors degrade to the database path, never to a failure
	cached := &model.ReviewPage{}
	if found, err := s.cache.Get(ctx, cacheKey, cached); err == nil && found {
		return cached, nil
	}

	reviews, total, err := s.reviewRepo.ListByBook(ctx, bookID, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	summaries := make([]model.ReviewSummary, 0, len(reviews))
	for _, review := range reviews {
		summaries = append(summaries, model.ReviewSummary{
			ReviewID:  review.ID,
			Nickname:  review.Nickname,
			Content:   review.Content,
			Rating:    review.Rating,
			CreatedAt: review.CreatedAt,
		})
	}

	result := &model.ReviewPage{
		Reviews:     summaries,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  (total + size - 1) / size,
	}

	if err := s.cache.Set(ctx, cacheKey, result, listCacheTTL); err != nil {
		log.Debug().Err(err).Str("key", cacheKey).Msg("review list cache set failed")
	}

	return result, nil
}

// =====================================================
// CACHE HELPERS
// =====================================================

func listCacheKey(bookID string, page, size int) string {
	return fmt.Sprintf("reviews:book:%s:p%d:s%d", bookID, page, size)
}

// invalidateBook drops every cached page for a book plus its detail
// aggregate after a write. Failures are logged and ignored.
func (s *reviewService) invalidateBook(ctx context.Context, bookID string) {
	if err := s.cache.DeletePattern(ctx, fmt.Sprintf("reviews:book:%s:*", bookID)); err != nil {
		log.Debug().Err(err).Str("book_id", bookID).Msg("review list cache invalidation failed")
	}
	if err := s.cache.Delete(ctx, "books:detail:"+bookID); err != nil {
		log.Debug().Err(err).Str("book_id", bookID).Msg("book detail cache invalidation failed")
	}
}
