package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Content limits
const (
	MaxContentLength = 2000

	MinRating = 1
	MaxRating = 5

	// DefaultPageSize applies when the caller leaves size unspecified
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest is the body of POST /reviews/:book_id
type CreateReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, MaxContentLength),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(MinRating).Error("rating must be between 1 and 5"),
			validation.Max(MaxRating).Error("rating must be between 1 and 5"),
		),
	)
}

// UpdateReviewRequest is the body of PUT /reviews/:review_id.
// Only content is editable after creation.
type UpdateReviewRequest struct {
	Content string `json:"content"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, MaxContentLength),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ReviewSummary is one row of a book's review listing
type ReviewSummary struct {
	ReviewID  string    `json:"reviewId"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewPage is a zero-based page of a book's reviews
type ReviewPage struct {
	Reviews     []ReviewSummary `json:"reviews"`
	CurrentPage int             `json:"currentPage"`
	TotalItems  int             `json:"totalItems"`
	TotalPages  int             `json:"totalPages"`
}
