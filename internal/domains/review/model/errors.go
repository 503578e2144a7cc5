package model

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")

	// ErrNotOwner is the security-class failure: an authenticated member
	// tried to mutate a review that belongs to someone else. Maps to 403,
	// never to 500.
	ErrNotOwner = errors.New("only the review owner can modify this review")

	// ErrAlreadyReviewed - one review per member per book
	ErrAlreadyReviewed = errors.New("already reviewed this book")
)
