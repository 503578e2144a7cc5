package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrBookNotFound = errors.New("book not found")

// Default paging for the catalog listing
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Book is a catalog entry. The catalog is read-only in this service;
// titles are managed elsewhere.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Publisher   string    `json:"publisher"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookSummary is one row of the catalog listing, with review aggregates
type BookSummary struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	ReviewCount   int             `json:"reviewCount"`
	AverageRating decimal.Decimal `json:"averageRating"`
}

// BookDetail is the full catalog entry plus review aggregates
type BookDetail struct {
	Book
	ReviewCount   int             `json:"reviewCount"`
	AverageRating decimal.Decimal `json:"averageRating"`
}

// BookPage is a zero-based page of catalog summaries
type BookPage struct {
	Books       []BookSummary `json:"books"`
	CurrentPage int           `json:"currentPage"`
	TotalItems  int           `json:"totalItems"`
	TotalPages  int           `json:"totalPages"`
}
