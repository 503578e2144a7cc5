package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"rebook-backend/internal/domains/book/model"
)

type postgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresBookRepository{pool: pool}
}

func (r *postgresBookRepository) List(ctx context.Context, page, size int) ([]model.BookSummary, int, error) {
	countQuery := `SELECT COUNT(*) FROM books`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := `
		SELECT b.id, b.title, b.author,
		       COUNT(r.id),
		       COALESCE(AVG(r.rating), 0)::float8
		FROM books b
		LEFT JOIN reviews r ON r.book_id = b.id
		GROUP BY b.id, b.title, b.author
		ORDER BY b.title
		LIMIT $1 OFFSET $2
	`

	offset := page * size
	rows, err := r.pool.Query(ctx, query, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []model.BookSummary
	for rows.Next() {
		var summary model.BookSummary
		var avg float64

		err := rows.Scan(
			&summary.ID,
			&summary.Title,
			&summary.Author,
			&summary.ReviewCount,
			&avg,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}

		summary.AverageRating = decimal.NewFromFloat(avg).Round(1)
		books = append(books, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, total, nil
}

func (r *postgresBookRepository) GetDetail(ctx context.Context, id string) (*model.BookDetail, error) {
	query := `
		SELECT b.id, b.title, b.author, b.publisher, b.description, b.created_at,
		       COUNT(r.id),
		       COALESCE(AVG(r.rating), 0)::float8
		FROM books b
		LEFT JOIN reviews r ON r.book_id = b.id
		WHERE b.id = $1
		GROUP BY b.id, b.title, b.author, b.publisher, b.description, b.created_at
	`

	detail := &model.BookDetail{}
	var avg float64

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Author,
		&detail.Publisher,
		&detail.Description,
		&detail.CreatedAt,
		&detail.ReviewCount,
		&avg,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	detail.AverageRating = decimal.NewFromFloat(avg).Round(1)
	return detail, nil
}
