package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"rebook-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, book_id, member_id, content, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.BookID,
		review.MemberID,
		review.Content,
		review.Rating,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		// Unique constraint on (book_id, member_id)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	query := `
		SELECT r.id, r.book_id, r.member_id, m.nickname, r.content, r.rating,
		       r.created_at, r.updated_at
		FROM reviews r
		JOIN members m ON m.id = r.member_id
		WHERE r.id = $1
	`

	review := &model.Review{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.BookID,
		&review.MemberID,
		&review.Nickname,
		&review.Content,
		&review.Rating,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) UpdateContent(ctx context.Context, id, content string) error {
	query := `
		UPDATE reviews
		SET content = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, content)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) ListByBook(
	ctx context.Context,
	bookID string,
	page, size int,
) ([]*model.Review, int, error) {
	countQuery := `SELECT COUNT(*) FROM reviews WHERE book_id = $1`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, bookID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `
		SELECT r.id, r.book_id, r.member_id, m.nickname, r.content, r.rating,
		       r.created_at, r.updated_at
		FROM reviews r
		JOIN members m ON m.id = r.member_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	// Pages are zero-based
	offset := page * size
	rows, err := r.pool.Query(ctx, query, bookID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		review := &model.Review{}
		err := rows.Scan(
			&review.ID,
			&review.BookID,
			&review.MemberID,
			&review.Nickname,
			&review.Content,
			&review.Rating,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, total, nil
}
