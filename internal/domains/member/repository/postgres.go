package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"rebook-backend/internal/domains/member/model"
	"rebook-backend/pkg/cache"
)

const memberCacheTTL = 10 * time.Minute

type postgresMemberRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresMemberRepository(pool *pgxpool.Pool, c cache.Cache) MemberRepository {
	return &postgresMemberRepository{pool: pool, cache: c}
}

func (r *postgresMemberRepository) GetByID(ctx context.Context, id string) (*model.Member, error) {
	cacheKey := "members:" + id

	cached := &model.Member{}
	if found, err := r.cache.Get(ctx, cacheKey, cached); err == nil && found {
		return cached, nil
	}

	query := `
		SELECT id, email, nickname, created_at
		FROM members
		WHERE id = $1
	`

	member := &model.Member{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Email,
		&member.Nickname,
		&member.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, member, memberCacheTTL); err != nil {
		log.Debug().Err(err).Str("member_id", id).Msg("member cache set failed")
	}

	return member, nil
}
