package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebook-backend/internal/domains/book/model"
)

type fakeBookRepo struct {
	books     []model.BookSummary
	detail    *model.BookDetail
	detailErr error
	getCalls  int
	listCalls int
}

func (r *fakeBookRepo) List(_ context.Context, page, size int) ([]model.BookSummary, int, error) {
	r.listCalls++
	total := len(r.books)
	offset := page * size
	if offset >= total {
		return nil, total, nil
	}
	end := offset + size
	if end > total {
		end = total
	}
	return r.books[offset:end], total, nil
}

func (r *fakeBookRepo) GetDetail(_ context.Context, id string) (*model.BookDetail, error) {
	r.getCalls++
	if r.detailErr != nil {
		return nil, r.detailErr
	}
	return r.detail, nil
}

// memoryCache is a real in-memory Cache backed by JSON, matching the
// marshalling behaviour of the redis implementation
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *memoryCache) DeletePattern(_ context.Context, _ string) error { return nil }
func (c *memoryCache) Ping(_ context.Context) error                    { return nil }

func TestList_Pagination(t *testing.T) {
	repo := &fakeBookRepo{}
	for i := 0; i < 15; i++ {
		repo.books = append(repo.books, model.BookSummary{
			ID:            fmt.Sprintf("book-%d", i),
			Title:         "title",
			Author:        "author",
			ReviewCount:   2,
			AverageRating: decimal.NewFromFloat(4.5),
		})
	}
	svc := NewBookService(repo, newMemoryCache())

	page, err := svc.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, page.Books, 10)
	assert.Equal(t, 0, page.CurrentPage)
	assert.Equal(t, 15, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)

	page, err = svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Books, 5)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestList_EmptyCatalog(t *testing.T) {
	svc := NewBookService(&fakeBookRepo{}, newMemoryCache())

	page, err := svc.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Books)
	assert.Empty(t, page.Books)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
}

func TestGetDetail_CachesResult(t *testing.T) {
	repo := &fakeBookRepo{detail: &model.BookDetail{
		Book:          model.Book{ID: "book-42", Title: "title", Author: "author"},
		ReviewCount:   3,
		AverageRating: decimal.NewFromFloat(4.3),
	}}
	svc := NewBookService(repo, newMemoryCache())

	first, err := svc.GetDetail(context.Background(), "book-42")
	require.NoError(t, err)
	assert.Equal(t, "book-42", first.ID)
	assert.Equal(t, 1, repo.getCalls)

	// Second read is served from the cache
	second, err := svc.GetDetail(context.Background(), "book-42")
	require.NoError(t, err)
	assert.Equal(t, "book-42", second.ID)
	assert.True(t, second.AverageRating.Equal(decimal.NewFromFloat(4.3)))
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetDetail_NotFound(t *testing.T) {
	repo := &fakeBookRepo{detailErr: model.ErrBookNotFound}
	svc := NewBookService(repo, newMemoryCache())

	detail, err := svc.GetDetail(context.Background(), "ghost")
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
