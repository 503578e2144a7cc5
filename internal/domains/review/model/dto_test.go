package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReviewRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateReviewRequest
		wantErr bool
	}{
		{"valid", CreateReviewRequest{Content: "Great read", Rating: 5}, false},
		{"minimum rating", CreateReviewRequest{Content: "ok", Rating: 1}, false},
		{"missing content", CreateReviewRequest{Rating: 3}, true},
		{"missing rating", CreateReviewRequest{Content: "Great read"}, true},
		{"rating too low", CreateReviewRequest{Content: "Great read", Rating: 0}, true},
		{"rating too high", CreateReviewRequest{Content: "Great read", Rating: 6}, true},
		{"content too long", CreateReviewRequest{Content: strings.Repeat("a", MaxContentLength+1), Rating: 3}, true},
		{"content at limit", CreateReviewRequest{Content: strings.Repeat("a", MaxContentLength), Rating: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateReviewRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateReviewRequest{Content: "Changed my mind"}.Validate())
	assert.Error(t, UpdateReviewRequest{}.Validate())
	assert.Error(t, UpdateReviewRequest{Content: strings.Repeat("a", MaxContentLength+1)}.Validate())
}

func TestReviewIsOwnedBy(t *testing.T) {
	review := &Review{ID: "r1", MemberID: "u1"}

	assert.True(t, review.IsOwnedBy("u1"))
	assert.False(t, review.IsOwnedBy("u2"))
	assert.False(t, review.IsOwnedBy(""))
}
