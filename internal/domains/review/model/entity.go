package model

import "time"

// Review represents a book review entity.
// The owning member is fixed at creation time; only content may change
// afterwards, and only by the owner.
type Review struct {
	ID       string `json:"reviewId"`
	BookID   string `json:"bookId"`
	MemberID string `json:"-"`

	// Nickname is the owner's display name, resolved from the members
	// table when the review is read.
	Nickname string `json:"nickname"`

	Content string `json:"content"`
	Rating  int    `json:"rating"` // 1-5

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether a member may mutate this review
func (r *Review) IsOwnedBy(memberID string) bool {
	return r.MemberID == memberID
}
