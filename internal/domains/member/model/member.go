package model

import (
	"errors"
	"time"
)

var ErrMemberNotFound = errors.New("member not found")

// Member is the identity record behind a token's member id.
// Credentials and token issuance live elsewhere; this service only reads.
type Member struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
}
