package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validation outcomes, classified so the HTTP layer can answer with a
// kind-specific message.
var (
	// ErrExpiredToken - token was valid once but its exp claim has passed
	ErrExpiredToken = errors.New("token expired")
	// ErrUnsupportedToken - token uses a signing scheme this service does not accept
	ErrUnsupportedToken = errors.New("unsupported token format")
	// ErrInvalidToken - anything else: malformed, bad signature, missing claims
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims represents the identity carried by an access token
type Claims struct {
	MemberID string `json:"member_id"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret string
}

// NewManager creates new JWT manager
func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// GenerateToken signs an HS256 access token for a member
func (m *Manager) GenerateToken(memberID, email string, ttl time.Duration) (string, error) {
	claims := Claims{
		MemberID: memberID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses a token, classifying failures into
// ErrExpiredToken, ErrUnsupportedToken or ErrInvalidToken.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			// keyfunc rejected the token: a signing scheme we do not handle
			return nil, ErrUnsupportedToken
		default:
			return nil, ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.MemberID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
