package auth

import (
	"errors"
	"strings"

	"rebook-backend/internal/shared/response"
	"rebook-backend/pkg/jwt"
)

const bearerPrefix = "Bearer "

// Error is the outcome of a failed authentication attempt, already
// classified into a response kind.
type Error struct {
	Kind    response.Kind
	Message string
}

// Authenticate checks a raw Authorization header value and returns the
// decoded identity. The header must be exactly "Bearer <token>" - literal
// prefix, single space, case-sensitive - otherwise the request is rejected
// with a bad-request error before any decoding is attempted.
//
// Handlers call this directly and pass the returned claims down the call
// chain as an explicit parameter; no identity is stashed in request context.
func Authenticate(tokens *jwt.Manager, header string) (*jwt.Claims, *Error) {
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return nil, &Error{
			Kind:    response.KindBadRequest,
			Message: "missing or malformed Authorization header",
		}
	}

	claims, err := tokens.ValidateToken(header[len(bearerPrefix):])
	if err != nil {
		return nil, &Error{
			Kind:    response.KindUnauthorized,
			Message: authMessage(err),
		}
	}

	return claims, nil
}

// authMessage picks the kind-specific 401 message
func authMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "token expired"
	case errors.Is(err, jwt.ErrUnsupportedToken):
		return "unsupported token format"
	default:
		return "invalid or expired token"
	}
}
