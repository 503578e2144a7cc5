package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebook-backend/internal/shared/response"
	"rebook-backend/pkg/jwt"
)

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := jwt.NewManager("test-secret")

	token, err := tokens.GenerateToken("u1", "hong@example.com", time.Hour)
	require.NoError(t, err)

	claims, authErr := Authenticate(tokens, "Bearer "+token)
	require.Nil(t, authErr)
	assert.Equal(t, "u1", claims.MemberID)
}

func TestAuthenticate_HeaderShape(t *testing.T) {
	tokens := jwt.NewManager("test-secret")

	token, err := tokens.GenerateToken("u1", "hong@example.com", time.Hour)
	require.NoError(t, err)

	// Anything that is not exactly "Bearer <token>" fails before decoding
	headers := []string{
		"",
		token,
		"Token " + token,
		"bearer " + token,
		"Bearer" + token,
	}

	for _, header := range headers {
		claims, authErr := Authenticate(tokens, header)
		assert.Nil(t, claims)
		require.NotNil(t, authErr)
		assert.Equal(t, response.KindBadRequest, authErr.Kind)
		assert.Equal(t, "missing or malformed Authorization header", authErr.Message)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokens := jwt.NewManager("test-secret")

	token, err := tokens.GenerateToken("u1", "hong@example.com", -time.Minute)
	require.NoError(t, err)

	claims, authErr := Authenticate(tokens, "Bearer "+token)
	assert.Nil(t, claims)
	require.NotNil(t, authErr)
	assert.Equal(t, response.KindUnauthorized, authErr.Kind)
	assert.Equal(t, "token expired", authErr.Message)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := jwt.NewManager("test-secret")

	claims, authErr := Authenticate(tokens, "Bearer not-a-token")
	assert.Nil(t, claims)
	require.NotNil(t, authErr)
	assert.Equal(t, response.KindUnauthorized, authErr.Kind)
	assert.Equal(t, "invalid or expired token", authErr.Message)
}
