package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebook-backend/internal/domains/member/model"
	"rebook-backend/pkg/jwt"
)

type fakeMemberService struct {
	members map[string]*model.Member
}

func (s *fakeMemberService) GetProfile(_ context.Context, memberID string) (*model.Member, error) {
	member, ok := s.members[memberID]
	if !ok {
		return nil, model.ErrMemberNotFound
	}
	return member, nil
}

func newTestRouter(svc *fakeMemberService, tokens *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMemberHandler(svc, tokens)

	router := gin.New()
	router.GET("/api/v1/members/me", h.GetProfile)
	return router
}

func TestGetProfile_Success(t *testing.T) {
	tokens := jwt.NewManager("test-secret")
	svc := &fakeMemberService{members: map[string]*model.Member{
		"u1": {ID: "u1", Email: "hong@example.com", Nickname: "hong"},
	}}
	router := newTestRouter(svc, tokens)

	token, err := tokens.GenerateToken("u1", "hong@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "profile retrieved", body["message"])
	assert.Equal(t, "u1", body["id"])
	assert.Equal(t, "hong@example.com", body["email"])
	assert.Equal(t, "hong", body["nickname"])
}

func TestGetProfile_NoToken(t *testing.T) {
	router := newTestRouter(&fakeMemberService{}, jwt.NewManager("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfile_UnknownMember(t *testing.T) {
	tokens := jwt.NewManager("test-secret")
	router := newTestRouter(&fakeMemberService{members: map[string]*model.Member{}}, tokens)

	token, err := tokens.GenerateToken("ghost", "ghost@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
