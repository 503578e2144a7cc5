package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.kind.Status())
	}
}

func TestFail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, KindForbidden, "only the review owner can modify this review")

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "only the review owner can modify this review", body.Message)
	assert.Equal(t, http.StatusForbidden, body.Error.Status)
	assert.Equal(t, "only the review owner can modify this review", body.Error.Message)
}

func TestFailWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FailWithError(c, KindInternal, "failed to create review", errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "failed to create review", body.Message)
	assert.Equal(t, http.StatusInternalServerError, body.Error.Status)
	assert.Equal(t, "connection refused", body.Error.Message)
}
