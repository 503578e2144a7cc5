package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	orig := zlog.Logger
	zlog.Logger = zerolog.New(&buf)
	t.Cleanup(func() { zlog.Logger = orig })
	return &buf
}

func TestLogger_AccessLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/api/v1/reviews/book/:book_id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews/book/book-42", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/v1/reviews/book/:book_id", line["route"])
	assert.Equal(t, "/api/v1/reviews/book/book-42", line["path"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
}

func TestLogger_ServerErrorLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	router := gin.New()
	router.Use(RequestID(), Logger())
	router.POST("/api/v1/reviews/:book_id", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews/book-42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), line["status"])

	// RequestID generated an id even without an incoming header
	assert.NotEmpty(t, line["request_id"])
}
