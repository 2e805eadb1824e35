package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware_InjectsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(StructuredLoggingMiddleware(base))
	router.GET("/ping", func(c *gin.Context) {
		GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		assert.Same(t, GetLoggerFromContext(c), GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(requestIDHeader))
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
}

func TestStructuredLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	router := gin.New()
	router.Use(StructuredLoggingMiddleware(slog.Default()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, GetLoggerFromCtx(WithLogger(context.Background(), custom)))
}

func TestRateLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)

	router := gin.New()
	router.Use(RateLimit(lim))
	router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := NewRateLimiter("lots")
	assert.Error(t, err)
}

type sampleRequest struct {
	AccountID string `validate:"required,numeric"`
	Variant   string `validate:"oneof=SAVINGS CURRENT"`
}

func TestRespondWithBindingError(t *testing.T) {
	v := validator.New()
	validationErr := v.Struct(sampleRequest{Variant: "LOAN"})
	require.Error(t, validationErr)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondWithBindingError(c, validationErr)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body BadRequestErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request data", body.Error)
	require.Len(t, body.Details, 2)
	assert.Equal(t, "AccountID", body.Details[0].Field)
	assert.Equal(t, "required", body.Details[0].Type)
	assert.Equal(t, "Value must be one of: SAVINGS CURRENT", body.Details[1].Message)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	RespondWithBindingError(c, errors.New("unexpected EOF"))
	body = BadRequestErrorResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request format: unexpected EOF", body.Error)
	assert.Empty(t, body.Details)
}
