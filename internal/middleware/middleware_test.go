package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymate/courseapi/internal/app/models/dto"
	"github.com/studymate/courseapi/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
		{"insufficient courses", apperrors.ErrInsufficientCourses, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Less than 2 courses found in this category"},
		{"upstream", apperrors.NewUpstreamError(errors.New("provider timeout")), http.StatusInternalServerError, dto.ErrorCodeExternalServiceError, "provider timeout"},
		{"wrapped upstream", fmt.Errorf("ask: %w", apperrors.NewUpstreamError(errors.New("db down"))), http.StatusInternalServerError, dto.ErrorCodeExternalServiceError, "ask: db down"},
		{"bad request", apperrors.NewBadRequestError("invalid course id"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "invalid course id"},
		{"database", apperrors.NewDatabaseError(errors.New("connection refused")), http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "Internal server error"},
		{"upstream over database", apperrors.NewUpstreamError(apperrors.NewDatabaseError(errors.New("connection refused"))), http.StatusInternalServerError, dto.ErrorCodeExternalServiceError, "connection refused"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

type sampleBody struct {
	Message string `json:"message" binding:"required" validate:"required,max=5"`
}

func newValidationRouter() *gin.Engine {
	r := gin.New()
	r.POST("/echo", ValidateJSON[sampleBody](), func(c *gin.Context) {
		body, ok := ValidatedBody[sampleBody](c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": body.Message})
	})
	return r
}

func TestValidateJSON(t *testing.T) {
	r := newValidationRouter()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"message":"hi"}`, http.StatusOK},
		{"missing message", `{}`, http.StatusBadRequest},
		{"empty message", `{"message":""}`, http.StatusBadRequest},
		{"too long", `{"message":"way too long"}`, http.StatusBadRequest},
		{"malformed json", `{"message":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusBadRequest {
				assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)
			}
		})
	}
}

func TestValidateJSON_FreshValuePerRequest(t *testing.T) {
	r := newValidationRouter()

	for _, msg := range []string{"one", "two"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"message":"`+msg+`"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.JSONEq(t, `{"message":"`+msg+`"}`, w.Body.String())
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	requestID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, requestID)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, requestID, entry["requestID"])

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
