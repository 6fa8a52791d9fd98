package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_generates_id(t *testing.T) {
	var ctxID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	RequestID()(inner).ServeHTTP(rec, req)

	headerID := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxID)

	_, err := uuid.Parse(headerID)
	assert.NoError(t, err)
}

func TestRequestID_honors_incoming_header(t *testing.T) {
	var ctxID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set(RequestIDHeader, "upstream-trace-id")
	rec := httptest.NewRecorder()
	RequestID()(inner).ServeHTTP(rec, req)

	assert.Equal(t, "upstream-trace-id", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "upstream-trace-id", ctxID)
}
