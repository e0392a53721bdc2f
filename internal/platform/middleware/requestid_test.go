package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

func TestRequestIDPreservesValidHeader(t *testing.T) {
	want := uuid.NewString()
	var got string

	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = requestcontext.RequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", want)
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, req)

	assert.Equal(t, want, got)
	assert.Equal(t, want, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDReplacesNonUUIDHeader(t *testing.T) {
	var got string

	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = requestcontext.RequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "spoofed; DROP TABLE")
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, req)

	_, err := uuid.Parse(got)
	require.NoError(t, err, "replacement ID must be a UUID")
	assert.Equal(t, got, rec.Header().Get("X-Request-ID"))
}

func TestRequestTimePinsClock(t *testing.T) {
	var first, second time.Time

	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		first = requestcontext.Now(r.Context())
		time.Sleep(5 * time.Millisecond)
		second = requestcontext.Now(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	RequestTime(inner).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, first, second, "one request observes one clock reading")
	assert.Equal(t, time.UTC, first.Location())
}
