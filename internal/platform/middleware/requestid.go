package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

// RequestID tags every request with a correlation ID. An inbound X-Request-ID
// is trusted only for its shape; anything non-UUID is replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
