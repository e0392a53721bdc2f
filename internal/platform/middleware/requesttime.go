package middleware

import (
	"net/http"
	"time"

	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

// RequestTime pins a single clock reading to the request context so every
// downstream read of "now" (application number date, created_at) agrees.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
