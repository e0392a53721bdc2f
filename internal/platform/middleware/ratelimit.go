package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/online-dot/abroad-application-platform/internal/ratelimit"
	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
	"github.com/online-dot/abroad-application-platform/pkg/platform/httputil"
	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

// LimitSubmissions caps how often one applicant may hit the guarded endpoint.
// Must run after RequireAuth so the applicant ID is available. A limiter
// failure fails open: losing redis should degrade protection, not submissions.
func LimitSubmissions(limiter ratelimit.Limiter, limit int, window time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "submit:" + requestcontext.ApplicantID(ctx).String()

			result, err := limiter.Allow(ctx, key, limit, window)
			if err != nil {
				logger.WarnContext(ctx, "rate limiter unavailable, failing open",
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			if !result.Allowed {
				retryAfter := int(result.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many submission attempts, slow down"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
