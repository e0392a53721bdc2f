package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
	"github.com/online-dot/abroad-application-platform/pkg/platform/httputil"
	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

// TokenValidator validates a bearer token and reports the identities it carries.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims are the identity claims the portal cares about. IDs stay as
// strings here; parsing to typed IDs happens once, below.
type TokenClaims struct {
	ApplicantID string
	SessionID   string
}

// RequireAuth rejects requests without a valid bearer token and injects the
// authenticated applicant into the request context. Everything behind this
// middleware may assume requestcontext.ApplicantID is set; the login flow that
// mints tokens lives outside this service.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				writeUnauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", requestID,
					"error", err,
				)
				writeUnauthorized(w)
				return
			}

			applicantID, err := id.ParseApplicantID(claims.ApplicantID)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - malformed subject claim",
					"request_id", requestID,
					"error", err,
				)
				writeUnauthorized(w)
				return
			}
			ctx = requestcontext.WithApplicantID(ctx, applicantID)

			if sessionID, err := id.ParseSessionID(claims.SessionID); err == nil {
				ctx = requestcontext.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	httputil.WriteErrorRedirect(w,
		dErrors.New(dErrors.CodeUnauthorized, "authentication required"),
		"/login",
	)
}
