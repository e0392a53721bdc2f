package applicant

import (
	"context"
	"errors"
	"fmt"

	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
	"github.com/online-dot/abroad-application-platform/pkg/platform/sentinel"
	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

// BlockedReasonMissingPassport is the user-facing reason string for the
// passport precondition. Handlers pair it with a redirect to the passport flow.
const BlockedReasonMissingPassport = "missing_passport"

// Service is the identity gate and eligibility precondition rolled into one
// small capability. It resolves the current applicant from request context and
// answers passport-eligibility questions; it never mutates applicant state.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CurrentApplicant resolves the authenticated applicant for this request.
// Errors: CodeUnauthorized when no identity is present or the account no
// longer exists (a stale token must not pass the gate).
func (s *Service) CurrentApplicant(ctx context.Context) (*Applicant, error) {
	applicantID := requestcontext.ApplicantID(ctx)
	if applicantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	a, err := s.store.FindByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unknown applicant")
		}
		return nil, fmt.Errorf("resolve current applicant: %w", err)
	}
	return a, nil
}

// CheckEligibility is the submission precondition: a pure predicate over the
// applicant's current state, re-evaluated on every attempt because the
// passport flag can change between attempts.
// Errors: CodePrecondition with the missing_passport reason when blocked.
func (s *Service) CheckEligibility(a *Applicant) error {
	if !a.HasPassport {
		return dErrors.New(dErrors.CodePrecondition, BlockedReasonMissingPassport)
	}
	return nil
}
