package applicant

import (
	"context"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Store reads applicant accounts. Writes happen in the external identity
// system; the portal only ever looks applicants up.
//
// Implementations return sentinel.ErrNotFound (possibly wrapped) for unknown IDs.
type Store interface {
	FindByID(ctx context.Context, applicantID id.ApplicantID) (*Applicant, error)
}
