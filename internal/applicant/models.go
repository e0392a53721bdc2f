package applicant

import (
	"time"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Applicant is the portal's read-only view of an applicant account. The
// identity system owns the record; this service reads it to gate submissions
// and address confirmation email.
type Applicant struct {
	ID          id.ApplicantID
	FullName    string
	Email       string
	HasPassport bool
	CreatedAt   time.Time
}
