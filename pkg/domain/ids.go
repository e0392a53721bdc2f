package domain

import (
	"github.com/google/uuid"

	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
)

// Typed IDs prevent cross-entity assignment at compile time. Construct from
// external input via the Parse functions so the non-nil invariant holds at
// trust boundaries; direct casting bypasses validation.

// ApplicantID identifies an applicant account.
type ApplicantID uuid.UUID

// ApplicationID identifies a persisted application record.
type ApplicationID uuid.UUID

// SessionID identifies an authenticated session.
type SessionID uuid.UUID

// NewApplicationID allocates a fresh application ID.
func NewApplicationID() ApplicationID {
	return ApplicationID(uuid.New())
}

// ParseApplicantID parses an applicant ID from external input.
// Errors: CodeInvalidInput when empty, malformed, or the nil UUID.
func ParseApplicantID(s string) (ApplicantID, error) {
	u, err := parseUUID(s, "applicant id")
	return ApplicantID(u), err
}

// ParseApplicationID parses an application ID from external input.
// Errors: CodeInvalidInput when empty, malformed, or the nil UUID.
func ParseApplicationID(s string) (ApplicationID, error) {
	u, err := parseUUID(s, "application id")
	return ApplicationID(u), err
}

// ParseSessionID parses a session ID from external input.
// Errors: CodeInvalidInput when empty, malformed, or the nil UUID.
func ParseSessionID(s string) (SessionID, error) {
	u, err := parseUUID(s, "session id")
	return SessionID(u), err
}

func (id ApplicantID) String() string   { return uuid.UUID(id).String() }
func (id ApplicationID) String() string { return uuid.UUID(id).String() }
func (id SessionID) String() string     { return uuid.UUID(id).String() }

func (id ApplicantID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id ApplicationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be empty")
	}
	// uuid.Parse accepts several exotic encodings (URN, braced); restrict to
	// the canonical 36-char form used everywhere in this system.
	if len(s) != 36 {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+what)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be nil")
	}
	return u, nil
}
