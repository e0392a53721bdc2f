package domain

import (
	"regexp"

	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
)

// ApplicationNumber is the human-readable, globally unique identifier stamped
// on every work-abroad application: "WA-" + submission date (YYYYMMDD) + "-" +
// six uppercase alphanumeric characters.
//
// Uniqueness is enforced by the application store, not by this type; see
// internal/application/number for generation.
type ApplicationNumber string

var applicationNumberPattern = regexp.MustCompile(`^WA-\d{8}-[A-Z0-9]{6}$`)

// ParseApplicationNumber validates an application number from external input.
// Errors: CodeInvalidInput when empty or not matching the canonical shape.
func ParseApplicationNumber(s string) (ApplicationNumber, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "application number cannot be empty")
	}
	if !applicationNumberPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid application number")
	}
	return ApplicationNumber(s), nil
}

func (n ApplicationNumber) String() string { return string(n) }

// IsValid reports whether the number matches the canonical shape.
func (n ApplicationNumber) IsValid() bool {
	return applicationNumberPattern.MatchString(string(n))
}
