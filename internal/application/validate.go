package application

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Field error identifiers, suitable for display lookup by the form. At most
// one identifier per field; order of accumulation is the field declaration
// order of Draft.
const (
	ErrOccupationRequired   = "occupation_required"
	ErrExperienceRequired   = "experience_years_required"
	ErrExperienceNotANumber = "experience_years_not_a_number"
	ErrExperienceOutOfRange = "experience_years_out_of_range"
	ErrEducationRequired    = "education_required"
	ErrEducationInvalid     = "education_invalid"
	ErrLanguageRequired     = "language_required"
	ErrLanguageInvalid      = "language_invalid"
	ErrProficiencyRequired  = "language_proficiency_required"
	ErrProficiencyInvalid   = "language_proficiency_invalid"
)

// Experience bounds; values outside are rejected, never clamped.
const (
	minExperienceYears = 0
	maxExperienceYears = 50
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// sanitize strips markup and control characters and trims whitespace, so a
// value of only whitespace or markup validates as empty.
func sanitize(s string) string {
	s = markupPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// ValidateDraft checks every field rule and accumulates errors so the form can
// show all problems at once. On full pass it returns the immutable Validated
// carrying the sanitized values; on any failure it returns the ordered
// identifiers and no partial result.
func ValidateDraft(d Draft) (*Validated, []string) {
	var fieldErrors []string

	occupation := sanitize(d.Occupation)
	if occupation == "" {
		fieldErrors = append(fieldErrors, ErrOccupationRequired)
	}

	experienceYears := 0
	switch raw := sanitize(d.ExperienceYears); {
	case raw == "":
		fieldErrors = append(fieldErrors, ErrExperienceRequired)
	default:
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, ErrExperienceNotANumber)
		case n < minExperienceYears || n > maxExperienceYears:
			fieldErrors = append(fieldErrors, ErrExperienceOutOfRange)
		default:
			experienceYears = n
		}
	}

	education := id.EducationLevel(sanitize(d.Education))
	switch {
	case education == "":
		fieldErrors = append(fieldErrors, ErrEducationRequired)
	case !education.IsValid():
		fieldErrors = append(fieldErrors, ErrEducationInvalid)
	}

	language := id.Language(sanitize(d.Language))
	switch {
	case language == "":
		fieldErrors = append(fieldErrors, ErrLanguageRequired)
	case !language.IsValid():
		fieldErrors = append(fieldErrors, ErrLanguageInvalid)
	}

	proficiency := id.LanguageProficiency(sanitize(d.LanguageProficiency))
	switch {
	case proficiency == "":
		fieldErrors = append(fieldErrors, ErrProficiencyRequired)
	case !proficiency.IsValid():
		fieldErrors = append(fieldErrors, ErrProficiencyInvalid)
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &Validated{
		occupation:          occupation,
		experienceYears:     experienceYears,
		education:           education,
		language:            language,
		languageProficiency: proficiency,
	}, nil
}
