package handler

import (
	"github.com/online-dot/abroad-application-platform/internal/application"
	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
)

// maxFieldLength is a transport-level sanity bound. Business validation of
// field content happens in the domain validator, which accumulates errors;
// this only rejects payloads nobody could have typed into the form.
const maxFieldLength = 200

// SubmitRequest is the HTTP request body for POST /applications. The five raw
// fields arrive as strings exactly as the form collaborator sent them.
type SubmitRequest struct {
	Occupation          string `json:"occupation"`
	ExperienceYears     string `json:"experience_years"`
	Education           string `json:"education"`
	Language            string `json:"language"`
	LanguageProficiency string `json:"language_proficiency"`
}

// Validate checks transport shape only (fail fast).
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	for _, v := range []string{
		r.Occupation, r.ExperienceYears, r.Education, r.Language, r.LanguageProficiency,
	} {
		if len(v) > maxFieldLength {
			return dErrors.New(dErrors.CodeBadRequest, "field values must be at most 200 characters")
		}
	}
	return nil
}

// Draft builds the domain draft from the raw request.
func (r *SubmitRequest) Draft() application.Draft {
	return application.Draft{
		Occupation:          r.Occupation,
		ExperienceYears:     r.ExperienceYears,
		Education:           r.Education,
		Language:            r.Language,
		LanguageProficiency: r.LanguageProficiency,
	}
}

// Echo returns the raw submitted values for rejection and failure responses,
// so the form can repopulate and the applicant never retypes anything.
func (r *SubmitRequest) Echo() FormEcho {
	return FormEcho{
		Occupation:          r.Occupation,
		ExperienceYears:     r.ExperienceYears,
		Education:           r.Education,
		Language:            r.Language,
		LanguageProficiency: r.LanguageProficiency,
	}
}
