package handler

import (
	"time"

	"github.com/online-dot/abroad-application-platform/internal/application"
)

// ApplicationResponse is the confirmation payload for a persisted application.
type ApplicationResponse struct {
	ApplicationNumber   string    `json:"application_number"`
	Occupation          string    `json:"occupation"`
	ExperienceYears     int       `json:"experience_years"`
	Education           string    `json:"education"`
	Language            string    `json:"language"`
	LanguageProficiency string    `json:"language_proficiency"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

// ListResponse wraps the dashboard listing.
type ListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// RejectedResponse reports validation failure: the ordered field-error
// identifiers plus the submitted values for repopulating the form.
type RejectedResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
	Form   FormEcho `json:"form"`
}

// FailedResponse reports a retryable submission failure, again carrying the
// submitted values.
type FailedResponse struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description"`
	Form             FormEcho `json:"form"`
}

// FormEcho mirrors the submitted form fields.
type FormEcho struct {
	Occupation          string `json:"occupation"`
	ExperienceYears     string `json:"experience_years"`
	Education           string `json:"education"`
	Language            string `json:"language"`
	LanguageProficiency string `json:"language_proficiency"`
}

// FromApplication converts a domain application to its HTTP response.
func FromApplication(app *application.Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicationNumber:   app.Number.String(),
		Occupation:          app.Occupation,
		ExperienceYears:     app.ExperienceYears,
		Education:           string(app.Education),
		Language:            string(app.Language),
		LanguageProficiency: string(app.LanguageProficiency),
		Status:              string(app.Status),
		CreatedAt:           app.CreatedAt,
	}
}

// FromApplications converts a listing.
func FromApplications(apps []*application.Application) ListResponse {
	out := ListResponse{Applications: make([]ApplicationResponse, 0, len(apps))}
	for _, app := range apps {
		out.Applications = append(out.Applications, FromApplication(app))
	}
	return out
}
