package application

import (
	"time"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Draft is the raw, untrusted submission exactly as the form sent it. It lives
// for one submission attempt and is never persisted as-is; ValidateDraft is the
// only way data leaves it.
type Draft struct {
	Occupation          string
	ExperienceYears     string
	Education           string
	Language            string
	LanguageProficiency string
}

// Validated is a draft after every field rule passed. Fields are unexported so
// a Validated can only be produced by ValidateDraft and never mutated after
// construction; it is consumed immediately by the store.
type Validated struct {
	occupation          string
	experienceYears     int
	education           id.EducationLevel
	language            id.Language
	languageProficiency id.LanguageProficiency
}

func (v Validated) Occupation() string                        { return v.occupation }
func (v Validated) ExperienceYears() int                      { return v.experienceYears }
func (v Validated) Education() id.EducationLevel              { return v.education }
func (v Validated) Language() id.Language                     { return v.language }
func (v Validated) LanguageProficiency() id.LanguageProficiency {
	return v.languageProficiency
}

// Application is the persisted, append-only record. Status is always
// "submitted" at creation; later review states belong to a pipeline outside
// this service and nothing here ever updates or deletes a record.
type Application struct {
	ID                  id.ApplicationID
	ApplicantID         id.ApplicantID
	Number              id.ApplicationNumber
	Occupation          string
	ExperienceYears     int
	Education           id.EducationLevel
	Language            id.Language
	LanguageProficiency id.LanguageProficiency
	Status              id.ApplicationStatus
	CreatedAt           time.Time
}

// newApplication stamps a validated submission into a persistable record.
func newApplication(applicantID id.ApplicantID, v Validated, number id.ApplicationNumber, createdAt time.Time) *Application {
	return &Application{
		ID:                  id.NewApplicationID(),
		ApplicantID:         applicantID,
		Number:              number,
		Occupation:          v.Occupation(),
		ExperienceYears:     v.ExperienceYears(),
		Education:           v.Education(),
		Language:            v.Language(),
		LanguageProficiency: v.LanguageProficiency(),
		Status:              id.StatusSubmitted,
		CreatedAt:           createdAt,
	}
}
