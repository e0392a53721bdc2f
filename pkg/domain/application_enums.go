package domain

// Closed enumerations for application form fields. Values arriving as free-form
// strings are checked against these sets at the validation boundary; anything
// outside the set is a field error, never a silently accepted value.

// EducationLevel is the applicant's highest completed education level.
type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationDiploma    EducationLevel = "diploma"
	EducationBachelors  EducationLevel = "bachelors"
	EducationMasters    EducationLevel = "masters"
	EducationPhD        EducationLevel = "phd"
)

var validEducationLevels = map[EducationLevel]bool{
	EducationHighSchool: true,
	EducationDiploma:    true,
	EducationBachelors:  true,
	EducationMasters:    true,
	EducationPhD:        true,
}

func (e EducationLevel) IsValid() bool { return validEducationLevels[e] }

// Language is the working language declared on the application.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageFrench  Language = "french"
	LanguageGerman  Language = "german"
	LanguageSpanish Language = "spanish"
)

var validLanguages = map[Language]bool{
	LanguageEnglish: true,
	LanguageFrench:  true,
	LanguageGerman:  true,
	LanguageSpanish: true,
}

func (l Language) IsValid() bool { return validLanguages[l] }

// LanguageProficiency is the self-assessed proficiency in the declared language.
type LanguageProficiency string

const (
	ProficiencyBasic        LanguageProficiency = "basic"
	ProficiencyIntermediate LanguageProficiency = "intermediate"
	ProficiencyAdvanced     LanguageProficiency = "advanced"
	ProficiencyFluent       LanguageProficiency = "fluent"
	ProficiencyNative       LanguageProficiency = "native"
)

var validProficiencies = map[LanguageProficiency]bool{
	ProficiencyBasic:        true,
	ProficiencyIntermediate: true,
	ProficiencyAdvanced:     true,
	ProficiencyFluent:       true,
	ProficiencyNative:       true,
}

func (p LanguageProficiency) IsValid() bool { return validProficiencies[p] }

// ApplicationStatus is the review status of a persisted application. Submission
// only ever produces StatusSubmitted; downstream review states belong to the
// (out of scope) admin pipeline and are listed for schema completeness.
type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "submitted"
)
