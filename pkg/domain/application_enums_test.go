package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevelIsValid(t *testing.T) {
	for _, level := range []EducationLevel{
		EducationHighSchool, EducationDiploma, EducationBachelors, EducationMasters, EducationPhD,
	} {
		assert.True(t, level.IsValid(), "%q should be valid", level)
	}

	assert.False(t, EducationLevel("").IsValid())
	assert.False(t, EducationLevel("kindergarten").IsValid())
	assert.False(t, EducationLevel("Bachelors").IsValid(), "matching is case-sensitive")
}

func TestLanguageIsValid(t *testing.T) {
	for _, lang := range []Language{
		LanguageEnglish, LanguageFrench, LanguageGerman, LanguageSpanish,
	} {
		assert.True(t, lang.IsValid(), "%q should be valid", lang)
	}

	assert.False(t, Language("klingon").IsValid())
	assert.False(t, Language("English").IsValid(), "matching is case-sensitive")
}

func TestLanguageProficiencyIsValid(t *testing.T) {
	for _, p := range []LanguageProficiency{
		ProficiencyBasic, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyFluent, ProficiencyNative,
	} {
		assert.True(t, p.IsValid(), "%q should be valid", p)
	}

	assert.False(t, LanguageProficiency("superb").IsValid())
}
