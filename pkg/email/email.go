// Package email holds small helpers for addressing and naming recipients.
package email

import (
	"strings"
	"unicode"
)

// DeriveNameFromEmail produces a presentable salutation from an email address
// when the applicant profile carries no display name. "jane.doe@example.com"
// becomes "Jane Doe"; unusable local parts fall back to "Applicant".
func DeriveNameFromEmail(email string) string {
	localPart := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "Applicant"
	}

	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
