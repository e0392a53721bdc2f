package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveNameFromEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  string
	}{
		{"dotted local part", "jane.doe@example.com", "Jane Doe"},
		{"single word", "ada@example.com", "Ada"},
		{"underscores and hyphens", "john_paul-jones@example.com", "John Paul Jones"},
		{"plus tag", "ada+portal@example.com", "Ada Portal"},
		{"no at sign", "plainname", "Plainname"},
		{"empty local part", "@example.com", "Applicant"},
		{"separators only", "...@example.com", "Applicant"},
		{"empty string", "", "Applicant"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveNameFromEmail(tc.email))
		})
	}
}
