package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
)

// TestParseApplicantID_Invariants validates the parsing invariant: IDs must be
// valid, non-empty, non-nil UUIDs in canonical form.
func TestParseApplicantID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseApplicantID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseApplicantID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseApplicantID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		parsed, err := ParseApplicantID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, ApplicantID(validUUID), parsed)
	})
}

// TestParseID_CanonicalFormOnly verifies exotic-but-parseable UUID encodings
// are rejected at the trust boundary.
func TestParseID_CanonicalFormOnly(t *testing.T) {
	canonical := uuid.New().String()
	exotic := []struct {
		name  string
		input string
	}{
		{"braced", "{" + canonical + "}"},
		{"urn prefix", "urn:uuid:" + canonical},
		{"no hyphens", "550e8400e29b41d4a716446655440000"},
		{"trailing newline", canonical + "\n"},
		{"injection attempt", "'; DROP TABLE applications;--"},
	}

	for _, tc := range exotic {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseApplicantID(tc.input)
			require.Error(t, err)

			_, err = ParseSessionID(tc.input)
			require.Error(t, err)

			_, err = ParseApplicationID(tc.input)
			require.Error(t, err)
		})
	}
}

func TestIDStringRoundTrip(t *testing.T) {
	original := uuid.New().String()

	applicantID, err := ParseApplicantID(original)
	require.NoError(t, err)
	assert.Equal(t, original, applicantID.String())
	assert.False(t, applicantID.IsNil())
}

func TestNewApplicationID(t *testing.T) {
	first := NewApplicationID()
	second := NewApplicationID()

	assert.False(t, first.IsNil())
	assert.NotEqual(t, first, second)
}

func TestIsNil(t *testing.T) {
	assert.True(t, ApplicantID{}.IsNil())
	assert.True(t, SessionID{}.IsNil())
	assert.False(t, ApplicantID(uuid.New()).IsNil())
}
