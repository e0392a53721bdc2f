package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
)

func TestParseApplicationNumber(t *testing.T) {
	t.Run("accepts canonical form", func(t *testing.T) {
		n, err := ParseApplicationNumber("WA-20260102-ABC123")
		require.NoError(t, err)
		assert.Equal(t, "WA-20260102-ABC123", n.String())
		assert.True(t, n.IsValid())
	})

	rejects := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong prefix", "WB-20260102-ABC123"},
		{"lowercase prefix", "wa-20260102-ABC123"},
		{"short date", "WA-2026012-ABC123"},
		{"non-digit date", "WA-2026010X-ABC123"},
		{"short suffix", "WA-20260102-ABC12"},
		{"long suffix", "WA-20260102-ABC1234"},
		{"lowercase suffix", "WA-20260102-abc123"},
		{"missing separator", "WA20260102-ABC123"},
		{"trailing garbage", "WA-20260102-ABC123X"},
	}

	for _, tc := range rejects {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := ParseApplicationNumber(tc.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func FuzzParseApplicationNumber(f *testing.F) {
	f.Add("WA-20260102-ABC123")
	f.Add("")
	f.Add("WA-99999999-ZZZZZZ")
	f.Add("'; DROP TABLE applications;--")

	f.Fuzz(func(t *testing.T, input string) {
		n, err := ParseApplicationNumber(input)
		if err != nil {
			return
		}
		// Accepted input must round-trip unchanged and self-report as valid.
		if n.String() != input {
			t.Errorf("round-trip changed value: %q -> %q", input, n.String())
		}
		if !n.IsValid() {
			t.Errorf("parsed number reports invalid: %q", input)
		}
	})
}
