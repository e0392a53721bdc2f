// Package number allocates candidate application numbers.
//
// A candidate is only an identifier once the store accepts it: the submission
// service runs a generate-insert-retry loop against the store's uniqueness
// constraint, so randomness here buys collision resistance, not correctness.
package number

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

const (
	prefix       = "WA"
	suffixLength = 6
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces candidate application numbers of the canonical shape
// WA-YYYYMMDD-XXXXXX. The date comes from the request clock so one submission
// observes one date, even across retries near midnight.
type Generator struct {
	source io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{source: rand.Reader}
}

// NewWithSource injects a random source; tests use this to force collisions.
func NewWithSource(source io.Reader) *Generator {
	return &Generator{source: source}
}

// Next produces one candidate number.
// Errors only when the random source fails, which callers treat as fatal.
func (g *Generator) Next(ctx context.Context) (id.ApplicationNumber, error) {
	buf := make([]byte, suffixLength)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", fmt.Errorf("read random source: %w", err)
	}

	suffix := make([]byte, suffixLength)
	for i, b := range buf {
		suffix[i] = alphabet[int(b)%len(alphabet)]
	}

	date := requestcontext.Now(ctx).UTC().Format("20060102")
	return id.ApplicationNumber(prefix + "-" + date + "-" + string(suffix)), nil
}
