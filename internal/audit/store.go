package audit

import (
	"context"
	"sync"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Store is an append-only sink for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByApplicant(ctx context.Context, applicantID id.ApplicantID) ([]Event, error)
}

// InMemory keeps audit events in memory; enough for tests and single-node dev.
type InMemory struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemory) ListByApplicant(_ context.Context, applicantID id.ApplicantID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Event
	for _, e := range s.events {
		if e.ApplicantID == applicantID {
			out = append(out, e)
		}
	}
	return out, nil
}
