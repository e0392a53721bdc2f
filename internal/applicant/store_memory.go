package applicant

import (
	"context"
	"sync"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	"github.com/online-dot/abroad-application-platform/pkg/platform/sentinel"
)

// InMemory keeps applicant records in a map for unit tests and local dev.
type InMemory struct {
	mu         sync.RWMutex
	applicants map[id.ApplicantID]Applicant
}

func NewInMemory() *InMemory {
	return &InMemory{applicants: make(map[id.ApplicantID]Applicant)}
}

// Seed inserts an applicant, replacing any existing record with the same ID.
// Only tests and local bootstrapping call this; the portal never writes
// applicants in production.
func (s *InMemory) Seed(a Applicant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicants[a.ID] = a
}

func (s *InMemory) FindByID(_ context.Context, applicantID id.ApplicantID) (*Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applicants[applicantID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := a
	return &copied, nil
}
