package application

import (
	"context"
	"sort"
	"sync"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	"github.com/online-dot/abroad-application-platform/pkg/platform/sentinel"
)

// InMemory implements Store with a mutex-guarded map. It mirrors the postgres
// store's contract, including duplicate-number detection, so service tests and
// local dev behave like production.
type InMemory struct {
	mu       sync.RWMutex
	byNumber map[id.ApplicationNumber]Application
}

func NewInMemory() *InMemory {
	return &InMemory{byNumber: make(map[id.ApplicationNumber]Application)}
}

func (s *InMemory) Create(_ context.Context, app *Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byNumber[app.Number]; exists {
		return sentinel.ErrDuplicateNumber
	}
	s.byNumber[app.Number] = *app
	return nil
}

func (s *InMemory) FindByNumber(_ context.Context, number id.ApplicationNumber) (*Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.byNumber[number]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := app
	return &copied, nil
}

func (s *InMemory) ListByApplicant(_ context.Context, applicantID id.ApplicantID) ([]*Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Application
	for _, app := range s.byNumber {
		if app.ApplicantID == applicantID {
			copied := app
			out = append(out, &copied)
		}
	}
	// Newest first, matching the postgres store's ordering.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
