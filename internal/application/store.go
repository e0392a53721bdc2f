package application

import (
	"context"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Store persists applications. Records are append-only: there is no update or
// delete, by design.
//
// Create must be atomic and must enforce application-number uniqueness at the
// storage layer, returning sentinel.ErrDuplicateNumber (possibly wrapped) on a
// collision so the submission service can retry with a fresh number. Any other
// failure is a plain persistence error. On success the record is durably
// readable by subsequent calls.
type Store interface {
	Create(ctx context.Context, app *Application) error
	FindByNumber(ctx context.Context, number id.ApplicationNumber) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID id.ApplicantID) ([]*Application, error)
}
