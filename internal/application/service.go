package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/online-dot/abroad-application-platform/internal/applicant"
	"github.com/online-dot/abroad-application-platform/internal/application/metrics"
	"github.com/online-dot/abroad-application-platform/internal/audit"
	"github.com/online-dot/abroad-application-platform/internal/notification"
	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
	"github.com/online-dot/abroad-application-platform/pkg/email"
	"github.com/online-dot/abroad-application-platform/pkg/platform/sentinel"
	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

// maxNumberAttempts bounds the generate-insert-retry loop. Six random
// alphanumerics give ~2 billion combinations per day, so hitting this bound
// means something is broken, not unlucky.
const maxNumberAttempts = 5

// Terminal submission outcomes, used as metrics labels and span attributes.
const (
	outcomeAccepted            = "accepted"
	outcomeBlockedAuth         = "blocked_auth"
	outcomeBlockedPrecondition = "blocked_precondition"
	outcomeRejectedValidation  = "rejected_validation"
	outcomeGenerationExhausted = "generation_exhausted"
	outcomePersistenceFailed   = "persistence_failed"
)

// Gate supplies the current applicant and the submission precondition. It is
// an injected capability, never ambient session state.
type Gate interface {
	CurrentApplicant(ctx context.Context) (*applicant.Applicant, error)
	CheckEligibility(a *applicant.Applicant) error
}

// NumberGenerator produces candidate application numbers.
type NumberGenerator interface {
	Next(ctx context.Context) (id.ApplicationNumber, error)
}

// Service sequences a submission: gate, precondition, validation, number
// allocation, persistence, then notification. Persistence is the commit
// point; everything before it can be abandoned freely and nothing after it
// can undo it.
type Service struct {
	gate       Gate
	store      Store
	numbers    NumberGenerator
	dispatcher notification.Dispatcher
	auditor    *audit.Publisher
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

// NewService constructs the submission service. auditor and metrics may be nil
// (tests, stripped-down deployments); dispatcher must not be.
func NewService(
	gate Gate,
	store Store,
	numbers NumberGenerator,
	dispatcher notification.Dispatcher,
	auditor *audit.Publisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		gate:       gate,
		store:      store,
		numbers:    numbers,
		dispatcher: dispatcher,
		auditor:    auditor,
		logger:     logger,
		metrics:    m,
		tracer:     otel.Tracer("application"),
	}
}

// Submit runs one submission attempt end to end.
//
// Errors, by terminal state:
//   - CodeUnauthorized: no authenticated applicant (BlockedByAuth)
//   - CodePrecondition: passport not on file (BlockedByPrecondition)
//   - CodeValidation: one or more field rules failed; Fields carries the
//     ordered identifiers (RejectedByValidation)
//   - CodeUnavailable: number allocation exhausted or storage failure; both
//     are retryable by the user and the submitted values survive for
//     resubmission (GenerationFailed / PersistenceFailed)
//
// A notification failure is NOT an error: the application is already durable
// and the outcome is still success.
func (s *Service) Submit(ctx context.Context, draft Draft) (*Application, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "application.Submit")
	defer span.End()

	current, err := s.gate.CurrentApplicant(ctx)
	if err != nil {
		s.finish(span, outcomeBlockedAuth, err)
		return nil, err
	}

	if err := s.gate.CheckEligibility(current); err != nil {
		s.logger.InfoContext(ctx, "submission blocked by precondition",
			"request_id", requestcontext.RequestID(ctx),
			"applicant_id", current.ID,
			"reason", applicant.BlockedReasonMissingPassport,
		)
		s.finish(span, outcomeBlockedPrecondition, err)
		return nil, err
	}

	validated, fieldErrors := ValidateDraft(draft)
	if len(fieldErrors) > 0 {
		err := dErrors.NewValidation(fieldErrors)
		s.finish(span, outcomeRejectedValidation, err)
		return nil, err
	}

	app, err := s.persist(ctx, current.ID, *validated, span)
	if err != nil {
		return nil, err
	}

	// Commit point passed: the record is durable. Notification and audit
	// failures are reported, never propagated.
	s.notify(ctx, current, app.Number)
	s.recordSubmitted(ctx, app)

	s.metrics.ObserveSubmitLatency(time.Since(start))
	s.finish(span, outcomeAccepted, nil)
	span.SetAttributes(attribute.String("application.number", app.Number.String()))

	s.logger.InfoContext(ctx, "application submitted",
		"request_id", requestcontext.RequestID(ctx),
		"applicant_id", app.ApplicantID,
		"application_number", app.Number,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return app, nil
}

// persist allocates a number and inserts the record, retrying on collisions.
// The store's unique constraint is the arbiter; the loop just picks fresh
// candidates until one is accepted or the attempt budget runs out.
func (s *Service) persist(ctx context.Context, applicantID id.ApplicantID, v Validated, span trace.Span) (*Application, error) {
	createdAt := requestcontext.Now(ctx).UTC()

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		candidate, err := s.numbers.Next(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "application number generation failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			outErr := dErrors.New(dErrors.CodeUnavailable, "could not allocate an application number, please try again")
			s.finish(span, outcomeGenerationExhausted, outErr)
			return nil, outErr
		}

		app := newApplication(applicantID, v, candidate, createdAt)
		err = s.store.Create(ctx, app)
		if err == nil {
			return app, nil
		}
		if errors.Is(err, sentinel.ErrDuplicateNumber) {
			s.metrics.IncrementCollision()
			s.logger.WarnContext(ctx, "application number collision, regenerating",
				"request_id", requestcontext.RequestID(ctx),
				"application_number", candidate,
				"attempt", attempt,
			)
			continue
		}

		s.logger.ErrorContext(ctx, "application persistence failed",
			"request_id", requestcontext.RequestID(ctx),
			"applicant_id", applicantID,
			"error", err,
		)
		outErr := dErrors.New(dErrors.CodeUnavailable, "your application could not be saved, please try again")
		s.finish(span, outcomePersistenceFailed, outErr)
		return nil, outErr
	}

	outErr := dErrors.New(dErrors.CodeUnavailable, "could not allocate an application number, please try again")
	s.finish(span, outcomeGenerationExhausted, outErr)
	return nil, outErr
}

// notify sends the confirmation exactly once, after the commit point.
func (s *Service) notify(ctx context.Context, current *applicant.Applicant, number id.ApplicationNumber) {
	name := current.FullName
	if name == "" {
		name = email.DeriveNameFromEmail(current.Email)
	}

	err := s.dispatcher.Send(ctx, notification.Contact{Name: name, Email: current.Email}, number)
	if err == nil {
		return
	}

	s.metrics.IncrementNotificationFailure()
	s.logger.ErrorContext(ctx, "confirmation email failed, application remains valid",
		"request_id", requestcontext.RequestID(ctx),
		"applicant_id", current.ID,
		"application_number", number,
		"error", err,
	)
	s.emitAudit(ctx, audit.Event{
		ApplicantID:       current.ID,
		ApplicationNumber: number,
		Action:            audit.ActionNotificationFailed,
		Reason:            err.Error(),
	})
}

func (s *Service) recordSubmitted(ctx context.Context, app *Application) {
	s.emitAudit(ctx, audit.Event{
		ApplicantID:       app.ApplicantID,
		ApplicationNumber: app.Number,
		Action:            audit.ActionApplicationSubmitted,
	})
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	event.Timestamp = requestcontext.Now(ctx)
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "audit append failed",
			"request_id", event.RequestID,
			"action", event.Action,
			"error", err,
		)
	}
}

func (s *Service) finish(span trace.Span, outcome string, err error) {
	s.metrics.IncrementOutcome(outcome)
	span.SetAttributes(attribute.String("submission.outcome", outcome))
	if err != nil {
		span.RecordError(err)
	}
}

// GetByNumber returns one of the caller's applications for the confirmation
// view. Another applicant's number reads as not found, never as forbidden, so
// the endpoint leaks nothing about which numbers exist.
func (s *Service) GetByNumber(ctx context.Context, number id.ApplicationNumber) (*Application, error) {
	current, err := s.gate.CurrentApplicant(ctx)
	if err != nil {
		return nil, err
	}

	app, err := s.store.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app.ApplicantID != current.ID {
		return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
	}
	return app, nil
}

// ListMine returns the caller's applications, newest first, for the dashboard.
func (s *Service) ListMine(ctx context.Context) ([]*Application, error) {
	current, err := s.gate.CurrentApplicant(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := s.store.ListByApplicant(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}
