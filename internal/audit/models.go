package audit

import (
	"time"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Action names the audited portal events.
type Action string

const (
	// ActionApplicationSubmitted records a durably persisted application.
	ActionApplicationSubmitted Action = "application_submitted"
	// ActionNotificationFailed records a confirmation email that could not be
	// delivered; the application itself remains valid.
	ActionNotificationFailed Action = "notification_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp         time.Time
	ApplicantID       id.ApplicantID
	ApplicationNumber id.ApplicationNumber
	Action            Action
	Reason            string
	RequestID         string
}
