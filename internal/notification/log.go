package notification

import (
	"context"
	"log/slog"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// LogDispatcher records confirmations in the log instead of sending them.
// Used when no sender address is configured (local dev, CI).
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Send(ctx context.Context, to Contact, number id.ApplicationNumber) error {
	d.logger.InfoContext(ctx, "confirmation email suppressed (no sender configured)",
		"recipient", to.Email,
		"application_number", number,
	)
	return nil
}
