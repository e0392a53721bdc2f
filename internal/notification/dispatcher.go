// Package notification delivers the post-submission confirmation message.
//
// The submission service invokes a Dispatcher exactly once per durably
// persisted application, after the commit point. Delivery failure never rolls
// the application back; callers log and count it and move on.
package notification

import (
	"context"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

// Contact is where and to whom the confirmation goes.
type Contact struct {
	Name  string
	Email string
}

// Dispatcher sends the confirmation for a persisted application.
type Dispatcher interface {
	Send(ctx context.Context, to Contact, number id.ApplicationNumber) error
}
