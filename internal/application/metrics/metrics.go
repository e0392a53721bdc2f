package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the submission workflow.
type Metrics struct {
	// Submission outcomes by terminal state
	SubmissionOutcome *prometheus.CounterVec

	// Application-number collisions resolved by retry
	NumberCollisions prometheus.Counter

	// Confirmation emails that could not be delivered (non-fatal)
	NotificationFailures prometheus.Counter

	// Overall submission latency
	SubmitLatency prometheus.Histogram
}

// New creates a Metrics instance with all submission metrics registered.
func New() *Metrics {
	return &Metrics{
		SubmissionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "abroad_submission_outcomes_total",
			Help: "Total submission outcomes by terminal state",
		}, []string{"outcome"}),

		NumberCollisions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "abroad_submission_number_collisions_total",
			Help: "Application number collisions resolved by regeneration",
		}),

		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "abroad_submission_notification_failures_total",
			Help: "Confirmation emails that failed to send after a persisted submission",
		}),

		SubmitLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "abroad_submission_duration_seconds",
			Help:    "Duration of full submission handling including persistence and notification",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementOutcome records a terminal submission outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.SubmissionOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementCollision records a number collision that was retried.
func (m *Metrics) IncrementCollision() {
	if m != nil {
		m.NumberCollisions.Inc()
	}
}

// IncrementNotificationFailure records an undeliverable confirmation email.
func (m *Metrics) IncrementNotificationFailure() {
	if m != nil {
		m.NotificationFailures.Inc()
	}
}

// ObserveSubmitLatency records the total submission duration.
func (m *Metrics) ObserveSubmitLatency(d time.Duration) {
	if m != nil {
		m.SubmitLatency.Observe(d.Seconds())
	}
}
