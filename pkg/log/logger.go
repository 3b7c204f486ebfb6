package log

import "github.com/google/uuid"

// Logger receives protocol events.
// Pass nil or NoopLogger to disable capture.
type Logger interface {
	// Log records a protocol event. Implementations must be thread-safe and
	// should return quickly; exchanges block while Log runs.
	Log(event Event)
}

// NoopLogger discards all events.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

// NewSessionID returns a fresh identifier for grouping the events of one
// reader session.
func NewSessionID() string {
	return uuid.New().String()
}
