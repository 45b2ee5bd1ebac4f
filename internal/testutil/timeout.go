package testutil

import (
	"context"
	"testing"
	"time"
)

// Default bounds for running programs in tests.
const (
	// DefaultRunTimeout caps a program run that is expected to finish.
	DefaultRunTimeout = 10 * time.Second

	// DefaultMaxSteps caps programs that are expected to loop forever.
	DefaultMaxSteps = 100000

	// DefaultTestBuffer is subtracted from the test deadline to leave time
	// for cleanup.
	DefaultTestBuffer = time.Second
)

// ContextWithTestDeadline creates a context that respects the test's deadline.
// It subtracts DefaultTestBuffer from the deadline. If the test has no
// deadline, or the adjusted deadline has passed, it uses fallback.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    ctx, cancel := testutil.ContextWithTestDeadline(t, testutil.DefaultRunTimeout)
//	    defer cancel()
//	    err := interp.Run(ctx)
//	}
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-DefaultTestBuffer)
		if time.Until(adjusted) > 0 && time.Until(adjusted) < fallback {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}

	return context.WithTimeout(context.Background(), fallback)
}

// RunContext returns a context for a single program run in a test.
func RunContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return ContextWithTestDeadline(t, DefaultRunTimeout)
}
