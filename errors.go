package async

import "errors"

// ErrTimedOut is the error [WithTimeout] produces by default when its
// deadline passes before the awaited Future resolves. Supply a custom
// [ExceptionFactory] to [WithTimeoutFactory] to produce something else.
var ErrTimedOut = errors.New("async: timed out")

// ExceptionFactory produces the error a timed-out [WithTimeoutFactory]
// resolves with.
type ExceptionFactory func() error

func defaultExceptionFactory() error { return ErrTimedOut }

// DiagnosticLogger receives the two diagnostics this package can emit
// outside of a Future's own error channel: a failed Future whose failure
// was never observed by anyone, and a panic recovered at a boundary that
// has nowhere better to report it. An Executor built by [NewExecutor] uses
// a logger that discards both; see [WithLogger] to install a real one (for
// example the adapter in this module's logiface integration).
type DiagnosticLogger interface {
	// ExceptionalFutureIgnored is called when a failed Future is dropped
	// through the package-level [Ignore]. [Future.Ignore] does not report
	// here, and a failed Future that is simply never read is not detected.
	ExceptionalFutureIgnored(err error)

	// PanicRecovered is called when a panic is recovered at a point with no
	// Promise left to fail: notably, inside an [Executor]'s own task loop,
	// where there is no combinator state still waiting on the result.
	PanicRecovered(v any, stack []byte)
}

type discardDiagnostics struct{}

func (discardDiagnostics) ExceptionalFutureIgnored(error)   {}
func (discardDiagnostics) PanicRecovered(any, []byte) {}
