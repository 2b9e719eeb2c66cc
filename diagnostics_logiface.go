package async

import (
	"fmt"
	"log/slog"

	"github.com/joeycumines/logiface"
	slogadapter "github.com/joeycumines/logiface-slog"
)

// logifaceDiagnostics adapts a [logiface.Logger] into this package's
// [DiagnosticLogger]. The teacher has no logging of its own at all; this
// package borrows logiface, a generics-based logging facade also present
// in the retrieved example pack, rather than reach for slog directly,
// keeping the Executor's two diagnostics behind the same small structured
// interface every logiface-based component in that pack logs through.
type logifaceDiagnostics struct {
	logger *logiface.Logger[*slogadapter.Event]
}

// NewSlogDiagnostics returns a [DiagnosticLogger] that writes both of this
// package's diagnostics — an exceptional Future dropped unread, and a
// panic recovered with nowhere else to go — as structured log records
// through handler.
func NewSlogDiagnostics(handler slog.Handler) DiagnosticLogger {
	return &logifaceDiagnostics{
		logger: logiface.New[*slogadapter.Event](slogadapter.NewLogger(handler)),
	}
}

func (d *logifaceDiagnostics) ExceptionalFutureIgnored(err error) {
	d.logger.Err().Err(err).Str("component", "async").Log("exceptional future ignored")
}

func (d *logifaceDiagnostics) PanicRecovered(v any, stack []byte) {
	d.logger.Err().Err(panicAsError(v)).
		Str("component", "async").
		Str("stack", string(stack)).
		Log("panic recovered")
}

type recoveredPanic struct{ v any }

func (p recoveredPanic) Error() string { return "async: recovered panic: " + formatPanicValue(p.v) }

func panicAsError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return recoveredPanic{v: v}
}

func formatPanicValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	if err, ok := v.(error); ok {
		return err.Error()
	}

	return fmt.Sprintf("%v", v)
}
