package logger

import (
	"fmt"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// captureBacktrace renders the call stack starting skip frames above its caller.
// Each frame prints as "\nfunction\n\tfile:line".
func captureBacktrace(skip int) string {
	st := errors.New("backtrace").(stackTracer).StackTrace()
	// st[0] is captureBacktrace itself.
	skip++
	if skip >= len(st) {
		return ""
	}
	return fmt.Sprintf("%+v", st[skip:])
}
