package errors

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	stderrLogger     zerolog.Logger
	stderrLoggerOnce sync.Once
)

func defaultLogger() *zerolog.Logger {
	stderrLoggerOnce.Do(func() {
		stderrLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Str("component", "adapt").Logger()
	})
	return &stderrLogger
}

// LogHandler is an ErrorHandler that writes errors to a zerolog logger.
type LogHandler struct {
	// Logger receives the events. Nil means a console logger on stderr.
	Logger *zerolog.Logger
	// Verbose adds stack traces to the events.
	Verbose bool
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return defaultLogger()
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("framework error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("widget", err.Widget).
		Str("element", err.Element)
	if err.Recovered != nil {
		ev = ev.Interface("recovered", err.Recovered)
	}
	if err.Err != nil {
		ev = ev.Err(err.Err)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("build failed")
}
