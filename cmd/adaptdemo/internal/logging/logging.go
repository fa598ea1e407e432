// Package logging builds the demo's zerolog logger and routes framework
// errors to it.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	adapterrors "github.com/go-drift/adapt/pkg/errors"
)

// Field names shared by every event.
const (
	FieldApp     = "app"
	FieldSession = "session"
)

// Options configures New.
type Options struct {
	App     string
	Level   zerolog.Level
	Format  string // "console" or "json"
	NoColor bool
	// Session identifies the run; empty means a fresh UUID.
	Session string
}

// New returns a logger writing to out.
func New(out io.Writer, opts Options) zerolog.Logger {
	session := opts.Session
	if session == "" {
		session = uuid.NewString()
	}

	var zl zerolog.Logger
	if strings.ToLower(opts.Format) == "json" {
		zl = zerolog.New(out)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:         out,
			TimeFormat:  "15:04:05",
			NoColor:     opts.NoColor,
			FormatLevel: formatLevel,
		})
	}

	return zl.Level(opts.Level).With().
		Timestamp().
		Str(FieldApp, opts.App).
		Str(FieldSession, session).
		Logger()
}

var levelTags = map[string]string{
	"trace": "TRC",
	"debug": "DBG",
	"info":  "INF",
	"warn":  "WRN",
	"error": "ERR",
	"fatal": "FTL",
	"panic": "PNC",
}

func formatLevel(i any) string {
	lvl := fmt.Sprint(i)
	if tag, ok := levelTags[lvl]; ok {
		return "[" + tag + "]"
	}
	return "[" + strings.ToUpper(lvl) + "]"
}

// Install makes logger the framework error handler and returns a function
// restoring the previous handler. Debug and trace levels log stack traces.
func Install(logger *zerolog.Logger) (restore func()) {
	prev := adapterrors.Handler()
	adapterrors.SetHandler(&adapterrors.LogHandler{
		Logger:  logger,
		Verbose: logger.GetLevel() <= zerolog.DebugLevel,
	})
	return func() { adapterrors.SetHandler(prev) }
}
