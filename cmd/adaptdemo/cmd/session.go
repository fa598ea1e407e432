package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/go-drift/adapt/cmd/adaptdemo/internal/app"
	"github.com/go-drift/adapt/cmd/adaptdemo/internal/config"
	"github.com/go-drift/adapt/cmd/adaptdemo/internal/logging"
	"github.com/go-drift/adapt/pkg/terminal"
	"github.com/go-drift/adapt/pkg/theme"
)

// appOptions are the flags shared by run and snapshot.
type appOptions struct {
	press string
	theme string
}

// parseAppFlag consumes the shared flag at args[i], returning the index of
// its last argument, or -1 when args[i] is not a shared flag.
func (o *appOptions) parseAppFlag(args []string, i int) (int, error) {
	switch args[i] {
	case "--press", "--theme":
		if i+1 >= len(args) {
			return 0, fmt.Errorf("%s requires a value", args[i])
		}
		if args[i] == "--press" {
			o.press = args[i+1]
		} else {
			o.theme = args[i+1]
		}
		return i + 1, nil
	}
	return -1, nil
}

// session is one configured run of the demo app.
type session struct {
	cfg     *config.Resolved
	logger  zerolog.Logger
	closers []func()
}

// openSession resolves config, applies opts and installs the logger as
// the framework error handler. quiet discards logs unless log.file is set.
func openSession(env *Env, opts appOptions, quiet bool) (*session, error) {
	cfg, err := env.Config()
	if err != nil {
		return nil, err
	}
	if opts.theme != "" {
		cfg.Theme, err = theme.ParseBrightness(opts.theme)
		if err != nil {
			return nil, err
		}
	}

	s := &session{cfg: cfg}
	var out io.Writer = env.Stderr
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		s.closers = append(s.closers, func() { f.Close() })
		out = f
	case quiet:
		out = io.Discard
	}

	s.logger = logging.New(out, logging.Options{
		App:     cfg.AppName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		NoColor: out != env.Stderr || !env.IsTTY,
	})
	s.closers = append(s.closers, logging.Install(&s.logger))
	s.logger.Debug().
		Str("root", cfg.Root).
		Str("module", cfg.ModulePath).
		Stringer("theme", cfg.Theme).
		Msg("session started")
	return s, nil
}

// app returns the root widget for this session.
func (s *session) app() app.App {
	return app.App{Title: s.cfg.AppName, Initial: s.cfg.Theme, Logger: &s.logger}
}

// pressed mounts the app and presses keys, one rune at a time.
func (s *session) pressed(keys string) terminal.Model {
	m := terminal.New(s.app(), nil)
	if keys != "" {
		m = m.Press(keys)
		s.logger.Debug().Str("keys", keys).Int("taps", m.Taps()).Msg("pressed")
	}
	return m
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}
