package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/adapt/pkg/render"
	"github.com/go-drift/adapt/pkg/terminal"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run the demo app",
		Long: `Run the demo app in the terminal.

On an interactive terminal the app runs until esc or ctrl+c; press a
button's shortcut key to tap it and ? to toggle help. Otherwise, or with
--plain or --press, the app is rendered once and printed.

Flags:
  --press KEYS    Press each character of KEYS before printing
  --theme NAME    Start with the light or dark theme
  --plain         Print once even on an interactive terminal`,
		Usage: "adaptdemo run [--press KEYS] [--theme light|dark] [--plain]",
		Run:   runRun,
	})
}

type runOptions struct {
	appOptions
	plain bool
}

func parseRunArgs(args []string) (runOptions, error) {
	var opts runOptions
	for i := 0; i < len(args); i++ {
		next, err := opts.parseAppFlag(args, i)
		if err != nil {
			return opts, err
		}
		if next >= 0 {
			i = next
			continue
		}
		switch args[i] {
		case "--plain":
			opts.plain = true
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runRun(env *Env, args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	interactive := env.IsTTY && !opts.plain && opts.press == ""
	s, err := openSession(env, opts.appOptions, interactive)
	if err != nil {
		return err
	}
	defer s.Close()

	if !interactive {
		m := s.pressed(opts.press)
		defer m.Root().Unmount()
		fmt.Fprintln(env.Stdout, render.Text(m.Root(), nil))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s.logger.Info().Msg("starting terminal host")
	if err := terminal.Run(ctx, s.app(), nil, tea.WithAltScreen(), tea.WithOutput(env.Stdout)); err != nil {
		return err
	}
	s.logger.Info().Msg("terminal host stopped")
	return nil
}
