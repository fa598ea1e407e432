package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/adapt/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render the demo app to a PNG",
		Long: `Render the demo app to a PNG image with the 7x13 bitmap font.

Flags:
  -o, --output FILE   Write to FILE, or "-" for stdout (default: adaptdemo.png)
  --press KEYS        Press each character of KEYS before rendering
  --theme NAME        Start with the light or dark theme`,
		Usage: "adaptdemo snapshot [-o FILE] [--press KEYS] [--theme light|dark]",
		Run:   runSnapshot,
	})
}

type snapshotOptions struct {
	appOptions
	output string
}

func parseSnapshotArgs(args []string) (snapshotOptions, error) {
	opts := snapshotOptions{output: "adaptdemo.png"}
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
		case "-o", "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file path", args[i])
			}
			opts.output = args[i+1]
			i++
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runSnapshot(env *Env, args []string) error {
	opts, err := parseSnapshotArgs(args)
	if err != nil {
		return err
	}

	s, err := openSession(env, opts.appOptions, false)
	if err != nil {
		return err
	}
	defer s.Close()

	m := s.pressed(opts.press)
	defer m.Root().Unmount()
	img := render.Image(m.Root(), nil)

	var out io.Writer = env.Stdout
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := render.WritePNG(out, img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s.logger.Info().
		Str("output", opts.output).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("snapshot written")
	return nil
}
