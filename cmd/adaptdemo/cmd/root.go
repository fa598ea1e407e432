// Package cmd implements the adaptdemo CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, snapshot, version).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/adapt/cmd/adaptdemo/internal/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Env carries the process surroundings a command runs in.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the project directory; config is resolved from it.
	Dir string
	// IsTTY reports whether Stdout is an interactive terminal.
	IsTTY bool
}

// Config resolves the configuration of e.Dir.
func (e *Env) Config() (*config.Resolved, error) {
	return config.Resolve(config.FindProjectRoot(e.Dir))
}

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(env *Env, args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "adaptdemo",
	Short: "adaptdemo - adapted state hooks in the terminal",
	Long: `adaptdemo hosts a small widget tree built on adapted state hooks:
a dark mode toggle and a counter. Buttons are pressed with their
shortcut keys.

Use "adaptdemo <command> --help" for more information about a command.`,
	Usage: "adaptdemo <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(env *Env, args []string) error {
	if len(args) == 0 {
		printHelp(env.Stdout, rootCmd)
		return nil
	}

	// Handle global flags and extract --dir
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(env.Stdout, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				return runVersion(env, nil)
			}
			filteredArgs = append(filteredArgs, arg)
		case "--dir":
			if i+1 < len(args) {
				env.Dir = args[i+1]
				i++
			} else {
				return fmt.Errorf("--dir requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--dir=") {
				env.Dir = strings.TrimPrefix(arg, "--dir=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(env.Stdout, rootCmd)
		return nil
	}

	if env.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		env.Dir = wd
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(env.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(env.Stderr, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(env.Stdout, cmd)
			return nil
		}
	}

	return cmd.Run(env, cmdArgs)
}

func printHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --dir DIR            Project directory (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ADAPT_THEME          Initial theme, light or dark")
	fmt.Fprintln(w, "  ADAPT_LOG_LEVEL      Log level (trace, debug, info, warn, error, disabled)")
	fmt.Fprintln(w, "  ADAPT_LOG_FORMAT     Log format, console or json")
	fmt.Fprintln(w, "  ADAPT_LOG_FILE       Write logs to this file instead of stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  adaptdemo run                     Run interactively")
	fmt.Fprintln(w, "  adaptdemo run --press t++         Press keys and print the result")
	fmt.Fprintln(w, "  adaptdemo snapshot -o demo.png    Render the tree to a PNG")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
