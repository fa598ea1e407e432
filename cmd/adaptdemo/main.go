// Command adaptdemo hosts a widget tree built on adapted state hooks.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/go-drift/adapt/cmd/adaptdemo/cmd"
)

func main() {
	env := &cmd.Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsTTY:  term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := cmd.Execute(env, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
