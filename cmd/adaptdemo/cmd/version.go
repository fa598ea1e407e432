package cmd

import (
	"fmt"
	"runtime"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the adaptdemo version, build time and Go runtime.",
		Usage: "adaptdemo version",
		Run:   runVersion,
	})
}

func runVersion(env *Env, args []string) error {
	fmt.Fprintf(env.Stdout, "adaptdemo version %s (built %s, %s %s/%s)\n",
		Version, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
