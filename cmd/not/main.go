package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Geun-Oh/not/internal/fault"
	"github.com/Geun-Oh/not/internal/log"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitConfigError = 1
	ExitSourceError = 2
	ExitSinkError   = 3
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.Init("error", stderr)

	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitSuccess
	}

	log.WithError(err).Debug("command failed")
	fmt.Fprintf(stderr, "not: %v\n", err)
	code := exitCode(err)
	if code == ExitConfigError {
		fmt.Fprint(stderr, "\n"+cmd.UsageString())
	}
	return code
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch fault.Kind(err) {
	case fault.ErrSource:
		return ExitSourceError
	case fault.ErrSink:
		return ExitSinkError
	default:
		// Configuration errors and flag parsing errors from cobra.
		return ExitConfigError
	}
}
