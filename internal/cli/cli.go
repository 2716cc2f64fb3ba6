// Package cli implements the typosquat-analyzer command-line interface.
//
// The single command reads a requirements file, compares every dependency
// against a list of popular package names and prints the pairs whose names
// are suspiciously similar. Results go to stdout; diagnostics go to stderr
// through a charmbracelet/log logger built for each invocation.
//
// # Exit codes
//
//   - 0: the analysis completed, with or without findings
//   - 1: invalid configuration (threshold, package count, log level, files)
//   - 130: interrupted
//
// # Example
//
//	func main() {
//	    os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
//	}
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	pkgerrors "github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
)

// appName is the application name used in usage and version output.
const appName = "typosquat-analyzer"

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitConfigError = 1
	ExitInterrupted = 130 // Standard shell convention for SIGINT
)

// CLI holds the output streams and the logger of one invocation.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a CLI writing results to stdout and diagnostics to stderr.
// The logger starts at info level and is rebuilt once --log-level is known.
func New(stdout, stderr io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(stderr, log.InfoLevel),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run executes the command line args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	c := New(stdout, stderr)
	root := c.RootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		printError(stderr, "%s", describe(err))
		return ExitConfigError
	}
}

// describe renders err for the terminal, without the error code prefix.
func describe(err error) string {
	msg := pkgerrors.UserMessage(err)
	if cause := errors.Unwrap(err); cause != nil {
		msg += ": " + cause.Error()
	}
	return msg
}
