package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/term"

	"github.com/alnah/go-rst2htmldeco"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// IsTerminal reports whether Stdin is an interactive terminal.
	IsTerminal func() bool
	// Runner executes the docutils command. Nil uses the real process runner.
	Runner rst2htmldeco.CommandRunner
	// AdjustProcs sizes GOMAXPROCS once the logger exists. Nil skips it.
	AdjustProcs func(logger *slog.Logger)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		Environ:    os.Environ,
		IsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }, // #nosec G115 -- fd fits in int
		AdjustProcs: func(logger *slog.Logger) {
			// maxprocs.Set only fails on an invalid GOMAXPROCS value; the runtime default applies then.
			_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
				logger.Debug(fmt.Sprintf(format, args...))
			}))
		},
	}
}

// newLogger returns a text logger on w. The default level is Warn.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
