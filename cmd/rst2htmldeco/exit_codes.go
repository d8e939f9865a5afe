package main

import (
	"errors"
	"os"

	"github.com/alnah/go-rst2htmldeco"
)

// Exit codes for the rst2htmldeco CLI.
// Usage errors share code 1 with general errors.
const (
	ExitSuccess  = 0 // Page written, or help/version shown
	ExitGeneral  = 1 // General/unexpected error, config errors
	ExitUsage    = 1 // Invalid flags or arguments
	ExitIO       = 3 // Source not readable, destination not writable
	ExitRenderer = 4 // docutils missing or failed
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, rst2htmldeco.ErrRendererNotFound) ||
		errors.Is(err, rst2htmldeco.ErrRender) ||
		errors.Is(err, rst2htmldeco.ErrWriterNotFound) {
		return ExitRenderer
	}

	// I/O errors (exit 3)
	if errors.Is(err, rst2htmldeco.ErrReadSource) ||
		errors.Is(err, rst2htmldeco.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage errors (exit 1)
	if errors.Is(err, errUsage) ||
		errors.Is(err, rst2htmldeco.ErrStylesheetConflict) ||
		errors.Is(err, rst2htmldeco.ErrEmbedURL) ||
		errors.Is(err, rst2htmldeco.ErrTooManyPaths) ||
		errors.Is(err, rst2htmldeco.ErrUnknownCodeStyle) {
		return ExitUsage
	}

	return ExitGeneral
}
