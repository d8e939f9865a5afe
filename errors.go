package rst2htmldeco

import "errors"

// Sentinel errors for library operations.
var (
	// Invocation errors.
	ErrStylesheetConflict = errors.New("embed and link stylesheet are mutually exclusive")
	ErrEmbedURL           = errors.New("cannot embed a stylesheet URL, link it instead")
	ErrTooManyPaths       = errors.New("too many positional arguments (want SRCFILE [OUTFILE])")
	ErrUnknownCodeStyle   = errors.New("unknown code style")

	// Renderer errors.
	ErrRendererNotFound = errors.New("renderer executable not found")
	ErrRender           = errors.New("rendering failed")
	ErrWriterNotFound   = errors.New("writer not found")

	// I/O errors.
	ErrReadSource  = errors.New("failed to read source file")
	ErrWriteOutput = errors.New("failed to write output file")

	// Fragment errors.
	ErrFragmentTemplate = errors.New("fragment template failed")
	ErrFooterMarkdown   = errors.New("footer markdown conversion failed")
)
