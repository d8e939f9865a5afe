package rst2htmldeco

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
)

// Writer names.
const (
	// WriterHTMLDeco injects the banner, menu and footer.
	WriterHTMLDeco = "htmldeco"
	// WriterHTML passes the docutils output through unchanged.
	WriterHTML = "html"
)

// Writer turns the renderer's HTML into the published page.
type Writer interface {
	Write(ctx context.Context, htmlContent string) (string, error)
}

// WriterSettings is handed to a writer factory for each rendering.
type WriterSettings struct {
	Fragments *Fragments
	CodeStyle string
	Logger    *slog.Logger
}

// WriterFactory creates a writer for one rendering.
type WriterFactory func(settings WriterSettings) (Writer, error)

var (
	writersMu sync.RWMutex
	writers   = map[string]WriterFactory{}
)

func init() {
	RegisterWriter(WriterHTMLDeco, newDecoWriter)
	RegisterWriter(WriterHTML, func(WriterSettings) (Writer, error) { return passthroughWriter{}, nil })
}

// RegisterWriter makes a writer available by name.
// It panics if factory is nil or name is already registered.
func RegisterWriter(name string, factory WriterFactory) {
	writersMu.Lock()
	defer writersMu.Unlock()

	if factory == nil {
		panic("rst2htmldeco: RegisterWriter factory is nil")
	}
	if _, dup := writers[name]; dup {
		panic("rst2htmldeco: RegisterWriter called twice for writer " + name)
	}
	writers[name] = factory
}

// Writers returns the sorted names of the registered writers.
func Writers() []string {
	writersMu.RLock()
	defer writersMu.RUnlock()

	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupWriter(name string) (WriterFactory, error) {
	writersMu.RLock()
	defer writersMu.RUnlock()

	factory, ok := writers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWriterNotFound, name)
	}
	return factory, nil
}

type passthroughWriter struct{}

func (passthroughWriter) Write(_ context.Context, htmlContent string) (string, error) {
	return htmlContent, nil
}

// decoWriter places banner and menu at the top of the body and the footer
// at the bottom.
type decoWriter struct {
	fragments *Fragments
	codeCSS   string
	logger    *slog.Logger
}

func newDecoWriter(settings WriterSettings) (Writer, error) {
	frags := settings.Fragments
	if frags == nil {
		frags = &Fragments{}
	}

	logger := settings.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w := &decoWriter{fragments: frags, logger: logger}
	if settings.CodeStyle != "" {
		css, err := codeStyleCSS(settings.CodeStyle)
		if err != nil {
			return nil, err
		}
		w.codeCSS = css
	}
	return w, nil
}

func (w *decoWriter) Write(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out := injectAfterBodyOpen(htmlContent, w.fragments.Banner+w.fragments.Nav)
	out = injectBeforeBodyClose(out, w.fragments.Footer)

	if w.codeCSS == "" {
		return out, nil
	}

	count, langs, err := codeBlocks(out)
	if err != nil {
		return "", err
	}
	if count == 0 {
		w.logger.Debug("no code blocks, skipping highlight stylesheet")
		return out, nil
	}

	w.logger.Debug("highlighting code blocks", "count", count, "languages", langs)
	return injectStyle(markCodeBlocks(out), w.codeCSS), nil
}
