package rst2htmldeco

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"
)

// Description is passed to the renderer along with the writer name.
const Description = "Generates (X)HTML documents from standalone reStructuredText " +
	"sources, with custom banner and footer."

// Service orchestrates fragments, argument assembly and publishing.
// It renders one job at a time: MakeHTML rebuilds the shared Fragments.
type Service struct {
	fragments *Fragments
	publisher Publisher
	writer    string
	timeout   time.Duration
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher replaces the docutils publisher (tests, other engines).
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithCommand sets the docutils command used by the default publisher.
func WithCommand(command string) Option {
	return func(s *Service) {
		if dp, ok := s.publisher.(*DocutilsPublisher); ok {
			dp.Command = command
		}
	}
}

// WithWriter selects the writer by registered name.
func WithWriter(name string) Option {
	return func(s *Service) { s.writer = name }
}

// WithLogger sets the logger for the service and the default publisher.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
		if dp, ok := s.publisher.(*DocutilsPublisher); ok {
			dp.Logger = logger
		}
	}
}

// WithTimeout bounds a rendering. Zero means no limit.
// Panics if d < 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("rst2htmldeco: WithTimeout duration must not be negative")
	}
	return func(s *Service) { s.timeout = d }
}

// New creates a Service rendering with the docutils command line and the
// htmldeco writer.
func New(fragments *Fragments, opts ...Option) *Service {
	if fragments == nil {
		fragments = NewFragments(DefaultSite())
	}
	s := &Service{
		fragments: fragments,
		publisher: NewDocutilsPublisher(DefaultCommand),
		writer:    WriterHTMLDeco,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fragments returns the fragments the service injects.
func (s *Service) Fragments() *Fragments {
	return s.fragments
}

// MakeHTML renders job. The fragments are rebuilt first because the writer
// reads them while publishing.
func (s *Service) MakeHTML(ctx context.Context, job Job) error {
	if err := ValidateCodeStyle(job.CodeStyle); err != nil {
		return err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.fragments.Current = ""
	if job.Dest != "" && job.Dest != stdioPath {
		s.fragments.Current = filepath.Base(job.Dest)
	}
	if err := s.fragments.Configure(job.URLPrefix); err != nil {
		return fmt.Errorf("building fragments: %w", err)
	}
	s.logger.Debug("fragments configured", "urlPrefix", s.fragments.URLPrefix, "current", s.fragments.Current)

	argv := BuildArgs(job)
	return s.publisher.Publish(ctx, PublishRequest{
		Writer:      s.writer,
		Description: Description,
		Settings: WriterSettings{
			Fragments: s.fragments,
			CodeStyle: job.CodeStyle,
			Logger:    s.logger,
		},
		Argv: argv,
	})
}
