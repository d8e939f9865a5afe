package rst2htmldeco

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/alnah/go-rst2htmldeco/internal/fileutil"
	"github.com/alnah/go-rst2htmldeco/internal/hints"
)

// DefaultCommand is the docutils front end invoked by default.
const DefaultCommand = "rst2html"

// outputPermissions is rw-r--r--: pages are meant to be served.
const outputPermissions = 0o644

// PublishRequest is one call into the rendering engine.
type PublishRequest struct {
	Writer      string         // registered writer name
	Description string         // human-readable purpose of the run
	Settings    WriterSettings // handed to the writer factory
	Argv        []string       // docutils options, then [SRCFILE [OUTFILE]]
}

// Publisher runs the rendering engine for a request.
type Publisher interface {
	Publish(ctx context.Context, req PublishRequest) error
}

// DocutilsPublisher renders with the docutils command line and applies the
// requested writer to its output.
type DocutilsPublisher struct {
	Command string
	Runner  CommandRunner
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer // renderer diagnostics (warnings) on success
	Logger  *slog.Logger
}

// NewDocutilsPublisher creates a publisher wired to the process's standard streams.
func NewDocutilsPublisher(command string) *DocutilsPublisher {
	if command == "" {
		command = DefaultCommand
	}
	return &DocutilsPublisher{
		Command: command,
		Runner:  ExecRunner{},
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Publish renders req.Argv's source with docutils, passes the HTML through
// the named writer and writes the page to the destination, or to Stdout when
// none is given.
func (p *DocutilsPublisher) Publish(ctx context.Context, req PublishRequest) error {
	factory, err := lookupWriter(req.Writer)
	if err != nil {
		return err
	}

	options, paths := splitArgv(req.Argv)
	if len(paths) > 2 {
		return fmt.Errorf("%w: %s", ErrTooManyPaths, strings.Join(paths, " "))
	}
	var src, dest string
	if len(paths) > 0 {
		src = paths[0]
	}
	if len(paths) > 1 {
		dest = paths[1]
	}

	writer, err := factory(req.Settings)
	if err != nil {
		return err
	}

	args := options
	var stdin io.Reader
	if src == "" || src == stdioPath {
		stdin = p.Stdin
	} else {
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("%w: %w", ErrReadSource, err)
		}
		if strings.HasPrefix(src, "-") {
			args = append(args, "--")
		}
		args = append(args, src)
	}

	p.logger().Debug("publishing", "writer", req.Writer, "description", req.Description,
		"command", p.Command, "args", args)

	stdout, stderr, err := p.Runner.Run(ctx, stdin, p.Command, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrRender, p.Command, ctxErr)
		}
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s%s", ErrRendererNotFound, p.Command, hints.ForRendererNotFound(p.Command))
		}
		return fmt.Errorf("%w: %s: %v\n%s", ErrRender, p.Command, err, strings.TrimSpace(string(stderr)))
	}

	// System messages below the halt level still reach the user.
	if len(stderr) > 0 && p.Stderr != nil {
		_, _ = p.Stderr.Write(stderr)
	}

	page, err := writer.Write(ctx, string(stdout))
	if err != nil {
		return fmt.Errorf("writer %s: %w", req.Writer, err)
	}

	if dest == "" || dest == stdioPath {
		if _, err := io.WriteString(p.Stdout, page); err != nil {
			return fmt.Errorf("%w: standard output: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFileAtomic(dest, []byte(page), outputPermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, dest, err)
	}
	p.logger().Debug("wrote page", "path", dest, "bytes", len(page))
	return nil
}

func (p *DocutilsPublisher) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}

// splitArgv separates options from positional paths. A lone "-" is a path
// (standard input or output); everything after "--" is a path.
func splitArgv(argv []string) (options, paths []string) {
	for i, arg := range argv {
		if arg == "--" {
			paths = append(paths, argv[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && arg != stdioPath {
			options = append(options, arg)
			continue
		}
		paths = append(paths, arg)
	}
	return options, paths
}

// Compile-time interface check.
var _ Publisher = (*DocutilsPublisher)(nil)
