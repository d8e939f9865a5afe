package rst2htmldeco

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/alnah/go-rst2htmldeco/internal/process"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner implements CommandRunner using os/exec. Cancelling ctx kills
// the command's whole process group.
type ExecRunner struct{}

func (r ExecRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- renderer command is operator-configured
	process.Isolate(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Compile-time interface check.
var _ CommandRunner = ExecRunner{}
