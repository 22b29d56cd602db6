// Package shell runs external tools through the types.CommandRunner seam.
package shell

import (
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/types"
)

// execRunner implements types.CommandRunner using os/exec
type execRunner struct{}

// NewRunner returns a CommandRunner backed by os/exec.
func NewRunner() types.CommandRunner {
	return &execRunner{}
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) Run(name string, args ...string) error {
	logging.LogCommand(name, args)
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *execRunner) Output(name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)
	return exec.Command(name, args...).Output()
}

func (r *execRunner) OutputWithInput(name string, stdin string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Output()
}

// ExitCode extracts the process exit code from a Run/Output error.
// Returns -1 when err carries no exit code (e.g. the command never ran).
func ExitCode(err error) int {
	var coder interface{ ExitCode() int }
	if stderrors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}
