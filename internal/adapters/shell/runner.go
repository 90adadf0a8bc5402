// Package shell provides the process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Output runs name with args in dir and returns its standard output.
// Standard error is discarded. A non-zero exit is reported with its exit code.
func (r *Runner) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binary is provisioned and verified by us
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// Leaving Stderr nil connects it to the null device.
	cmd.Stderr = nil

	r.logger.Info("running " + name + " " + strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		cmdErr := zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", name)
		return nil, zerr.With(cmdErr, "exit_code", exitCode)
	}

	return stdout.Bytes(), nil
}
