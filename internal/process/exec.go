package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/MKhiriev/passout/internal/logger"
)

// waitDelay bounds how long Run waits for output pipes after the process
// exits or is killed.
const waitDelay = 5 * time.Second

type execRunner struct {
	logger *logger.Logger
}

// NewExecRunner returns a [Runner] backed by os/exec.
func NewExecRunner(log *logger.Logger) Runner {
	return &execRunner{logger: log}
}

// Run implements Runner.
func (r *execRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdin = cmd.Stdin
	c.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	if !cmd.DiscardOutput {
		c.Stdout = &stdout
		c.Stderr = &stderr
	}

	r.logger.Debug().Str("tool", cmd.Name).Strs("args", cmd.Args).Msg("launching external tool")

	runErr := c.Run()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if runErr != nil {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return result, fmt.Errorf("%w: '%s': %v", ErrToolNotFound, cmd.Name, runErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	r.logger.Debug().Str("tool", cmd.Name).Int("exit_code", result.ExitCode).Msg("external tool exited")
	return result, nil
}
