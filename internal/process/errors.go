package process

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolNotFound is returned when an external tool cannot be located or
	// launched.
	ErrToolNotFound = errors.New("external tool not found")

	// ErrToolFailed is the kind matched by every [*ToolFailedError].
	ErrToolFailed = errors.New("external tool returned non-zero")
)

// ToolFailedError reports a tool that launched but exited with a non-zero
// status. The captured output is kept for diagnostics.
type ToolFailedError struct {
	Tool     string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ToolFailedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s returned non-zero (exit status %d)", e.Tool, e.ExitCode)
	if out := strings.TrimSpace(e.Stdout); out != "" {
		fmt.Fprintf(&b, "\nSTDOUT: %s", out)
	}
	if out := strings.TrimSpace(e.Stderr); out != "" {
		fmt.Fprintf(&b, "\nSTDERR: %s", out)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrToolFailed) hold for any *ToolFailedError.
func (e *ToolFailedError) Is(target error) bool {
	return target == ErrToolFailed
}

// Err returns a *ToolFailedError for a non-zero exit and nil otherwise.
func (r Result) Err(tool string) error {
	if r.ExitCode == 0 {
		return nil
	}
	return &ToolFailedError{
		Tool:     tool,
		ExitCode: r.ExitCode,
		Stdout:   string(r.Stdout),
		Stderr:   string(r.Stderr),
	}
}
