// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package process is the narrow gateway through which passout launches
// external tools (gpg, xclip).
//
// Callers describe an invocation with [Command] and get back a [Result]
// holding the captured output and the exit code. A tool that cannot be
// launched at all is reported as [ErrToolNotFound]; a tool that ran and
// exited non-zero is not an error at this level, callers turn it into a
// [*ToolFailedError] with [Result.Err].
package process

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/runner_mock.go -package=mock

// Command describes one external process invocation.
type Command struct {
	// Name is the binary name (looked up in PATH) or path.
	Name string
	// Args are the arguments passed after Name.
	Args []string
	// Stdin is fed to the process. nil means no input.
	Stdin io.Reader
	// DiscardOutput sends stdout and stderr to the null device instead of
	// capturing them. Needed for tools that fork a background child which
	// inherits the output pipes (xclip), otherwise Run would wait for the
	// child as well.
	DiscardOutput bool
}

// Result is the outcome of a process that was launched and exited.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner launches external processes. One call is one process; Runner
// implementations never retry.
type Runner interface {
	// Run starts cmd, waits for it to exit and returns its captured output
	// and exit code. The error is non-nil only when the process could not
	// be launched or ctx was cancelled.
	Run(ctx context.Context, cmd Command) (Result, error)
}
