// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"bytes"
	"context"
	"fmt"

	atotto "github.com/atotto/clipboard"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/process"
)

// X selections written by the xclip backend.
const (
	SelectionPrimary   = "primary"
	SelectionSecondary = "secondary"
	SelectionClipboard = "clipboard"
)

// Selections lists the X selections in write order.
var Selections = []string{SelectionPrimary, SelectionSecondary, SelectionClipboard}

// xclipTarget writes one X selection through `<xclip> -selection <s> -i`.
type xclipTarget struct {
	runner    process.Runner
	tool      string
	selection string
}

// NewXclipTarget returns a [Target] for one X selection.
func NewXclipTarget(runner process.Runner, tool, selection string) Target {
	return &xclipTarget{runner: runner, tool: tool, selection: selection}
}

func (t *xclipTarget) Name() string {
	return t.selection
}

// Write feeds data to xclip. xclip forks a child that keeps serving the
// selection with the inherited output pipes, so the output is discarded
// rather than captured.
func (t *xclipTarget) Write(ctx context.Context, data []byte) error {
	res, err := t.runner.Run(ctx, process.Command{
		Name:          t.tool,
		Args:          []string{"-selection", t.selection, "-i"},
		Stdin:         bytes.NewReader(data),
		DiscardOutput: true,
	})
	if err != nil {
		return err
	}
	return res.Err(t.tool)
}

// systemTarget writes the platform clipboard.
type systemTarget struct {
	write func(string) error
}

// NewSystemTarget returns a [Target] backed by the platform clipboard.
func NewSystemTarget() Target {
	return &systemTarget{write: atotto.WriteAll}
}

func (t *systemTarget) Name() string {
	return SelectionClipboard
}

func (t *systemTarget) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.write(string(data))
}

// unsupportedTarget stands in for the platform clipboard when no clipboard
// utility is installed. Every write fails with err.
type unsupportedTarget struct {
	err error
}

func (t *unsupportedTarget) Name() string {
	return SelectionClipboard
}

func (t *unsupportedTarget) Write(context.Context, []byte) error {
	return t.err
}

// TargetsFor returns the targets selected by the profile's clipboard
// backend. Resolving the targets never fails on a host without a clipboard;
// the missing utility is reported when a target is written.
func TargetsFor(profile config.Profile, runner process.Runner) ([]Target, error) {
	switch profile.ClipBackend {
	case config.ClipBackendXclip, "":
		targets := make([]Target, len(Selections))
		for i, selection := range Selections {
			targets[i] = NewXclipTarget(runner, profile.ClipboardToolPath, selection)
		}
		return targets, nil
	case config.ClipBackendSystem:
		if atotto.Unsupported {
			return []Target{&unsupportedTarget{err: ErrNoSystemClipboard}}, nil
		}
		return []Target{NewSystemTarget()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidClipBackend, profile.ClipBackend)
	}
}
