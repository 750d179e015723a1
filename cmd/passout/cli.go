package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/passout/internal/app"
	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/grouper"
	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/internal/process"
	"github.com/MKhiriev/passout/internal/tui"
	"github.com/MKhiriev/passout/models"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const appRole = "passout"

// cli holds the process environment the commands run against.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags     *config.Flags
	buildInfo models.AppBuildInfo

	newRunner func(log *logger.Logger) process.Runner
	browse    func(root *grouper.Node, sep string) (string, error)
}

func newCLI() *cli {
	return &cli{
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		newRunner: process.NewExecRunner,
		browse: func(root *grouper.Node, sep string) (string, error) {
			return tui.Browse(root, sep, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
		},
	}
}

// newLogger returns a console logger when diagnostics go to a terminal and a
// JSON logger otherwise, so that redirected stderr stays machine-readable.
func (c *cli) newLogger(level string) (*logger.Logger, error) {
	if f, ok := c.errOut.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewCLILogger(appRole, level, f)
	}
	return logger.NewLogger(appRole, level, c.errOut)
}

// readSecret reads the secret to store. On a terminal the input is hidden;
// otherwise the first line of input is used. An empty answer is refused with
// [app.ErrEmptySecret].
func (c *cli) readSecret() ([]byte, error) {
	secret, err := c.readLine()
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, app.ErrEmptySecret
	}
	return secret, nil
}

func (c *cli) readLine() ([]byte, error) {
	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(c.errOut, "Password: ")
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.errOut)
		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}
		return secret, nil
	}

	line, err := bufio.NewReader(c.in).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
