// Command passout is a personal password vault built on gpg.
//
// Every password lives in its own gpg-encrypted file under the vault
// directory. Names may contain "__" to group passwords for display:
//
//	passout add work__mail
//	passout ls --tree
//	passout clip work__mail
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/passout/internal/app"
	"github.com/MKhiriev/passout/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(newCLI()).ExecuteContext(ctx)
	stop()

	if err == nil || errors.Is(err, tui.ErrUserQuit) {
		return
	}

	fmt.Fprintln(os.Stderr, app.Describe(err))
	os.Exit(1)
}
