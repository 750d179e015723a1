package service

import (
	"github.com/MKhiriev/passout/internal/clipboard"
	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/crypto"
	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/internal/process"
	"github.com/MKhiriev/passout/internal/store"
)

type Services struct {
	Credentials CredentialService
	Clipboard   ClipboardService
}

// NewServices wires the gpg gateway, the vault under cfg.Settings.Home and
// the clipboard backend selected by cfg.Profile. Every external tool is
// launched through runner.
func NewServices(cfg *config.Config, runner process.Runner, logger *logger.Logger) (*Services, error) {
	gpg := crypto.NewGPG(runner, logger)
	vault := store.NewVault(cfg.Settings.Home, gpg, logger)

	targets, err := clipboard.TargetsFor(cfg.Profile, runner)
	if err != nil {
		return nil, err
	}
	pipeline := clipboard.NewPipeline(vault, targets, logger)

	return &Services{
		Credentials: NewCredentialService(vault, cfg.Profile, logger),
		Clipboard:   NewClipboardService(pipeline, cfg.Profile, logger),
	}, nil
}
