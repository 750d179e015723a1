package service

import (
	"context"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/logger"
)

// Clipboard is the subset of the clipboard pipeline used by
// [ClipboardService].
type Clipboard interface {
	LoadAndExpire(ctx context.Context, profile config.Profile, name string) error
	Clear(ctx context.Context) error
}

type clipboardService struct {
	pipeline Clipboard
	profile  config.Profile

	logger *logger.Logger
}

// NewClipboardService returns a [ClipboardService] driving pipeline with
// profile's clear delay.
func NewClipboardService(pipeline Clipboard, profile config.Profile, logger *logger.Logger) ClipboardService {
	return &clipboardService{
		pipeline: pipeline,
		profile:  profile,
		logger:   logger,
	}
}

func (s *clipboardService) Clip(ctx context.Context, name string) error {
	if err := s.pipeline.LoadAndExpire(ctx, s.profile, name); err != nil {
		return err
	}
	s.logger.Debug().Str("name", name).Msg("clip finished")
	return nil
}

func (s *clipboardService) Clear(ctx context.Context) error {
	return s.pipeline.Clear(ctx)
}
