// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/logger"
)

// Pipeline moves secrets from a [SecretSource] onto a set of clipboard
// targets.
type Pipeline struct {
	source  SecretSource
	targets []Target
	logger  *logger.Logger

	// delayUnit scales the profile's clip_clear_time.
	delayUnit time.Duration
}

// NewPipeline returns a pipeline writing to targets in order.
func NewPipeline(source SecretSource, targets []Target, log *logger.Logger) *Pipeline {
	return &Pipeline{
		source:    source,
		targets:   targets,
		logger:    log,
		delayUnit: time.Second,
	}
}

// Targets returns the names of the pipeline's targets.
func (p *Pipeline) Targets() []string {
	names := make([]string, len(p.targets))
	for i, t := range p.targets {
		names[i] = t.Name()
	}
	return names
}

// Load decrypts name and writes it to every target. Write failures are
// collected as [*WriteError] values and joined. When any target fails, every
// target is cleared again so that the secret is not left behind on the ones
// that succeeded.
func (p *Pipeline) Load(ctx context.Context, profile config.Profile, name string) error {
	secret, err := p.source.Get(ctx, profile, name)
	if err != nil {
		return err
	}

	if err = p.writeAll(ctx, secret); err != nil {
		if clearErr := p.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			p.logger.Err(clearErr).Msg("failed to clear clipboard after partial load")
		}
		return err
	}

	p.logger.Debug().Str("name", name).Strs("targets", p.Targets()).Msg("clipboard loaded")
	return nil
}

// Clear writes the empty string to every target.
func (p *Pipeline) Clear(ctx context.Context) error {
	if err := p.writeAll(ctx, nil); err != nil {
		return err
	}
	p.logger.Debug().Strs("targets", p.Targets()).Msg("clipboard cleared")
	return nil
}

// LoadAndExpire loads name and, when the profile's clear delay is positive,
// blocks for that delay and clears every target. A delay of 0 leaves the
// secret in place. Cancelling ctx while waiting clears immediately.
func (p *Pipeline) LoadAndExpire(ctx context.Context, profile config.Profile, name string) error {
	if err := p.Load(ctx, profile, name); err != nil {
		return err
	}

	delay := p.ClearDelay(profile)
	if delay <= 0 {
		return nil
	}

	p.logger.Info().Msgf("Clipboard loaded. Destroying in %d second(s)...", profile.ClipClearDelaySeconds)

	job := NewExpiryJob(p, p.logger)
	job.Start(ctx, delay)
	return job.Wait()
}

// ClearDelay returns how long a loaded secret stays on the targets.
func (p *Pipeline) ClearDelay(profile config.Profile) time.Duration {
	return time.Duration(profile.ClipClearDelaySeconds) * p.delayUnit
}

func (p *Pipeline) writeAll(ctx context.Context, data []byte) error {
	var errs []error
	for _, t := range p.targets {
		if err := t.Write(ctx, data); err != nil {
			errs = append(errs, &WriteError{Target: t.Name(), Err: err})
		}
	}
	return errors.Join(errs...)
}
