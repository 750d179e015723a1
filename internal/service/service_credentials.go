// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/grouper"
	"github.com/MKhiriev/passout/internal/logger"
)

type credentialService struct {
	store   CredentialStore
	profile config.Profile

	logger *logger.Logger
}

// NewCredentialService returns a [CredentialService] that encrypts and
// decrypts with profile.
func NewCredentialService(store CredentialStore, profile config.Profile, logger *logger.Logger) CredentialService {
	return &credentialService{
		store:   store,
		profile: profile,
		logger:  logger,
	}
}

func (s *credentialService) List(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *credentialService) Tree(ctx context.Context) (*grouper.Node, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return grouper.Group(names, grouper.DefaultSeparator).Sorted(), nil
}

func (s *credentialService) Add(ctx context.Context, name string, secret []byte) error {
	return s.store.Add(ctx, s.profile, name, secret)
}

func (s *credentialService) Remove(ctx context.Context, name string) error {
	return s.store.Remove(ctx, name)
}

func (s *credentialService) Reveal(ctx context.Context, name string) ([]byte, error) {
	return s.store.Get(ctx, s.profile, name)
}
