// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/kp-refresher/models"
)

// RefreshLinkedAccounts implements RefreshService.
func (s *refreshService) RefreshLinkedAccounts(ctx context.Context) string {
	accounts, err := s.linkedAccounts(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("listing linked accounts failed")
		return UserMessage(err)
	}

	if len(accounts) == 0 {
		return "No linked account found!"
	}

	summary := s.proof.RefreshAll(ctx, accounts)
	return fmt.Sprintf("%d linked %s found!\n%s", len(accounts), plural(len(accounts), "account"), summary)
}

// LinkedAccountCount implements RefreshService. Lookup failures count as
// zero and are not cached.
func (s *refreshService) LinkedAccountCount(ctx context.Context) int {
	accounts, err := s.linkedAccounts(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("counting linked accounts failed")
		return 0
	}
	return len(accounts)
}

// linkedAccounts returns the cached linked accounts, loading them on first
// use. Concurrent first loads share one request.
func (s *refreshService) linkedAccounts(ctx context.Context) ([]models.LinkedAccount, error) {
	s.mu.RLock()
	if s.linkedLoaded {
		linked := slices.Clone(s.linked)
		s.mu.RUnlock()
		return linked, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do(linkedFlightKey, func() (any, error) {
		s.mu.RLock()
		if s.linkedLoaded {
			linked := s.linked
			s.mu.RUnlock()
			return linked, nil
		}
		s.mu.RUnlock()

		kpid, err := s.resolveIdentity(ctx)
		if err != nil {
			return nil, err
		}

		linked, err := s.proof.ListLinkedAccounts(ctx, kpid)
		if err != nil {
			return nil, fmt.Errorf("list linked accounts: %w", err)
		}

		s.mu.Lock()
		s.linked = slices.Clone(linked)
		s.linkedLoaded = true
		s.mu.Unlock()

		return linked, nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(v.([]models.LinkedAccount)), nil
}
