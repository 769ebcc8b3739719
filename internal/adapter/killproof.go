// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/utils"
	"github.com/MKhiriev/kp-refresher/models"
	"golang.org/x/sync/errgroup"
)

const (
	kpClearPath   = "/api/clear/{id}"
	kpRefreshPath = "/api/kp/{id}/refresh"
	kpAccountPath = "/api/kp/{id}"

	defaultLinkedConcurrency = 4
)

// kpNameAliases maps KillProof.me boss names whose normalised form differs
// from the GW2 event id.
var kpNameAliases = map[string]string{
	"matthias_gabrel": "matthias",
	"sabir":           "cardinal_sabir",
	"adina":           "cardinal_adina",
	"statues":         "statues_of_grenth",
}

type kpAccount struct {
	ID     string `json:"kpid"`
	Linked []struct {
		ID string `json:"kpid"`
	} `json:"linked"`
}

type killProofAdapter struct {
	client      *utils.HTTPClient
	concurrency int

	logger *logger.Logger
}

// NewKillProofAdapter constructs the HTTP/REST implementation of
// [ProofAdapter] talking to adapterCfg.KPAddress. Linked account refreshes
// run with at most adapterCfg.LinkedConcurrency requests in flight.
func NewKillProofAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ProofAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.KPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter killproof address: %w", err)
	}

	concurrency := adapterCfg.LinkedConcurrency
	if concurrency <= 0 {
		concurrency = defaultLinkedConcurrency
	}

	return &killProofAdapter{
		client:      client,
		concurrency: concurrency,
		logger:      logger.WithStr("adapter", "killproof"),
	}, nil
}

// FetchRecordedSet implements [ProofAdapter].
//
// The clear endpoint groups bosses by wing title, either as a list of
// single-entry objects ({"Wing 1":[{"Vale Guardian":true}]}) or as a plain
// object ({"Wing 1":{"Vale Guardian":true}}). Both shapes are accepted.
func (k *killProofAdapter) FetchRecordedSet(ctx context.Context, proofID string) (models.ProofRecordSet, error) {
	resp, err := k.client.R().
		SetContext(ctx).
		SetPathParam("id", proofID).
		SetQueryParam("lang", "en").
		Get(kpClearPath)
	if err != nil {
		return nil, mapTransportError("killproof clear request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("killproof clear: %w", err)
	}

	var wings map[string]json.RawMessage
	if err = json.Unmarshal(resp.Body(), &wings); err != nil {
		return nil, fmt.Errorf("killproof clear decode: %w: %w", ErrBadResponse, err)
	}

	set := make(models.ProofRecordSet)
	for wing, raw := range wings {
		bosses, err := decodeWing(raw)
		if err != nil {
			return nil, fmt.Errorf("killproof clear decode wing %q: %w: %w", wing, ErrBadResponse, err)
		}
		for name, recorded := range bosses {
			id := NormalizeBossName(name)
			if id == "" {
				continue
			}
			// a boss listed twice counts as recorded if any entry says so
			set[id] = models.ProofRecord{ID: id, Recorded: recorded || set.IsRecorded(id)}
		}
	}

	k.logger.Debug().Str("kpid", proofID).Int("records", len(set)).Msg("fetched recorded set")

	return set, nil
}

func decodeWing(raw json.RawMessage) (map[string]bool, error) {
	var list []map[string]bool
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make(map[string]bool)
		for _, entry := range list {
			for name, recorded := range entry {
				out[name] = out[name] || recorded
			}
		}
		return out, nil
	}

	var plain map[string]bool
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}

// NormalizeBossName maps a KillProof.me boss name to the GW2 event id space:
// lower case, apostrophes dropped, any other run of non alphanumerics
// collapsed into "_".
func NormalizeBossName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	id := b.String()
	if alias, ok := kpNameAliases[id]; ok {
		return alias
	}
	return id
}

// TriggerRefresh implements [ProofAdapter].
func (k *killProofAdapter) TriggerRefresh(ctx context.Context, proofID string) (models.RefreshOutcome, error) {
	resp, err := k.client.R().
		SetContext(ctx).
		SetPathParam("id", proofID).
		Get(kpRefreshPath)
	if err != nil {
		return models.Failure, mapTransportError("killproof refresh request", err)
	}

	log := k.logger.Debug().Str("kpid", proofID).Int("status", resp.StatusCode())

	switch code := resp.StatusCode(); {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		log.Msg("refresh accepted")
		return models.Success, nil
	case code == http.StatusForbidden,
		code == http.StatusBadGateway,
		code == http.StatusServiceUnavailable,
		code == http.StatusGatewayTimeout:
		// 403 is the refresh cooldown
		log.Msg("refresh temporarily unavailable")
		return models.TemporarilyUnavailable, nil
	case code == http.StatusUnauthorized,
		code == http.StatusNotFound,
		code == http.StatusTooManyRequests:
		log.Msg("refresh rejected")
		return models.Failure, fmt.Errorf("killproof refresh: %w", mapHTTPError(resp))
	default:
		log.Str("body", strings.TrimSpace(string(resp.Body()))).Msg("refresh failed")
		return models.Failure, nil
	}
}

// ListLinkedAccounts implements [ProofAdapter].
func (k *killProofAdapter) ListLinkedAccounts(ctx context.Context, proofID string) ([]models.LinkedAccount, error) {
	resp, err := k.client.R().
		SetContext(ctx).
		SetPathParam("id", proofID).
		SetQueryParam("lang", "en").
		Get(kpAccountPath)
	if err != nil {
		return nil, mapTransportError("killproof account request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("killproof account: %w", err)
	}

	var account kpAccount
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return nil, fmt.Errorf("killproof account decode: %w: %w", ErrBadResponse, err)
	}

	seen := make(map[string]struct{}, len(account.Linked))
	linked := make([]models.LinkedAccount, 0, len(account.Linked))
	for _, l := range account.Linked {
		id := strings.TrimSpace(l.ID)
		if id == "" || strings.EqualFold(id, proofID) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		linked = append(linked, models.LinkedAccount{ID: id})
	}

	k.logger.Debug().Str("kpid", proofID).Int("linked", len(linked)).Msg("listed linked accounts")

	return linked, nil
}

// RefreshAll implements [ProofAdapter]. Per-account lines keep the input
// order regardless of completion order.
func (k *killProofAdapter) RefreshAll(ctx context.Context, accounts []models.LinkedAccount) string {
	if len(accounts) == 0 {
		return "No linked account found"
	}

	lines := make([]string, len(accounts))
	outcomes := make([]bool, len(accounts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(k.concurrency)
	for i, account := range accounts {
		eg.Go(func() error {
			outcome, err := k.TriggerRefresh(egCtx, account.ID)
			outcomes[i] = err == nil && outcome == models.Success
			lines[i] = fmt.Sprintf("%s: %s", account.ID, describeOutcome(outcome, err))
			// one account failing must not cancel the others
			return nil
		})
	}
	_ = eg.Wait()

	refreshed := 0
	for _, ok := range outcomes {
		if ok {
			refreshed++
		}
	}

	k.logger.Info().
		Int("accounts", len(accounts)).
		Int("refreshed", refreshed).
		Msg("linked accounts refreshed")

	return fmt.Sprintf("%d refreshed, %d failed\n%s", refreshed, len(accounts)-refreshed, strings.Join(lines, "\n"))
}

func describeOutcome(outcome models.RefreshOutcome, err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "account not found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrRateLimited):
		return "rate limited, try later"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case err != nil:
		return "unreachable"
	case outcome == models.Success:
		return "refreshed"
	case outcome == models.TemporarilyUnavailable:
		return "not available, try later"
	default:
		return "refresh failed"
	}
}
