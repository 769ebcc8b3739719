// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/kp-refresher/internal/adapter"
	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	msgRefreshed         = "KillProof.me refreshed!"
	msgUnavailable       = "KillProof.me is not available right now."
	msgNoNewClear        = "No new clear visible to the GW2 API yet."
	msgAutoRetryDisabled = "Auto-retry disabled!"
	msgRefreshFailed     = "KillProof.me refused the refresh."

	linkedFlightKey   = "linked"
	identityFlightKey = "identity"
)

type refreshService struct {
	game      adapter.GameAdapter
	proof     adapter.ProofAdapter
	differ    DiffService
	scheduler Scheduler
	settings  config.SettingsProvider

	apiKey         string
	configuredKPID string
	requestTimeout time.Duration

	group singleflight.Group

	mu           sync.RWMutex
	identity     string
	baseline     models.ProofRecordSet
	hasBaseline  bool
	linked       []models.LinkedAccount
	linkedLoaded bool

	logger *logger.Logger
}

// NewRefreshService wires the orchestrator. The GW2 key and KillProof.me id
// are read from app once; the refresh policy is read from settings on every
// call.
func NewRefreshService(
	adapters *adapter.Adapters,
	scheduler Scheduler,
	settings config.SettingsProvider,
	app config.App,
	adapterCfg config.Adapter,
	logger *logger.Logger,
) RefreshService {
	return &refreshService{
		game:           adapters.Game,
		proof:          adapters.Proof,
		differ:         NewDiffService(),
		scheduler:      scheduler,
		settings:       settings,
		apiKey:         strings.TrimSpace(app.GW2APIKey),
		configuredKPID: strings.TrimSpace(app.KPID),
		requestTimeout: adapterCfg.RequestTimeout,
		logger:         logger.WithStr("service", "refresh"),
	}
}

// Refresh implements RefreshService.
func (s *refreshService) Refresh(ctx context.Context) models.RefreshResult {
	return s.refresh(ctx, false)
}

// refresh runs one cycle. scheduled is true when the cycle was started by
// the scheduler rather than by the user.
func (s *refreshService) refresh(ctx context.Context, scheduled bool) models.RefreshResult {
	settings := s.settings.Settings()

	if settings.RefreshOnKill {
		ready, err := s.hasNewClear(ctx, settings.RefreshOnKillOnlyBoss)
		if err != nil {
			return s.conclude(settings, models.Failure, err, scheduled)
		}
		if !ready {
			s.logger.Debug().Bool("final_boss_only", settings.RefreshOnKillOnlyBoss).Msg("no new clear, refresh skipped")
			return s.conclude(settings, models.NoNewClear, nil, scheduled)
		}
	}

	kpid, err := s.resolveIdentity(ctx)
	if err != nil {
		return s.conclude(settings, models.Failure, err, scheduled)
	}

	outcome, err := s.proof.TriggerRefresh(ctx, kpid)
	if err == nil && outcome == models.Success {
		s.onSuccess(ctx, settings, kpid, scheduled)
	}

	return s.conclude(settings, outcome, err, scheduled)
}

// hasNewClear reports whether the game API shows a clear KillProof.me does
// not have yet.
func (s *refreshService) hasNewClear(ctx context.Context, finalBossOnly bool) (bool, error) {
	delta, err := s.ComputeFullStatus(ctx)
	if err != nil {
		return false, err
	}

	pending := OnlyGameAPI(delta)
	if finalBossOnly {
		return HasFinalBoss(pending), nil
	}
	return len(pending) > 0, nil
}

func (s *refreshService) onSuccess(ctx context.Context, settings config.Settings, kpid string, scheduled bool) {
	if s.scheduler.CancelIf(ReasonRetry) {
		s.logger.Debug().Msg("pending retry cancelled after successful refresh")
	}

	if scheduled && settings.BaselineOnRetry {
		proof, err := s.proof.FetchRecordedSet(ctx, kpid)
		if err == nil {
			s.storeBaseline(proof)
			return
		}
		s.logger.Warn().Err(err).Msg("re-fetching baseline after retry failed")
	}

	s.invalidateBaseline()
}

// conclude turns an outcome into a result, arming a retry for transient
// failures when auto-retry is on.
func (s *refreshService) conclude(settings config.Settings, outcome models.RefreshOutcome, err error, scheduled bool) models.RefreshResult {
	log := s.logger.Info().Bool("scheduled", scheduled).Stringer("outcome", outcome)
	if err != nil {
		log = log.Err(err).Stringer("kind", Classify(err))
	}

	if err == nil && outcome == models.Success {
		log.Msg("refresh succeeded")
		return models.RefreshResult{Outcome: models.Success, Message: msgRefreshed}
	}

	transient := (err == nil && outcome.IsTransient()) || Classify(err) == KindTransient
	if !transient {
		log.Msg("refresh failed")
		msg := msgRefreshFailed
		if err != nil {
			msg = UserMessage(err)
		}
		return models.RefreshResult{Outcome: models.Failure, Message: msg, Err: err}
	}

	if err != nil {
		// transport level trouble reads as "not available" to the caller
		outcome = models.TemporarilyUnavailable
	}

	msg := msgUnavailable
	switch {
	case outcome == models.NoNewClear:
		msg = msgNoNewClear
	case err != nil:
		msg = UserMessage(err)
	}

	if !settings.AutoRetry {
		log.Msg("refresh unavailable, auto-retry disabled")
		return models.RefreshResult{Outcome: outcome, Message: msg + " " + msgAutoRetryDisabled, Err: err}
	}

	delay := s.scheduler.Arm(settings.RetryDelay(), ReasonRetry, s.scheduledRefresh)
	if delay <= 0 {
		// scheduler already stopped, shutting down
		log.Msg("refresh unavailable, retry not armed")
		return models.RefreshResult{Outcome: outcome, Message: msg, Err: err}
	}
	log.Dur("retry_in", delay).Msg("refresh unavailable, retry armed")

	return models.RefreshResult{
		Outcome:        outcome,
		Message:        msg + " " + formatNextIn("retry", delay),
		Err:            err,
		RetryScheduled: true,
		RetryIn:        delay,
	}
}

// scheduledRefresh is the action armed on the scheduler.
func (s *refreshService) scheduledRefresh(ctx context.Context) {
	if s.requestTimeout > 0 {
		// identity, status and trigger requests run one after another
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 3*s.requestTimeout)
		defer cancel()
	}

	result := s.refresh(ctx, true)
	s.logger.Info().Stringer("outcome", result.Outcome).Str("message", result.Message).Msg("scheduled refresh done")
}

// resolveIdentity returns the configured KillProof.me id, or the GW2 account
// name when none is configured. The inferred name is cached.
func (s *refreshService) resolveIdentity(ctx context.Context) (string, error) {
	if s.configuredKPID != "" {
		return s.configuredKPID, nil
	}

	s.mu.RLock()
	identity := s.identity
	s.mu.RUnlock()
	if identity != "" {
		return identity, nil
	}

	if s.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	v, err, _ := s.group.Do(identityFlightKey, func() (any, error) {
		s.mu.RLock()
		cached := s.identity
		s.mu.RUnlock()
		if cached != "" {
			return cached, nil
		}

		name, err := s.game.AccountName(ctx, s.apiKey)
		if err != nil {
			return "", fmt.Errorf("resolve killproof identity: %w", err)
		}

		s.mu.Lock()
		s.identity = name
		s.mu.Unlock()

		s.logger.Debug().Str("kpid", name).Msg("identity inferred from GW2 account")
		return name, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ComputeFullStatus implements RefreshService.
func (s *refreshService) ComputeFullStatus(ctx context.Context) ([]models.DeltaEntry, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	kpid, err := s.resolveIdentity(ctx)
	if err != nil {
		return nil, err
	}

	var (
		records models.RecordSet
		proof   models.ProofRecordSet
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		records, err = s.game.FetchCurrentRecords(egCtx, s.apiKey)
		if err != nil {
			return fmt.Errorf("fetch game records: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		proof, err = s.proof.FetchRecordedSet(egCtx, kpid)
		if err != nil {
			return fmt.Errorf("fetch proof records: %w", err)
		}
		return nil
	})
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	s.storeBaseline(proof)

	return s.differ.ComputeDelta(records, proof), nil
}

// ComputeRecentDelta implements RefreshService.
func (s *refreshService) ComputeRecentDelta(ctx context.Context) ([]models.DeltaEntry, error) {
	proof, ok := s.cachedBaseline()
	if !ok {
		return s.ComputeFullStatus(ctx)
	}

	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	records, err := s.game.FetchCurrentRecords(ctx, s.apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetch game records: %w", err)
	}

	return s.differ.ComputeDelta(records, proof), nil
}

// ListCurrentAccomplishments implements RefreshService.
func (s *refreshService) ListCurrentAccomplishments(ctx context.Context) (string, error) {
	delta, err := s.ComputeFullStatus(ctx)
	if err != nil {
		return "", err
	}
	return FormatAccomplishments(delta), nil
}

func (s *refreshService) storeBaseline(proof models.ProofRecordSet) {
	snapshot := make(models.ProofRecordSet, len(proof))
	for id, r := range proof {
		snapshot[id] = r
	}

	s.mu.Lock()
	s.baseline = snapshot
	s.hasBaseline = true
	s.mu.Unlock()
}

func (s *refreshService) cachedBaseline() (models.ProofRecordSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseline, s.hasBaseline
}

func (s *refreshService) invalidateBaseline() {
	s.mu.Lock()
	s.baseline = nil
	s.hasBaseline = false
	s.mu.Unlock()
}
