package http

import (
	"context"
	"time"

	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/service"
	"github.com/MKhiriev/kp-refresher/models"
)

type mockRefreshService struct {
	refreshFn         func(ctx context.Context) models.RefreshResult
	fullStatusFn      func(ctx context.Context) ([]models.DeltaEntry, error)
	recentDeltaFn     func(ctx context.Context) ([]models.DeltaEntry, error)
	accomplishmentsFn func(ctx context.Context) (string, error)
	refreshLinkedFn   func(ctx context.Context) string
	linkedCountFn     func(ctx context.Context) int
	cancelScheduleFn  func() bool
	scheduleStatusFn  func() models.ScheduleStatus
	mapChangeFn       func(ctx context.Context, from, to int) bool
}

func (m *mockRefreshService) Refresh(ctx context.Context) models.RefreshResult {
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return models.RefreshResult{}
}

func (m *mockRefreshService) ComputeFullStatus(ctx context.Context) ([]models.DeltaEntry, error) {
	if m.fullStatusFn != nil {
		return m.fullStatusFn(ctx)
	}
	return nil, nil
}

func (m *mockRefreshService) ComputeRecentDelta(ctx context.Context) ([]models.DeltaEntry, error) {
	if m.recentDeltaFn != nil {
		return m.recentDeltaFn(ctx)
	}
	return nil, nil
}

func (m *mockRefreshService) ListCurrentAccomplishments(ctx context.Context) (string, error) {
	if m.accomplishmentsFn != nil {
		return m.accomplishmentsFn(ctx)
	}
	return "", nil
}

func (m *mockRefreshService) RefreshLinkedAccounts(ctx context.Context) string {
	if m.refreshLinkedFn != nil {
		return m.refreshLinkedFn(ctx)
	}
	return ""
}

func (m *mockRefreshService) LinkedAccountCount(ctx context.Context) int {
	if m.linkedCountFn != nil {
		return m.linkedCountFn(ctx)
	}
	return 0
}

func (m *mockRefreshService) IsRefreshScheduled() bool {
	return m.ScheduleStatus().Scheduled
}

func (m *mockRefreshService) NextScheduledIn() time.Duration {
	return time.Duration(m.ScheduleStatus().RemainingSeconds) * time.Second
}

func (m *mockRefreshService) CancelSchedule() bool {
	if m.cancelScheduleFn != nil {
		return m.cancelScheduleFn()
	}
	return false
}

func (m *mockRefreshService) ScheduleStatus() models.ScheduleStatus {
	if m.scheduleStatusFn != nil {
		return m.scheduleStatusFn()
	}
	return models.ScheduleStatus{Message: msgNoSchedule}
}

func (m *mockRefreshService) HandleMapChange(ctx context.Context, from, to int) bool {
	if m.mapChangeFn != nil {
		return m.mapChangeFn(ctx, from, to)
	}
	return false
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// newTestHandler returns a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func newServiceHandler(refresh *mockRefreshService) *Handler {
	return &Handler{
		services: &service.Services{
			RefreshService: refresh,
			AppInfoService: &mockAppInfoService{version: "1.2.3"},
			DiffService:    service.NewDiffService(),
		},
		settings: config.NewMutableSettings(config.Settings{RetryDelayMinutes: 5, MapChangeDelayMinutes: 5}),
		logger:   logger.Nop(),
	}
}
