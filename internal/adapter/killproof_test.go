// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKillProofAdapter(t *testing.T, serverURL string, concurrency int) *killProofAdapter {
	t.Helper()
	a, err := NewKillProofAdapter(config.Adapter{
		KPAddress:         serverURL,
		RequestTimeout:    2 * time.Second,
		LinkedConcurrency: concurrency,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*killProofAdapter)
}

func TestNewKillProofAdapter_DefaultConcurrency(t *testing.T) {
	a := newTestKillProofAdapter(t, "https://killproof.me", 0)
	assert.Equal(t, defaultLinkedConcurrency, a.concurrency)
}

func TestNormalizeBossName(t *testing.T) {
	tests := map[string]string{
		"Vale Guardian":        "vale_guardian",
		"  Qadim the Peerless ": "qadim_the_peerless",
		"Matthias Gabrel":      "matthias",
		"Cardinal Sabir":       "cardinal_sabir",
		"Sabir":                "cardinal_sabir",
		"Soulless Horror":      "soulless_horror",
		"Keep-Construct":       "keep_construct",
		"Deimos":               "deimos",
		"Ura's Camp":           "uras_camp",
		"---":                  "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, NormalizeBossName(in))
		})
	}
}

// ── FetchRecordedSet ────────────────────────────────────────────────────────

func TestFetchRecordedSet_ListShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clear/AbCd", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		_, _ = w.Write([]byte(`{
			"Wing 1":[{"Vale Guardian":true},{"Gorseval":false},{"Sabetha":true}],
			"Wing 4":[{"Matthias Gabrel":false}]
		}`))
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 1)
	set, err := a.FetchRecordedSet(context.Background(), "AbCd")

	require.NoError(t, err)
	assert.Len(t, set, 4)
	assert.True(t, set.IsRecorded("vale_guardian"))
	assert.True(t, set.IsRecorded("sabetha"))
	assert.False(t, set.IsRecorded("gorseval"))
	assert.False(t, set.IsRecorded("matthias"))
	assert.Equal(t, models.ProofRecord{ID: "gorseval", Recorded: false}, set["gorseval"])
}

func TestFetchRecordedSet_ObjectShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Wing 7":{"Cardinal Adina":true,"Qadim the Peerless":false}}`))
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 1)
	set, err := a.FetchRecordedSet(context.Background(), "id")

	require.NoError(t, err)
	assert.True(t, set.IsRecorded("cardinal_adina"))
	assert.False(t, set.IsRecorded("qadim_the_peerless"))
}

func TestFetchRecordedSet_DuplicateNameKeepsRecorded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Wing 1":[{"Sabetha":true}],"Wing 1 CM":[{"Sabetha":false}]}`))
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 1)
	set, err := a.FetchRecordedSet(context.Background(), "id")

	require.NoError(t, err)
	assert.True(t, set.IsRecorded("sabetha"))
}

func TestFetchRecordedSet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: "kpid not found", wantErr: ErrNotFound},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrUnavailable},
		{name: "garbage", status: http.StatusOK, body: "<html>", wantErr: ErrBadResponse},
		{name: "wrong wing shape", status: http.StatusOK, body: `{"Wing 1":42}`, wantErr: ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestKillProofAdapter(t, srv.URL, 1)
			_, err := a.FetchRecordedSet(context.Background(), "id")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── TriggerRefresh ──────────────────────────────────────────────────────────

func TestTriggerRefresh(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantOutcome models.RefreshOutcome
		wantErr     error
	}{
		{name: "ok", status: http.StatusOK, wantOutcome: models.Success},
		{name: "cooldown", status: http.StatusForbidden, wantOutcome: models.TemporarilyUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantOutcome: models.TemporarilyUnavailable},
		{name: "service unavailable", status: http.StatusServiceUnavailable, wantOutcome: models.TemporarilyUnavailable},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, wantOutcome: models.TemporarilyUnavailable},
		{name: "internal error", status: http.StatusInternalServerError, wantOutcome: models.Failure},
		{name: "bad request", status: http.StatusBadRequest, wantOutcome: models.Failure},
		{name: "unauthorized", status: http.StatusUnauthorized, wantOutcome: models.Failure, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantOutcome: models.Failure, wantErr: ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, wantOutcome: models.Failure, wantErr: ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/kp/Player.1234/refresh", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestKillProofAdapter(t, srv.URL, 1)
			outcome, err := a.TriggerRefresh(context.Background(), "Player.1234")

			assert.Equal(t, tt.wantOutcome, outcome)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTriggerRefresh_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestKillProofAdapter(t, url, 1)
	outcome, err := a.TriggerRefresh(context.Background(), "id")

	assert.Equal(t, models.Failure, outcome)
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── ListLinkedAccounts ──────────────────────────────────────────────────────

func TestListLinkedAccounts_Deduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/kp/main", r.URL.Path)
		_, _ = w.Write([]byte(`{"kpid":"main","linked":[
			{"kpid":"alt1"},{"kpid":"alt2"},{"kpid":"alt1"},{"kpid":" "},{"kpid":"main"}]}`))
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 1)
	linked, err := a.ListLinkedAccounts(context.Background(), "main")

	require.NoError(t, err)
	assert.Equal(t, []models.LinkedAccount{{ID: "alt1"}, {ID: "alt2"}}, linked)
}

func TestListLinkedAccounts_NoneIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kpid":"main"}`))
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 1)
	linked, err := a.ListLinkedAccounts(context.Background(), "main")

	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestListLinkedAccounts_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 1)
	_, err := a.ListLinkedAccounts(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── RefreshAll ──────────────────────────────────────────────────────────────

func TestRefreshAll_NoAccountsMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 2)
	msg := a.RefreshAll(context.Background(), nil)

	assert.Equal(t, "No linked account found", msg)
	assert.Zero(t, calls.Load())
}

func TestRefreshAll_AggregatesInInputOrder(t *testing.T) {
	statuses := map[string]int{
		"/api/kp/alt1/refresh": http.StatusOK,
		"/api/kp/alt2/refresh": http.StatusForbidden,
		"/api/kp/alt3/refresh": http.StatusNotFound,
		"/api/kp/alt4/refresh": http.StatusOK,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statuses[r.URL.Path])
	}))
	defer srv.Close()

	a := newTestKillProofAdapter(t, srv.URL, 2)
	msg := a.RefreshAll(context.Background(), []models.LinkedAccount{
		{ID: "alt1"}, {ID: "alt2"}, {ID: "alt3"}, {ID: "alt4"},
	})

	lines := strings.Split(msg, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "2 refreshed, 2 failed", lines[0])
	assert.Equal(t, "alt1: refreshed", lines[1])
	assert.Equal(t, "alt2: not available, try later", lines[2])
	assert.Equal(t, "alt3: account not found", lines[3])
	assert.Equal(t, "alt4: refreshed", lines[4])
}

func TestRefreshAll_RespectsConcurrencyLimit(t *testing.T) {
	var (
		mu       sync.Mutex
		inFlight int
		peak     int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		peak = max(peak, inFlight)
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	accounts := make([]models.LinkedAccount, 6)
	for i := range accounts {
		accounts[i] = models.LinkedAccount{ID: string(rune('a' + i))}
	}

	a := newTestKillProofAdapter(t, srv.URL, 2)
	msg := a.RefreshAll(context.Background(), accounts)

	assert.True(t, strings.HasPrefix(msg, "6 refreshed, 0 failed"))
	assert.LessOrEqual(t, peak, 2)
}
