// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRaidsBody = `[
 {"id":"forsaken_thicket","wings":[
  {"id":"spirit_vale","events":[
   {"id":"vale_guardian","type":"Boss"},
   {"id":"spirit_woods","type":"Checkpoint"},
   {"id":"gorseval","type":"Boss"},
   {"id":"sabetha","type":"Boss"}]},
  {"id":"salvation_pass","events":[
   {"id":"slothasor","type":"Boss"}]}]}
]`

func newTestGW2Adapter(t *testing.T, serverURL string) *gw2Adapter {
	t.Helper()
	a, err := NewGW2Adapter(config.Adapter{GW2Address: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*gw2Adapter)
}

func TestNewGW2Adapter_InvalidAddress(t *testing.T) {
	_, err := NewGW2Adapter(config.Adapter{GW2Address: ""}, logger.Nop())
	assert.Error(t, err)
}

// ── FetchCurrentRecords ─────────────────────────────────────────────────────

func TestFetchCurrentRecords_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case gw2RaidsPath:
			assert.Equal(t, "all", r.URL.Query().Get("ids"))
			_, _ = w.Write([]byte(testRaidsBody))
		case gw2AccountRaidsPath:
			assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`["gorseval","spirit_woods","slothasor"]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestGW2Adapter(t, srv.URL)
	set, err := a.FetchCurrentRecords(context.Background(), "secret-key")

	require.NoError(t, err)
	require.Equal(t, 4, set.Len())

	records := set.Records()
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"vale_guardian", "gorseval", "sabetha", "slothasor"}, ids)

	gorseval, ok := set.Get("gorseval")
	require.True(t, ok)
	assert.True(t, gorseval.Achieved)
	assert.Equal(t, "Gorseval", gorseval.Name)
	assert.Equal(t, "spirit_vale", gorseval.Wing)

	vg, ok := set.Get("vale_guardian")
	require.True(t, ok)
	assert.False(t, vg.Achieved)
	assert.Equal(t, "Vale Guardian", vg.Name)

	_, ok = set.Get("spirit_woods")
	assert.False(t, ok, "checkpoints are not accomplishment records")
}

func TestFetchCurrentRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"text":"invalid key"}`, wantErr: ErrUnauthorized},
		{name: "invalid access token as 400", status: http.StatusBadRequest, body: `{"text":"Invalid access token"}`, wantErr: ErrUnauthorized},
		{name: "missing permission", status: http.StatusForbidden, body: `{"text":"requires scope progression"}`, wantErr: ErrUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"text":"too many requests"}`, wantErr: ErrRateLimited},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: `{"text":"API not active"}`, wantErr: ErrUnavailable},
		{name: "teapot", status: http.StatusTeapot, body: "", wantErr: ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == gw2RaidsPath {
					_, _ = w.Write([]byte(testRaidsBody))
					return
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestGW2Adapter(t, srv.URL)
			_, err := a.FetchCurrentRecords(context.Background(), "key")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchCurrentRecords_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == gw2RaidsPath {
			_, _ = w.Write([]byte(`{not json`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestGW2Adapter(t, srv.URL)
	_, err := a.FetchCurrentRecords(context.Background(), "key")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestFetchCurrentRecords_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestGW2Adapter(t, url)
	_, err := a.FetchCurrentRecords(context.Background(), "key")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchCurrentRecords_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestGW2Adapter(t, srv.URL)
	_, err := a.FetchCurrentRecords(ctx, "key")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNetwork)
}

// ── AccountName ─────────────────────────────────────────────────────────────

func TestAccountName_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, gw2AccountPath, r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"abc","name":"Player.1234","world":2001}`))
	}))
	defer srv.Close()

	a := newTestGW2Adapter(t, srv.URL)
	name, err := a.AccountName(context.Background(), "key")

	require.NoError(t, err)
	assert.Equal(t, "Player.1234", name)
}

func TestAccountName_EmptyName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":""}`))
	}))
	defer srv.Close()

	a := newTestGW2Adapter(t, srv.URL)
	_, err := a.AccountName(context.Background(), "key")

	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestAccountName_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"text":"Invalid access token"}`))
	}))
	defer srv.Close()

	a := newTestGW2Adapter(t, srv.URL)
	_, err := a.AccountName(context.Background(), "key")

	assert.ErrorIs(t, err, ErrUnauthorized)
}
