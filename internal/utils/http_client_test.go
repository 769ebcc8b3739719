package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client, err := NewHTTPClient("https://api.guildwars2.com", time.Second)
	require.NoError(t, err)
	require.NotNil(t, client)
	require.NotNil(t, client.Client)

	assert.Equal(t, "https://api.guildwars2.com", client.BaseURL)
	assert.Equal(t, time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1, err := NewHTTPClient("https://a.example", 0)
	require.NoError(t, err)
	client2, err := NewHTTPClient("https://b.example", 0)
	require.NoError(t, err)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPClient("   ", time.Second)
	assert.Error(t, err)
}

func TestNewHTTPClient_SendsDefaultHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)

	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://killproof.me", want: "https://killproof.me"},
		{name: "trailing slash", raw: "https://killproof.me/", want: "https://killproof.me"},
		{name: "no scheme", raw: "killproof.me", want: "https://killproof.me"},
		{name: "http kept", raw: " http://127.0.0.1:8080 ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
