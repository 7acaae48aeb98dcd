package healthprobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"build-promotion-service/internal/config"
)

func newTestClient(url string) *client {
	return NewClient(&config.HealthConfig{URL: url, Timeout: time.Second}).(*client)
}

func TestProbe_Reachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"uptime_secs": 512, "version": "2024-02-01"}`))
	}))
	defer srv.Close()

	snap := newTestClient(srv.URL).Probe(context.Background())
	assert.True(t, snap.Reachable)
	assert.EqualValues(t, 512, snap.UptimeSecs)
}

func TestProbe_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	snap := newTestClient(srv.URL).Probe(context.Background())
	assert.False(t, snap.Reachable)
}

func TestProbe_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	snap := newTestClient(srv.URL).Probe(context.Background())
	assert.False(t, snap.Reachable)
}

func TestProbe_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	snap := newTestClient(srv.URL).Probe(context.Background())
	assert.False(t, snap.Reachable)
}

func TestProbe_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(&config.HealthConfig{URL: srv.URL, Timeout: 20 * time.Millisecond})
	snap := c.Probe(context.Background())
	assert.False(t, snap.Reachable)
}
