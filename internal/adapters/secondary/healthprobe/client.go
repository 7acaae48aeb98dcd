package healthprobe

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"build-promotion-service/internal/config"
	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

type client struct {
	url    string
	client *http.Client
}

// NewClient creates an HTTP health prober for the managed service.
func NewClient(cfg *config.HealthConfig) ports.HealthClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	return &client{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
	}
}

type healthResponse struct {
	UptimeSecs int64 `json:"uptime_secs"`
}

// Probe takes one health snapshot. Transport errors, timeouts, non-2xx
// statuses and unparseable bodies all collapse to an unreachable snapshot;
// the caller never distinguishes failure causes.
func (c *client) Probe(ctx context.Context) domain.HealthSnapshot {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.HealthSnapshot{}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.HealthSnapshot{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.HealthSnapshot{}
	}

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.HealthSnapshot{}
	}

	return domain.HealthSnapshot{Reachable: true, UptimeSecs: body.UptimeSecs}
}
