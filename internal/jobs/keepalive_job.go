package jobs

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"aeromart/internal/logging"
)

const defaultKeepAliveInterval = 10 * time.Minute

// KeepAliveJob pings the service's own /api/ping endpoint so free-tier
// hosts do not put the instance to sleep between visits.
type KeepAliveJob struct {
	pingURL string
	client  *http.Client
}

func NewKeepAliveJob() *KeepAliveJob {
	pingURL := os.Getenv("PING_URL")
	if pingURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		pingURL = "http://127.0.0.1:" + port + "/api/ping"
	}

	return &KeepAliveJob{
		pingURL: pingURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// RunScheduled pings once per interval until the context is cancelled.
func (j *KeepAliveJob) RunScheduled(ctx context.Context, interval time.Duration) {
	logging.Info("Keep-alive job started",
		"ping_url", j.pingURL,
		"interval", interval.String(),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Keep-alive job stopped")
			return
		case <-ticker.C:
			j.ping(ctx)
		}
	}
}

func (j *KeepAliveJob) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.pingURL, nil)
	if err != nil {
		logging.Warn("Keep-alive ping request failed to build", "error", err.Error())
		return
	}

	resp, err := j.client.Do(req)
	if err != nil {
		logging.Warn("Keep-alive ping failed", "error", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Warn("Keep-alive ping returned unexpected status", "status_code", resp.StatusCode)
	}
}

// KeepAliveInterval reads KEEPALIVE_INTERVAL_MS, falling back to the
// ten minute default on absence or garbage.
func KeepAliveInterval() time.Duration {
	raw := os.Getenv("KEEPALIVE_INTERVAL_MS")
	if raw == "" {
		return defaultKeepAliveInterval
	}

	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		logging.Warn("Invalid KEEPALIVE_INTERVAL_MS, using default", "value", raw)
		return defaultKeepAliveInterval
	}
	return time.Duration(ms) * time.Millisecond
}
