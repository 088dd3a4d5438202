package standard

import (
	"net/http"
	"time"

	"freelance-radar-api/core/interfaces"
)

// LoggingRoundTripper logs the method, host, status and latency of each request
type LoggingRoundTripper struct {
	next   http.RoundTripper
	logger interfaces.Logger
}

// NewLoggingRoundTripper wraps next; a nil next uses http.DefaultTransport
func NewLoggingRoundTripper(next http.RoundTripper, logger interfaces.Logger) *LoggingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingRoundTripper{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := map[string]interface{}{
		"method":      req.Method,
		"host":        req.URL.Host,
		"path":        req.URL.Path,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		t.logger.Debug("Outgoing request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	t.logger.Debug("Outgoing request", fields)
	return resp, nil
}
