package distance

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// loggingTransport logs each outgoing request's status and latency.
// Only the path is logged: the query string carries the API key.
type loggingTransport struct {
	next   http.RoundTripper
	logger *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	dur := time.Since(start).Milliseconds()
	if err != nil {
		t.logger.Debug("http request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int64("dur_ms", dur),
		)
		return nil, err
	}

	t.logger.Debug("http request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Int64("dur_ms", dur),
	)
	return resp, nil
}
