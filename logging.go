package cinder

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ZerologHooks returns a ready-made hook set that emits every request,
// response, and SDK log event through the given zerolog logger.
func ZerologHooks(logger zerolog.Logger) TelemetryHooks {
	return TelemetryHooks{
		OnHTTPResponse: func(ctx context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			evt.Str("method", req.Method).
				Str("url", req.URL.String()).
				Int("status", status).
				Dur("latency", latency).
				Msg("cinder request")
		},
		OnLogEntry: func(ctx context.Context, entry LogEntry) {
			level := zerolog.InfoLevel
			if entry.Level == LogLevelError {
				level = zerolog.ErrorLevel
			}
			logger.WithLevel(level).Fields(entry.Fields).Msg(entry.Message)
		},
		OnMetric: func(ctx context.Context, metric Metric) {
			logger.Debug().
				Str("metric", metric.Name).
				Float64("value", metric.Value).
				Fields(map[string]any{"labels": metric.Labels}).
				Msg("cinder metric")
		},
	}
}
