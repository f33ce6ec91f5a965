// analytics.go wraps the posthog client so callers never have to care whether
// analytics is configured.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient is a nil-safe wrapper around posthog.Client.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// InitializeAnalyticsClient returns a disabled client when no API key is set.
func InitializeAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("Analytics API key is empty, analytics disabled.")
		return &AnalyticsClient{}
	}
	wrapper := AnalyticsClient{logger: logger}
	wrapper.client, _ = posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return &wrapper
}

// Enqueue records an event; a no-op when analytics is disabled.
func (w *AnalyticsClient) Enqueue(distinctID string, event string, properties map[string]any) {
	if w.client == nil {
		return
	}
	_ = w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes and shuts down the underlying client.
func (w *AnalyticsClient) Close() {
	if w.client == nil {
		return
	}
	w.client.Close()
}
