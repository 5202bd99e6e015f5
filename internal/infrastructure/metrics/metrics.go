// Package metrics holds the Prometheus collectors for the tool surface and
// the upstream Admin API traffic.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopify-mcp-layer/internal/infrastructure/shopify"
)

// Metrics bundles every collector behind one registry.
type Metrics struct {
	registry *prometheus.Registry

	toolCalls        *prometheus.CounterVec
	toolDuration     *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
}

// New builds the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		toolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopify_mcp_tool_calls_total",
			Help: "Tool invocations by name and outcome.",
		}, []string{"tool", "outcome"}),
		toolDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shopify_mcp_tool_duration_seconds",
			Help:    "Tool call duration including the upstream round trip.",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopify_mcp_upstream_requests_total",
			Help: "Admin API requests by method and status class.",
		}, []string{"method", "class"}),
	}
}

// ObserveToolCall records one tool invocation.
func (m *Metrics) ObserveToolCall(tool, outcome string, elapsed time.Duration) {
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// Observer adapts the upstream counter to the client's hook.
func (m *Metrics) Observer() shopify.Observer {
	return func(method string, status int, elapsed time.Duration) {
		m.upstreamRequests.WithLabelValues(method, statusClass(status)).Inc()
	}
}

// Handler serves the registry at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
