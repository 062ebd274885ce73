package preview

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// previewMetrics holds the Prometheus metrics for the preview server.
type previewMetrics struct {
	activeSessions prometheus.Gauge
	commandsSent   prometheus.Counter
	bytesSent      prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	wsErrors       *prometheus.CounterVec
	packReloads    prometheus.Counter
}

var (
	globalMetrics     *previewMetrics
	globalMetricsOnce sync.Once
)

// metrics returns the process-wide metrics, registering them on first use.
func metrics() *previewMetrics {
	globalMetricsOnce.Do(func() {
		factory := promauto.With(prometheus.DefaultRegisterer)
		globalMetrics = &previewMetrics{
			activeSessions: factory.NewGauge(prometheus.GaugeOpts{
				Namespace: "motion",
				Name:      "active_sessions",
				Help:      "Number of connected preview sessions",
			}),
			commandsSent: factory.NewCounter(prometheus.CounterOpts{
				Namespace: "motion",
				Name:      "commands_sent_total",
				Help:      "Total animation command frames sent to clients",
			}),
			bytesSent: factory.NewCounter(prometheus.CounterOpts{
				Namespace: "motion",
				Name:      "bytes_sent_total",
				Help:      "Total frame bytes sent to clients",
			}),
			eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "motion",
				Name:      "events_total",
				Help:      "Total client events by name",
			}, []string{"name"}),
			wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "motion",
				Name:      "websocket_errors_total",
				Help:      "Total WebSocket errors by type",
			}, []string{"type"}),
			packReloads: factory.NewCounter(prometheus.CounterOpts{
				Namespace: "motion",
				Name:      "pack_reloads_total",
				Help:      "Total preset pack hot reloads",
			}),
		}
	})
	return globalMetrics
}
