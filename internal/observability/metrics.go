package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the bot.
type Metrics struct {
	CommandsHandled prometheus.Counter
	RepliesSent     prometheus.Counter
	StreamConnected prometheus.Gauge

	// Per-command metrics.
	CommandErrors   *prometheus.CounterVec   // labels: command={bands,pota}
	CommandDuration *prometheus.HistogramVec // labels: command={bands,pota}

	// Upstream fetch metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: source={hamqsl,pota}, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: source={hamqsl,pota}
}

// NewMetrics creates and registers all bot metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CommandsHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hambot",
			Name:      "commands_handled_total",
			Help:      "Total chat commands dispatched to a handler.",
		}),
		RepliesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hambot",
			Name:      "replies_sent_total",
			Help:      "Total messages sent back to chat channels.",
		}),
		StreamConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hambot",
			Name:      "stream_connected",
			Help:      "1 when the chat event stream is connected, 0 otherwise.",
		}),
		CommandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hambot",
			Name:      "command_errors_total",
			Help:      "Command handler failures by command.",
		}, []string{"command"}),
		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hambot",
			Name:      "command_duration_seconds",
			Help:      "Duration of a complete command handling cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"command"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hambot",
			Name:      "upstream_requests_total",
			Help:      "Upstream data source requests by source and outcome.",
		}, []string{"source", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hambot",
			Name:      "upstream_duration_seconds",
			Help:      "Upstream request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"source"}),
	}

	prometheus.MustRegister(
		m.CommandsHandled,
		m.RepliesSent,
		m.StreamConnected,
		m.CommandErrors,
		m.CommandDuration,
		m.UpstreamRequests,
		m.UpstreamDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CommandsHandled:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hambot", Name: "commands_handled_total"}),
		RepliesSent:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hambot", Name: "replies_sent_total"}),
		StreamConnected:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hambot", Name: "stream_connected"}),
		CommandErrors:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hambot", Name: "command_errors_total"}, []string{"command"}),
		CommandDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "hambot", Name: "command_duration_seconds"}, []string{"command"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hambot", Name: "upstream_requests_total"}, []string{"source", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "hambot", Name: "upstream_duration_seconds"}, []string{"source"}),
	}
}
