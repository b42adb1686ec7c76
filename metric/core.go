package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all core a2ui metrics.
type Metrics struct {
	// Session metrics
	SessionState       *prometheus.GaugeVec
	SessionErrors      prometheus.Counter
	ActionsDispatched  *prometheus.CounterVec
	ActionSendFailures prometheus.Counter

	// Transport metrics
	MessagesReceived *prometheus.CounterVec
	MessagesSent     prometheus.Counter

	// Reconciliation metrics
	SurfacesCreated prometheus.Counter
	UpdatesApplied  *prometheus.CounterVec

	// Interpreter metrics
	RenderPasses  prometheus.Counter
	RenderedNodes prometheus.Histogram
	UnknownKinds  *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with all core metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		SessionState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "a2ui",
				Subsystem: "session",
				Name:      "state",
				Help:      "Session state (1 for the active state, 0 otherwise)",
			},
			[]string{"state"},
		),

		SessionErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "session",
				Name:      "errors_total",
				Help:      "Total errors surfaced to the session error callback",
			},
		),

		ActionsDispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "session",
				Name:      "actions_dispatched_total",
				Help:      "Total user actions dispatched",
			},
			[]string{"action"},
		),

		ActionSendFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "session",
				Name:      "action_send_failures_total",
				Help:      "Total userAction messages that failed to send",
			},
		),

		MessagesReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "transport",
				Name:      "messages_received_total",
				Help:      "Total messages received from the transport",
			},
			[]string{"type"},
		),

		MessagesSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "transport",
				Name:      "messages_sent_total",
				Help:      "Total messages sent to the transport",
			},
		),

		SurfacesCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "reconcile",
				Name:      "surfaces_created_total",
				Help:      "Total createSurface messages applied",
			},
		),

		UpdatesApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "reconcile",
				Name:      "updates_applied_total",
				Help:      "Total component update operations applied",
			},
			[]string{"operation"},
		),

		RenderPasses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "interpreter",
				Name:      "render_passes_total",
				Help:      "Total full render passes",
			},
		),

		RenderedNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "a2ui",
				Subsystem: "interpreter",
				Name:      "rendered_nodes",
				Help:      "Nodes produced per render pass",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
			},
		),

		UnknownKinds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "a2ui",
				Subsystem: "interpreter",
				Name:      "unknown_kinds_total",
				Help:      "Total components rendered as unknown-kind fallbacks",
			},
			[]string{"kind"},
		),
	}
}

// collectors returns every metric for bulk registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SessionState,
		m.SessionErrors,
		m.ActionsDispatched,
		m.ActionSendFailures,
		m.MessagesReceived,
		m.MessagesSent,
		m.SurfacesCreated,
		m.UpdatesApplied,
		m.RenderPasses,
		m.RenderedNodes,
		m.UnknownKinds,
	}
}

// SetSessionState flips the session state gauge so exactly one state label
// reads 1.
func (m *Metrics) SetSessionState(active string, all []string) {
	for _, state := range all {
		value := 0.0
		if state == active {
			value = 1.0
		}
		m.SessionState.WithLabelValues(state).Set(value)
	}
}
