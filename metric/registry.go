package metric

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
)

// Registry manages the registration and lifecycle of metrics
type Registry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
	registered         map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a new metrics registry with core a2ui metrics and Go
// runtime collectors.
func NewRegistry() *Registry {
	prometheusRegistry := prometheus.NewRegistry()

	registry := &Registry{
		prometheusRegistry: prometheusRegistry,
		registered:         make(map[string]prometheus.Collector),
	}

	registry.Metrics = NewMetrics()
	for _, collector := range registry.Metrics.collectors() {
		prometheusRegistry.MustRegister(collector)
	}

	prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Register adds a caller-supplied collector under a unique name so widget
// toolkits and transports can attach their own metrics to the same scrape
// endpoint.
func (r *Registry) Register(name string, collector prometheus.Collector) error {
	if name == "" || collector == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "Register", "name and collector validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registered[name]; exists {
		return errors.WrapInvalid(
			errors.New("collector '"+name+"' is already registered"),
			"Registry", "Register", "duplicate collector check")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		return errors.WrapInvalid(err, "Registry", "Register", "prometheus registration")
	}

	r.registered[name] = collector
	return nil
}

// Unregister removes a previously registered collector. Returns whether a
// collector was removed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	collector, exists := r.registered[name]
	if !exists {
		return false
	}
	delete(r.registered, name)
	return r.prometheusRegistry.Unregister(collector)
}
