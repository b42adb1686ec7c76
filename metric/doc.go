// Package metric provides Prometheus instrumentation for the a2ui core.
//
// A Registry owns an isolated prometheus.Registry pre-populated with the
// core metrics (session state, message counts, reconciliation operations,
// render passes, action dispatch) plus Go runtime collectors. The Server
// exposes it over HTTP at /metrics.
//
// All instrumented call sites tolerate a nil *Registry so the core runs
// unchanged with metrics disabled.
package metric
