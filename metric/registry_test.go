package metric

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_CoreMetricsRegistered(t *testing.T) {
	registry := NewRegistry()
	require.NotNil(t, registry.Metrics)

	// Touch a few metrics, then confirm they show up in a gather
	registry.Metrics.RenderPasses.Inc()
	registry.Metrics.SurfacesCreated.Inc()
	registry.Metrics.UpdatesApplied.WithLabelValues("add").Inc()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}

	assert.True(t, names["a2ui_interpreter_render_passes_total"])
	assert.True(t, names["a2ui_reconcile_surfaces_created_total"])
	assert.True(t, names["a2ui_reconcile_updates_applied_total"])
}

func TestRegistry_RegisterCustomCollector(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "a2ui",
		Subsystem: "toolkit",
		Name:      "paints_total",
		Help:      "Total paints",
	})

	require.NoError(t, registry.Register("toolkit_paints", counter))

	// Duplicate name rejected
	assert.Error(t, registry.Register("toolkit_paints", counter))

	// Invalid arguments rejected
	assert.Error(t, registry.Register("", counter))
	assert.Error(t, registry.Register("nil_collector", nil))

	assert.True(t, registry.Unregister("toolkit_paints"))
	assert.False(t, registry.Unregister("toolkit_paints"))
}

func TestMetrics_SetSessionState(t *testing.T) {
	registry := NewRegistry()
	states := []string{"connecting", "connected", "error", "disconnected"}

	registry.Metrics.SetSessionState("connected", states)

	assert.Equal(t, 1.0, testutil.ToFloat64(registry.Metrics.SessionState.WithLabelValues("connected")))
	assert.Equal(t, 0.0, testutil.ToFloat64(registry.Metrics.SessionState.WithLabelValues("connecting")))
}

func TestServer_Handler(t *testing.T) {
	registry := NewRegistry()
	registry.Metrics.RenderPasses.Inc()

	server := NewServer(0, "/metrics", registry)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "a2ui_interpreter_render_passes_total"))
}

func TestServer_StartBlocksUntilStop(t *testing.T) {
	registry := NewRegistry()
	server := NewServer(19309, "/metrics", registry)

	started := make(chan error, 1)
	go func() {
		started <- server.Start()
	}()

	// Wait for the listener to come up
	url := fmt.Sprintf("http://localhost:%d/metrics", 19309)
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Start must still be blocked while the server is serving. Callers run
	// it on its own goroutine.
	select {
	case err := <-started:
		t.Fatalf("Start returned while serving: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, server.Stop())
	select {
	case err := <-started:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
}
