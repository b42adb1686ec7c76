package reconcile

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/metric"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
)

// Surface is the currently active (tree, model) pair.
type Surface struct {
	ID         string
	Components []component.Node
	DataModel  map[string]any
}

// Engine holds the authoritative surface state. It starts with no surface.
type Engine struct {
	surface *Surface
	logger  *slog.Logger
	metrics *metric.Registry
	mu      sync.RWMutex
}

// Result reports what an operation did to the tree, so callers can prune
// per-control interpreter state for nodes whose identity changed.
type Result struct {
	// SurfaceReplaced is true after ApplyCreateSurface
	SurfaceReplaced bool
	// Added lists ids appended to the root list
	Added []string
	// Replaced lists ids whose root node was swapped in place
	Replaced []string
	// Removed lists ids deleted from the root list
	Removed []string
}

// NewEngine creates an engine with no active surface. logger and metrics
// may be nil.
func NewEngine(logger *slog.Logger, metrics *metric.Registry) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:  logger,
		metrics: metrics,
	}
}

// ApplyCreateSurface unconditionally replaces the tree and the data model
// with the message contents. No merge with prior state.
func (e *Engine) ApplyCreateSurface(msg *protocol.CreateSurface) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	components := make([]component.Node, len(msg.Components))
	for i, node := range msg.Components {
		components[i] = node.Clone()
	}

	model := msg.DataModel
	if model == nil {
		model = map[string]any{}
	}

	e.surface = &Surface{
		ID:         msg.SurfaceID,
		Components: components,
		DataModel:  cloneModel(model),
	}

	if e.metrics != nil {
		e.metrics.Metrics.SurfacesCreated.Inc()
	}
	e.logger.Debug("surface created",
		"surface_id", msg.SurfaceID,
		"components", len(components))

	return Result{SurfaceReplaced: true}
}

// ApplyUpdateComponents applies updates in array order against the root
// component list. Add appends; update replaces the first id match in place;
// remove deletes the first id match. Unknown ids are silent no-ops. The
// data model is never touched. Without an active surface the call is a
// no-op.
func (e *Engine) ApplyUpdateComponents(msg *protocol.UpdateComponents) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	var result Result
	if e.surface == nil {
		e.logger.Warn("updateComponents with no active surface dropped")
		return result
	}

	components := e.surface.Components
	for _, update := range msg.Updates {
		switch update.Operation {
		case protocol.OpAdd:
			if update.Component == nil {
				continue
			}
			components = append(components, update.Component.Clone())
			result.Added = append(result.Added, update.Component.ID)
			e.countUpdate("add")

		case protocol.OpUpdate:
			index := indexByID(components, update.ID)
			if index < 0 {
				e.logger.Debug("update for unknown component id dropped", "id", update.ID)
				continue
			}
			if update.Component == nil {
				continue
			}
			components[index] = update.Component.Clone()
			result.Replaced = append(result.Replaced, update.ID)
			e.countUpdate("update")

		case protocol.OpRemove:
			index := indexByID(components, update.ID)
			if index < 0 {
				e.logger.Debug("remove for unknown component id dropped", "id", update.ID)
				continue
			}
			components = append(components[:index], components[index+1:]...)
			result.Removed = append(result.Removed, update.ID)
			e.countUpdate("remove")
		}
	}

	e.surface.Components = components
	return result
}

// Clear drops the active surface. Used on session teardown.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.surface = nil
}

// Snapshot returns a defensive copy of the active surface, or false when no
// surface exists.
func (e *Engine) Snapshot() (Surface, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.surface == nil {
		return Surface{}, false
	}

	components := make([]component.Node, len(e.surface.Components))
	for i, node := range e.surface.Components {
		components[i] = node.Clone()
	}

	return Surface{
		ID:         e.surface.ID,
		Components: components,
		DataModel:  cloneModel(e.surface.DataModel),
	}, true
}

// SurfaceID returns the active surface id, or empty string.
func (e *Engine) SurfaceID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.surface == nil {
		return ""
	}
	return e.surface.ID
}

// DataModel returns a copy of the active data model, or an empty map.
func (e *Engine) DataModel() map[string]any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.surface == nil {
		return map[string]any{}
	}
	return cloneModel(e.surface.DataModel)
}

func (e *Engine) countUpdate(operation string) {
	if e.metrics != nil {
		e.metrics.Metrics.UpdatesApplied.WithLabelValues(operation).Inc()
	}
}

func indexByID(nodes []component.Node, id string) int {
	for i := range nodes {
		if nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneModel deep-copies a data model via JSON round-trip. Models originate
// from decoded JSON so the round-trip is lossless.
func cloneModel(model map[string]any) map[string]any {
	if len(model) == 0 {
		return map[string]any{}
	}
	data, err := json.Marshal(model)
	if err != nil {
		out := make(map[string]any, len(model))
		for k, v := range model {
			out[k] = v
		}
		return out
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}
