package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
)

func node(id string, kind component.Kind) component.Node {
	return component.Node{ID: id, Kind: kind}
}

func createSurface(e *Engine, components ...component.Node) {
	e.ApplyCreateSurface(&protocol.CreateSurface{
		SurfaceID:  "main",
		Components: components,
		DataModel:  map[string]any{"user": map[string]any{"name": "John"}},
	})
}

func rootIDs(e *Engine) []string {
	surface, ok := e.Snapshot()
	if !ok {
		return nil
	}
	ids := make([]string, len(surface.Components))
	for i, n := range surface.Components {
		ids[i] = n.ID
	}
	return ids
}

func TestEngine_NoSurfaceInitially(t *testing.T) {
	e := NewEngine(nil, nil)

	_, ok := e.Snapshot()
	assert.False(t, ok)
	assert.Empty(t, e.SurfaceID())
	assert.Empty(t, e.DataModel())
}

func TestApplyCreateSurface_ReplacesWholesale(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, node("a", component.KindText), node("b", component.KindButton))

	result := e.ApplyCreateSurface(&protocol.CreateSurface{
		SurfaceID:  "second",
		Components: []component.Node{node("c", component.KindDivider)},
		DataModel:  map[string]any{"fresh": true},
	})

	assert.True(t, result.SurfaceReplaced)
	assert.Equal(t, []string{"c"}, rootIDs(e))
	assert.Equal(t, "second", e.SurfaceID())

	// Old model is gone, not merged
	model := e.DataModel()
	assert.Equal(t, true, model["fresh"])
	assert.NotContains(t, model, "user")
}

func TestApplyCreateSurface_NilModel(t *testing.T) {
	e := NewEngine(nil, nil)
	e.ApplyCreateSurface(&protocol.CreateSurface{SurfaceID: "s", Components: nil})

	assert.NotNil(t, e.DataModel())
}

func TestApplyUpdateComponents_Add(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, node("a", component.KindText))

	added := node("z", component.KindButton)
	result := e.ApplyUpdateComponents(&protocol.UpdateComponents{
		Updates: []protocol.UpdateOp{{Operation: protocol.OpAdd, Component: &added}},
	})

	assert.Equal(t, []string{"z"}, result.Added)
	assert.Equal(t, []string{"a", "z"}, rootIDs(e))
}

func TestApplyUpdateComponents_UpdateInPlace(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, node("a", component.KindText), node("b", component.KindText), node("c", component.KindText))

	replacement := component.Node{ID: "b", Kind: component.KindButton}
	result := e.ApplyUpdateComponents(&protocol.UpdateComponents{
		Updates: []protocol.UpdateOp{{Operation: protocol.OpUpdate, ID: "b", Component: &replacement}},
	})

	assert.Equal(t, []string{"b"}, result.Replaced)
	// Same position, new kind
	assert.Equal(t, []string{"a", "b", "c"}, rootIDs(e))
	surface, _ := e.Snapshot()
	assert.Equal(t, component.KindButton, surface.Components[1].Kind)
}

func TestApplyUpdateComponents_Remove(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, node("a", component.KindText), node("b", component.KindText))

	result := e.ApplyUpdateComponents(&protocol.UpdateComponents{
		Updates: []protocol.UpdateOp{{Operation: protocol.OpRemove, ID: "a"}},
	})

	assert.Equal(t, []string{"a"}, result.Removed)
	assert.Equal(t, []string{"b"}, rootIDs(e))
}

// Unknown-id no-op: updates and removes referencing unknown ids leave the
// tree unchanged.
func TestApplyUpdateComponents_UnknownIDNoOp(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, node("a", component.KindText))

	replacement := component.Node{ID: "missing", Kind: component.KindButton}
	result := e.ApplyUpdateComponents(&protocol.UpdateComponents{
		Updates: []protocol.UpdateOp{
			{Operation: protocol.OpUpdate, ID: "missing", Component: &replacement},
			{Operation: protocol.OpRemove, ID: "also-missing"},
		},
	})

	assert.Empty(t, result.Replaced)
	assert.Empty(t, result.Removed)
	assert.Equal(t, []string{"a"}, rootIDs(e))
}

// Update ordering: remove-then-add yields presence, add-then-remove yields
// absence.
func TestApplyUpdateComponents_Ordering(t *testing.T) {
	readd := component.Node{ID: "x", Kind: component.KindButton}

	t.Run("remove then add", func(t *testing.T) {
		e := NewEngine(nil, nil)
		createSurface(e, node("x", component.KindText))

		e.ApplyUpdateComponents(&protocol.UpdateComponents{
			Updates: []protocol.UpdateOp{
				{Operation: protocol.OpRemove, ID: "x"},
				{Operation: protocol.OpAdd, Component: &readd},
			},
		})

		require.Equal(t, []string{"x"}, rootIDs(e))
		surface, _ := e.Snapshot()
		assert.Equal(t, component.KindButton, surface.Components[0].Kind)
	})

	t.Run("add then remove", func(t *testing.T) {
		e := NewEngine(nil, nil)
		createSurface(e)

		e.ApplyUpdateComponents(&protocol.UpdateComponents{
			Updates: []protocol.UpdateOp{
				{Operation: protocol.OpAdd, Component: &readd},
				{Operation: protocol.OpRemove, ID: "x"},
			},
		})

		assert.Empty(t, rootIDs(e))
	})
}

func TestApplyUpdateComponents_ModelUntouched(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, node("a", component.KindText))
	before := e.DataModel()

	added := node("b", component.KindText)
	e.ApplyUpdateComponents(&protocol.UpdateComponents{
		Updates: []protocol.UpdateOp{{Operation: protocol.OpAdd, Component: &added}},
	})

	assert.Equal(t, before, e.DataModel())
}

func TestApplyUpdateComponents_NoSurface(t *testing.T) {
	e := NewEngine(nil, nil)

	added := node("a", component.KindText)
	result := e.ApplyUpdateComponents(&protocol.UpdateComponents{
		Updates: []protocol.UpdateOp{{Operation: protocol.OpAdd, Component: &added}},
	})

	assert.Empty(t, result.Added)
	_, ok := e.Snapshot()
	assert.False(t, ok)
}

func TestSnapshot_DefensiveCopy(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, component.Node{
		ID: "a", Kind: component.KindText,
		Properties: component.Properties{"value": "original"},
	})

	surface, ok := e.Snapshot()
	require.True(t, ok)

	// Mutate the snapshot; authoritative state must be unaffected
	surface.Components[0].Properties["value"] = "mutated"
	surface.DataModel["user"].(map[string]any)["name"] = "mutated"

	fresh, _ := e.Snapshot()
	assert.Equal(t, "original", fresh.Components[0].Properties.Raw("value"))
	assert.Equal(t, "John", fresh.DataModel["user"].(map[string]any)["name"])
}

func TestClear(t *testing.T) {
	e := NewEngine(nil, nil)
	createSurface(e, node("a", component.KindText))

	e.Clear()

	_, ok := e.Snapshot()
	assert.False(t, ok)
}
