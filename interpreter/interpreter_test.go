package interpreter

import (
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/metric"
	"github.com/AINative-Studio/ai-kit-a2ui/render"
)

// sinkRecorder captures dispatched actions in order.
type sinkRecorder struct {
	actions  []string
	contexts []map[string]any
}

func (r *sinkRecorder) sink(action string, context map[string]any) {
	r.actions = append(r.actions, action)
	r.contexts = append(r.contexts, context)
}

func renderOne(t *testing.T, it *Interpreter, node component.Node, model map[string]any, sink ActionSink) *render.Node {
	t.Helper()
	out := it.Render([]component.Node{node}, model, sink)
	require.Len(t, out, 1)
	return out[0]
}

func TestRender_TextBinding(t *testing.T) {
	it := New(nil, nil)
	node := component.Node{
		ID: "t1", Kind: component.KindText,
		Properties: component.Properties{"value": "/user/name"},
	}
	model := map[string]any{"user": map[string]any{"name": "John Doe"}}

	out := renderOne(t, it, node, model, nil)
	assert.Equal(t, render.PrimitiveText, out.Primitive)
	assert.Equal(t, "John Doe", out.PropString("text"))
}

func TestRender_MissingBindingFallback(t *testing.T) {
	it := New(nil, nil)
	node := component.Node{
		ID: "t1", Kind: component.KindText,
		Properties: component.Properties{"value": "/nonexistent/path"},
	}

	out := renderOne(t, it, node, map[string]any{}, nil)
	assert.Equal(t, "/nonexistent/path", out.PropString("text"))
}

func TestRender_Heading(t *testing.T) {
	it := New(nil, nil)

	out := renderOne(t, it, component.Node{
		ID: "h1", Kind: component.KindHeading,
		Properties: component.Properties{"value": "Title", "level": float64(3)},
	}, nil, nil)
	assert.Equal(t, render.PrimitiveHeading, out.Primitive)
	assert.Equal(t, "Title", out.PropString("text"))
	assert.Equal(t, 3, out.Props["level"])

	// Out-of-range level clamps to the default
	out = renderOne(t, it, component.Node{
		ID: "h2", Kind: component.KindHeading,
		Properties: component.Properties{"value": "Title", "level": float64(9)},
	}, nil, nil)
	assert.Equal(t, 1, out.Props["level"])
}

func TestRender_ButtonAction(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "b1", Kind: component.KindButton,
		Properties: component.Properties{"label": "Submit", "action": "submit-form"},
	}

	out := renderOne(t, it, node, nil, rec.sink)
	assert.Equal(t, "Submit", out.PropString("label"))

	require.True(t, out.Fire(render.EventClick, nil))
	require.Len(t, rec.actions, 1)
	assert.Equal(t, "submit-form", rec.actions[0])
	assert.Equal(t, map[string]any{"componentId": "b1"}, rec.contexts[0])
}

func TestRender_ButtonDefaultAction(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "b1", Kind: component.KindButton,
		Properties: component.Properties{"label": "Go"},
	}

	out := renderOne(t, it, node, nil, rec.sink)
	out.Fire(render.EventClick, nil)
	require.Len(t, rec.actions, 1)
	assert.Equal(t, "click", rec.actions[0])
}

func TestRender_ContainerRecursion(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "c1", Kind: component.KindContainer,
		Children: []component.Node{
			{ID: "t1", Kind: component.KindText, Properties: component.Properties{"value": "/msg"}},
			{ID: "d1", Kind: component.KindDivider},
			{ID: "b1", Kind: component.KindButton, Properties: component.Properties{"label": "Hi", "action": "hi"}},
		},
	}
	model := map[string]any{"msg": "nested"}

	out := renderOne(t, it, node, model, rec.sink)
	assert.Equal(t, render.PrimitiveBox, out.Primitive)
	require.Len(t, out.Children, 3)
	assert.Equal(t, "nested", out.Children[0].PropString("text"))
	assert.Equal(t, render.PrimitiveDivider, out.Children[1].Primitive)

	// The same sink reaches nested nodes
	out.Children[2].Fire(render.EventClick, nil)
	require.Len(t, rec.actions, 1)
	assert.Equal(t, "hi", rec.actions[0])
}

func TestRender_UnknownKindFallback(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{ID: "u1", Kind: component.Kind("mystery-widget")}

	out := renderOne(t, it, node, nil, rec.sink)
	assert.Equal(t, render.PrimitiveFallback, out.Primitive)
	assert.Equal(t, "mystery-widget", out.PropString("kind"))
	assert.Empty(t, out.Handlers)
	assert.Empty(t, rec.actions)
}

func TestRender_LooseStructuralKindsFallBack(t *testing.T) {
	it := New(nil, nil)

	out := renderOne(t, it, component.Node{ID: "x", Kind: component.KindTabTrigger}, nil, nil)
	assert.Equal(t, render.PrimitiveFallback, out.Primitive)
}

func TestRender_CheckboxToggle(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "c1", Kind: component.KindCheckbox,
		Properties: component.Properties{"label": "Enable", "checked": false, "action": "toggle"},
	}

	out := renderOne(t, it, node, nil, rec.sink)
	assert.Equal(t, render.PrimitiveCheckbox, out.Primitive)
	assert.Equal(t, false, out.Props["checked"])

	out.Fire(render.EventToggle, true)
	require.Len(t, rec.actions, 1)
	assert.Equal(t, "toggle", rec.actions[0])
	assert.Equal(t, map[string]any{"componentId": "c1", "checked": true}, rec.contexts[0])

	// Re-render shows the local value, toggle without payload flips it
	out = renderOne(t, it, node, nil, rec.sink)
	assert.Equal(t, true, out.Props["checked"])
	out.Fire(render.EventToggle, nil)
	assert.Equal(t, map[string]any{"componentId": "c1", "checked": false}, rec.contexts[1])
}

func TestRender_TextFieldKeystrokes(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "f1", Kind: component.KindTextField,
		Properties: component.Properties{
			"label": "Name", "value": "/user/name", "action": "name-changed",
		},
	}
	model := map[string]any{"user": map[string]any{"name": "John"}}

	out := renderOne(t, it, node, model, rec.sink)
	assert.Equal(t, "John", out.PropString("value"))
	assert.Equal(t, "text", out.PropString("inputType"))

	out.Fire(render.EventChange, "Joh")
	out.Fire(render.EventChange, "Johnny")
	require.Len(t, rec.actions, 2)
	assert.Equal(t, map[string]any{"componentId": "f1", "value": "Johnny"}, rec.contexts[1])

	// Blur reports the current local value
	out.Fire(render.EventBlur, nil)
	require.Len(t, rec.actions, 3)
	assert.Equal(t, map[string]any{"componentId": "f1", "value": "Johnny"}, rec.contexts[2])
}

func TestRender_TextFieldWithoutActionStillEchoes(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "f1", Kind: component.KindTextField,
		Properties: component.Properties{"value": "start"},
	}

	out := renderOne(t, it, node, nil, rec.sink)
	out.Fire(render.EventChange, "typed")
	assert.Empty(t, rec.actions)

	// Local echo survives the next render pass
	out = renderOne(t, it, node, nil, rec.sink)
	assert.Equal(t, "typed", out.PropString("value"))
}

func TestRender_SliderChange(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "s1", Kind: component.KindSlider,
		Properties: component.Properties{
			"label": "Volume", "value": float64(25), "min": float64(0),
			"max": float64(50), "step": float64(5), "showValue": true,
			"action": "volume",
		},
	}

	out := renderOne(t, it, node, nil, rec.sink)
	assert.Equal(t, render.PrimitiveSlider, out.Primitive)
	assert.Equal(t, 25.0, out.Props["value"])
	assert.Equal(t, 50.0, out.Props["max"])
	assert.Equal(t, true, out.Props["showValue"])

	out.Fire(render.EventChange, float64(35))
	require.Len(t, rec.actions, 1)
	assert.Equal(t, map[string]any{"componentId": "s1", "value": 35.0}, rec.contexts[0])
}

func TestRender_SliderDefaultsValueToMin(t *testing.T) {
	it := New(nil, nil)
	node := component.Node{
		ID: "s1", Kind: component.KindSlider,
		Properties: component.Properties{"min": float64(10)},
	}

	out := renderOne(t, it, node, nil, nil)
	assert.Equal(t, 10.0, out.Props["value"])
}

func TestRender_ChoicePicker(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "p1", Kind: component.KindChoicePicker,
		Properties: component.Properties{
			"label":   "Color",
			"value":   "/prefs/color",
			"options": "/colorOptions",
			"action":  "pick-color",
		},
	}
	model := map[string]any{
		"prefs": map[string]any{"color": "red"},
		"colorOptions": []any{
			map[string]any{"value": "red", "label": "Red"},
			map[string]any{"value": "blue", "label": "Blue"},
		},
	}

	out := renderOne(t, it, node, model, rec.sink)
	assert.Equal(t, render.PrimitiveSelect, out.Primitive)
	assert.Equal(t, "red", out.PropString("value"))
	assert.Equal(t, "Select...", out.PropString("placeholder"))

	options, ok := out.Props["options"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, options, 2)
	assert.Equal(t, "Blue", options[1]["label"])

	out.Fire(render.EventSelect, "blue")
	require.Len(t, rec.actions, 1)
	assert.Equal(t, map[string]any{"componentId": "p1", "value": "blue"}, rec.contexts[0])
}

func TestRender_List(t *testing.T) {
	it := New(nil, nil)
	rec := &sinkRecorder{}
	node := component.Node{
		ID: "l1", Kind: component.KindList,
		Properties: component.Properties{
			"items": []any{
				map[string]any{"id": "i1", "label": "First", "description": "the first"},
				map[string]any{"id": "i2", "label": "Second"},
			},
			"ordered":  true,
			"dividers": true,
			"action":   "open-item",
		},
	}

	out := renderOne(t, it, node, nil, rec.sink)
	assert.Equal(t, render.PrimitiveList, out.Primitive)
	assert.Equal(t, true, out.Props["ordered"])

	// item, divider, item
	require.Len(t, out.Children, 3)
	assert.Equal(t, render.PrimitiveListItem, out.Children[0].Primitive)
	assert.Equal(t, render.PrimitiveDivider, out.Children[1].Primitive)
	assert.Equal(t, "the first", out.Children[0].PropString("description"))

	out.Children[2].Fire(render.EventClick, nil)
	require.Len(t, rec.actions, 1)
	assert.Equal(t, map[string]any{"componentId": "l1", "itemId": "i2"}, rec.contexts[0])
}

func TestRender_ListNotClickableWithoutAction(t *testing.T) {
	it := New(nil, nil)
	node := component.Node{
		ID: "l1", Kind: component.KindList,
		Properties: component.Properties{
			"items": []any{map[string]any{"id": "i1", "label": "First"}},
		},
	}

	out := renderOne(t, it, node, nil, nil)
	require.Len(t, out.Children, 1)
	assert.False(t, out.Children[0].Fire(render.EventClick, nil))
}

func TestRender_ListBoundItems(t *testing.T) {
	it := New(nil, nil)
	node := component.Node{
		ID: "l1", Kind: component.KindList,
		Properties: component.Properties{"items": "/rows", "clickable": false},
	}
	model := map[string]any{"rows": []any{
		map[string]any{"id": "r1", "label": "Row one"},
	}}

	out := renderOne(t, it, node, model, nil)
	require.Len(t, out.Children, 1)
	assert.Equal(t, "Row one", out.Children[0].PropString("label"))
}

func TestRender_ListNestedChildren(t *testing.T) {
	it := New(nil, nil)
	node := component.Node{
		ID: "l1", Kind: component.KindList,
		Children: []component.Node{
			{ID: "t1", Kind: component.KindText, Properties: component.Properties{"value": "/msg"}},
		},
	}
	model := map[string]any{"msg": "inside a list"}

	out := renderOne(t, it, node, model, nil)
	require.Len(t, out.Children, 1)
	item := out.Children[0]
	assert.Equal(t, render.PrimitiveListItem, item.Primitive)
	require.Len(t, item.Children, 1)
	assert.Equal(t, "inside a list", item.Children[0].PropString("text"))
}

func TestRender_MetricsCounted(t *testing.T) {
	registry := metric.NewRegistry()
	it := New(nil, registry)

	_ = it.Render([]component.Node{
		{ID: "t1", Kind: component.KindText, Properties: component.Properties{"value": "hi"}},
		{ID: "u1", Kind: component.Kind("nope")},
	}, nil, nil)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(registry.Metrics.RenderPasses))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(registry.Metrics.UnknownKinds.WithLabelValues("nope")))
}
