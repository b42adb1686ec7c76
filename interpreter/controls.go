package interpreter

import (
	"github.com/AINative-Studio/ai-kit-a2ui/binding"
	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/render"
)

// Local-state controls. Each seeds its working value from the resolved
// bound property exactly once per node identity (see StateStore), then owns
// it: later agent model updates do not reach a live control.

func (it *Interpreter) renderTextField(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	props := node.Properties
	action := component.String(props.Raw("action"), "")

	value := it.states.seed(node.ID, node.Kind, func() any {
		return binding.ResolveString(model, props.Raw("value"), "")
	})

	emit := func(v any) {
		text := component.String(v, "")
		it.states.set(node.ID, text)
		if action != "" {
			sink(action, map[string]any{"componentId": node.ID, "value": text})
		}
	}

	return render.New(render.PrimitiveTextInput, node.ID).
		WithProp("label", binding.ResolveString(model, props.Raw("label"), "")).
		WithProp("value", component.String(value, "")).
		WithProp("placeholder", binding.ResolveString(model, props.Raw("placeholder"), "")).
		WithProp("inputType", component.String(props.Raw("inputType"), "text")).
		WithProp("disabled", component.Bool(binding.Resolve(model, props.Raw("disabled")), false)).
		WithProp("required", component.Bool(binding.Resolve(model, props.Raw("required")), false)).
		On(render.EventChange, emit).
		On(render.EventBlur, func(v any) {
			// Blur without a payload reports the current local value
			if v == nil {
				v, _ = it.states.get(node.ID)
			}
			emit(v)
		})
}

func (it *Interpreter) renderCheckbox(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	props := node.Properties
	action := component.String(props.Raw("action"), "")

	checked := it.states.seed(node.ID, node.Kind, func() any {
		return component.Bool(binding.Resolve(model, props.Raw("checked")), false)
	})

	return render.New(render.PrimitiveCheckbox, node.ID).
		WithProp("label", binding.ResolveString(model, props.Raw("label"), "")).
		WithProp("checked", component.Bool(checked, false)).
		WithProp("disabled", component.Bool(binding.Resolve(model, props.Raw("disabled")), false)).
		WithProp("required", component.Bool(binding.Resolve(model, props.Raw("required")), false)).
		On(render.EventToggle, func(v any) {
			current, _ := it.states.get(node.ID)
			next := !component.Bool(current, false)
			if b, ok := v.(bool); ok {
				next = b
			}
			it.states.set(node.ID, next)
			if action != "" {
				sink(action, map[string]any{"componentId": node.ID, "checked": next})
			}
		})
}

func (it *Interpreter) renderSlider(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	props := node.Properties
	action := component.String(props.Raw("action"), "")

	min := component.Float(binding.Resolve(model, props.Raw("min")), 0)
	max := component.Float(binding.Resolve(model, props.Raw("max")), 100)
	step := component.Float(binding.Resolve(model, props.Raw("step")), 1)

	value := it.states.seed(node.ID, node.Kind, func() any {
		return component.Float(binding.Resolve(model, props.Raw("value")), min)
	})

	return render.New(render.PrimitiveSlider, node.ID).
		WithProp("label", binding.ResolveString(model, props.Raw("label"), "")).
		WithProp("value", component.Float(value, min)).
		WithProp("min", min).
		WithProp("max", max).
		WithProp("step", step).
		WithProp("disabled", component.Bool(binding.Resolve(model, props.Raw("disabled")), false)).
		WithProp("showValue", component.Bool(binding.Resolve(model, props.Raw("showValue")), false)).
		On(render.EventChange, func(v any) {
			next := component.Float(v, component.Float(value, min))
			it.states.set(node.ID, next)
			if action != "" {
				sink(action, map[string]any{"componentId": node.ID, "value": next})
			}
		})
}

func (it *Interpreter) renderChoicePicker(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	props := node.Properties
	action := component.String(props.Raw("action"), "")

	value := it.states.seed(node.ID, node.Kind, func() any {
		return binding.ResolveString(model, props.Raw("value"), "")
	})

	// Options are either a literal array or a bound pointer to an array of
	// {value, label} objects
	options := component.Slice(binding.Resolve(model, props.Raw("options")))
	rendered := make([]map[string]any, 0, len(options))
	for _, option := range options {
		obj := component.Object(option)
		if obj == nil {
			continue
		}
		rendered = append(rendered, map[string]any{
			"value": component.String(obj["value"], ""),
			"label": component.String(obj["label"], component.String(obj["value"], "")),
		})
	}

	return render.New(render.PrimitiveSelect, node.ID).
		WithProp("label", binding.ResolveString(model, props.Raw("label"), "")).
		WithProp("value", component.String(value, "")).
		WithProp("placeholder", binding.ResolveString(model, props.Raw("placeholder"), "Select...")).
		WithProp("options", rendered).
		WithProp("disabled", component.Bool(binding.Resolve(model, props.Raw("disabled")), false)).
		WithProp("required", component.Bool(binding.Resolve(model, props.Raw("required")), false)).
		On(render.EventSelect, func(v any) {
			next := component.String(v, "")
			it.states.set(node.ID, next)
			if action != "" {
				sink(action, map[string]any{"componentId": node.ID, "value": next})
			}
		})
}

func (it *Interpreter) renderList(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	props := node.Properties
	action := component.String(props.Raw("action"), "")
	clickable := component.Bool(binding.Resolve(model, props.Raw("clickable")), true)
	ordered := component.Bool(binding.Resolve(model, props.Raw("ordered")), false)
	dividers := component.Bool(binding.Resolve(model, props.Raw("dividers")), false)

	out := render.New(render.PrimitiveList, node.ID).
		WithProp("ordered", ordered)

	appendItem := func(item *render.Node, itemID string) {
		if dividers && len(out.Children) > 0 {
			out.Append(render.New(render.PrimitiveDivider, ""))
		}
		if clickable && action != "" {
			item.WithProp("clickable", true)
			item.On(render.EventClick, func(any) {
				sink(action, map[string]any{"componentId": node.ID, "itemId": itemID})
			})
		}
		out.Append(item)
	}

	// Items are either a literal array or a bound pointer to an array of
	// {id, label, description?} objects
	for _, raw := range component.Slice(binding.Resolve(model, props.Raw("items"))) {
		obj := component.Object(raw)
		if obj == nil {
			continue
		}
		itemID := component.String(obj["id"], "")
		item := render.New(render.PrimitiveListItem, itemID).
			WithProp("label", component.String(obj["label"], ""))
		if description := component.String(obj["description"], ""); description != "" {
			item.WithProp("description", description)
		}
		appendItem(item, itemID)
	}

	// Nested component children render as list items through the same
	// interpreter entry point
	for i := range node.Children {
		child := node.Children[i]
		item := render.New(render.PrimitiveListItem, child.ID).
			Append(it.renderNode(child, model, sink))
		appendItem(item, child.ID)
	}

	return out
}
