package interpreter

import (
	"github.com/AINative-Studio/ai-kit-a2ui/binding"
	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/render"
)

// tabEntry is one resolved tab: strip label, selection value, and the
// panel content to render when selected.
type tabEntry struct {
	value   string
	label   string
	content *component.Node
}

// renderTabs supports two authoring modes. Props mode: a literal "tabs"
// array of {value, label, content?}. Children mode: structural tab-trigger
// children define the strip in order, and a trigger pairs with the
// tab-content child sharing its value property, not its position. A trigger
// without matching content renders an empty panel.
//
// Exactly one panel is visible at a time. The selected tab is local state
// seeded from defaultValue (resolved) or the first tab.
func (it *Interpreter) renderTabs(node component.Node, model map[string]any, sink ActionSink) *render.Node {
	props := node.Properties
	action := component.String(props.Raw("action"), "")

	entries := tabEntriesFromProps(node, model)
	if len(entries) == 0 {
		entries = tabEntriesFromChildren(node, model)
	}

	selected := it.states.seed(node.ID, node.Kind, func() any {
		if dv := binding.ResolveString(model, props.Raw("defaultValue"), ""); dv != "" {
			return dv
		}
		if len(entries) > 0 {
			return entries[0].value
		}
		return ""
	})
	selectedValue := component.String(selected, "")

	strip := make([]map[string]any, 0, len(entries))
	var active *tabEntry
	for i := range entries {
		entry := &entries[i]
		strip = append(strip, map[string]any{
			"value": entry.value,
			"label": entry.label,
		})
		if entry.value == selectedValue {
			active = entry
		}
	}
	if active == nil && len(entries) > 0 {
		active = &entries[0]
		selectedValue = active.value
	}

	out := render.New(render.PrimitiveTabs, node.ID).
		WithProp("tabs", strip).
		WithProp("value", selectedValue).
		On(render.EventSelect, func(v any) {
			next := component.String(v, "")
			it.states.set(node.ID, next)
			if action != "" {
				sink(action, map[string]any{"componentId": node.ID, "value": next})
			}
		})

	panel := render.New(render.PrimitiveTabPanel, node.ID+"/panel").
		WithProp("value", selectedValue)
	if active != nil && active.content != nil {
		content := *active.content
		if content.Kind == component.KindTabContent {
			// The structural wrapper itself is invisible; its children are
			// the panel
			for i := range content.Children {
				panel.Append(it.renderNode(content.Children[i], model, sink))
			}
		} else {
			panel.Append(it.renderNode(content, model, sink))
		}
	}
	return out.Append(panel)
}

func tabEntriesFromProps(node component.Node, model map[string]any) []tabEntry {
	raw := component.Slice(binding.Resolve(model, node.Properties.Raw("tabs")))
	entries := make([]tabEntry, 0, len(raw))
	for _, item := range raw {
		obj := component.Object(item)
		if obj == nil {
			continue
		}
		entry := tabEntry{
			value: component.String(obj["value"], ""),
			label: component.String(obj["label"], component.String(obj["value"], "")),
		}
		if content := component.Object(obj["content"]); content != nil {
			if child := nodeFromObject(content); child != nil {
				entry.content = child
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func tabEntriesFromChildren(node component.Node, model map[string]any) []tabEntry {
	triggers := node.ChildrenOfKind(component.KindTabTrigger)
	contents := node.ChildrenOfKind(component.KindTabContent)

	entries := make([]tabEntry, 0, len(triggers))
	for _, trigger := range triggers {
		value := binding.ResolveString(model, trigger.Properties.Raw("value"), "")
		entry := tabEntry{
			value: value,
			label: binding.ResolveString(model, trigger.Properties.Raw("label"), value),
		}
		// Association is by equal value property, not position
		for i := range contents {
			if binding.ResolveString(model, contents[i].Properties.Raw("value"), "") == value {
				content := contents[i]
				entry.content = &content
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// nodeFromObject rebuilds a component node from a raw property object, for
// tabs declared with inline content in props mode.
func nodeFromObject(obj map[string]any) *component.Node {
	id := component.String(obj["id"], "")
	kind := component.String(obj["kind"], "")
	if id == "" || kind == "" {
		return nil
	}

	node := &component.Node{ID: id, Kind: component.Kind(kind)}
	if props := component.Object(obj["properties"]); props != nil {
		node.Properties = component.Properties(props)
	}
	for _, rawChild := range component.Slice(obj["children"]) {
		childObj := component.Object(rawChild)
		if childObj == nil {
			continue
		}
		if child := nodeFromObject(childObj); child != nil {
			node.Children = append(node.Children, *child)
		}
	}
	return node
}
