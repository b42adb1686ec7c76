// Package render defines the toolkit-neutral output of the interpreter: a
// tree of renderable primitives with typed props and an event surface.
//
// A widget toolkit consumes this tree under a single contract: paint
// primitive P with props X, and invoke handler Y when the matching event
// fires. The core never depends on any concrete toolkit.
package render

// Primitive names an opaque renderable the host toolkit knows how to paint.
type Primitive string

const (
	// PrimitiveText is a plain text span
	PrimitiveText Primitive = "text"
	// PrimitiveHeading is a heading at a given level
	PrimitiveHeading Primitive = "heading"
	// PrimitiveButton is a clickable control
	PrimitiveButton Primitive = "button"
	// PrimitiveBox is an ordered wrapper of children
	PrimitiveBox Primitive = "box"
	// PrimitiveDivider is a separator
	PrimitiveDivider Primitive = "divider"
	// PrimitiveTextInput is a labeled text input
	PrimitiveTextInput Primitive = "textinput"
	// PrimitiveCheckbox is a labeled boolean control
	PrimitiveCheckbox Primitive = "checkbox"
	// PrimitiveSlider is a labeled numeric range control
	PrimitiveSlider Primitive = "slider"
	// PrimitiveSelect is a labeled single-select
	PrimitiveSelect Primitive = "select"
	// PrimitiveList is an ordered or unordered list
	PrimitiveList Primitive = "list"
	// PrimitiveListItem is one list entry, optionally clickable
	PrimitiveListItem Primitive = "listitem"
	// PrimitiveTabs is a tab strip plus the single visible panel
	PrimitiveTabs Primitive = "tabs"
	// PrimitiveTabPanel is the visible panel of a tabs control
	PrimitiveTabPanel Primitive = "tabpanel"
	// PrimitiveFallback is the visible marker for an unknown component kind
	PrimitiveFallback Primitive = "fallback"
	// PrimitiveStatus is a connection-state placeholder region
	PrimitiveStatus Primitive = "status"
)

// Event names an interaction on a rendered primitive.
type Event string

const (
	// EventClick fires on button and list item activation
	EventClick Event = "click"
	// EventChange fires on every value change of an input control
	EventChange Event = "change"
	// EventBlur fires when a text input loses focus
	EventBlur Event = "blur"
	// EventToggle fires when a checkbox flips
	EventToggle Event = "toggle"
	// EventSelect fires on select and tab activation
	EventSelect Event = "select"
)

// Handler reacts to one event. The value parameter carries the control's
// new working value (string, bool, float64 or item id depending on the
// primitive); nil for valueless events such as button clicks.
type Handler func(value any)

// Node is one renderable in the output tree.
type Node struct {
	Primitive   Primitive
	ComponentID string
	Props       map[string]any
	Handlers    map[Event]Handler
	Children    []*Node
}

// New creates a node for the given primitive and component id.
func New(primitive Primitive, componentID string) *Node {
	return &Node{
		Primitive:   primitive,
		ComponentID: componentID,
		Props:       map[string]any{},
	}
}

// WithProp sets a prop and returns the node for chaining during assembly.
func (n *Node) WithProp(name string, value any) *Node {
	n.Props[name] = value
	return n
}

// On registers a handler for event and returns the node.
func (n *Node) On(event Event, handler Handler) *Node {
	if n.Handlers == nil {
		n.Handlers = map[Event]Handler{}
	}
	n.Handlers[event] = handler
	return n
}

// Append adds children, skipping nils, and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Fire invokes the handler for event, if registered. It reports whether a
// handler ran. Used by toolkits and tests to simulate interaction.
func (n *Node) Fire(event Event, value any) bool {
	handler, ok := n.Handlers[event]
	if !ok {
		return false
	}
	handler(value)
	return true
}

// PropString returns a string prop, or empty string when absent.
func (n *Node) PropString(name string) string {
	s, _ := n.Props[name].(string)
	return s
}

// Find returns the first node in the tree (preorder) with the given
// component id, or nil.
func (n *Node) Find(componentID string) *Node {
	if n == nil {
		return nil
	}
	if n.ComponentID == componentID {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(componentID); found != nil {
			return found
		}
	}
	return nil
}
