package component

// Kind discriminates which primitive or behavior a node renders.
// The set is closed; the interpreter dispatches over it exhaustively and
// renders anything else as a visible fallback.
type Kind string

const (
	// KindText renders a plain text span
	KindText Kind = "text"
	// KindHeading renders a heading at a given level (1-6)
	KindHeading Kind = "heading"
	// KindButton renders a clickable control emitting its action on click
	KindButton Kind = "button"
	// KindContainer renders an ordered wrapper of its children
	KindContainer Kind = "container"
	// KindDivider renders a separator primitive
	KindDivider Kind = "divider"
	// KindTextField renders a labeled text input with local (uncontrolled) state
	KindTextField Kind = "textfield"
	// KindCheckbox renders a labeled boolean control with local state
	KindCheckbox Kind = "checkbox"
	// KindSlider renders a labeled numeric range control with local state
	KindSlider Kind = "slider"
	// KindChoicePicker renders a labeled single-select with local state
	KindChoicePicker Kind = "choicepicker"
	// KindList renders an ordered or unordered list of items
	KindList Kind = "list"
	// KindTabs renders tabbed navigation with exactly one visible panel
	KindTabs Kind = "tabs"

	// KindTabTrigger is a structural sub-kind used only inside tabs; the
	// ordered triggers define the tab strip
	KindTabTrigger Kind = "tab-trigger"
	// KindTabContent is a structural sub-kind used only inside tabs; a
	// content node pairs with the trigger sharing its value property
	KindTabContent Kind = "tab-content"
)

// knownKinds is the closed dispatch set.
var knownKinds = map[Kind]struct{}{
	KindText:         {},
	KindHeading:      {},
	KindButton:       {},
	KindContainer:    {},
	KindDivider:      {},
	KindTextField:    {},
	KindCheckbox:     {},
	KindSlider:       {},
	KindChoicePicker: {},
	KindList:         {},
	KindTabs:         {},
	KindTabTrigger:   {},
	KindTabContent:   {},
}

// Known reports whether k belongs to the closed kind set.
func (k Kind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	return string(k)
}
