// Package interpreter walks a component tree and produces the renderable
// output, wiring user events back to an action sink.
//
// Dispatch is an exhaustive switch over the closed component.Kind set.
// Unknown kinds render as a visible fallback naming the kind; they never
// fail the tree. The data model and the action sink are threaded explicitly
// through every recursive call and are never forked per subtree.
//
// # Uncontrolled controls
//
// Input controls (textfield, checkbox, slider, choicepicker, and the
// selected tab of a tabs node) are uncontrolled: each maintains its own
// transient value, seeded once from the resolved bound property at
// construction time. Subsequent model mutations from the agent do NOT
// re-seed the control unless the node is torn down and recreated
// (identity-keyed by id). This avoids fighting user keystrokes with
// concurrent server updates. Divergence from this behavior is a
// regression, not a cleanup opportunity.
//
// Control state lives in a StateStore keyed by component id. The session
// resets the store on surface creation and forgets individual ids when
// reconciliation replaces or removes their root nodes.
package interpreter
