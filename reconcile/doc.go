// Package reconcile owns the authoritative surface: the ordered root
// component list plus the shared data model.
//
// The surface is mutated through exactly two operations. ApplyCreateSurface
// replaces tree and model wholesale with no merge. ApplyUpdateComponents
// applies an ordered add/update/remove sequence against the root list,
// mutating an accumulating copy so earlier ops are visible to later ones:
// remove-then-add of an id yields presence, add-then-remove yields absence.
// An update or remove addressing an unknown id is a silent no-op.
//
// Updates address root-level siblings only. When duplicate ids exist across
// nested subtrees, update-by-id stays unambiguous at the root; nested
// addressing would need an explicit path in the protocol.
//
// The data model is untouched by component updates; only surface creation
// replaces it. Readers get defensive snapshots so the engine keeps
// exclusive ownership of its state.
package reconcile
