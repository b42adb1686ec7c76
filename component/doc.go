// Package component defines the declarative UI tree pushed by an agent:
// typed component nodes, the closed kind set, and property access helpers.
//
// A Node is one entry in the tree. Its Kind selects which primitive or
// behavior an interpreter renders; its Properties carry kind-specific
// values that may be literals or pointer bindings into the surface data
// model; its Children are exclusively owned by the node and destroyed with
// it.
//
// The kind set is closed. Dispatch over it happens in the interpreter
// package with an exhaustive switch, so adding a kind here is a deliberate,
// compiler-visible act. Unknown kinds arriving off the wire are preserved
// verbatim and render as a diagnosable fallback rather than failing.
package component
