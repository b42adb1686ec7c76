// Package a2ui renders declarative, agent-produced UI descriptions into
// interactive widgets and routes user interactions back to the originating
// agent as structured action events.
//
// # Architecture
//
// The core is a small stack of packages, leaf to root:
//
//	┌─────────────────────────────────────┐
//	│        SessionController            │  Transport lifecycle FSM,
//	│        (session package)            │  action dispatch
//	└─────────────────────────────────────┘
//	           ↓ applies messages via
//	┌─────────────────────────────────────┐
//	│       ReconciliationEngine          │  Authoritative (tree, model)
//	│       (reconcile package)           │  surface state
//	└─────────────────────────────────────┘
//	           ↓ rendered by
//	┌─────────────────────────────────────┐
//	│      ComponentInterpreter           │  Recursive kind dispatch,
//	│      (interpreter package)          │  local control state
//	└─────────────────────────────────────┘
//	           ↓ resolves values via
//	┌─────────────────────────────────────┐
//	│    PropertyBinder / PointerResolver │  JSON-Pointer data binding
//	│    (binding, pointer packages)      │  with literal fallback
//	└─────────────────────────────────────┘
//
// An agent pushes a surface (a tree of typed component nodes plus a shared
// data model) over a persistent connection. The session controller applies
// createSurface and updateComponents messages through the reconciliation
// engine, re-renders through the interpreter, and exposes the result as a
// toolkit-neutral render tree (render package). User interactions flow back
// through the same controller as userAction messages.
//
// Transports are pluggable behind the session.Transport contract; reference
// implementations over WebSocket (transport/websocket) and NATS
// (transport/natstransport) are included. The protocol package defines the
// wire message shapes and validates incoming payloads against embedded JSON
// Schemas.
//
// The interpreter deliberately treats input controls as uncontrolled: each
// control seeds its working value once from the bound data model and then
// owns it until the node's identity changes. Agent-pushed model updates never
// fight live user keystrokes.
package a2ui
