// Package session binds a transport to the reconciliation engine and the
// component interpreter, exposing one connection-state-labeled render root.
//
// The controller is a small state machine:
//
//	connecting -> connected -> (disconnected | error)
//
// There is no automatic transition back into connecting. A fresh connection
// attempt is a fresh Controller over a fresh Transport instance.
//
// All state transitions happen on the Run goroutine, in the order the
// transport delivers events. User actions dispatched from rendered handlers
// invoke the caller's action callback synchronously, then forward a
// userAction message when the transport reports itself connected. A send
// failure is reported through the error callback and leaves the rendered
// surface untouched.
package session
