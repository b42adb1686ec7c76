// Package errors provides standardized error handling patterns for a2ui
// components.
//
// # Overview
//
// The package implements a three-class error classification system for the
// rendering core and its transports: Transient (temporary, retryable by the
// transport layer), Invalid (bad input or configuration, non-retryable), and
// Fatal (unrecoverable, tear the session down).
//
// Two failure families in a2ui are deliberately NOT errors and never reach
// this package:
//
//   - Binding resolution misses: a pointer that resolves to nothing falls
//     back silently to the literal string (see the binding package).
//   - Update-by-id misses: a reconciliation update addressing an unknown
//     component id is a silent no-op (see the reconcile package).
//
// Everything else (transport failures, malformed agent payloads, send
// failures) is classified here and surfaces as a session-level error state
// rather than propagating out of the render path.
//
// # Error Wrapping Pattern
//
// All wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Controller", "dispatch", "send action")
//	errors.WrapInvalid(err, "Envelope", "Decode", "parse payload")
//	errors.WrapFatal(err, "Client", "Dial", "open connection")
//
// The generic Wrap() preserves the original error's classification.
//
// # Integration with errors.Is/As
//
// All error types support standard library inspection; classification is
// preserved through wrapping chains:
//
//	wrapped := errors.WrapTransient(errors.ErrNotConnected, "Client", "Send", "write")
//	errors.Is(wrapped, errors.ErrNotConnected) // true
//	errors.IsTransient(wrapped)                // true
package errors
