// Package protocol defines the wire message shapes exchanged with a remote
// agent over a persistent connection.
//
// Every frame is an Envelope carrying a type discriminator, a unique id, a
// timestamp, and a raw payload. Inbound payloads (createSurface,
// updateComponents) are validated against embedded JSON Schemas before
// decoding, so malformed or forward-incompatible agent output surfaces as a
// classified protocol error instead of a partially-decoded surface.
//
// Outbound traffic is the single userAction message emitted when a rendered
// control fires.
package protocol
