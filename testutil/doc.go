// Package testutil provides test utilities for a2ui packages.
//
// MockTransport is an in-memory session.Transport: tests push status
// changes, surfaces and errors through it and inspect every userAction it
// was asked to send, without a websocket or NATS server. SampleSurface and
// SampleModel provide a small realistic component tree and data model shared
// by session, transport and CLI tests.
package testutil
