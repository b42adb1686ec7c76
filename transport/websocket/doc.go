// Package websocket implements the session.Transport contract over a
// gorilla/websocket client connection.
//
// Dial establishes the connection and starts a read loop that decodes agent
// envelopes into ordered session events, plus a ping loop for keepalive. Each
// Transport serves exactly one connection; there is no automatic reconnect.
// When the connection drops unexpectedly the transport emits an error event
// and closes its event stream, and a fresh Dial produces a fresh instance.
package websocket
