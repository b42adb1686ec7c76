// Package natstransport implements the session.Transport contract over NATS
// core pub/sub.
//
// Inbound agent messages arrive on the surface subject; outbound userAction
// messages are published to the action subject. Short network hiccups are
// absorbed by the NATS client's own reconnect handling without disturbing
// the session; only a permanently closed connection surfaces as an error
// event.
package natstransport
