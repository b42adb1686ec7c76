package session

import (
	"context"

	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
)

// Status is a transport-level connection status. The controller maps these
// 1:1 onto its own states.
type Status string

const (
	// StatusConnecting means the transport is establishing its connection
	StatusConnecting Status = "connecting"
	// StatusConnected means the transport is live and ordered delivery holds
	StatusConnected Status = "connected"
	// StatusDisconnected means the transport closed cleanly
	StatusDisconnected Status = "disconnected"
	// StatusError means the transport failed
	StatusError Status = "error"
)

// AllStatuses lists every status, in a fixed order. Used to zero the session
// state gauge.
var AllStatuses = []Status{StatusConnecting, StatusConnected, StatusDisconnected, StatusError}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusConnecting, StatusConnected, StatusDisconnected, StatusError:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// Event is one item on a transport's ordered event stream. The concrete
// types are StatusEvent, ErrorEvent, CreateSurfaceEvent and
// UpdateComponentsEvent; nothing else implements it.
type Event interface {
	transportEvent()
}

// StatusEvent reports a connection status change.
type StatusEvent struct {
	Status Status
}

// ErrorEvent reports a transport failure. The controller enters the error
// state and discards the active surface.
type ErrorEvent struct {
	Err error
}

// CreateSurfaceEvent carries a decoded createSurface message.
type CreateSurfaceEvent struct {
	Message *protocol.CreateSurface
}

// UpdateComponentsEvent carries a decoded updateComponents message.
type UpdateComponentsEvent struct {
	Message *protocol.UpdateComponents
}

func (StatusEvent) transportEvent()           {}
func (ErrorEvent) transportEvent()            {}
func (CreateSurfaceEvent) transportEvent()    {}
func (UpdateComponentsEvent) transportEvent() {}

// Transport is the connection contract the controller consumes. Events must
// be delivered in the order the remote agent produced them. Implementations
// close the event channel on teardown, and Disconnect must be idempotent.
//
// Connection timeout and retry are entirely the transport's concern. The
// controller only reacts to the statuses it is told.
type Transport interface {
	// Events returns the ordered event stream. Closed on teardown.
	Events() <-chan Event

	// Send delivers a userAction message to the agent. It fails when the
	// transport is not currently connected.
	Send(ctx context.Context, action *protocol.UserAction) error

	// Connected reports whether the transport is live right now.
	Connected() bool

	// Disconnect tears the connection down. Safe to call more than once.
	Disconnect() error
}
