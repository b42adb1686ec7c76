package testutil

import (
	"context"
	"sync"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
	"github.com/AINative-Studio/ai-kit-a2ui/session"
)

// MockTransport is an in-memory session.Transport for testing. Tests drive
// the event stream with Push* methods and inspect outbound messages with
// Sent. Thread-safe for concurrent use.
type MockTransport struct {
	mu sync.Mutex

	// SendFunc overrides Send. Leave nil for the default, which records
	// the message and succeeds while connected.
	SendFunc func(ctx context.Context, action *protocol.UserAction) error

	events    chan session.Event
	sent      []*protocol.UserAction
	connected bool
	closed    bool

	// Call counts for verification
	SendCalls       int
	DisconnectCalls int
}

// NewMockTransport creates a disconnected mock with a buffered event stream.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		events: make(chan session.Event, 64),
	}
}

// Events returns the ordered event stream.
func (m *MockTransport) Events() <-chan session.Event {
	return m.events
}

// Send records the outbound message. It fails when the mock is not
// connected, matching real transport behavior.
func (m *MockTransport) Send(ctx context.Context, action *protocol.UserAction) error {
	m.mu.Lock()
	m.SendCalls++
	sendFunc := m.SendFunc
	connected := m.connected
	m.mu.Unlock()

	if sendFunc != nil {
		return sendFunc(ctx, action)
	}
	if !connected {
		return errors.ErrNotConnected
	}

	m.mu.Lock()
	m.sent = append(m.sent, action)
	m.mu.Unlock()
	return nil
}

// Connected reports the mock connection flag.
func (m *MockTransport) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Disconnect closes the event stream once and counts every call.
func (m *MockTransport) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DisconnectCalls++
	if m.closed {
		return nil
	}
	m.closed = true
	m.connected = false
	close(m.events)
	return nil
}

// Sent returns a copy of every message Send recorded.
func (m *MockTransport) Sent() []*protocol.UserAction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*protocol.UserAction, len(m.sent))
	copy(out, m.sent)
	return out
}

// PushStatus emits a status change and mirrors it onto the connection flag.
func (m *MockTransport) PushStatus(status session.Status) {
	m.mu.Lock()
	m.connected = status == session.StatusConnected
	closed := m.closed
	m.mu.Unlock()

	if closed {
		return
	}
	m.events <- session.StatusEvent{Status: status}
}

// PushError emits a transport error event.
func (m *MockTransport) PushError(err error) {
	if m.isClosed() {
		return
	}
	m.events <- session.ErrorEvent{Err: err}
}

// PushCreateSurface emits a createSurface event.
func (m *MockTransport) PushCreateSurface(msg *protocol.CreateSurface) {
	if m.isClosed() {
		return
	}
	m.events <- session.CreateSurfaceEvent{Message: msg}
}

// PushUpdateComponents emits an updateComponents event.
func (m *MockTransport) PushUpdateComponents(msg *protocol.UpdateComponents) {
	if m.isClosed() {
		return
	}
	m.events <- session.UpdateComponentsEvent{Message: msg}
}

func (m *MockTransport) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
