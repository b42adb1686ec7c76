package natstransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/nats-io/nats.go"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
	"github.com/AINative-Studio/ai-kit-a2ui/metric"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
	"github.com/AINative-Studio/ai-kit-a2ui/session"
)

// Transport is a NATS-backed session.Transport. Create one with Connect;
// a Transport serves exactly one session.
type Transport struct {
	config  Config
	logger  *slog.Logger
	metrics *metric.Registry

	conn *nats.Conn
	sub  *nats.Subscription

	// emitMu serializes event emission against teardown. NATS invokes the
	// subscription handler and the connection handlers on different
	// goroutines, and nothing may send on a closed channel.
	emitMu    sync.Mutex
	events    chan session.Event
	closed    bool
	connected atomic.Bool
	closeOnce sync.Once
}

var _ session.Transport = (*Transport)(nil)

// Connect dials the NATS server and subscribes to the surface subject. On
// success the event stream already carries the connected status. logger and
// metrics may be nil.
func Connect(ctx context.Context, config Config, logger *slog.Logger, metrics *metric.Registry) (*Transport, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	t := &Transport{
		config:  config,
		logger:  logger,
		metrics: metrics,
		events:  make(chan session.Event, config.EventBuffer),
	}

	conn, err := nats.Connect(config.URL,
		nats.Name(config.Name),
		nats.Timeout(config.ConnectTimeout),
		nats.MaxReconnects(config.MaxReconnects),
		nats.ReconnectWait(config.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats connection interrupted", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			t.onClosed(nc.LastError())
		}),
	)
	if err != nil {
		return nil, errors.WrapTransient(err, "natstransport", "Connect", "connect to nats")
	}
	t.conn = conn

	sub, err := conn.Subscribe(config.SurfaceSubject, t.handleMessage)
	if err != nil {
		conn.Close()
		return nil, errors.WrapTransient(err, "natstransport", "Connect", "subscribe to surface subject")
	}
	t.sub = sub
	t.connected.Store(true)

	t.emit(session.StatusEvent{Status: session.StatusConnected})
	logger.Info("nats transport connected",
		"url", config.URL,
		"surface_subject", config.SurfaceSubject,
		"action_subject", config.ActionSubject)
	return t, nil
}

// Events returns the ordered event stream. Closed on teardown.
func (t *Transport) Events() <-chan session.Event {
	return t.events
}

// Connected reports whether the NATS connection is currently live.
func (t *Transport) Connected() bool {
	return t.connected.Load() && t.conn.IsConnected()
}

// Send publishes the action to the action subject as one enveloped message.
func (t *Transport) Send(_ context.Context, action *protocol.UserAction) error {
	if !t.Connected() {
		return errors.WrapTransient(errors.ErrNotConnected, "natstransport", "Send", "publish user action")
	}

	envelope, err := protocol.NewEnvelope(protocol.TypeUserAction, action)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return errors.WrapInvalid(err, "natstransport", "Send", "marshal envelope")
	}

	if err := t.conn.Publish(t.config.ActionSubject, data); err != nil {
		return errors.WrapTransient(err, "natstransport", "Send", "publish user action")
	}
	if t.metrics != nil {
		t.metrics.Metrics.MessagesSent.Inc()
	}
	return nil
}

// Disconnect unsubscribes and closes the connection exactly once. The event
// stream ends with the disconnected status.
func (t *Transport) Disconnect() error {
	t.closeOnce.Do(func() {
		t.connected.Store(false)

		if t.sub != nil {
			_ = t.sub.Unsubscribe()
		}

		t.emitMu.Lock()
		if !t.closed {
			t.closed = true
			t.events <- session.StatusEvent{Status: session.StatusDisconnected}
			close(t.events)
		}
		t.emitMu.Unlock()

		// ClosedHandler fires after this but finds the stream closed
		t.conn.Close()
	})
	return nil
}

// handleMessage decodes one inbound subject message into an event. NATS
// delivers subscription messages sequentially, preserving order.
func (t *Transport) handleMessage(msg *nats.Msg) {
	event, err := session.DecodeEventFrame(msg.Data)
	if err != nil {
		if errors.Is(err, errors.ErrUnknownMessage) {
			t.logger.Warn("unknown message type dropped", "subject", msg.Subject, "error", err)
			return
		}
		t.logger.Warn("undecodable message", "subject", msg.Subject, "error", err)
		t.emit(session.ErrorEvent{Err: err})
		return
	}

	if t.metrics != nil {
		t.metrics.Metrics.MessagesReceived.WithLabelValues(eventType(event)).Inc()
	}
	t.emit(event)
}

// onClosed reacts to the connection closing for good, which on an intact
// transport means the reconnect budget ran out.
func (t *Transport) onClosed(lastErr error) {
	t.connected.Store(false)

	err := lastErr
	if err == nil {
		err = errors.ErrConnectionLost
	}

	t.emitMu.Lock()
	defer t.emitMu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	t.logger.Warn("nats connection closed", "error", err)
	t.events <- session.ErrorEvent{
		Err: errors.WrapTransient(err, "natstransport", "onClosed", "connection lost"),
	}
	close(t.events)
}

func (t *Transport) emit(event session.Event) {
	t.emitMu.Lock()
	defer t.emitMu.Unlock()
	if t.closed {
		return
	}
	t.events <- event
}

func eventType(event session.Event) string {
	switch event.(type) {
	case session.CreateSurfaceEvent:
		return protocol.TypeCreateSurface
	case session.UpdateComponentsEvent:
		return protocol.TypeUpdateComponents
	case session.ErrorEvent:
		return protocol.TypeError
	default:
		return "status"
	}
}
