package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
	"github.com/AINative-Studio/ai-kit-a2ui/metric"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
	"github.com/AINative-Studio/ai-kit-a2ui/session"
)

// Transport is a websocket client implementing session.Transport. Create one
// with Dial; a Transport serves exactly one connection.
type Transport struct {
	config  Config
	logger  *slog.Logger
	metrics *metric.Registry

	conn      *websocket.Conn
	writeMu   sync.Mutex
	events    chan session.Event
	connected atomic.Bool
	shutdown  chan struct{}
	closeOnce sync.Once
}

var _ session.Transport = (*Transport)(nil)

// Dial connects to the agent endpoint and starts the read and keepalive
// loops. On success the event stream already carries the connected status.
// logger and metrics may be nil.
func Dial(ctx context.Context, config Config, logger *slog.Logger, metrics *metric.Registry) (*Transport, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	dialer := &websocket.Dialer{
		HandshakeTimeout: config.HandshakeTimeout,
	}
	conn, resp, err := dialer.DialContext(ctx, config.URL, config.Headers)
	if err != nil {
		if resp != nil {
			logger.Warn("websocket handshake rejected", "url", config.URL, "status", resp.StatusCode)
		}
		return nil, errors.WrapTransient(err, "websocket", "Dial", "connect to agent endpoint")
	}

	t := &Transport{
		config:   config,
		logger:   logger,
		metrics:  metrics,
		conn:     conn,
		events:   make(chan session.Event, config.EventBuffer),
		shutdown: make(chan struct{}),
	}
	t.connected.Store(true)
	t.events <- session.StatusEvent{Status: session.StatusConnected}

	go t.readLoop()
	go t.pingLoop()
	return t, nil
}

// Events returns the ordered event stream. Closed when the connection ends.
func (t *Transport) Events() <-chan session.Event {
	return t.events
}

// Connected reports whether the connection is currently live.
func (t *Transport) Connected() bool {
	return t.connected.Load()
}

// Send wraps the action in an envelope and writes it as one text frame.
func (t *Transport) Send(ctx context.Context, action *protocol.UserAction) error {
	if !t.connected.Load() {
		return errors.WrapTransient(errors.ErrNotConnected, "websocket", "Send", "write user action")
	}

	envelope, err := protocol.NewEnvelope(protocol.TypeUserAction, action)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return errors.WrapInvalid(err, "websocket", "Send", "marshal envelope")
	}

	deadline := time.Now().Add(t.config.WriteTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	_ = t.conn.SetWriteDeadline(deadline)
	if err := t.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return errors.WrapTransient(err, "websocket", "Send", "write user action")
	}

	if t.metrics != nil {
		t.metrics.Metrics.MessagesSent.Inc()
	}
	return nil
}

// Disconnect closes the connection exactly once. The read loop then emits
// the disconnected status and closes the event stream.
func (t *Transport) Disconnect() error {
	t.closeOnce.Do(func() {
		close(t.shutdown)
		t.connected.Store(false)

		t.writeMu.Lock()
		_ = t.conn.SetWriteDeadline(time.Now().Add(time.Second))
		_ = t.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		t.writeMu.Unlock()

		_ = t.conn.Close()
	})
	return nil
}

// readLoop is the single producer of the event stream after Dial. It decodes
// frames into events until the connection ends, then reports how it ended
// and closes the stream.
func (t *Transport) readLoop() {
	defer close(t.events)

	_ = t.conn.SetReadDeadline(time.Now().Add(t.config.PongTimeout))
	t.conn.SetPongHandler(func(string) error {
		return t.conn.SetReadDeadline(time.Now().Add(t.config.PongTimeout))
	})

	for {
		_, data, err := t.conn.ReadMessage()
		if err != nil {
			t.connected.Store(false)
			select {
			case <-t.shutdown:
				t.events <- session.StatusEvent{Status: session.StatusDisconnected}
			default:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					t.logger.Info("websocket closed by remote")
					t.events <- session.StatusEvent{Status: session.StatusDisconnected}
					return
				}
				t.logger.Warn("websocket connection lost", "error", err)
				t.events <- session.ErrorEvent{
					Err: errors.WrapTransient(err, "websocket", "readLoop", "connection lost"),
				}
			}
			return
		}

		if event := t.decodeFrame(data); event != nil {
			t.events <- event
		}
	}
}

// decodeFrame turns one inbound frame into an event, or nil for frames the
// session has no use for. Malformed payloads become error events so the
// session can surface them instead of crashing the render path.
func (t *Transport) decodeFrame(data []byte) session.Event {
	event, err := session.DecodeEventFrame(data)
	if err != nil {
		if errors.Is(err, errors.ErrUnknownMessage) {
			t.logger.Warn("unknown message type dropped", "error", err)
			return nil
		}
		t.logger.Warn("undecodable frame", "error", err)
		return session.ErrorEvent{Err: err}
	}

	switch event.(type) {
	case session.CreateSurfaceEvent:
		t.countReceived(protocol.TypeCreateSurface)
	case session.UpdateComponentsEvent:
		t.countReceived(protocol.TypeUpdateComponents)
	case session.ErrorEvent:
		t.countReceived(protocol.TypeError)
	}
	return event
}

// pingLoop keeps the connection alive. A failed ping is left for the read
// loop to notice through the missed pong deadline.
func (t *Transport) pingLoop() {
	ticker := time.NewTicker(t.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.shutdown:
			return
		case <-ticker.C:
			deadline := time.Now().Add(t.config.WriteTimeout)
			if err := t.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				t.logger.Debug("keepalive ping failed", "error", err)
				return
			}
		}
	}
}

func (t *Transport) countReceived(msgType string) {
	if t.metrics != nil {
		t.metrics.Metrics.MessagesReceived.WithLabelValues(msgType).Inc()
	}
}
