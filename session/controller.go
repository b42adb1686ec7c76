package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
	"github.com/AINative-Studio/ai-kit-a2ui/interpreter"
	"github.com/AINative-Studio/ai-kit-a2ui/metric"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
	"github.com/AINative-Studio/ai-kit-a2ui/reconcile"
	"github.com/AINative-Studio/ai-kit-a2ui/render"
)

// statusRootID names the placeholder region rendered while no live surface
// is shown.
const statusRootID = "session/status"

// Options configures a Controller. All fields are optional.
type Options struct {
	// OnAction is invoked synchronously for every user-triggered action,
	// before and independent of transport forwarding.
	OnAction func(action string, context map[string]any)

	// OnError is invoked when the controller enters the error state and
	// when forwarding a user action fails.
	OnError func(err error)

	// OnRender is invoked with a fresh render root after every event that
	// changed what should be on screen.
	OnRender func(root *render.Node)

	Logger  *slog.Logger
	Metrics *metric.Registry
}

// Controller drives one session over one transport. Create a fresh
// Controller for every connection attempt.
type Controller struct {
	transport Transport
	engine    *reconcile.Engine
	interp    *interpreter.Interpreter
	opts      Options
	logger    *slog.Logger
	metrics   *metric.Registry

	mu      sync.Mutex
	state   Status
	lastErr error
	closed  bool
	running bool
}

// New creates a controller in the connecting state. Call Run to start
// consuming transport events.
func New(transport Transport, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		transport: transport,
		engine:    reconcile.NewEngine(logger, opts.Metrics),
		interp:    interpreter.New(logger, opts.Metrics),
		opts:      opts,
		logger:    logger,
		metrics:   opts.Metrics,
	}
	c.setState(StatusConnecting)
	return c
}

// State returns the current session state.
func (c *Controller) State() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the recorded error, or nil outside the error state.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Run consumes transport events until the event channel closes, the context
// is cancelled, or Close is called. Events are processed strictly in
// delivery order. Run returns the context error on cancellation, nil
// otherwise.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.ErrSessionClosed
	}
	if c.running {
		c.mu.Unlock()
		return errors.ErrAlreadyRunning
	}
	c.running = true
	c.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			if err := c.Close(); err != nil {
				c.logger.Warn("transport teardown failed", "error", err)
			}
			return ctx.Err()

		case event, ok := <-c.transport.Events():
			if !ok {
				return nil
			}
			c.handleEvent(event)
		}
	}
}

// handleEvent applies one transport event. Events arriving after Close are
// dropped without touching released state.
func (c *Controller) handleEvent(event Event) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("event after teardown dropped")
		return
	}

	var emitErr error
	rerender := false

	switch ev := event.(type) {
	case StatusEvent:
		if !ev.Status.Valid() {
			c.logger.Warn("unknown transport status dropped", "status", ev.Status)
			break
		}
		if c.state == StatusDisconnected || c.state == StatusError {
			c.logger.Debug("status change after terminal state dropped",
				"state", c.state, "status", ev.Status)
			break
		}
		if ev.Status == c.state {
			break
		}
		// Connecting is the initial state only. A session never re-enters
		// it once the transport has reported anything else.
		if ev.Status == StatusConnecting {
			c.logger.Debug("connecting status after startup dropped", "state", c.state)
			break
		}
		c.setStateLocked(ev.Status)
		if ev.Status == StatusError {
			if c.lastErr == nil {
				c.lastErr = errors.ErrConnectionLost
			}
			c.engine.Clear()
			c.interp.States().Reset()
			emitErr = c.lastErr
		}
		rerender = true

	case ErrorEvent:
		err := ev.Err
		if err == nil {
			err = errors.ErrConnectionLost
		}
		c.lastErr = err
		c.setStateLocked(StatusError)
		c.engine.Clear()
		c.interp.States().Reset()
		if c.metrics != nil {
			c.metrics.Metrics.SessionErrors.Inc()
		}
		c.logger.Error("session entered error state", "error", err)
		emitErr = err
		rerender = true

	case CreateSurfaceEvent:
		if ev.Message == nil {
			break
		}
		c.engine.ApplyCreateSurface(ev.Message)
		c.interp.States().Reset()
		rerender = true

	case UpdateComponentsEvent:
		if ev.Message == nil {
			break
		}
		result := c.engine.ApplyUpdateComponents(ev.Message)
		stale := append(result.Replaced, result.Removed...)
		if len(stale) > 0 {
			c.interp.States().Forget(stale...)
		}
		rerender = true
	}
	c.mu.Unlock()

	if emitErr != nil && c.opts.OnError != nil {
		c.opts.OnError(emitErr)
	}
	if rerender && c.opts.OnRender != nil {
		c.opts.OnRender(c.Render())
	}
}

// Render produces the current view root: exactly one of the connecting,
// error or disconnected placeholders, or the live rendered tree.
func (c *Controller) Render() *render.Node {
	c.mu.Lock()
	state := c.state
	lastErr := c.lastErr
	c.mu.Unlock()

	switch state {
	case StatusConnecting:
		return render.New(render.PrimitiveStatus, statusRootID).
			WithProp("state", string(StatusConnecting))

	case StatusError:
		message := errors.ErrConnectionLost.Error()
		if lastErr != nil {
			message = lastErr.Error()
		}
		return render.New(render.PrimitiveStatus, statusRootID).
			WithProp("state", string(StatusError)).
			WithProp("message", message)

	case StatusDisconnected:
		return render.New(render.PrimitiveStatus, statusRootID).
			WithProp("state", string(StatusDisconnected))
	}

	surface, ok := c.engine.Snapshot()
	if !ok {
		// Connected but nothing pushed yet
		return render.New(render.PrimitiveBox, "session/surface")
	}

	root := render.New(render.PrimitiveBox, surface.ID)
	for _, child := range c.interp.Render(surface.Components, surface.DataModel, c.DispatchAction) {
		root.Append(child)
	}
	return root
}

// DispatchAction handles one user-triggered action. The caller callback runs
// first, synchronously. Then, if the transport reports itself connected, a
// userAction message is forwarded. A forwarding failure is reported through
// OnError and leaves the session state and rendered surface untouched.
//
// DispatchAction is the sink threaded through every rendered control.
func (c *Controller) DispatchAction(action string, actionContext map[string]any) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if c.opts.OnAction != nil {
		c.opts.OnAction(action, actionContext)
	}
	if c.metrics != nil {
		c.metrics.Metrics.ActionsDispatched.WithLabelValues(action).Inc()
	}

	if !c.transport.Connected() {
		return
	}

	// Dispatch has no caller-supplied context; transports apply their own
	// write deadlines.
	message := protocol.NewUserAction(c.engine.SurfaceID(), action, actionContext, c.engine.DataModel())
	if err := c.transport.Send(context.Background(), message); err != nil {
		wrapped := errors.WrapTransient(err, "session", "DispatchAction", "forward user action")
		if c.metrics != nil {
			c.metrics.Metrics.ActionSendFailures.Inc()
		}
		c.logger.Warn("user action forwarding failed", "action", action, "error", err)
		if c.opts.OnError != nil {
			c.opts.OnError(wrapped)
		}
	}
}

// Close releases the transport exactly once. Safe to call from any state and
// more than once; later transport events are ignored.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	if c.state != StatusError {
		c.setStateLocked(StatusDisconnected)
	}
	c.engine.Clear()
	c.interp.States().Reset()
	c.mu.Unlock()

	return c.transport.Disconnect()
}

func (c *Controller) setState(state Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setStateLocked(state)
}

func (c *Controller) setStateLocked(state Status) {
	c.state = state
	if state != StatusError {
		c.lastErr = nil
	}
	if c.metrics != nil {
		all := make([]string, len(AllStatuses))
		for i, s := range AllStatuses {
			all[i] = string(s)
		}
		c.metrics.Metrics.SetSessionState(string(state), all)
	}
	c.logger.Debug("session state changed", "state", state)
}
