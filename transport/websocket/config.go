package websocket

import (
	"net/http"
	"strings"
	"time"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
)

// Config holds client connection settings.
type Config struct {
	// URL is the agent endpoint, ws:// or wss://
	URL string `json:"url"`

	// HandshakeTimeout bounds the dial handshake
	HandshakeTimeout time.Duration `json:"handshake_timeout"`

	// WriteTimeout bounds each outbound frame write
	WriteTimeout time.Duration `json:"write_timeout"`

	// PingInterval is the keepalive ping period
	PingInterval time.Duration `json:"ping_interval"`

	// PongTimeout is how long a missing pong marks the connection dead.
	// Must exceed PingInterval.
	PongTimeout time.Duration `json:"pong_timeout"`

	// EventBuffer is the capacity of the ordered event channel
	EventBuffer int `json:"event_buffer"`

	// Headers are sent with the handshake request, for auth tokens
	Headers http.Header `json:"-"`
}

// DefaultConfig returns production-ready client settings, URL excepted.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: 45 * time.Second,
		WriteTimeout:     10 * time.Second,
		PingInterval:     30 * time.Second,
		PongTimeout:      60 * time.Second,
		EventBuffer:      64,
	}
}

// Validate checks the configuration, filling zero durations with defaults.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "websocket", "Validate", "url is required")
	}
	if !strings.HasPrefix(c.URL, "ws://") && !strings.HasPrefix(c.URL, "wss://") {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "websocket", "Validate", "url scheme must be ws or wss")
	}

	defaults := DefaultConfig()
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = defaults.HandshakeTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.PingInterval <= 0 {
		c.PingInterval = defaults.PingInterval
	}
	if c.PongTimeout <= c.PingInterval {
		c.PongTimeout = 2 * c.PingInterval
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = defaults.EventBuffer
	}
	return nil
}
