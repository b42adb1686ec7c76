package natstransport

import (
	"time"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
)

// Config holds NATS connection and subject settings.
type Config struct {
	// URL is the NATS server address, nats://host:port
	URL string `json:"url"`

	// SurfaceSubject carries inbound agent messages
	SurfaceSubject string `json:"surface_subject"`

	// ActionSubject carries outbound userAction messages
	ActionSubject string `json:"action_subject"`

	// Name labels the connection on the server
	Name string `json:"name"`

	// MaxReconnects bounds the client's internal reconnect attempts,
	// -1 for unlimited
	MaxReconnects int `json:"max_reconnects"`

	// ReconnectWait is the pause between reconnect attempts
	ReconnectWait time.Duration `json:"reconnect_wait"`

	// ConnectTimeout bounds the initial connection attempt
	ConnectTimeout time.Duration `json:"connect_timeout"`

	// EventBuffer is the capacity of the ordered event channel
	EventBuffer int `json:"event_buffer"`
}

// DefaultConfig returns production-ready settings, URL and subjects excepted.
func DefaultConfig() Config {
	return Config{
		Name:           "a2ui-client",
		MaxReconnects:  10,
		ReconnectWait:  2 * time.Second,
		ConnectTimeout: 10 * time.Second,
		EventBuffer:    64,
	}
}

// Validate checks the configuration, filling zero values with defaults.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "natstransport", "Validate", "url is required")
	}
	if c.SurfaceSubject == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "natstransport", "Validate", "surface subject is required")
	}
	if c.ActionSubject == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "natstransport", "Validate", "action subject is required")
	}

	defaults := DefaultConfig()
	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.MaxReconnects == 0 {
		c.MaxReconnects = defaults.MaxReconnects
	}
	if c.ReconnectWait <= 0 {
		c.ReconnectWait = defaults.ReconnectWait
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaults.ConnectTimeout
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = defaults.EventBuffer
	}
	return nil
}
