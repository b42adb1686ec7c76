package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
	"github.com/AINative-Studio/ai-kit-a2ui/transport/natstransport"
	"github.com/AINative-Studio/ai-kit-a2ui/transport/websocket"
)

// TransportKind selects which transport the client dials.
type TransportKind string

const (
	// TransportWebSocket dials the agent over a websocket connection
	TransportWebSocket TransportKind = "websocket"
	// TransportNATS reaches the agent through NATS subjects
	TransportNATS TransportKind = "nats"
)

// Config is the full client configuration.
type Config struct {
	// Transport selects websocket or nats
	Transport TransportKind `json:"transport"`

	Logging Logging `json:"logging"`
	Metrics Metrics `json:"metrics"`

	WebSocket websocket.Config     `json:"websocket"`
	NATS      natstransport.Config `json:"nats"`
}

// Logging controls slog handler setup.
type Logging struct {
	// Level is debug, info, warn or error
	Level string `json:"level"`
	// Format is json or text
	Format string `json:"format"`
}

// Metrics controls the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `json:"enabled"`
	Port    int    `json:"port"`
	Path    string `json:"path"`
}

// DefaultConfig returns the built-in defaults. The websocket URL and NATS
// settings still need filling before Validate passes for that transport.
func DefaultConfig() *Config {
	return &Config{
		Transport: TransportWebSocket,
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Metrics: Metrics{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
		WebSocket: websocket.DefaultConfig(),
		NATS:      natstransport.DefaultConfig(),
	}
}

// Validate checks the selected transport's settings and the shared fields.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportWebSocket:
		if err := c.WebSocket.Validate(); err != nil {
			return err
		}
	case TransportNATS:
		if err := c.NATS.Validate(); err != nil {
			return err
		}
	default:
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"unknown transport "+string(c.Transport))
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"unknown log level "+c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"unknown log format "+c.Logging.Format)
	}

	if c.Metrics.Enabled {
		if c.Metrics.Port <= 0 || c.Metrics.Port > 65535 {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
				"metrics port out of range")
		}
		if c.Metrics.Path == "" {
			c.Metrics.Path = "/metrics"
		}
	}
	return nil
}

// Load builds a configuration from defaults, an optional JSON file, and
// A2UI_* environment overrides, then validates it. path may be empty.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile overlays a JSON file onto the current values. Duration fields
// written as strings are converted before unmarshaling.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapInvalid(err, "config", "mergeFile", "read "+path)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WrapInvalid(err, "config", "mergeFile", "parse "+path)
	}
	parseDurations(raw)

	processed, err := json.Marshal(raw)
	if err != nil {
		return errors.WrapInvalid(err, "config", "mergeFile", "normalize "+path)
	}
	if err := json.Unmarshal(processed, c); err != nil {
		return errors.WrapInvalid(err, "config", "mergeFile", "decode "+path)
	}
	return nil
}

// durationFields lists the section/field pairs that accept duration strings
// in the JSON form.
var durationFields = map[string][]string{
	"websocket": {"handshake_timeout", "write_timeout", "ping_interval", "pong_timeout"},
	"nats":      {"reconnect_wait", "connect_timeout"},
}

func parseDurations(raw map[string]any) {
	for section, fields := range durationFields {
		obj, ok := raw[section].(map[string]any)
		if !ok {
			continue
		}
		for _, field := range fields {
			s, ok := obj[field].(string)
			if !ok {
				continue
			}
			if d, err := time.ParseDuration(s); err == nil {
				obj[field] = d.Nanoseconds()
			}
		}
	}
}

// applyEnvOverrides layers A2UI_* environment variables on top of file and
// default values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("A2UI_TRANSPORT"); v != "" {
		c.Transport = TransportKind(v)
	}
	if v := os.Getenv("A2UI_URL"); v != "" {
		switch c.Transport {
		case TransportNATS:
			c.NATS.URL = v
		default:
			c.WebSocket.URL = v
		}
	}
	if v := os.Getenv("A2UI_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("A2UI_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("A2UI_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Metrics.Enabled = true
			c.Metrics.Port = port
		}
	}
}
