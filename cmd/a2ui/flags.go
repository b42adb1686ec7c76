package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	URL         string
	Transport   string
	LogLevel    string
	LogFormat   string
	MetricsPort int
	ShowVersion bool
	ShowHelp    bool
	Validate    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("A2UI_CONFIG", ""),
		"Path to configuration file (env: A2UI_CONFIG)")

	flag.StringVar(&cfg.URL, "url",
		getEnv("A2UI_URL", ""),
		"Agent endpoint, overrides the config file (env: A2UI_URL)")

	flag.StringVar(&cfg.Transport, "transport",
		getEnv("A2UI_TRANSPORT", ""),
		"Transport: websocket or nats (env: A2UI_TRANSPORT)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("A2UI_LOG_LEVEL", ""),
		"Log level: debug, info, warn, error (env: A2UI_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("A2UI_LOG_FORMAT", ""),
		"Log format: json, text (env: A2UI_LOG_FORMAT)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("A2UI_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: A2UI_METRICS_PORT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	flag.Usage = printDetailedHelp
	flag.Parse()
	return cfg
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - agent-driven UI client

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Connect to an agent over websocket
  %s --url=wss://agent.example.com/ui

  # Connect through NATS with a config file
  %s --config=/etc/a2ui/config.json --transport=nats

  # Debug a session with metrics
  %s --url=ws://localhost:8080/ui --log-level=debug --metrics-port=9090

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var parsed int
		if _, err := fmt.Sscanf(value, "%d", &parsed); err == nil {
			return parsed
		}
	}
	return defaultValue
}
