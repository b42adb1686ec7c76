// Package main implements the a2ui client CLI. It connects to a remote
// agent over the configured transport, runs one session, and prints each
// rendered surface to stdout as a plain-text tree.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/AINative-Studio/ai-kit-a2ui/config"
	"github.com/AINative-Studio/ai-kit-a2ui/metric"
	"github.com/AINative-Studio/ai-kit-a2ui/render"
	"github.com/AINative-Studio/ai-kit-a2ui/session"
	"github.com/AINative-Studio/ai-kit-a2ui/transport/natstransport"
	"github.com/AINative-Studio/ai-kit-a2ui/transport/websocket"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "a2ui"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Client failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	cfg, err := loadConfiguration(cliCfg)
	if err != nil {
		return err
	}
	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	logger := setupLogger(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	logger.Info("Starting a2ui client",
		"transport", cfg.Transport,
		"config_path", cliCfg.ConfigPath)

	registry := metric.NewRegistry()
	var metricsServer *metric.Server
	if cfg.Metrics.Enabled {
		metricsServer = metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, registry)
		go func() {
			// Start blocks until Stop
			if err := metricsServer.Start(); err != nil {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() { _ = metricsServer.Stop() }()
		logger.Info("Metrics server listening", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	transport, err := dialTransport(ctx, cfg, logger, registry)
	if err != nil {
		return err
	}

	controller := session.New(transport, session.Options{
		Logger:  logger,
		Metrics: registry,
		OnRender: func(root *render.Node) {
			fmt.Println("----")
			_ = render.WriteText(os.Stdout, root)
		},
		OnAction: func(action string, actionContext map[string]any) {
			logger.Info("User action dispatched", "action", action, "context", actionContext)
		},
		OnError: func(err error) {
			logger.Error("Session error", "error", err)
		},
	})
	defer func() { _ = controller.Close() }()

	if err := controller.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("Session ended", "state", controller.State())
	return nil
}

// loadConfiguration layers CLI flags over the config file and environment.
func loadConfiguration(cliCfg *CLIConfig) (*config.Config, error) {
	if cliCfg.Transport != "" {
		_ = os.Setenv("A2UI_TRANSPORT", cliCfg.Transport)
	}
	if cliCfg.URL != "" {
		_ = os.Setenv("A2UI_URL", cliCfg.URL)
	}
	if cliCfg.LogLevel != "" {
		_ = os.Setenv("A2UI_LOG_LEVEL", cliCfg.LogLevel)
	}
	if cliCfg.LogFormat != "" {
		_ = os.Setenv("A2UI_LOG_FORMAT", cliCfg.LogFormat)
	}
	if cliCfg.MetricsPort > 0 {
		_ = os.Setenv("A2UI_METRICS_PORT", fmt.Sprintf("%d", cliCfg.MetricsPort))
	}
	return config.Load(cliCfg.ConfigPath)
}

func dialTransport(ctx context.Context, cfg *config.Config, logger *slog.Logger, registry *metric.Registry) (session.Transport, error) {
	switch cfg.Transport {
	case config.TransportNATS:
		return natstransport.Connect(ctx, cfg.NATS, logger, registry)
	default:
		return websocket.Dial(ctx, cfg.WebSocket, logger, registry)
	}
}
