// Package main is the entry point for the MCP server. It loads and validates
// configuration, constructs the root logger, and waits for a shutdown signal.
// The transport layer consuming this configuration plugs in here.
//
// Nothing in this process may write to stdout: stdout is reserved for the
// MCP protocol stream, so diagnostics (including startup errors) go to
// stderr only.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spryker-community/spryker-mcp-server/internal/platform/config"
	"github.com/spryker-community/spryker-mcp-server/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Bootstrap: configuration is constructed exactly once and passed by
	// reference to every consumer; a validation failure aborts startup.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New("server", logging.WithLevel(logging.ParseLevel(cfg.Server.LogLevel)))

	logger.Info("configuration loaded", logging.Fields{
		"name":        cfg.Server.Name,
		"version":     cfg.Server.Version,
		"environment": cfg.Server.Environment,
		"transport":   cfg.MCP.Transport,
		"api_base":    cfg.API.BaseURL,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("received shutdown signal", logging.Fields{"signal": sig.String()})
	logger.Info("shutdown complete")
	return nil
}
