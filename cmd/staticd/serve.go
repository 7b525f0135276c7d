package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staticd/internal/api"
	"staticd/internal/config"
	"staticd/internal/logging"

	"github.com/spf13/cobra"
)

var (
	servePort int
	serveHost string
	serveRoot string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the static file server",
	Long: `Start the staticd HTTP server. Request paths are resolved against the
content root; /api/health and /api/info return JSON status payloads.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
	serveCmd.Flags().StringVar(&serveRoot, "root", "", "Content root directory (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	// CLI flags take precedence over config file and environment
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if serveRoot != "" {
		cfg.Content.Root = serveRoot
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Format: logging.ParseFormat(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	// Setup graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("staticd listening on http://%s\n", cfg.ServerAddress())
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
	case sig := <-shutdown:
		logger.Info("Received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during shutdown", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}

		logger.Info("Server stopped gracefully", nil)
	}

	return nil
}
