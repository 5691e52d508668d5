package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kozaktomas/journal-press/internal/config"
	"github.com/kozaktomas/journal-press/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Journal Press web server.
The server provides an HTTP API for browsing notebooks, starting export
jobs, following their progress over SSE, and downloading finished PDFs.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (defaults to WEB_PORT)")
	serveCmd.Flags().String("host", "", "Host to bind to (defaults to WEB_HOST)")
}

// resolveServeHostPort resolves host and port from flags, falling back to config.
func resolveServeHostPort(cmd *cobra.Command, cfg *config.Config) (string, int) {
	host := mustGetString(cmd, "host")
	if host == "" {
		host = cfg.Web.Host
	}
	port := mustGetInt(cmd, "port")
	if port == 0 {
		port = cfg.Web.Port
	}
	return host, port
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	st := openStore(cfg)
	host, port := resolveServeHostPort(cmd, cfg)

	server := web.NewServer(cfg, st, host, port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting Journal Press API on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
