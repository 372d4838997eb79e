package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talk-coach/internal/server"
)

var (
	servePort      int
	serveRateLimit bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket API server",
	Long: `Start an HTTP server exposing POST /api/analyze, POST /api/analyze/stream,
GET /api/questions, GET /api/questions/random, GET /health and the /ws WebSocket.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to config port, 3000)")
	serveCmd.Flags().BoolVar(&serveRateLimit, "rate-limit", true, "Enable per-client rate limiting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimitEnabled = serveRateLimit
	}

	return server.New(cfg, logger).Run(cmd.Context())
}
