// Package main provides the entry point for the talk-coach CLI and API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talk_coach",
	Short: "Spoken English proficiency assessment",
	Long: `talk_coach scores a spoken-answer transcript on fluency, pronunciation, vocabulary,
grammar and coherence, maps it to a proficiency level and TOEFL speaking band, and
builds a personalised improvement plan. It runs as a CLI or as an HTTP/WebSocket API.`,
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootLogLevel   string
	rootLogFormat  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to a JSON or YAML config file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: text or json")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
