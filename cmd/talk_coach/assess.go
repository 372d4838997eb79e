package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/talk-coach/internal/config"
	"github.com/jonathan/talk-coach/internal/ingestion"
	"github.com/jonathan/talk-coach/internal/observability"
	"github.com/jonathan/talk-coach/internal/pipeline"
	"github.com/jonathan/talk-coach/internal/questions"
	"github.com/jonathan/talk-coach/internal/schemas"
	"github.com/jonathan/talk-coach/internal/speechrate"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess one transcript and print its report",
	Long: `Loads a transcript (plain text, HTML page or WebVTT/SRT captions), resolves the
recording duration, and produces a report with speech analysis, TOEFL-style scores
and an improvement plan.

The duration comes from --duration, then from the header of a WAV file given with
--audio, and otherwise from the configured policy estimate.`,
	RunE: runAssess,
}

var (
	assessTranscript string
	assessQuestion   string
	assessDuration   float64
	assessAudio      string
	assessOutput     string
	assessFormat     string
	assessVerbose    bool
)

func init() {
	assessCmd.Flags().StringVarP(&assessTranscript, "transcript", "t", "", "Path to transcript file (required)")
	assessCmd.Flags().StringVarP(&assessQuestion, "question", "q", "", "Question that was answered, as text or a question bank ID")
	assessCmd.Flags().Float64VarP(&assessDuration, "duration", "d", 0, "Recording length in seconds (optional)")
	assessCmd.Flags().StringVarP(&assessAudio, "audio", "a", "", "Path to the WAV recording, used for its duration (optional)")
	assessCmd.Flags().StringVarP(&assessOutput, "out", "o", "", "Path to output report file (defaults to stdout)")
	assessCmd.Flags().StringVarP(&assessFormat, "format", "f", formatJSON, "Output format: json or yaml")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := assessCmd.MarkFlagRequired("transcript"); err != nil {
		panic(fmt.Sprintf("failed to mark transcript flag as required: %v", err))
	}

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = assessVerbose
	}
	if assessDuration < 0 {
		return fmt.Errorf("--duration must be non-negative, got %g", assessDuration)
	}

	text, meta, err := ingestion.LoadTranscript(assessTranscript, cfg.MaxTranscriptBytes)
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"source": meta.Source,
		"format": meta.Format,
		"bytes":  meta.Bytes,
		"hash":   meta.Hash,
	}).Debug("transcript loaded")

	var audio []byte
	if assessAudio != "" {
		audio, err = readAudio(assessAudio, cfg.MaxBodyBytes)
		if err != nil {
			return err
		}
	}

	assessor := &pipeline.Assessor{
		Durations: speechrate.DefaultChain(cfg.DefaultDurationSeconds),
		Logger:    logger,
	}
	report, err := assessor.Assess(pipeline.Input{
		Transcript:      text,
		DurationSeconds: assessDuration,
		Audio:           audio,
		Question:        resolveQuestion(assessQuestion),
		SessionID:       uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	data, err := encodeReport(report, formatJSON)
	if err != nil {
		return err
	}
	if err := schemas.ValidateReport(data); err != nil {
		// the report is still written so it can be inspected
		logger.WithError(err).Warn("report does not match schema")
	}
	if assessFormat != formatJSON {
		if data, err = encodeReport(report, assessFormat); err != nil {
			return err
		}
	}

	// keep stdout clean for the report when it is printed there
	summaryOut := cmd.ErrOrStderr()
	if assessOutput != "" {
		if err := writeOutput(assessOutput, data); err != nil {
			return err
		}
		summaryOut = cmd.OutOrStdout()
		_, _ = fmt.Fprintf(summaryOut, "Report written to %s\n", assessOutput)
	} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(summaryOut).PrintReport(report)
	}
	return nil
}

// resolveQuestion maps a question bank ID to its text; anything else is used verbatim.
func resolveQuestion(q string) string {
	if q == "" {
		return ""
	}
	if found, err := questions.ByID(q); err == nil {
		return found.Text
	}
	return q
}

func readAudio(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("audio file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxBodyBytes
	}
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("audio file exceeds %d bytes", maxBytes)
	}
	return data, nil
}
