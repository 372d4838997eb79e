package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jonathan/talk-coach/internal/ingestion"
	"github.com/jonathan/talk-coach/internal/pipeline"
	"github.com/jonathan/talk-coach/internal/speechrate"
)

var batchCmd = &cobra.Command{
	Use:   "batch [transcript files...]",
	Short: "Assess many transcripts in parallel",
	Long: `Assesses every transcript file given as an argument and writes one report per file
into the output directory, named after the transcript (answer.txt -> answer.report.json).
Duplicate paths are assessed once.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchOutDir   string
	batchDuration float64
	batchWorkers  int
	batchFormat   string
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Directory for report files (required)")
	batchCmd.Flags().Float64VarP(&batchDuration, "duration", "d", 0, "Recording length in seconds applied to every transcript (optional)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Parallel assessments (defaults to config workers)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", formatJSON, "Output format: json or yaml")

	if err := batchCmd.MarkFlagRequired("out-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark out-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if batchDuration < 0 {
		return fmt.Errorf("--duration must be non-negative, got %g", batchDuration)
	}
	if batchFormat != formatJSON && batchFormat != formatYAML {
		return fmt.Errorf("unknown output format %q (expected json or yaml)", batchFormat)
	}

	paths := lo.Uniq(args)
	inputs := make([]pipeline.Input, 0, len(paths))
	for _, path := range paths {
		text, _, err := ingestion.LoadTranscript(path, cfg.MaxTranscriptBytes)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		inputs = append(inputs, pipeline.Input{
			Transcript:      text,
			DurationSeconds: batchDuration,
			SessionID:       uuid.NewString(),
		})
	}

	assessor := &pipeline.Assessor{
		Durations: speechrate.DefaultChain(cfg.DefaultDurationSeconds),
		Logger:    logger,
	}
	logger.WithField("count", len(inputs)).WithField("workers", cfg.Workers).Info("batch started")

	reports, err := assessor.AssessBatch(cmd.Context(), inputs, cfg.Workers)
	if err != nil {
		return fmt.Errorf("batch assessment failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for i, report := range reports {
		data, err := encodeReport(report, batchFormat)
		if err != nil {
			return err
		}
		dest := filepath.Join(batchOutDir, reportFileName(paths[i], batchFormat))
		if err := writeOutput(dest, data); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%s: %.1f %s (TOEFL %d) -> %s\n",
			paths[i], report.TOEFLScore.OverallScore, report.TOEFLScore.Level,
			report.TOEFLScore.TOEFLEquivalent.Score, dest)
	}
	return nil
}

func reportFileName(path, format string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".report." + format
}
