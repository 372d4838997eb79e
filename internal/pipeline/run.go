// Package pipeline provides the high-level orchestration of a transcript assessment.
package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talk-coach/internal/analysis"
	"github.com/jonathan/talk-coach/internal/lexical"
	"github.com/jonathan/talk-coach/internal/planner"
	"github.com/jonathan/talk-coach/internal/proficiency"
	"github.com/jonathan/talk-coach/internal/scoring"
	"github.com/jonathan/talk-coach/internal/speechrate"
	"github.com/jonathan/talk-coach/internal/types"
)

// Pipeline steps reported through ProgressCallback
const (
	StepTokenize       = "tokenize"
	StepDuration       = "duration"
	StepFeatures       = "features"
	StepSpeechAnalysis = "speech_analysis"
	StepScoring        = "scoring"
	StepAggregate      = "aggregate"
	StepPlan           = "plan"
)

// Steps lists the pipeline steps in execution order.
var Steps = []string{StepTokenize, StepDuration, StepFeatures, StepSpeechAnalysis, StepScoring, StepAggregate, StepPlan}

// ProgressEvent represents a progress update during an assessment
type ProgressEvent struct {
	Step    string `json:"step"`
	Index   int    `json:"index"` // 1-based position in Steps
	Total   int    `json:"total"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Input is one transcript to assess
type Input struct {
	Transcript      string
	DurationSeconds float64 // optional hint, 0 when unknown
	Audio           []byte  // optional recording, only its header is read
	Question        string
	SessionID       string
}

// Assessor runs the assessment pipeline. The zero value is ready to use.
type Assessor struct {
	// Durations resolves recording length. Defaults to speechrate.DefaultChain.
	Durations  speechrate.DurationSource
	Logger     logrus.FieldLogger
	OnProgress ProgressCallback
}

// Assess runs every stage over one transcript. The only failure is a duration source error;
// any transcript, including the empty one, produces a complete report.
func (a *Assessor) Assess(in Input) (*types.Report, error) {
	transcript := lexical.Tokenize(in.Transcript)
	a.emit(StepTokenize, fmt.Sprintf("Tokenized %d words in %d sentences", transcript.WordCount(), len(transcript.Sentences)), nil)

	measurement, err := a.durations().Resolve(speechrate.Input{
		WordCount:   transcript.WordCount(),
		HintSeconds: in.DurationSeconds,
		Audio:       in.Audio,
	})
	if err != nil {
		return nil, &Error{Message: "resolving recording duration", Cause: err}
	}
	a.emit(StepDuration, fmt.Sprintf("Duration %.1fs from %s", measurement.Seconds, measurement.Source), measurement)

	features := lexical.ExtractTranscript(transcript)
	features.WordsPerMinute, err = speechrate.EstimateRate(features.TotalWords, measurement.Seconds)
	if err != nil {
		return nil, &Error{Message: "estimating speech rate", Cause: err}
	}
	a.emit(StepFeatures, "Extracted lexical features", features)

	speech := analysis.Analyze(features, measurement)
	a.emit(StepSpeechAnalysis, fmt.Sprintf("Speech analysis score %.1f", speech.OverallScore), speech)

	subs := scoring.Score(features)
	a.emit(StepScoring, "Scored criteria", subs)

	result := proficiency.Aggregate(subs)
	a.emit(StepAggregate, fmt.Sprintf("Overall %.1f (%s)", result.OverallScore, result.Level), result)

	plan := planner.Plan(features, result)
	a.emit(StepPlan, fmt.Sprintf("%d priority areas", len(plan.PriorityAreas)), plan)

	if a.Logger != nil {
		a.Logger.WithFields(logrus.Fields{
			"transcript_length":  len(in.Transcript),
			"words_per_minute":   features.WordsPerMinute,
			"filler_percentage":  features.FillerPercentage,
			"vocab_diversity":    features.VocabularyDiversity,
			"fluency":            subs[types.Fluency],
			"pronunciation":      subs[types.Pronunciation],
			"vocabulary":         subs[types.Vocabulary],
			"grammar":            subs[types.Grammar],
			"coherence":          subs[types.Coherence],
			"overall":            result.OverallScore,
			"duration_estimated": measurement.Estimated,
		}).Debug("assessment complete")
	}

	return &types.Report{
		SessionID:       in.SessionID,
		Question:        in.Question,
		SpeechAnalysis:  speech,
		TOEFLScore:      result,
		ImprovementPlan: plan,
	}, nil
}

// AssessBatch assesses inputs in parallel, at most workers at a time (unlimited when
// workers <= 0). Reports are returned in input order. The first failure or a
// cancelled context stops the batch.
func (a *Assessor) AssessBatch(ctx context.Context, inputs []Input, workers int) ([]*types.Report, error) {
	reports := make([]*types.Report, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, in := range inputs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			report, err := a.Assess(in)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			// each goroutine owns its own index
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (a *Assessor) durations() speechrate.DurationSource {
	if a.Durations != nil {
		return a.Durations
	}
	return speechrate.DefaultChain(speechrate.DefaultEstimateSeconds)
}

// emit calls the progress callback if configured
func (a *Assessor) emit(step, message string, content any) {
	if a.OnProgress != nil {
		a.OnProgress(ProgressEvent{
			Step:    step,
			Index:   slices.Index(Steps, step) + 1,
			Total:   len(Steps),
			Message: message,
			Content: content,
		})
	}
}
