// Package types provides type definitions for structured data used throughout the talk-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Report is the full result of assessing one transcript
type Report struct {
	SessionID       string           `json:"sessionId,omitempty"`
	Question        string           `json:"question,omitempty"`
	SpeechAnalysis  SpeechAnalysis   `json:"speechAnalysis"`
	TOEFLScore      AssessmentResult `json:"toeflScore"`
	ImprovementPlan ImprovementPlan  `json:"improvementPlan"`
}

// AnalyzeRequest is the request body for an assessment.
// An empty transcript is allowed and produces a degenerate but valid report.
type AnalyzeRequest struct {
	Transcript      string  `json:"transcript"`
	Question        string  `json:"question,omitempty" validate:"max=500"`
	AudioData       string  `json:"audioData,omitempty" validate:"omitempty,base64"`
	DurationSeconds float64 `json:"durationSeconds,omitempty" validate:"gte=0,lte=86400"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
