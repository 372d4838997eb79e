//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request AnalyzeRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			request: AnalyzeRequest{Transcript: "I study every day.", DurationSeconds: 60},
			wantErr: false,
		},
		{
			name:    "empty transcript is allowed",
			request: AnalyzeRequest{},
			wantErr: false,
		},
		{
			name:    "valid base64 audio",
			request: AnalyzeRequest{Transcript: "hello", AudioData: "UklGRg=="},
			wantErr: false,
		},
		{
			name:    "invalid base64 audio",
			request: AnalyzeRequest{Transcript: "hello", AudioData: "not base64!"},
			wantErr: true,
			errMsg:  "base64",
		},
		{
			name:    "negative duration",
			request: AnalyzeRequest{Transcript: "hello", DurationSeconds: -5},
			wantErr: true,
			errMsg:  "gte",
		},
		{
			name:    "question too long",
			request: AnalyzeRequest{Transcript: "hello", Question: strings.Repeat("q", 501)},
			wantErr: true,
			errMsg:  "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReport_JSONFieldNames(t *testing.T) {
	report := Report{
		SessionID: "abc",
		SpeechAnalysis: SpeechAnalysis{
			WordsPerMinute: 120,
			FillerAnalysis: FillerAnalysis{TotalFillers: 2},
		},
		TOEFLScore: AssessmentResult{
			OverallScore: 3.5,
			Level:        UpperIntermediate,
			Breakdown:    SubScores{Fluency: 4},
		},
		ImprovementPlan: ImprovementPlan{WeeklyPlan: NewWeeklyPlan()},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `"sessionId":"abc"`)
	assert.Contains(t, out, `"wordsPerMinute":120`)
	assert.Contains(t, out, `"totalFillers":2`)
	assert.Contains(t, out, `"level":"Upper Intermediate"`)
	assert.Contains(t, out, `"breakdown":{"fluency":4}`)
	assert.Contains(t, out, `"monday":[]`)
}
