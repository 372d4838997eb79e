// Package speechrate derives speaking rate from a word count and a recording duration.
//
// Durations come from a DurationSource. When no source can measure the recording,
// a policy estimate is used and the result is flagged as estimated so callers never
// present it as a measured fact.
package speechrate

import (
	"errors"
	"math"

	"github.com/jonathan/talk-coach/internal/numeric"
)

var (
	// ErrInvalidDuration is returned for durations that are not finite and positive.
	ErrInvalidDuration = errors.New("duration must be a finite number of seconds greater than zero")
	// ErrUnavailable means a source could not determine a duration; the next source should be tried.
	ErrUnavailable = errors.New("duration unavailable")
)

// EstimateRate returns round(wordCount / durationSeconds * 60).
func EstimateRate(wordCount int, durationSeconds float64) (int, error) {
	if !validSeconds(durationSeconds) {
		return 0, ErrInvalidDuration
	}
	if wordCount <= 0 {
		return 0, nil
	}
	return numeric.RoundInt(float64(wordCount) / durationSeconds * 60), nil
}

func validSeconds(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}
