package speechrate

import (
	"errors"
	"fmt"
)

// DefaultEstimateSeconds is the policy duration used when nothing better is known.
const DefaultEstimateSeconds = 90.0

// Source names reported in Measurement.Source
const (
	SourceHint      = "hint"
	SourceWAVHeader = "wav-header"
	SourcePolicy    = "policy-estimate"
)

// Input is what a duration source may look at
type Input struct {
	WordCount   int
	HintSeconds float64
	Audio       []byte
}

// Measurement is a resolved recording duration
type Measurement struct {
	Seconds   float64
	Estimated bool
	Source    string
}

// DurationSource resolves the duration of a recording.
// Implementations return an error wrapping ErrUnavailable when they cannot decide.
type DurationSource interface {
	Resolve(in Input) (Measurement, error)
}

// HintSource trusts a caller-supplied duration.
type HintSource struct{}

// Resolve returns the hint when it is a valid duration.
func (HintSource) Resolve(in Input) (Measurement, error) {
	if !validSeconds(in.HintSeconds) {
		return Measurement{}, ErrUnavailable
	}
	return Measurement{Seconds: in.HintSeconds, Source: SourceHint}, nil
}

// PolicyEstimate substitutes a fixed duration. It never fails, and its
// measurements are always flagged as estimated.
type PolicyEstimate struct {
	Seconds float64
}

// Resolve returns the configured estimate, or DefaultEstimateSeconds when unset.
func (p PolicyEstimate) Resolve(Input) (Measurement, error) {
	seconds := p.Seconds
	if !validSeconds(seconds) {
		seconds = DefaultEstimateSeconds
	}
	return Measurement{Seconds: seconds, Estimated: true, Source: SourcePolicy}, nil
}

type chain []DurationSource

// Chain tries each source in order and returns the first measurement.
// Errors other than ErrUnavailable stop the chain.
func Chain(sources ...DurationSource) DurationSource {
	return chain(sources)
}

func (c chain) Resolve(in Input) (Measurement, error) {
	for _, src := range c {
		m, err := src.Resolve(in)
		if err == nil {
			if !validSeconds(m.Seconds) {
				return Measurement{}, fmt.Errorf("source %q: %w", m.Source, ErrInvalidDuration)
			}
			return m, nil
		}
		if !errors.Is(err, ErrUnavailable) {
			return Measurement{}, err
		}
	}
	return Measurement{}, ErrUnavailable
}

// DefaultChain resolves a hint first, then a WAV header, then the policy estimate.
func DefaultChain(estimateSeconds float64) DurationSource {
	return Chain(HintSource{}, WAVHeaderSource{}, PolicyEstimate{Seconds: estimateSeconds})
}
