// Package types provides type definitions for structured data used throughout the talk-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Criterion names one of the five scored dimensions of spoken proficiency
type Criterion string

// Scored criteria
const (
	Fluency       Criterion = "fluency"
	Pronunciation Criterion = "pronunciation"
	Vocabulary    Criterion = "vocabulary"
	Grammar       Criterion = "grammar"
	Coherence     Criterion = "coherence"
)

// Criteria lists every criterion in evaluation order.
var Criteria = []Criterion{Fluency, Pronunciation, Vocabulary, Grammar, Coherence}

// SubScores maps each criterion to a score in [1,5]
type SubScores map[Criterion]float64

// Values returns the scores in Criteria order. Missing criteria are omitted.
func (s SubScores) Values() []float64 {
	values := make([]float64, 0, len(Criteria))
	for _, c := range Criteria {
		if v, ok := s[c]; ok {
			values = append(values, v)
		}
	}
	return values
}

// Level is an ordered proficiency band
type Level string

// Proficiency levels, lowest first
const (
	Beginner          Level = "Beginner"
	LowerIntermediate Level = "Lower Intermediate"
	Intermediate      Level = "Intermediate"
	UpperIntermediate Level = "Upper Intermediate"
	Advanced          Level = "Advanced"
)

// Levels lists the proficiency levels in ascending order.
var Levels = []Level{Beginner, LowerIntermediate, Intermediate, UpperIntermediate, Advanced}

// Index returns the position of the level in Levels, or -1 if unknown.
func (l Level) Index() int {
	for i, lvl := range Levels {
		if lvl == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool {
	return l.Index() >= 0
}

// TOEFLEquivalent is the 0-30 speaking-section band with its qualitative tag
type TOEFLEquivalent struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// AssessmentResult is the proficiency assessment for one transcript
type AssessmentResult struct {
	OverallScore     float64              `json:"overallScore"`
	Level            Level                `json:"level"`
	Breakdown        SubScores            `json:"breakdown"`
	DetailedFeedback map[Criterion]string `json:"detailedFeedback"`
	TOEFLEquivalent  TOEFLEquivalent      `json:"toeflEquivalent"`
}
