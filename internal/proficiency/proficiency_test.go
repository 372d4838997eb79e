package proficiency

import (
	"math"
	"testing"

	"github.com/jonathan/talk-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func uniform(v float64) types.SubScores {
	subs := types.SubScores{}
	for _, c := range types.Criteria {
		subs[c] = v
	}
	return subs
}

func TestWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, c := range types.Criteria {
		total += Weight(c)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Equal(t, 0.0, Weight("charisma"))
}

func TestDetermineLevel(t *testing.T) {
	tests := []struct {
		score    float64
		expected types.Level
	}{
		{5, types.Advanced},
		{4.5, types.Advanced},
		{4.49, types.UpperIntermediate},
		{3.5, types.UpperIntermediate},
		{3.49, types.Intermediate},
		{2.5, types.Intermediate},
		{2.49, types.LowerIntermediate},
		{1.5, types.LowerIntermediate},
		{1.49, types.Beginner},
		{1, types.Beginner},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetermineLevel(tt.score), "score %v", tt.score)
	}
}

func TestTOEFLEquivalent(t *testing.T) {
	tests := []struct {
		score    float64
		band     int
		expected string
	}{
		{5, 30, "Excellent"},
		{4.5, 27, "Excellent"},
		{4.4, 26, "Good"},
		{3.8, 23, "Good"},
		{3, 18, "Fair"},
		{2.2, 13, "Limited"},
		{2.1, 13, "Limited"},
		{2, 12, "Weak"},
		{1, 6, "Weak"},
	}

	for _, tt := range tests {
		got := TOEFLEquivalent(tt.score)
		assert.Equal(t, types.TOEFLEquivalent{Score: tt.band, Level: tt.expected}, got, "score %v", tt.score)
	}
}

func TestAggregate_Uniform(t *testing.T) {
	result := Aggregate(uniform(4))

	assert.Equal(t, 4.0, result.OverallScore)
	assert.Equal(t, types.UpperIntermediate, result.Level)
	assert.Equal(t, types.TOEFLEquivalent{Score: 24, Level: "Good"}, result.TOEFLEquivalent)
	assert.Len(t, result.Breakdown, 5)
	assert.Len(t, result.DetailedFeedback, 5)
	assert.Equal(t, "Good grammar with minor errors and some complex structures.", result.DetailedFeedback[types.Grammar])
}

func TestAggregate_Weighted(t *testing.T) {
	subs := types.SubScores{
		types.Fluency:       2.5,
		types.Pronunciation: 5,
		types.Vocabulary:    4.5,
		types.Grammar:       5,
		types.Coherence:     4.5,
	}
	// .625 + 1 + .9 + 1 + .675
	result := Aggregate(subs)

	assert.Equal(t, 4.2, result.OverallScore)
	assert.Equal(t, types.UpperIntermediate, result.Level)
	assert.Equal(t, 25, result.TOEFLEquivalent.Score)
}

func TestAggregate_LevelFollowsUnroundedScore(t *testing.T) {
	// 1.125 + .8 + .8 + 1 + .75 = 4.475, displayed as 4.5
	subs := types.SubScores{
		types.Fluency:       4.5,
		types.Pronunciation: 4,
		types.Vocabulary:    4,
		types.Grammar:       5,
		types.Coherence:     5,
	}
	result := Aggregate(subs)

	assert.Equal(t, 4.5, result.OverallScore)
	assert.Equal(t, types.UpperIntermediate, result.Level)
	assert.Equal(t, types.TOEFLEquivalent{Score: 27, Level: "Excellent"}, result.TOEFLEquivalent)

	// weighted mean 3.475 is shown as 3.5 but stays Intermediate
	subs = types.SubScores{
		types.Fluency:       3.5,
		types.Pronunciation: 3.5,
		types.Vocabulary:    3.5,
		types.Grammar:       3.5,
		types.Coherence:     3.3333333333333335,
	}
	result = Aggregate(subs)

	assert.Equal(t, 3.5, result.OverallScore)
	assert.Equal(t, types.Intermediate, result.Level)
}

func TestAggregate_ClampsInput(t *testing.T) {
	subs := types.SubScores{
		types.Fluency:       math.NaN(),
		types.Pronunciation: -10,
		types.Vocabulary:    100,
	}
	result := Aggregate(subs)

	assert.GreaterOrEqual(t, result.OverallScore, 1.0)
	assert.LessOrEqual(t, result.OverallScore, 5.0)
	assert.True(t, result.Level.Valid())
}

func TestFeedback(t *testing.T) {
	assert.Equal(t, "Excellent fluency with natural speech flow and appropriate pacing.", Feedback(types.Fluency, 4.5))
	assert.Equal(t, "Good fluency with minor interruptions and generally smooth delivery.", Feedback(types.Fluency, 4.49))
	assert.Equal(t, "Poor vocabulary with very basic and often inappropriate word choice.", Feedback(types.Vocabulary, 1))
	// out of table falls back to the fair entry
	assert.Equal(t, "Fair fluency with some hesitations and uneven pacing.", Feedback(types.Fluency, 0.2))
	assert.Equal(t, "Fair organization with some logical connections and some incomplete thoughts.", Feedback(types.Coherence, 9))
	assert.Empty(t, Feedback("charisma", 3))
}
