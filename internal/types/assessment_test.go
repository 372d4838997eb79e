//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_Index(t *testing.T) {
	assert.Equal(t, 0, Beginner.Index())
	assert.Equal(t, 2, Intermediate.Index())
	assert.Equal(t, 4, Advanced.Index())
	assert.Equal(t, -1, Level("Expert").Index())
	assert.False(t, Level("").Valid())
	assert.True(t, UpperIntermediate.Valid())
}

func TestPriority_Weight(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Weight())
	assert.Equal(t, 2, PriorityMedium.Weight())
	assert.Equal(t, 1, PriorityLow.Weight())
	assert.Equal(t, 0, Priority("urgent").Weight())
}

func TestSubScores_ValuesInCriteriaOrder(t *testing.T) {
	s := SubScores{
		Coherence:     1,
		Fluency:       5,
		Grammar:       2,
		Vocabulary:    3,
		Pronunciation: 4,
	}
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, s.Values())

	partial := SubScores{Grammar: 2}
	assert.Equal(t, []float64{2}, partial.Values())
}

func TestTranscript_Counts(t *testing.T) {
	tr := Transcript{
		Tokens: []Token{{Norm: "i"}, {Norm: "like"}, {Norm: "i"}},
		Sentences: []Sentence{
			{Tokens: []Token{{Norm: "i"}, {Norm: "like"}}},
			{},
		},
	}

	assert.Equal(t, 3, tr.WordCount())
	assert.Equal(t, 2, tr.UniqueWordCount())
	assert.Equal(t, []string{"i", "like", "i"}, tr.Words())
	assert.Equal(t, "like", tr.Sentences[0].LastWord())
	assert.Equal(t, "", tr.Sentences[1].LastWord())
}

func TestWeeklyPlan_Total(t *testing.T) {
	w := NewWeeklyPlan()
	assert.Equal(t, 0, w.Total())

	w.Monday = append(w.Monday, "a")
	w.Friday = append(w.Friday, "b", "c")
	assert.Equal(t, 3, w.Total())
}
