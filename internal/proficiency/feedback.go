package proficiency

import (
	"github.com/jonathan/talk-coach/internal/numeric"
	"github.com/jonathan/talk-coach/internal/types"
)

// fallbackBand is used when a rounded score falls outside the table
const fallbackBand = 3

var feedbackTable = map[types.Criterion]map[int]string{
	types.Fluency: {
		5: "Excellent fluency with natural speech flow and appropriate pacing.",
		4: "Good fluency with minor interruptions and generally smooth delivery.",
		3: "Fair fluency with some hesitations and uneven pacing.",
		2: "Limited fluency with frequent pauses and choppy delivery.",
		1: "Poor fluency with excessive hesitations and very slow speech.",
	},
	types.Pronunciation: {
		5: "Clear pronunciation with excellent intonation and stress patterns.",
		4: "Good pronunciation with minor clarity issues.",
		3: "Fair pronunciation with some unclear words and basic intonation.",
		2: "Limited pronunciation with many unclear words.",
		1: "Poor pronunciation with significant clarity problems.",
	},
	types.Vocabulary: {
		5: "Rich vocabulary with precise word choice and appropriate usage.",
		4: "Good vocabulary with some variety and generally appropriate usage.",
		3: "Fair vocabulary with basic word choice and some inappropriate usage.",
		2: "Limited vocabulary with repetitive word choice.",
		1: "Poor vocabulary with very basic and often inappropriate word choice.",
	},
	types.Grammar: {
		5: "Excellent grammar with complex structures and high accuracy.",
		4: "Good grammar with minor errors and some complex structures.",
		3: "Fair grammar with noticeable errors but generally understandable.",
		2: "Limited grammar with frequent errors affecting comprehension.",
		1: "Poor grammar with many errors making speech difficult to understand.",
	},
	types.Coherence: {
		5: "Excellent organization with logical flow and complete thoughts.",
		4: "Good organization with clear structure and mostly complete thoughts.",
		3: "Fair organization with some logical connections and some incomplete thoughts.",
		2: "Limited organization with unclear structure and many incomplete thoughts.",
		1: "Poor organization with no clear structure and mostly incomplete thoughts.",
	},
}

// Feedback returns the feedback sentence for a criterion at the given score.
// Scores that round outside 1-5 get the "fair" sentence; unknown criteria get "".
func Feedback(c types.Criterion, score float64) string {
	table, ok := feedbackTable[c]
	if !ok {
		return ""
	}
	if text, ok := table[numeric.RoundInt(score)]; ok {
		return text
	}
	return table[fallbackBand]
}

// DetailedFeedback returns feedback for every criterion present in subs.
func DetailedFeedback(subs types.SubScores) map[types.Criterion]string {
	out := make(map[types.Criterion]string, len(subs))
	for c, score := range subs {
		out[c] = Feedback(c, score)
	}
	return out
}
