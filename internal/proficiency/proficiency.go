// Package proficiency aggregates sub-scores into an overall score, a proficiency
// level and a TOEFL speaking-section equivalent.
package proficiency

import (
	"github.com/jonathan/talk-coach/internal/numeric"
	"github.com/jonathan/talk-coach/internal/scoring"
	"github.com/jonathan/talk-coach/internal/types"
)

// Criterion weights
const (
	fluencyWeight       = 0.25
	pronunciationWeight = 0.20
	vocabularyWeight    = 0.20
	grammarWeight       = 0.20
	coherenceWeight     = 0.15
)

var weights = map[types.Criterion]float64{
	types.Fluency:       fluencyWeight,
	types.Pronunciation: pronunciationWeight,
	types.Vocabulary:    vocabularyWeight,
	types.Grammar:       grammarWeight,
	types.Coherence:     coherenceWeight,
}

// TOEFL speaking-section scale
const toeflMax = 30

// Weight returns the aggregation weight of c, or 0 for an unknown criterion.
func Weight(c types.Criterion) float64 {
	return weights[c]
}

// Aggregate combines sub-scores into an assessment. The level and TOEFL band are
// derived from the unrounded weighted mean; only the reported overall score is
// rounded, so 4.475 is shown as 4.5 but stays Upper Intermediate.
func Aggregate(subs types.SubScores) types.AssessmentResult {
	raw := OverallScore(subs)

	breakdown := make(types.SubScores, len(types.Criteria))
	for _, c := range types.Criteria {
		breakdown[c] = subs[c]
	}

	return types.AssessmentResult{
		OverallScore:     numeric.Round(raw, 1),
		Level:            DetermineLevel(raw),
		Breakdown:        breakdown,
		DetailedFeedback: DetailedFeedback(breakdown),
		TOEFLEquivalent:  TOEFLEquivalent(raw),
	}
}

// OverallScore returns the weighted mean of the sub-scores, clamped to [1,5].
// Missing criteria count as the minimum score.
func OverallScore(subs types.SubScores) float64 {
	total, totalWeight := 0.0, 0.0
	for _, c := range types.Criteria {
		v, ok := subs[c]
		if !ok {
			v = scoring.MinScore
		}
		total += scoring.Clamp(v) * weights[c]
		totalWeight += weights[c]
	}
	if totalWeight == 0 {
		totalWeight = 1
	}
	return scoring.Clamp(total / totalWeight)
}

// DetermineLevel maps a score to its level. Each band is closed below.
func DetermineLevel(score float64) types.Level {
	switch {
	case score >= 4.5:
		return types.Advanced
	case score >= 3.5:
		return types.UpperIntermediate
	case score >= 2.5:
		return types.Intermediate
	case score >= 1.5:
		return types.LowerIntermediate
	default:
		return types.Beginner
	}
}

// TOEFLEquivalent converts a 1-5 score to the 0-30 TOEFL speaking scale.
func TOEFLEquivalent(score float64) types.TOEFLEquivalent {
	band := numeric.RoundInt(score / scoring.MaxScore * toeflMax)

	var tag string
	switch {
	case band >= 27:
		tag = "Excellent"
	case band >= 23:
		tag = "Good"
	case band >= 18:
		tag = "Fair"
	case band >= 13:
		tag = "Limited"
	default:
		tag = "Weak"
	}
	return types.TOEFLEquivalent{Score: band, Level: tag}
}
