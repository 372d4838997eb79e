// Package scoring converts lexical features into the five 1-5 sub-scores.
//
// The scorers are heuristic proxies built from fixed penalty ladders. They are not
// linguistically validated measurements; pronunciation in particular is inferred from
// transcript clarity signals because no audio is analyzed.
package scoring

import (
	"github.com/jonathan/talk-coach/internal/numeric"
	"github.com/jonathan/talk-coach/internal/types"
)

// Score bounds
const (
	MinScore = 1.0
	MaxScore = 5.0
)

// connectorDensity is the minimum number of connectors per sentence before coherence is penalized
const connectorDensity = 0.3

// Clamp bounds a score to [MinScore, MaxScore]. NaN clamps to MinScore.
func Clamp(v float64) float64 {
	return numeric.Clamp(v, MinScore, MaxScore)
}

// Score runs every scorer over fs.
func Score(fs types.FeatureSet) types.SubScores {
	return types.SubScores{
		types.Fluency:       Fluency(fs),
		types.Pronunciation: Pronunciation(fs),
		types.Vocabulary:    Vocabulary(fs),
		types.Grammar:       Grammar(fs),
		types.Coherence:     Coherence(fs),
	}
}

// Fluency penalizes speaking rate outside the comfortable range, filler usage and choppy sentences.
func Fluency(fs types.FeatureSet) float64 {
	score := MaxScore

	if fs.WordsPerMinute < 100 {
		score -= 1
	} else if fs.WordsPerMinute > 180 {
		score -= 0.5
	}

	if fs.FillerPercentage > 8 {
		score -= 1
	} else if fs.FillerPercentage > 5 {
		score -= 0.5
	}

	if fs.AvgSentenceLength < 8 {
		score -= 0.5
	}

	return Clamp(score)
}

// Pronunciation approximates clarity from repetition, broken-off thoughts and very fast speech.
func Pronunciation(fs types.FeatureSet) float64 {
	score := MaxScore

	if len(fs.RepetitiveWords) > 3 {
		score -= 1
	}
	if fs.IncompleteThoughts > 2 {
		score -= 1
	}
	if fs.WordsPerMinute > 200 {
		score -= 0.5
	}

	return Clamp(score)
}

// Vocabulary penalizes low diversity, vague words and hedging.
func Vocabulary(fs types.FeatureSet) float64 {
	score := MaxScore

	if fs.VocabularyDiversity < 0.4 {
		score -= 1
	} else if fs.VocabularyDiversity < 0.6 {
		score -= 0.5
	}

	if fs.VagueWords > 4 {
		score -= 1
	} else if fs.VagueWords > 2 {
		score -= 0.5
	}

	if fs.WeakWords > 3 {
		score -= 0.5
	}

	return Clamp(score)
}

// Grammar penalizes subject-verb disagreement, article misuse and mixed tenses.
func Grammar(fs types.FeatureSet) float64 {
	score := MaxScore

	if fs.SubjectVerbErrors > 2 {
		score -= 1
	} else if fs.SubjectVerbErrors > 1 {
		score -= 0.5
	}

	if fs.ArticleErrors > 3 {
		score -= 0.5
	}

	if fs.PresentTenseMarkers > 3 && fs.PastTenseMarkers > 3 {
		score -= 0.5
	}

	return Clamp(score)
}

// Coherence penalizes sparse connectors, abrupt topic shifts and sentences that trail off.
func Coherence(fs types.FeatureSet) float64 {
	score := MaxScore

	if float64(fs.Connectors) < float64(fs.SentenceCount)*connectorDensity {
		score -= 0.5
	}
	if fs.TopicShifts > 2 {
		score -= 1
	}
	if fs.DanglingEndings > 1 {
		score -= 0.5
	}

	return Clamp(score)
}
