// Package analysis builds the delivery-focused speech analysis: filler, diction,
// structure and clarity component scores plus practical recommendations.
package analysis

import (
	"slices"

	"github.com/jonathan/talk-coach/internal/numeric"
	"github.com/jonathan/talk-coach/internal/speechrate"
	"github.com/jonathan/talk-coach/internal/types"
	"github.com/samber/lo"
)

// Comfortable speaking rate, in words per minute
const (
	minComfortableRate = 120
	maxComfortableRate = 200
	ratePenalty        = 0.5
)

// Recommendation texts
const (
	RecommendFewerFillers   = "Reduce filler words like 'um', 'uh', 'like', and 'you know'"
	RecommendSpecificWords  = "Use more specific words instead of vague terms like 'thing' or 'stuff'"
	RecommendConfidentWords = "Replace weak words like 'maybe' and 'sort of' with more confident language"
	RecommendVaryLength     = "Vary sentence length to create more engaging speech patterns"
	RecommendSpeedUp        = "Try speaking at a slightly faster pace to maintain listener engagement"
	RecommendSlowDown       = "Slow down your speech rate to improve clarity and comprehension"
)

// Analyze assembles the speech analysis for features measured over a recording of m.Seconds.
// fs.WordsPerMinute must already be filled in.
func Analyze(fs types.FeatureSet, m speechrate.Measurement) types.SpeechAnalysis {
	sa := types.SpeechAnalysis{
		WordsPerMinute:    fs.WordsPerMinute,
		Duration:          m.Seconds,
		DurationEstimated: m.Estimated,
		DurationSource:    m.Source,
		TotalWords:        fs.TotalWords,
		FillerAnalysis: types.FillerAnalysis{
			TotalFillers:     fs.FillerCount,
			FillerPercentage: fs.FillerPercentage,
			FillerBreakdown:  lo.Assign(fs.FillerBreakdown),
			Score:            FillerScore(fs.FillerPercentage),
		},
		DictionAnalysis: types.DictionAnalysis{
			VocabularyDiversity: fs.VocabularyDiversity,
			VagueWords:          fs.VagueWords,
			WeakWords:           fs.WeakWords,
			Score:               DictionScore(fs.VocabularyDiversity, fs.VagueWords, fs.WeakWords),
		},
		StructureAnalysis: types.StructureAnalysis{
			AvgSentenceLength: fs.AvgSentenceLength,
			SentenceCount:     fs.SentenceCount,
			SentenceVariety:   fs.SentenceVariety,
			Score:             StructureScore(fs.AvgSentenceLength, fs.SentenceCount),
		},
		ClarityAnalysis: types.ClarityAnalysis{
			RepetitiveWords:    cloneWordCounts(fs.RepetitiveWords),
			IncompleteThoughts: fs.IncompleteThoughts,
			Score:              ClarityScore(len(fs.RepetitiveWords), fs.IncompleteThoughts),
		},
	}
	sa.OverallScore = OverallScore(sa)
	sa.Recommendations = Recommendations(sa)
	return sa
}

// FillerScore maps the filler percentage to 1-5.
func FillerScore(percentage float64) int {
	switch {
	case percentage < 2:
		return 5
	case percentage < 5:
		return 4
	case percentage < 10:
		return 3
	case percentage < 15:
		return 2
	default:
		return 1
	}
}

// DictionScore penalizes low diversity, vague words and weak words.
func DictionScore(diversity float64, vague, weak int) int {
	score := 5
	if diversity < 0.3 {
		score -= 2
	} else if diversity < 0.5 {
		score--
	}
	if vague > 5 {
		score--
	}
	if weak > 3 {
		score--
	}
	return max(1, score)
}

// StructureScore penalizes very short or very long sentences and too few sentences.
func StructureScore(avgLength float64, sentenceCount int) int {
	score := 5
	if avgLength < 8 || avgLength > 25 {
		score--
	}
	if sentenceCount < 3 {
		score--
	}
	return max(1, score)
}

// ClarityScore penalizes repetition and incomplete thoughts.
func ClarityScore(repetitive, incomplete int) int {
	score := 5
	if repetitive > 2 {
		score--
	}
	if incomplete > 1 {
		score--
	}
	return max(1, score)
}

// OverallScore averages the four component scores, applies the speaking-rate
// adjustment and rounds to one decimal within [1,5].
func OverallScore(sa types.SpeechAnalysis) float64 {
	avg := numeric.Mean([]float64{
		float64(sa.FillerAnalysis.Score),
		float64(sa.DictionAnalysis.Score),
		float64(sa.StructureAnalysis.Score),
		float64(sa.ClarityAnalysis.Score),
	})
	if sa.WordsPerMinute < minComfortableRate || sa.WordsPerMinute > maxComfortableRate {
		avg -= ratePenalty
	}
	return numeric.Clamp(numeric.Round(avg, 1), 1, 5)
}

// Recommendations lists practical advice for the weaknesses found in sa.
func Recommendations(sa types.SpeechAnalysis) []string {
	recs := []string{}

	if sa.FillerAnalysis.FillerPercentage > 5 {
		recs = append(recs, RecommendFewerFillers)
	}
	if sa.DictionAnalysis.VagueWords > 3 {
		recs = append(recs, RecommendSpecificWords)
	}
	if sa.DictionAnalysis.WeakWords > 2 {
		recs = append(recs, RecommendConfidentWords)
	}
	if sa.StructureAnalysis.AvgSentenceLength < 10 {
		recs = append(recs, RecommendVaryLength)
	}

	switch {
	case sa.WordsPerMinute < minComfortableRate:
		recs = append(recs, RecommendSpeedUp)
	case sa.WordsPerMinute > maxComfortableRate:
		recs = append(recs, RecommendSlowDown)
	}

	return recs
}

func cloneWordCounts(in []types.WordCount) []types.WordCount {
	if in == nil {
		return []types.WordCount{}
	}
	return slices.Clone(in)
}
