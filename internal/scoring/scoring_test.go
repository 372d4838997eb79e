package scoring

import (
	"math"
	"testing"

	"github.com/jonathan/talk-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

// clean is a feature set that triggers no penalty
func clean() types.FeatureSet {
	return types.FeatureSet{
		WordsPerMinute:      140,
		AvgSentenceLength:   12,
		VocabularyDiversity: 0.7,
		SentenceCount:       3,
		Connectors:          3,
	}
}

func TestScore_CleanFeaturesScoreFive(t *testing.T) {
	subs := Score(clean())

	assert.Len(t, subs, 5)
	for _, c := range types.Criteria {
		assert.Equal(t, 5.0, subs[c], c)
	}
}

func TestFluency(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*types.FeatureSet)
		expected float64
	}{
		{"slow speech", func(fs *types.FeatureSet) { fs.WordsPerMinute = 99 }, 4},
		{"exactly 100 wpm", func(fs *types.FeatureSet) { fs.WordsPerMinute = 100 }, 5},
		{"fast speech", func(fs *types.FeatureSet) { fs.WordsPerMinute = 181 }, 4.5},
		{"exactly 180 wpm", func(fs *types.FeatureSet) { fs.WordsPerMinute = 180 }, 5},
		{"heavy fillers", func(fs *types.FeatureSet) { fs.FillerPercentage = 8.01 }, 4},
		{"some fillers", func(fs *types.FeatureSet) { fs.FillerPercentage = 6 }, 4.5},
		{"exactly 5 percent", func(fs *types.FeatureSet) { fs.FillerPercentage = 5 }, 5},
		{"short sentences", func(fs *types.FeatureSet) { fs.AvgSentenceLength = 7.9 }, 4.5},
		{"everything wrong", func(fs *types.FeatureSet) {
			fs.WordsPerMinute = 10
			fs.FillerPercentage = 50
			fs.AvgSentenceLength = 1
		}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := clean()
			tt.mutate(&fs)
			assert.Equal(t, tt.expected, Fluency(fs))
		})
	}
}

func TestPronunciation(t *testing.T) {
	fs := clean()
	fs.RepetitiveWords = make([]types.WordCount, 4)
	fs.IncompleteThoughts = 3
	fs.WordsPerMinute = 201
	assert.Equal(t, 2.5, Pronunciation(fs))

	fs = clean()
	fs.RepetitiveWords = make([]types.WordCount, 3)
	fs.IncompleteThoughts = 2
	fs.WordsPerMinute = 200
	assert.Equal(t, 5.0, Pronunciation(fs))
}

func TestVocabulary(t *testing.T) {
	tests := []struct {
		name      string
		diversity float64
		vague     int
		weak      int
		expected  float64
	}{
		{"rich", 0.6, 2, 3, 5},
		{"moderate diversity", 0.59, 0, 0, 4.5},
		{"low diversity", 0.39, 0, 0, 4},
		{"some vague", 0.7, 3, 0, 4.5},
		{"many vague", 0.7, 5, 0, 4},
		{"hedging", 0.7, 0, 4, 4.5},
		{"all penalties", 0.1, 10, 10, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := clean()
			fs.VocabularyDiversity = tt.diversity
			fs.VagueWords = tt.vague
			fs.WeakWords = tt.weak
			assert.Equal(t, tt.expected, Vocabulary(fs))
		})
	}
}

func TestGrammar(t *testing.T) {
	tests := []struct {
		name     string
		fs       types.FeatureSet
		expected float64
	}{
		{"no errors", types.FeatureSet{}, 5},
		{"one agreement error", types.FeatureSet{SubjectVerbErrors: 1}, 5},
		{"two agreement errors", types.FeatureSet{SubjectVerbErrors: 2}, 4.5},
		{"three agreement errors", types.FeatureSet{SubjectVerbErrors: 3}, 4},
		{"article errors", types.FeatureSet{ArticleErrors: 4}, 4.5},
		{"three article errors", types.FeatureSet{ArticleErrors: 3}, 5},
		{"mixed tenses", types.FeatureSet{PresentTenseMarkers: 4, PastTenseMarkers: 4}, 4.5},
		{"present only", types.FeatureSet{PresentTenseMarkers: 10, PastTenseMarkers: 3}, 5},
		{"everything", types.FeatureSet{SubjectVerbErrors: 9, ArticleErrors: 9, PresentTenseMarkers: 9, PastTenseMarkers: 9}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Grammar(tt.fs))
		})
	}
}

func TestCoherence(t *testing.T) {
	tests := []struct {
		name     string
		fs       types.FeatureSet
		expected float64
	}{
		{"empty transcript", types.FeatureSet{}, 5},
		{"enough connectors", types.FeatureSet{SentenceCount: 10, Connectors: 3}, 5},
		{"sparse connectors", types.FeatureSet{SentenceCount: 10, Connectors: 2}, 4.5},
		{"topic shifts", types.FeatureSet{TopicShifts: 3}, 4},
		{"dangling endings", types.FeatureSet{DanglingEndings: 2}, 4.5},
		{"all penalties", types.FeatureSet{SentenceCount: 10, TopicShifts: 3, DanglingEndings: 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Coherence(tt.fs))
		})
	}
}

func TestScore_AdversarialFeaturesStayInRange(t *testing.T) {
	extremes := []types.FeatureSet{
		{},
		{
			WordsPerMinute:      math.MaxInt32,
			FillerPercentage:    math.Inf(1),
			AvgSentenceLength:   math.NaN(),
			VocabularyDiversity: math.NaN(),
			VagueWords:          math.MaxInt32,
			WeakWords:           math.MaxInt32,
			RepetitiveWords:     make([]types.WordCount, 100),
			IncompleteThoughts:  math.MaxInt32,
			SubjectVerbErrors:   math.MaxInt32,
			ArticleErrors:       math.MaxInt32,
			PresentTenseMarkers: math.MaxInt32,
			PastTenseMarkers:    math.MaxInt32,
			SentenceCount:       math.MaxInt32,
			TopicShifts:         math.MaxInt32,
			DanglingEndings:     math.MaxInt32,
		},
		{WordsPerMinute: -5, FillerPercentage: -1, VocabularyDiversity: -3, Connectors: -1},
	}

	for _, fs := range extremes {
		for c, v := range Score(fs) {
			assert.GreaterOrEqual(t, v, MinScore, c)
			assert.LessOrEqual(t, v, MaxScore, c)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(-3))
	assert.Equal(t, 5.0, Clamp(7))
	assert.Equal(t, 3.5, Clamp(3.5))
	assert.Equal(t, 1.0, Clamp(math.NaN()))
}
