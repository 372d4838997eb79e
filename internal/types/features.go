// Package types provides type definitions for structured data used throughout the talk-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// WordCount pairs a word with the number of times it occurred
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SentenceVariety buckets sentences by word count: short <= 10, medium 11-20, long > 20
type SentenceVariety struct {
	Short  int `json:"short"`
	Medium int `json:"medium"`
	Long   int `json:"long"`
}

// FeatureSet holds every lexical measurement taken from one transcript.
// It is produced by the lexical extractor and only read by later stages.
type FeatureSet struct {
	TotalWords  int `json:"totalWords"`
	UniqueWords int `json:"uniqueWords"`

	// Fillers
	FillerCount      int            `json:"fillerCount"`
	FillerPercentage float64        `json:"fillerPercentage"` // 0-100, two decimals
	FillerBreakdown  map[string]int `json:"fillerBreakdown"`

	// Diction
	VocabularyDiversity float64 `json:"vocabularyDiversity"` // 0-1, three decimals
	VagueWords          int     `json:"vagueWords"`
	WeakWords           int     `json:"weakWords"`

	// Structure
	SentenceCount     int             `json:"sentenceCount"`
	AvgSentenceLength float64         `json:"avgSentenceLength"` // one decimal
	SentenceVariety   SentenceVariety `json:"sentenceVariety"`

	// Clarity
	RepetitiveWords    []WordCount `json:"repetitiveWords"`
	IncompleteThoughts int         `json:"incompleteThoughts"`

	// Grammar markers
	SubjectVerbErrors   int `json:"subjectVerbErrors"`
	ArticleErrors       int `json:"articleErrors"`
	PresentTenseMarkers int `json:"presentTenseMarkers"`
	PastTenseMarkers    int `json:"pastTenseMarkers"`

	// Coherence markers
	Connectors      int `json:"connectors"`
	TopicShifts     int `json:"topicShifts"`
	DanglingEndings int `json:"danglingEndings"`

	// Speech rate, filled in once a duration is known
	WordsPerMinute int `json:"wordsPerMinute"`
}

// FillerAnalysis is the filler-word block of a speech analysis
type FillerAnalysis struct {
	TotalFillers     int            `json:"totalFillers"`
	FillerPercentage float64        `json:"fillerPercentage"`
	FillerBreakdown  map[string]int `json:"fillerBreakdown"`
	Score            int            `json:"score"`
}

// DictionAnalysis is the word-choice block of a speech analysis
type DictionAnalysis struct {
	VocabularyDiversity float64 `json:"vocabularyDiversity"`
	VagueWords          int     `json:"vagueWords"`
	WeakWords           int     `json:"weakWords"`
	Score               int     `json:"score"`
}

// StructureAnalysis is the sentence-structure block of a speech analysis
type StructureAnalysis struct {
	AvgSentenceLength float64         `json:"avgSentenceLength"`
	SentenceCount     int             `json:"sentenceCount"`
	SentenceVariety   SentenceVariety `json:"sentenceVariety"`
	Score             int             `json:"score"`
}

// ClarityAnalysis is the repetition and incomplete-thought block of a speech analysis
type ClarityAnalysis struct {
	RepetitiveWords    []WordCount `json:"repetitiveWords"`
	IncompleteThoughts int         `json:"incompleteThoughts"`
	Score              int         `json:"score"`
}

// SpeechAnalysis summarizes delivery metrics for a transcript.
// Duration may be an estimate; DurationEstimated and DurationSource say where it came from.
type SpeechAnalysis struct {
	WordsPerMinute    int               `json:"wordsPerMinute"`
	Duration          float64           `json:"duration"`
	DurationEstimated bool              `json:"durationEstimated"`
	DurationSource    string            `json:"durationSource"`
	TotalWords        int               `json:"totalWords"`
	FillerAnalysis    FillerAnalysis    `json:"fillerAnalysis"`
	DictionAnalysis   DictionAnalysis   `json:"dictionAnalysis"`
	StructureAnalysis StructureAnalysis `json:"structureAnalysis"`
	ClarityAnalysis   ClarityAnalysis   `json:"clarityAnalysis"`
	OverallScore      float64           `json:"overallScore"`
	Recommendations   []string          `json:"recommendations"`
}
