package lexical

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/talk-coach/internal/numeric"
	"github.com/jonathan/talk-coach/internal/types"
)

const (
	// repetitive words must be longer than this many runes...
	repetitiveMinLength = 3
	// ...and occur more than this many times
	repetitiveMinCount = 3

	shortSentenceMax  = 10
	mediumSentenceMax = 20
)

// Extract tokenizes text and measures its lexical features.
// WordsPerMinute is left at zero; it depends on the recording duration.
func Extract(text string) types.FeatureSet {
	return ExtractTranscript(Tokenize(text))
}

// ExtractTranscript measures the lexical features of an already tokenized transcript.
// An empty transcript yields a zero-valued feature set with non-nil collections.
func ExtractTranscript(t types.Transcript) types.FeatureSet {
	tokens := t.Tokens
	total := len(tokens)

	fs := types.FeatureSet{
		TotalWords:      total,
		UniqueWords:     t.UniqueWordCount(),
		FillerBreakdown: make(map[string]int),
		RepetitiveWords: []types.WordCount{},
	}

	for _, p := range fillerPhrases {
		if n := p.count(tokens); n > 0 {
			fs.FillerBreakdown[p.String()] = n
			fs.FillerCount += n
		}
	}
	fs.FillerPercentage = numeric.Round(numeric.Ratio(fs.FillerCount, total)*100, 2)

	fs.VocabularyDiversity = numeric.Round(numeric.Ratio(fs.UniqueWords, total), 3)
	fs.VagueWords = countPhrases(tokens, vaguePhrases)
	fs.WeakWords = countPhrases(tokens, weakPhrases)

	measureSentences(t.Sentences, &fs)

	fs.RepetitiveWords = repetitiveWords(tokens)
	fs.IncompleteThoughts = incompleteThoughts(t)

	measureGrammar(tokens, &fs)

	fs.Connectors = countWords(tokens, connectorWords)
	fs.TopicShifts = countPhrases(tokens, topicShiftPhrases)
	for _, s := range t.Sentences {
		if inSet(danglingEndings, s.LastWord()) {
			fs.DanglingEndings++
		}
	}

	return fs
}

func measureSentences(sentences []types.Sentence, fs *types.FeatureSet) {
	fs.SentenceCount = len(sentences)
	if len(sentences) == 0 {
		return
	}

	words := 0
	for _, s := range sentences {
		n := s.Len()
		words += n
		switch {
		case n <= shortSentenceMax:
			fs.SentenceVariety.Short++
		case n <= mediumSentenceMax:
			fs.SentenceVariety.Medium++
		default:
			fs.SentenceVariety.Long++
		}
	}
	fs.AvgSentenceLength = numeric.Round(numeric.Ratio(words, len(sentences)), 1)
}

// repetitiveWords returns long words used too often, in order of first use.
func repetitiveWords(tokens []types.Token) []types.WordCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, tok := range tokens {
		if _, seen := counts[tok.Norm]; !seen {
			order = append(order, tok.Norm)
		}
		counts[tok.Norm]++
	}

	result := []types.WordCount{}
	for _, word := range order {
		if counts[word] > repetitiveMinCount && utf8.RuneCountInString(word) > repetitiveMinLength {
			result = append(result, types.WordCount{Word: word, Count: counts[word]})
		}
	}
	return result
}

// incompleteThoughts counts contrastive connectors that are directly followed by whitespace.
func incompleteThoughts(t types.Transcript) int {
	tokens := t.Tokens
	endsWithSpace := false
	if r, _ := utf8.DecodeLastRuneInString(t.Raw); r != utf8.RuneError {
		endsWithSpace = unicode.IsSpace(r)
	}

	n := 0
	for i, tok := range tokens {
		if !inSet(incompleteMarkers, tok.Norm) || tok.TrailPunct {
			continue
		}
		if i < len(tokens)-1 || endsWithSpace {
			n++
		}
	}
	return n
}

func measureGrammar(tokens []types.Token, fs *types.FeatureSet) {
	for i, tok := range tokens {
		if inSet(presentMarkers, tok.Norm) {
			fs.PresentTenseMarkers++
		}
		if inSet(pastMarkers, tok.Norm) {
			fs.PastTenseMarkers++
		}
		if !adjacent(tokens, i) {
			continue
		}
		next := tokens[i+1].Norm
		if inSet(agreementSubjects, tok.Norm) && inSet(agreementVerbs, next) {
			fs.SubjectVerbErrors++
		}
		if articleMismatch(tok.Norm, next) {
			fs.ArticleErrors++
		}
	}
}

// articleMismatch flags "a" before a vowel-initial word and "an" before a consonant-initial word.
func articleMismatch(article, next string) bool {
	r, _ := utf8.DecodeRuneInString(next)
	if !unicode.IsLetter(r) {
		return false
	}
	vowel := strings.ContainsRune(vowels, r)
	switch article {
	case "a":
		return vowel
	case "an":
		return !vowel
	default:
		return false
	}
}

func countPhrases(tokens []types.Token, list []phrase) int {
	n := 0
	for _, p := range list {
		n += p.count(tokens)
	}
	return n
}

func countWords(tokens []types.Token, set map[string]struct{}) int {
	n := 0
	for _, tok := range tokens {
		if inSet(set, tok.Norm) {
			n++
		}
	}
	return n
}
