// Package lexical extracts word-level features from spoken-language transcripts.
package lexical

import (
	"strings"
	"unicode"

	"github.com/jonathan/talk-coach/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize splits a transcript into normalized word tokens and sentences.
// Fields made only of punctuation are not words. Sentences are split on runs of
// '.', '!' and '?' in the raw text; segments without words are discarded.
func Tokenize(text string) types.Transcript {
	// Casers are stateful and must not be shared between goroutines.
	caser := cases.Lower(language.English)

	tokens := tokenizeFields(text, caser)

	segments := strings.FieldsFunc(text, isSentenceTerminator)
	sentences := make([]types.Sentence, 0, len(segments))
	for _, seg := range segments {
		segTokens := tokenizeFields(seg, caser)
		if len(segTokens) == 0 {
			continue
		}
		sentences = append(sentences, types.Sentence{
			Text:   strings.TrimSpace(seg),
			Tokens: segTokens,
		})
	}

	return types.Transcript{
		Raw:       text,
		Tokens:    tokens,
		Sentences: sentences,
	}
}

func tokenizeFields(text string, caser cases.Caser) []types.Token {
	fields := strings.Fields(text)
	tokens := make([]types.Token, 0, len(fields))
	for _, field := range fields {
		tok, ok := newToken(field, caser)
		if ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func newToken(field string, caser cases.Caser) (types.Token, bool) {
	lowered := caser.String(field)
	left := strings.TrimLeftFunc(lowered, isPunct)
	norm := strings.TrimRightFunc(left, isPunct)
	if norm == "" {
		return types.Token{}, false
	}
	return types.Token{
		Raw:        field,
		Norm:       norm,
		LeadPunct:  len(left) != len(lowered),
		TrailPunct: len(norm) != len(left),
	}, true
}

func isPunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// phrase is a word or multi-word expression matched against consecutive tokens
type phrase []string

func newPhrase(s string) phrase {
	return phrase(strings.Fields(s))
}

func (p phrase) String() string {
	return strings.Join(p, " ")
}

// matchAt reports whether p occurs at tokens[i]. Words of a multi-word phrase must be
// separated by whitespace only.
func (p phrase) matchAt(tokens []types.Token, i int) bool {
	if len(p) == 0 || i+len(p) > len(tokens) {
		return false
	}
	for k, word := range p {
		tok := tokens[i+k]
		if tok.Norm != word {
			return false
		}
		if k > 0 && (tokens[i+k-1].TrailPunct || tok.LeadPunct) {
			return false
		}
	}
	return true
}

// count returns the number of (possibly overlapping) occurrences of p in tokens.
func (p phrase) count(tokens []types.Token) int {
	n := 0
	for i := range tokens {
		if p.matchAt(tokens, i) {
			n++
		}
	}
	return n
}

// adjacent reports whether tokens[i] and tokens[i+1] are separated by whitespace only.
func adjacent(tokens []types.Token, i int) bool {
	return i+1 < len(tokens) && !tokens[i].TrailPunct && !tokens[i+1].LeadPunct
}
