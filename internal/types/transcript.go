// Package types provides type definitions for structured data used throughout the talk-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Token is a single whitespace-delimited word of a transcript.
type Token struct {
	// Raw is the token exactly as it appeared in the transcript
	Raw string
	// Norm is the lower-cased token with leading and trailing punctuation removed
	Norm string
	// LeadPunct reports whether punctuation preceded the word inside the token
	LeadPunct bool
	// TrailPunct reports whether punctuation followed the word inside the token
	TrailPunct bool
}

// Sentence is a span of word tokens delimited by terminal punctuation.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"-"`
}

// Len returns the number of words in the sentence.
func (s Sentence) Len() int {
	return len(s.Tokens)
}

// LastWord returns the normalized final word of the sentence, or "" for an empty sentence.
func (s Sentence) LastWord() string {
	if len(s.Tokens) == 0 {
		return ""
	}
	return s.Tokens[len(s.Tokens)-1].Norm
}

// Transcript is a tokenized transcript. It is built once per assessment and never mutated.
type Transcript struct {
	Raw       string
	Tokens    []Token
	Sentences []Sentence
}

// WordCount returns the number of words in the transcript.
func (t Transcript) WordCount() int {
	return len(t.Tokens)
}

// UniqueWordCount returns the number of distinct normalized words.
func (t Transcript) UniqueWordCount() int {
	seen := make(map[string]struct{}, len(t.Tokens))
	for _, tok := range t.Tokens {
		seen[tok.Norm] = struct{}{}
	}
	return len(seen)
}

// Words returns the normalized words in transcript order.
func (t Transcript) Words() []string {
	words := make([]string, len(t.Tokens))
	for i, tok := range t.Tokens {
		words[i] = tok.Norm
	}
	return words
}
