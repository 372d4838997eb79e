// Package questions provides the bank of speaking prompts offered to a learner.
// The bank is stored as JSON and embedded at compile time.
package questions

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
)

//go:embed *.json
var questionFiles embed.FS

// DefaultFile is the embedded question bank served by the CLI and the server.
const DefaultFile = "questions.json"

// ErrNotFound is returned when a question index or id does not exist.
var ErrNotFound = errors.New("question not found")

// Question is a single speaking prompt
type Question struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

type bank struct {
	Questions []Question `json:"questions"`
}

// cache stores parsed question files to avoid repeated JSON parsing
var (
	cache   = make(map[string][]Question)
	cacheMu sync.RWMutex
)

// All returns every question in the default bank, in file order.
// The returned slice is a copy and may be modified by the caller.
func All() ([]Question, error) {
	qs, err := loadFile(DefaultFile)
	if err != nil {
		return nil, err
	}
	return slices.Clone(qs), nil
}

// Texts returns the prompt text of every question in the default bank.
func Texts() ([]string, error) {
	qs, err := loadFile(DefaultFile)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(qs))
	for i, q := range qs {
		texts[i] = q.Text
	}
	return texts, nil
}

// Get returns the question at index i of the default bank.
func Get(i int) (Question, error) {
	qs, err := loadFile(DefaultFile)
	if err != nil {
		return Question{}, err
	}
	if i < 0 || i >= len(qs) {
		return Question{}, fmt.Errorf("%w: index %d (bank has %d)", ErrNotFound, i, len(qs))
	}
	return qs[i], nil
}

// ByID returns the question with the given id.
func ByID(id string) (Question, error) {
	qs, err := loadFile(DefaultFile)
	if err != nil {
		return Question{}, err
	}
	idx := slices.IndexFunc(qs, func(q Question) bool { return q.ID == id })
	if idx < 0 {
		return Question{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return qs[idx], nil
}

// Random picks a question using r. A nil r uses the global source.
func Random(r *rand.Rand) (Question, error) {
	qs, err := loadFile(DefaultFile)
	if err != nil {
		return Question{}, err
	}
	if len(qs) == 0 {
		return Question{}, ErrNotFound
	}
	if r == nil {
		return qs[rand.IntN(len(qs))], nil
	}
	return qs[r.IntN(len(qs))], nil
}

// loadFile loads and caches a question file.
func loadFile(filename string) ([]Question, error) {
	cacheMu.RLock()
	if qs, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return qs, nil
	}
	cacheMu.RUnlock()

	data, err := questionFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file %s: %w", filename, err)
	}

	var b bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse question file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = b.Questions
	cacheMu.Unlock()

	return b.Questions, nil
}

// ClearCache clears the question cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string][]Question)
	cacheMu.Unlock()
}
