package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Line    with \t multiple    spaces")

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_StripsByteOrderMark(t *testing.T) {
	assert.Equal(t, "hello", CleanText("\ufeffhello"))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	result := CleanText("Test with émojis 🚀 and spéciàl chàracters")

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"answer.txt", FormatText},
		{"answer.MD", FormatText},
		{"answer", FormatText},
		{"page.html", FormatHTML},
		{"page.htm", FormatHTML},
		{"talk.vtt", FormatCaptions},
		{"talk.srt", FormatCaptions},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatFromPath("recording.mp3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTranscript_Text(t *testing.T) {
	path := writeFile(t, "answer.txt", "I am a student   and I study\r\nevery day in the library")

	text, metadata, err := LoadTranscript(path, 0)
	require.NoError(t, err)

	assert.Equal(t, "I am a student and I study\nevery day in the library", text)
	require.NotNil(t, metadata)
	assert.Equal(t, path, metadata.Source)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, computeHash(text), metadata.Hash)
	assert.EqualValues(t, 54, metadata.Bytes)
	assert.NotEmpty(t, metadata.Timestamp)
}

func TestLoadTranscript_FileNotFound(t *testing.T) {
	text, metadata, err := LoadTranscript("/nonexistent/answer.txt", 0)

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")

	var ingestErr *Error
	assert.True(t, errors.As(err, &ingestErr))
}

func TestLoadTranscript_SizeBound(t *testing.T) {
	content := strings.Repeat("a", 100)
	path := writeFile(t, "answer.txt", content)

	_, _, err := LoadTranscript(path, 100)
	require.NoError(t, err, "a file exactly at the limit is accepted")

	_, _, err = LoadTranscript(path, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestLoadTranscript_HashDependsOnContent(t *testing.T) {
	_, m1, err := LoadTranscript(writeFile(t, "one.txt", "Content 1"), 0)
	require.NoError(t, err)
	_, m2, err := LoadTranscript(writeFile(t, "two.txt", "Content 2"), 0)
	require.NoError(t, err)
	_, m3, err := LoadTranscript(writeFile(t, "three.txt", "Content   1\n"), 0)
	require.NoError(t, err)

	assert.NotEqual(t, m1.Hash, m2.Hash)
	assert.Equal(t, m1.Hash, m3.Hash, "hash covers the cleaned text")
}

func TestLoadTranscript_Captions(t *testing.T) {
	vtt := "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\nI am a student.\n"
	path := writeFile(t, "talk.vtt", vtt)

	text, metadata, err := LoadTranscript(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "I am a student.", text)
	assert.Equal(t, FormatCaptions, metadata.Format)
}

func TestLoadTranscript_HTML(t *testing.T) {
	page := `<html><body><nav>Menu</nav><div class="transcript"><p>Hello there.</p><p>How are you?</p></div></body></html>`
	path := writeFile(t, "page.html", page)

	text, metadata, err := LoadTranscript(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "Hello there.\nHow are you?", text)
	assert.Equal(t, FormatHTML, metadata.Format)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("x"), "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestError_Format(t *testing.T) {
	err := &Error{Message: "failed to read file", Cause: errors.New("boom")}
	assert.Equal(t, "ingestion error: failed to read file: boom", err.Error())

	err = &Error{Message: "empty"}
	assert.Equal(t, "ingestion error: empty", err.Error())
	assert.Nil(t, err.Unwrap())
}
