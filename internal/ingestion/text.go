// Package ingestion reads transcripts from disk and normalizes them for assessment.
package ingestion

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Transcript formats recorded in Metadata.Format.
const (
	FormatText     = "text"
	FormatHTML     = "html"
	FormatCaptions = "captions"
)

var (
	spaceRun     = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while preserving paragraph breaks
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses runs of spaces and tabs
func cleanLine(line string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
}

// FormatFromPath maps a file extension to a transcript format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", "":
		return FormatText, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".vtt", ".srt":
		return FormatCaptions, nil
	default:
		return "", &Error{Message: fmt.Sprintf("cannot read %q", filepath.Base(path)), Cause: ErrUnsupportedFormat}
	}
}

// LoadTranscript reads a transcript file, converts it to plain text and returns it with
// metadata. Files larger than maxBytes are rejected; maxBytes <= 0 disables the bound.
func LoadTranscript(path string, maxBytes int64) (string, *Metadata, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", nil, err
	}

	raw, err := readBounded(path, maxBytes)
	if err != nil {
		return "", nil, err
	}

	text, err := Parse(raw, format)
	if err != nil {
		return "", nil, err
	}

	metadata := NewMetadata(text, path, format)
	metadata.Bytes = int64(len(raw))
	return text, metadata, nil
}

// Parse converts raw transcript content of the given format to cleaned plain text.
func Parse(raw []byte, format string) (string, error) {
	switch format {
	case FormatText:
		return CleanText(string(raw)), nil
	case FormatHTML:
		text, err := ExtractTranscriptText(string(raw))
		if err != nil {
			return "", &Error{Message: "failed to extract text from HTML", Cause: err}
		}
		return CleanText(text), nil
	case FormatCaptions:
		return CleanText(StripCaptions(string(raw))), nil
	default:
		return "", &Error{Message: fmt.Sprintf("format %q", format), Cause: ErrUnsupportedFormat}
	}
}

func readBounded(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Message: "file not found", Cause: err}
		}
		return nil, &Error{Message: "failed to read file", Cause: err}
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		// one extra byte distinguishes "exactly at the limit" from "over it"
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Message: "failed to read file", Cause: err}
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, &Error{Message: fmt.Sprintf("%s is larger than %d bytes", filepath.Base(path), maxBytes), Cause: ErrTooLarge}
	}
	return data, nil
}
