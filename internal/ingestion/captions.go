package ingestion

import (
	"regexp"
	"strings"
)

var (
	captionTag   = regexp.MustCompile(`<[^>]*>`)
	captionStyle = regexp.MustCompile(`\{\\[^}]*\}`)
	blankish     = regexp.MustCompile(`\n[ \t]+\n`)
)

// StripCaptions converts WebVTT or SubRip content to the spoken text only.
// Headers, NOTE/STYLE/REGION blocks, cue identifiers, timing lines and markup tags
// are removed. A cue line identical to the previous emitted line is dropped, which
// collapses the rolling captions produced by auto-captioning.
func StripCaptions(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = blankish.ReplaceAllString(content, "\n\n")

	var out []string
	last := ""
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.Trim(block, "\n"), "\n")
		if len(lines) == 0 || isCaptionMetaBlock(lines[0]) {
			continue
		}

		timing := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue
		}

		for _, line := range lines[timing+1:] {
			line = captionTag.ReplaceAllString(line, "")
			line = captionStyle.ReplaceAllString(line, "")
			line = strings.TrimSpace(line)
			if line == "" || line == last {
				continue
			}
			out = append(out, line)
			last = line
		}
	}
	return strings.Join(out, "\n")
}

func isCaptionMetaBlock(first string) bool {
	first = strings.TrimSpace(first)
	for _, prefix := range []string{"WEBVTT", "NOTE", "STYLE", "REGION"} {
		if first == prefix || strings.HasPrefix(first, prefix+" ") || strings.HasPrefix(first, prefix+"\t") {
			return true
		}
	}
	return false
}
