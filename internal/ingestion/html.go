package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// transcriptSelectors locate the transcript body on caption and episode pages.
var transcriptSelectors = []string{
	".transcript",
	"#transcript",
	"[data-transcript]",
	"main",
	"article",
	".content",
	"#content",
}

// transcriptNoiseSelectors hold cue timing and speaker chrome that is not speech.
var transcriptNoiseSelectors = []string{
	".timestamp",
	".cue-time",
	"time",
	"button",
	"form",
}

// ExtractTranscriptText pulls the spoken text out of an HTML transcript page.
func ExtractTranscriptText(html string) (string, error) {
	return extractMainText(html, transcriptSelectors, transcriptNoiseSelectors...)
}

func extractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	// Block elements are separated so adjacent paragraphs do not fuse into one word.
	mainContent.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(mainContent.Text()), nil
}

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
