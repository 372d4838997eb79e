package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCaptions_WebVTT(t *testing.T) {
	vtt := `WEBVTT
Kind: captions
Language: en

NOTE recorded in the practice room

STYLE
::cue { color: yellow }

intro
00:00:00.000 --> 00:00:02.500 align:start
<v Speaker>Well, I think</v> the city

00:00:02.500 --> 00:00:05.000
is <c.highlight>growing</c> fast.
`
	assert.Equal(t, "Well, I think the city\nis growing fast.", StripCaptions(vtt))
}

func TestStripCaptions_SubRip(t *testing.T) {
	srt := "1\r\n00:00:01,000 --> 00:00:02,000\r\n{\\an8}Hello there.\r\n\r\n" +
		"2\r\n00:00:02,000 --> 00:00:04,000\r\n<i>How are</i>\r\nyou today?\r\n"

	assert.Equal(t, "Hello there.\nHow are\nyou today?", StripCaptions(srt))
}

func TestStripCaptions_CollapsesRollingDuplicates(t *testing.T) {
	vtt := "WEBVTT\n\n" +
		"00:00:01.000 --> 00:00:02.000\nso the main\n\n" +
		"00:00:02.000 --> 00:00:03.000\nso the main\nreason is\n\n" +
		"00:00:03.000 --> 00:00:04.000\nreason is\ncost\n"

	assert.Equal(t, "so the main\nreason is\ncost", StripCaptions(vtt))
}

func TestStripCaptions_WhitespaceOnlySeparators(t *testing.T) {
	srt := "1\n00:00:01,000 --> 00:00:02,000\nfirst\n  \n2\n00:00:02,000 --> 00:00:03,000\nsecond\n"

	assert.Equal(t, "first\nsecond", StripCaptions(srt))
}

func TestStripCaptions_NoCues(t *testing.T) {
	assert.Empty(t, StripCaptions("WEBVTT\n\n"))
	assert.Empty(t, StripCaptions(""))
	assert.Empty(t, StripCaptions("just some text without timing"))
}
