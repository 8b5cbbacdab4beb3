package content

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict policy drops every tag, shared and safe for concurrent use
var stripPolicy = bluemonday.StrictPolicy()

var (
	blockTagRe  = regexp.MustCompile(`(?i)<br\s*/?>|</p>`)
	mentionRe   = regexp.MustCompile(`@([a-zA-Z0-9_%+-]+)(@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,}))?`)
	hashtagRe   = regexp.MustCompile(`#(\S+)`)
	multiSpaces = regexp.MustCompile(`\s\s+`)
)

// PlainText converts a status HTML body to plain text. Block boundaries
// become spaces so words from adjacent paragraphs don't run together.
func PlainText(htmlBody string) string {
	spaced := blockTagRe.ReplaceAllString(htmlBody, " ")
	text := stripPolicy.Sanitize(spaced)
	text = html.UnescapeString(text)
	return CollapseSpaces(text)
}

// Clean prepares text for the generation engine: mentions removed,
// hashtags converted to bare words, whitespace collapsed.
func Clean(text string) string {
	text = mentionRe.ReplaceAllString(text, "")
	text = hashtagRe.ReplaceAllString(text, "$1")
	return CollapseSpaces(text)
}

// CollapseSpaces squashes whitespace runs to single spaces and trims the ends
func CollapseSpaces(text string) string {
	return strings.TrimSpace(multiSpaces.ReplaceAllString(text, " "))
}

// Truncate cuts text to at most max runes, rune-safe
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

// FormatReply cleans generated text and truncates it to the posting limit
func FormatReply(text string, max int) string {
	return Truncate(Clean(text), max)
}
