// ABOUTME: Tag stripper that flattens an HTML fragment into readable plain text
// ABOUTME: Block boundaries become newlines, entities are decoded, whitespace is collapsed

package extract

import (
	"html"
	"regexp"
	"strings"
)

var (
	lineBreakTag   = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseTag  = regexp.MustCompile(`(?i)</(p|div|li|tr|td|h[1-6])\s*>`)
	anyTag         = regexp.MustCompile(`<[^>]+>`)
	horizontalRuns = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
)

// StripTags converts an HTML fragment to plain text. The fragment may be
// malformed or partial. The transformation is repeated until the output stops
// changing, so decoded entities that spell markup are stripped as well and
// StripTags(StripTags(x)) == StripTags(x).
func StripTags(fragment string) string {
	text := fragment
	// Each pass only removes markup or consumes entities, so this converges.
	for {
		next := stripOnce(text)
		if next == text {
			return text
		}
		text = next
	}
}

func stripOnce(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = lineBreakTag.ReplaceAllString(s, "\n")
	s = blockCloseTag.ReplaceAllString(s, "\n")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = horizontalRuns.ReplaceAllString(s, " ")
	s = blankLineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
