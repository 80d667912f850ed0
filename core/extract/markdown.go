// ABOUTME: Markdown extractor for reader-service renderings of article pages
// ABOUTME: Cleans link/image/table syntax and picks the prose block richest in target-script text

package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	mdImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	bareURL      = regexp.MustCompile(`https?://[^\s)>\]]+`)
	ruleLine     = regexp.MustCompile(`(?m)^[ \t]*(?:[-=_*#][ \t]*){3,}$`)
	tableRow     = regexp.MustCompile(`(?m)^[ \t]*\|.*(?:\n|$)`)
	tableDivider = regexp.MustCompile(`(?m)^[ \t]*:?-{3,}:?(?:[ \t]*\|[ \t]*:?-{3,}:?)+[ \t]*\|?[ \t]*(?:\n|$)`)
	blockSplit   = regexp.MustCompile(`\n[ \t]*\n`)
	titleLine    = regexp.MustCompile(`(?m)^Title:[ \t]*(.+?)[ \t]*\r?$`)
)

// MarkdownExtractor isolates article prose from reader-service output.
type MarkdownExtractor struct {
	cfg Config
}

// NewMarkdownExtractor creates an extractor; zero fields of cfg take defaults.
func NewMarkdownExtractor(cfg Config) *MarkdownExtractor {
	return &MarkdownExtractor{cfg: cfg.withDefaults()}
}

// Extract returns the best prose block, falling back to the page title when it
// is written in the target script.
func (e *MarkdownExtractor) Extract(response string) (string, bool) {
	content := response
	if idx := strings.Index(content, e.cfg.MarkdownSectionMarker); idx >= 0 {
		content = content[idx+len(e.cfg.MarkdownSectionMarker):]
	}

	if block, ok := e.BestBlock(content); ok {
		return block, true
	}

	if m := titleLine.FindStringSubmatch(response); m != nil {
		title := strings.TrimSpace(m[1])
		if CountScript(title, e.cfg.Script) > 0 {
			return title, true
		}
	}
	return "", false
}

// BestBlock cleans markdown and returns the blank-line separated block with
// the most target-script characters, if it clears both thresholds.
func (e *MarkdownExtractor) BestBlock(markdown string) (string, bool) {
	cleaned := CleanMarkdown(markdown)

	best, bestScore := "", -1
	for _, block := range blockSplit.Split(cleaned, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if score := CountScript(block, e.cfg.Script); score > bestScore {
			best, bestScore = block, score
		}
	}

	if bestScore <= e.cfg.MarkdownMinScriptChars || utf8.RuneCountInString(best) <= e.cfg.MarkdownMinLength {
		return "", false
	}
	return best, true
}

// CleanMarkdown drops images, URLs, rules and table rows, and reduces links to
// their labels. Table rows go with their line break so prose on either side
// stays in one block.
func CleanMarkdown(markdown string) string {
	s := strings.ReplaceAll(markdown, "\r\n", "\n")
	s = mdImage.ReplaceAllString(s, "")
	s = mdLink.ReplaceAllString(s, "$1")
	s = bareURL.ReplaceAllString(s, "")
	s = tableDivider.ReplaceAllString(s, "")
	s = tableRow.ReplaceAllString(s, "")
	s = ruleLine.ReplaceAllString(s, "")
	return s
}
