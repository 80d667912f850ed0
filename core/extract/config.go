// ABOUTME: Tunable configuration for the extraction heuristics
// ABOUTME: Marker lists, thresholds, script ranges and encoding candidates live here, not in the algorithms

package extract

import "unicode"

// Config holds every tunable value used by the extractors. Values are copied
// into extractors at construction time and never mutated afterwards.
type Config struct {
	// Markers are literal attribute fragments (id="..." / class="...") that
	// anchor the article container. Order is priority.
	Markers []string

	// StripElements are removed wholesale, content included, before any pass.
	StripElements []string

	// Script is the Unicode range table counted as "target script" characters.
	Script *unicode.RangeTable

	// MarkerMinLength is the minimum stripped length (runes, exclusive) for a
	// marker match to be accepted.
	MarkerMinLength int

	// DensityMinScriptChars discards density candidates with fewer target-script characters.
	DensityMinScriptChars int

	// DensityMinLength is the minimum stripped length (runes, exclusive) of the winning candidate.
	DensityMinLength int

	// MarkdownSectionMarker introduces the rendered content in reader-service output.
	MarkdownSectionMarker string

	// MarkdownMinScriptChars is the minimum target-script count (exclusive) of the best block.
	MarkdownMinScriptChars int

	// MarkdownMinLength is the minimum total length (runes, exclusive) of the best block.
	MarkdownMinLength int

	// Encodings lists charset labels tried in order by the encoding resolver.
	Encodings []string

	// PreferValidUTF8 decodes bytes that are valid, non-ASCII UTF-8 as UTF-8
	// before walking Encodings.
	PreferValidUTF8 bool
}

// DefaultMarkers are the container markers seen on rotter.net pages, most specific first.
var DefaultMarkers = []string{
	`id="scoopBody"`,
	`id="scoop_body"`,
	`class="scoopBody"`,
	`class="scoop_body"`,
	`class="newsbody"`,
	`class="post_body"`,
	`class="postbody"`,
	`class="prow1 valmiddle"`,
	`class="prow1"`,
}

// DefaultConfig returns the configuration tuned for the rotter.net site family.
func DefaultConfig() Config {
	return Config{
		Markers:                append([]string(nil), DefaultMarkers...),
		StripElements:          []string{"script", "style", "select", "nav"},
		Script:                 unicode.Hebrew,
		MarkerMinLength:        20,
		DensityMinScriptChars:  30,
		DensityMinLength:       50,
		MarkdownSectionMarker:  "Markdown Content:",
		MarkdownMinScriptChars: 30,
		MarkdownMinLength:      40,
		Encodings:              []string{"windows-1255", "iso-8859-8", "utf-8"},
		PreferValidUTF8:        true,
	}
}

// withDefaults fills zero values from DefaultConfig so partially specified
// configs behave sensibly.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.Markers) == 0 {
		c.Markers = d.Markers
	}
	if len(c.StripElements) == 0 {
		c.StripElements = d.StripElements
	}
	if c.Script == nil {
		c.Script = d.Script
	}
	if c.MarkerMinLength <= 0 {
		c.MarkerMinLength = d.MarkerMinLength
	}
	if c.DensityMinScriptChars <= 0 {
		c.DensityMinScriptChars = d.DensityMinScriptChars
	}
	if c.DensityMinLength <= 0 {
		c.DensityMinLength = d.DensityMinLength
	}
	if c.MarkdownSectionMarker == "" {
		c.MarkdownSectionMarker = d.MarkdownSectionMarker
	}
	if c.MarkdownMinScriptChars <= 0 {
		c.MarkdownMinScriptChars = d.MarkdownMinScriptChars
	}
	if c.MarkdownMinLength <= 0 {
		c.MarkdownMinLength = d.MarkdownMinLength
	}
	if len(c.Encodings) == 0 {
		c.Encodings = d.Encodings
	}
	return c
}

// CountScript returns how many runes of s fall inside table.
func CountScript(s string, table *unicode.RangeTable) int {
	n := 0
	for _, r := range s {
		if unicode.Is(table, r) {
			n++
		}
	}
	return n
}
