// ABOUTME: Container extractor that locates the article body in a full HTML document
// ABOUTME: Marker-anchored lookup first, then link-density scored paragraph/cell scanning

package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	paragraphBlock = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>(.*?)</p\s*>`)
	cellBlock      = regexp.MustCompile(`(?is)<td(?:\s[^>]*)?>(.*?)</td\s*>`)
	anchorOpen     = regexp.MustCompile(`(?i)<a[\s>]`)
)

// ContainerExtractor pulls article text out of raw HTML without building a DOM.
type ContainerExtractor struct {
	cfg      Config
	noiseTag []*regexp.Regexp
}

// NewContainerExtractor creates an extractor; zero fields of cfg take defaults.
func NewContainerExtractor(cfg Config) *ContainerExtractor {
	cfg = cfg.withDefaults()
	e := &ContainerExtractor{cfg: cfg}
	for _, name := range cfg.StripElements {
		name = regexp.QuoteMeta(strings.ToLower(name))
		e.noiseTag = append(e.noiseTag,
			regexp.MustCompile(fmt.Sprintf(`(?is)<%s\b[^>]*>.*?</%s\s*>`, name, name)))
	}
	return e
}

// Extract returns the article text and true, or "" and false when neither
// pass finds a qualifying container.
func (e *ContainerExtractor) Extract(document string) (string, bool) {
	clean := e.removeNoise(document)

	if text, ok := e.markerPass(clean); ok {
		return text, true
	}
	return e.densityPass(clean)
}

func (e *ContainerExtractor) removeNoise(document string) string {
	for _, re := range e.noiseTag {
		document = re.ReplaceAllString(document, " ")
	}
	return document
}

// markerPass returns the first marker whose container holds enough text.
func (e *ContainerExtractor) markerPass(document string) (string, bool) {
	for _, marker := range e.cfg.Markers {
		inner, ok := innerByMarker(document, marker)
		if !ok {
			continue
		}
		text := StripTags(inner)
		if utf8.RuneCountInString(text) > e.cfg.MarkerMinLength {
			return text, true
		}
	}
	return "", false
}

// innerByMarker finds the element whose opening tag contains marker and
// returns the HTML up to the first closing tag of the same name.
func innerByMarker(document, marker string) (string, bool) {
	idx := strings.Index(document, marker)
	if idx < 0 {
		return "", false
	}

	tagStart := strings.LastIndexByte(document[:idx], '<')
	if tagStart < 0 {
		return "", false
	}
	rel := strings.IndexByte(document[idx:], '>')
	if rel < 0 {
		return "", false
	}
	tagEnd := idx + rel

	fields := strings.Fields(document[tagStart+1 : tagEnd])
	if len(fields) == 0 {
		return "", false
	}
	name := asciiLower(fields[0])
	if name == "" || strings.HasPrefix(name, "/") {
		return "", false
	}

	contentStart := tagEnd + 1
	end := indexClosingTag(document[contentStart:], name)
	if end < 0 {
		return "", false
	}
	return document[contentStart : contentStart+end], true
}

// indexClosingTag finds "</name>" case-insensitively. Lowercasing is ASCII
// only so byte offsets stay aligned with the original string.
func indexClosingTag(s, name string) int {
	return strings.Index(asciiLower(s), "</"+name+">")
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

type densityCandidate struct {
	text  string
	score float64
}

// densityPass scores every paragraph and table cell by target-script
// characters divided by anchor count plus one and keeps the best.
func (e *ContainerExtractor) densityPass(document string) (string, bool) {
	var best *densityCandidate

	for _, re := range []*regexp.Regexp{paragraphBlock, cellBlock} {
		for _, m := range re.FindAllStringSubmatch(document, -1) {
			inner := m[1]
			text := StripTags(inner)
			scriptChars := CountScript(text, e.cfg.Script)
			if scriptChars < e.cfg.DensityMinScriptChars {
				continue
			}
			anchors := len(anchorOpen.FindAllStringIndex(inner, -1))
			score := float64(scriptChars) / float64(anchors+1)
			if best == nil || score > best.score {
				best = &densityCandidate{text: text, score: score}
			}
		}
	}

	if best == nil || utf8.RuneCountInString(best.text) <= e.cfg.DensityMinLength {
		return "", false
	}
	return best.text, true
}
