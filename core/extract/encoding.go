// ABOUTME: Encoding resolver that turns raw page bytes into text
// ABOUTME: Tries the declared charset, then an ordered list, then lossy UTF-8

package extract

import (
	"bytes"
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

const utf8Name = "utf-8"

type candidate struct {
	name string
	enc  encoding.Encoding
}

// EncodingResolver decodes bytes by trying candidate encodings in order.
type EncodingResolver struct {
	candidates      []candidate
	preferValidUTF8 bool
}

// NewEncodingResolver builds a resolver from charset labels. Unknown labels
// are skipped.
func NewEncodingResolver(labels []string, preferValidUTF8 bool) *EncodingResolver {
	r := &EncodingResolver{preferValidUTF8: preferValidUTF8}
	for _, label := range labels {
		enc, name := charset.Lookup(strings.TrimSpace(label))
		if enc == nil {
			continue
		}
		r.candidates = append(r.candidates, candidate{name: name, enc: enc})
	}
	return r
}

// Resolve returns the decoded text and the name of the encoding that produced it.
// It never fails: when no candidate decodes cleanly the bytes are decoded as
// UTF-8 with U+FFFD substituted for invalid sequences.
func (r *EncodingResolver) Resolve(raw []byte) (string, string) {
	return r.ResolveHinted(raw, "")
}

// ResolveHinted is Resolve with the response Content-Type. A charset declared
// there is tried strictly before the configured list; servers that mislabel
// their pages fail that check and fall through.
func (r *EncodingResolver) ResolveHinted(raw []byte, contentType string) (string, string) {
	if r.preferValidUTF8 && hasMultibyte(raw) && utf8.Valid(raw) {
		return string(raw), utf8Name
	}

	if c, ok := declaredCharset(contentType); ok {
		if text, ok := decodeStrict(c, raw); ok {
			return text, c.name
		}
	}

	for _, c := range r.candidates {
		if text, ok := decodeStrict(c, raw); ok {
			return text, c.name
		}
	}

	return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), utf8Name + "-lossy"
}

// Decode is ResolveHinted without the encoding name.
func (r *EncodingResolver) Decode(raw []byte, contentType string) string {
	text, _ := r.ResolveHinted(raw, contentType)
	return text
}

func declaredCharset(contentType string) (candidate, bool) {
	if contentType == "" {
		return candidate{}, false
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["charset"] == "" {
		return candidate{}, false
	}
	enc, name := charset.Lookup(params["charset"])
	if enc == nil {
		return candidate{}, false
	}
	return candidate{name: name, enc: enc}, true
}

// decodeStrict reports failure when the candidate cannot represent the input.
// Single-byte decoders map unassigned bytes to U+FFFD, which is treated as a
// decode error.
func decodeStrict(c candidate, raw []byte) (string, bool) {
	if c.name == utf8Name {
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(raw), true
	}

	out, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

func hasMultibyte(raw []byte) bool {
	for _, b := range raw {
		if b >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
