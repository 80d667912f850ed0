// ABOUTME: URL canonicalizer for feed links that point at the forum redirect gateway
// ABOUTME: Rewrites dcboard.cgi?om=<id> style links into the permanent document path

package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// CanonicalConfig describes the redirect-gateway pattern and how to rebuild
// the direct document URL from it.
type CanonicalConfig struct {
	// GatewayPath matches the path of a redirect-only endpoint.
	GatewayPath *regexp.Regexp

	// IDParam is the query parameter carrying the numeric article id.
	IDParam string

	// FolderParam is the query parameter naming the forum folder.
	FolderParam string

	// FolderRoot is prepended to the folder parameter value.
	FolderRoot string

	// DefaultFolder is used when the link carries no folder parameter.
	DefaultFolder string

	// Extension of the permanent document.
	Extension string
}

var (
	numericID   = regexp.MustCompile(`^[0-9]+$`)
	folderValue = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// DefaultCanonicalConfig matches rotter.net forum gateway links such as
// https://rotter.net/cgi-bin/forum/dcboard.cgi?az=read_count&om=922421&forum=scoops1
func DefaultCanonicalConfig() CanonicalConfig {
	return CanonicalConfig{
		GatewayPath:   regexp.MustCompile(`(?i)/cgi-bin/forum/dcboard\.cgi$`),
		IDParam:       "om",
		FolderParam:   "forum",
		FolderRoot:    "forum",
		DefaultFolder: "forum/scoops1",
		Extension:     "shtml",
	}
}

// Canonicalizer rewrites gateway links into directly fetchable URLs.
type Canonicalizer struct {
	cfg CanonicalConfig
}

// NewCanonicalizer creates a canonicalizer for the given pattern.
func NewCanonicalizer(cfg CanonicalConfig) *Canonicalizer {
	d := DefaultCanonicalConfig()
	if cfg.GatewayPath == nil {
		cfg = d
	}
	if cfg.IDParam == "" {
		cfg.IDParam = d.IDParam
	}
	if cfg.DefaultFolder == "" {
		cfg.DefaultFolder = d.DefaultFolder
	}
	if cfg.Extension == "" {
		cfg.Extension = d.Extension
	}
	return &Canonicalizer{cfg: cfg}
}

// Canonicalize returns the direct document URL for a gateway link, or raw
// unchanged when it does not match. It never fails.
func (c *Canonicalizer) Canonicalize(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	if !c.cfg.GatewayPath.MatchString(u.Path) {
		return raw
	}

	query := u.Query()
	id := query.Get(c.cfg.IDParam)
	if !numericID.MatchString(id) {
		return raw
	}

	folder := c.cfg.DefaultFolder
	if c.cfg.FolderParam != "" {
		if f := query.Get(c.cfg.FolderParam); folderValue.MatchString(f) {
			folder = f
			if c.cfg.FolderRoot != "" {
				folder = c.cfg.FolderRoot + "/" + f
			}
		}
	}

	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + u.Host + "/" + strings.Trim(folder, "/") + "/" + id + "." + c.cfg.Extension
}
