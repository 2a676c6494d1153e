// Package sitemap renders the sitemaps.org XML listing of the client routes.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Pages are the fixed client routes
var Pages = []string{"/", "/about", "/projects", "/skills"}

// URLSet is the sitemap document root
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry
type URL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Build lists the fixed pages followed by one detail page per slug. Empty
// and repeated slugs are skipped since they can't address a distinct project.
func Build(baseURL string, slugs []string, lastMod time.Time) *URLSet {
	mod := ""
	if !lastMod.IsZero() {
		mod = lastMod.UTC().Format("2006-01-02")
	}

	set := &URLSet{XMLNS: namespace}
	for _, p := range Pages {
		set.URLs = append(set.URLs, URL{Loc: baseURL + p, LastMod: mod})
	}

	seen := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		set.URLs = append(set.URLs, URL{Loc: baseURL + "/projects/" + s, LastMod: mod})
	}
	return set
}

// Write encodes set as an indented XML document
func Write(w io.Writer, set *URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	return nil
}
