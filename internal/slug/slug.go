// Package slug turns project titles into URL path segments.
package slug

import (
	"regexp"
	"strings"
)

// whitespace mirrors the set of characters a JavaScript \s matches, so slugs
// stay stable for titles authored with non-breaking or other Unicode spaces.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	disallowed = regexp.MustCompile(`[^a-z0-9` + whitespace + `]`)
	spaceRuns  = regexp.MustCompile(`[` + whitespace + `]+`)
)

// Derive returns the slug for a title: lowercased, stripped of everything that
// is not a letter, digit or whitespace, with whitespace runs replaced by "-".
//
// Stripping happens before hyphenation, so literal hyphens in a title vanish:
// "E-Commerce App!" becomes "ecommerce-app".
func Derive(title string) string {
	s := strings.ToLower(title)
	s = disallowed.ReplaceAllString(s, "")
	return spaceRuns.ReplaceAllString(s, "-")
}

// Collisions groups the indexes of titles that derive the same slug. Only
// slugs shared by two or more titles are returned; indexes keep input order.
func Collisions(titles []string) map[string][]int {
	seen := make(map[string][]int, len(titles))
	for i, t := range titles {
		s := Derive(t)
		seen[s] = append(seen[s], i)
	}

	collisions := make(map[string][]int)
	for s, idx := range seen {
		if len(idx) > 1 {
			collisions[s] = idx
		}
	}
	return collisions
}

// Index maps slugs to positions in a title list. When titles collide the
// earliest position is kept, matching a front-to-back scan.
type Index map[string]int

// NewIndex derives the slug of every title once
func NewIndex(titles []string) Index {
	idx := make(Index, len(titles))
	for i, t := range titles {
		s := Derive(t)
		if _, ok := idx[s]; !ok {
			idx[s] = i
		}
	}
	return idx
}

// Lookup returns the position recorded for slug
func (idx Index) Lookup(slug string) (int, bool) {
	i, ok := idx[slug]
	return i, ok
}
