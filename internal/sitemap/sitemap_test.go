package sitemap

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	set := Build("https://example.dev", []string{"tracker", "", "shop", "tracker"}, time.Time{})

	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
		assert.Empty(t, u.LastMod)
	}
	assert.Equal(t, []string{
		"https://example.dev/",
		"https://example.dev/about",
		"https://example.dev/projects",
		"https://example.dev/skills",
		"https://example.dev/projects/tracker",
		"https://example.dev/projects/shop",
	}, locs)
}

func TestWrite(t *testing.T) {
	mod := time.Date(2026, 3, 14, 22, 0, 0, 0, time.FixedZone("X", -5*3600))
	set := Build("https://example.dev", []string{"tracker"}, mod)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, set))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://example.dev/projects/tracker</loc>")
	assert.Contains(t, out, "<lastmod>2026-03-15</lastmod>")

	var decoded URLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.URLs, 5)
}
