package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dixanta.dev/internal/slug"
)

// DefaultImageType groups images that don't declare a type
const DefaultImageType = "Screenshots"

// Project represents a portfolio project
type Project struct {
	Title             string      `json:"title"`
	Description       string      `json:"description,omitempty"`
	Image             string      `json:"image,omitempty"`
	Images            []Image     `json:"images,omitempty"`
	Tags              []string    `json:"tags"`
	GitHubLinks       GitHubLinks `json:"github-links,omitempty"`
	LivePreview       string      `json:"live-preview,omitempty"`
	PersonalLearnings string      `json:"personal-learnings,omitempty"`
	Challenges        []string    `json:"challenges,omitempty"`
	Featured          bool        `json:"featured"`
}

// Slug returns the URL path segment derived from the project title
func (p *Project) Slug() string {
	return slug.Derive(p.Title)
}

// HasTag reports whether the project carries tag, ignoring case
func (p *Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ProjectList is the ordered project collection as stored on disk
type ProjectList []Project

// Titles returns the project titles in collection order
func (l ProjectList) Titles() []string {
	titles := make([]string, len(l))
	for i := range l {
		titles[i] = l[i].Title
	}
	return titles
}

// Image is a gallery entry. Older data files list bare URLs; those decode
// into an Image with only URL and the default type set.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Type    string `json:"type"`
	Alt     string `json:"alt,omitempty"`
}

func (img *Image) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		*img = Image{URL: url, Type: DefaultImageType}
		return nil
	}

	type plain Image
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("image must be a URL or an object: %w", err)
	}
	if p.Type == "" {
		p.Type = DefaultImageType
	}
	*img = Image(p)
	return nil
}

// Link is a labelled external URL
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// GitHubLinks accepts the three shapes the data files use: a single URL,
// a list of URLs, or a list of {"label": "url"} objects.
type GitHubLinks []Link

func (gl *GitHubLinks) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*gl = nil
			return nil
		}
		*gl = GitHubLinks{{Label: "View on GitHub", URL: single}}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("github-links must be a URL or a list: %w", err)
	}

	links := make(GitHubLinks, 0, len(items))
	for i, raw := range items {
		var url string
		if err := json.Unmarshal(raw, &url); err == nil {
			links = append(links, Link{Label: linkLabel(url, i), URL: url})
			continue
		}

		link, err := objectLink(raw)
		if err != nil {
			return fmt.Errorf("github-links[%d]: %w", i, err)
		}
		links = append(links, link)
	}

	*gl = links
	return nil
}

// objectLink reads a {"label": "url"} entry. Only the first pair in document
// order is used; an already normalized {"label", "url"} object is kept as is.
func objectLink(raw json.RawMessage) (Link, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Link{}, err
	}
	if len(fields) == 0 {
		return Link{}, errors.New("empty link object")
	}
	if _, ok := fields["label"]; ok && len(fields) == 2 {
		var l Link
		if err := json.Unmarshal(raw, &l); err == nil && l.URL != "" {
			return l, nil
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return Link{}, err
	}
	key, err := dec.Token()
	if err != nil {
		return Link{}, err
	}
	label, _ := key.(string)
	var url string
	if err := dec.Decode(&url); err != nil {
		return Link{}, fmt.Errorf("link %q: %w", label, err)
	}
	return Link{Label: label, URL: url}, nil
}

func linkLabel(url string, index int) string {
	switch {
	case strings.Contains(url, "frontend"):
		return "Frontend Code"
	case strings.Contains(url, "backend"):
		return "Backend Code"
	default:
		return fmt.Sprintf("GitHub %d", index+1)
	}
}
