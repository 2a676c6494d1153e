package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dixanta.dev/internal/content"
	"dixanta.dev/internal/models"
	"dixanta.dev/internal/slug"
)

func testProjects() models.ProjectList {
	return models.ProjectList{
		{
			Title:    "Personal Finance Tracker",
			Tags:     []string{"React", "Node.js"},
			Featured: true,
			Images: []models.Image{
				{URL: "a.png", Type: "Screenshots"},
				{URL: "b.png", Type: "Architecture"},
				{URL: "c.png", Type: "Screenshots"},
			},
		},
		{Title: "E-Commerce App!", Tags: []string{"Go"}, Featured: false},
		{Title: "My App", Tags: []string{"React"}, Featured: true},
		{Title: "My   App", Tags: []string{"Vue"}, Featured: false},
	}
}

func newTestStore(projects models.ProjectList) *content.Store {
	return content.NewStaticStore(&content.Snapshot{Projects: projects})
}

func TestResolveBySlugRoundTrip(t *testing.T) {
	projects := testProjects()

	p, ok := ResolveBySlug(projects, slug.Derive("Personal Finance Tracker"))

	require.True(t, ok)
	assert.Same(t, &projects[0], p)
}

func TestResolveBySlugNotFound(t *testing.T) {
	for _, s := range []string{"does-not-exist", "", "Personal-Finance-Tracker", "e-commerce-app"} {
		p, ok := ResolveBySlug(testProjects(), s)
		assert.False(t, ok, s)
		assert.Nil(t, p, s)
	}
}

func TestResolveBySlugEmptyCollection(t *testing.T) {
	_, ok := ResolveBySlug(nil, "anything")
	assert.False(t, ok)
}

// "My App" and "My   App" both derive "my-app". Which one wins is a known
// ambiguity; this pins the current first-in-order behavior.
func TestResolveBySlugCollisionFirstWins(t *testing.T) {
	projects := testProjects()

	p, ok := ResolveBySlug(projects, "my-app")

	require.True(t, ok)
	assert.Same(t, &projects[2], p)
}

func TestGetBySlugAgreesWithScan(t *testing.T) {
	projects := testProjects()
	svc := NewProjectService(newTestStore(projects))

	candidates := append(projects.Titles(), "does-not-exist", "")
	for _, c := range candidates {
		s := slug.Derive(c)
		want, wantOK := ResolveBySlug(svc.GetAll(), s)
		got, gotOK := svc.GetBySlug(s)
		assert.Equal(t, wantOK, gotOK, s)
		assert.Same(t, want, got, s)
	}
}

func TestList(t *testing.T) {
	svc := NewProjectService(newTestStore(testProjects()))
	featured := true

	tests := []struct {
		name   string
		filter ProjectFilter
		want   []string
	}{
		{"all", ProjectFilter{}, []string{"personal-finance-tracker", "ecommerce-app", "my-app", "my-app"}},
		{"tag is case insensitive", ProjectFilter{Tag: "react"}, []string{"personal-finance-tracker", "my-app"}},
		{"featured", ProjectFilter{Featured: &featured}, []string{"personal-finance-tracker", "my-app"}},
		{"tag and featured", ProjectFilter{Tag: "go", Featured: &featured}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, s := range svc.List(tt.filter) {
				got = append(got, s.Slug)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategories(t *testing.T) {
	svc := NewProjectService(newTestStore(testProjects()))

	resp := svc.Categories("")

	require.Len(t, resp.Featured, 2)
	require.Len(t, resp.Others, 2)
	assert.Equal(t, "Personal Finance Tracker", resp.Featured[0].Title)
	assert.Equal(t, "E-Commerce App!", resp.Others[0].Title)
}

func TestCategoriesUnsetFeaturedIsOther(t *testing.T) {
	svc := NewProjectService(newTestStore(models.ProjectList{{Title: "Undecided"}}))

	resp := svc.Categories("")
	assert.Empty(t, resp.Featured)
	require.Len(t, resp.Others, 1)
	assert.Equal(t, "Undecided", resp.Others[0].Title)
}

func TestDetail(t *testing.T) {
	svc := NewProjectService(newTestStore(testProjects()))

	d, ok := svc.Detail("personal-finance-tracker")
	require.True(t, ok)
	assert.Equal(t, "Personal Finance Tracker", d.Project.Title)
	require.Len(t, d.Gallery, 2)
	assert.Equal(t, "Screenshots", d.Gallery[0].Type)
	assert.Equal(t, "Architecture", d.Gallery[1].Type)

	_, ok = svc.Detail("does-not-exist")
	assert.False(t, ok)
}

func TestSlugs(t *testing.T) {
	svc := NewProjectService(newTestStore(testProjects()))
	assert.Equal(t, []string{"personal-finance-tracker", "ecommerce-app", "my-app", "my-app"}, svc.Slugs())
}

func TestGroupImages(t *testing.T) {
	images := []models.Image{
		{URL: "1.png", Type: "UI"},
		{URL: "2.png", Type: "Diagrams"},
		{URL: "3.png"},
		{URL: "4.png", Type: "UI"},
	}

	want := []models.ImageGroup{
		{Type: "UI", Images: []models.Image{{URL: "1.png", Type: "UI"}, {URL: "4.png", Type: "UI"}}},
		{Type: "Diagrams", Images: []models.Image{{URL: "2.png", Type: "Diagrams"}}},
		{Type: models.DefaultImageType, Images: []models.Image{{URL: "3.png"}}},
	}

	if diff := cmp.Diff(want, GroupImages(images)); diff != "" {
		t.Errorf("GroupImages() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupImagesEmpty(t *testing.T) {
	assert.Empty(t, GroupImages(nil))
	assert.NotNil(t, GroupImages(nil))
}
