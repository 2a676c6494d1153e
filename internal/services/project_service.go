package services

import (
	"dixanta.dev/internal/content"
	"dixanta.dev/internal/models"
)

// ResolveBySlug scans projects in order and returns the first one whose
// title derives slug. Two titles that derive the same slug resolve to the
// earlier one.
func ResolveBySlug(projects []models.Project, slug string) (*models.Project, bool) {
	for i := range projects {
		if projects[i].Slug() == slug {
			return &projects[i], true
		}
	}
	return nil, false
}

// ProjectFilter narrows a project listing. Zero values match everything.
type ProjectFilter struct {
	Tag      string
	Featured *bool
}

func (f ProjectFilter) match(p *models.Project) bool {
	if f.Tag != "" && !p.HasTag(f.Tag) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

// ProjectService handles project-related operations
type ProjectService struct {
	store *content.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *content.Store) *ProjectService {
	return &ProjectService{store: store}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.store.Snapshot().Projects
}

// List returns the summaries of projects matching filter, in collection order
func (s *ProjectService) List(filter ProjectFilter) []models.ProjectSummary {
	projects := s.store.Snapshot().Projects
	summaries := make([]models.ProjectSummary, 0, len(projects))
	for i := range projects {
		if filter.match(&projects[i]) {
			summaries = append(summaries, summarize(&projects[i]))
		}
	}
	return summaries
}

// Categories splits the listing into featured projects and the rest. A
// project without a featured flag counts as one of the rest.
func (s *ProjectService) Categories(tag string) *models.CategoryResponse {
	featured, others := true, false
	return &models.CategoryResponse{
		Featured: s.List(ProjectFilter{Tag: tag, Featured: &featured}),
		Others:   s.List(ProjectFilter{Tag: tag, Featured: &others}),
	}
}

// GetBySlug returns the project a URL slug points at
func (s *ProjectService) GetBySlug(slug string) (*models.Project, bool) {
	snap := s.store.Snapshot()
	i, ok := snap.Slugs.Lookup(slug)
	if !ok {
		return nil, false
	}
	return &snap.Projects[i], true
}

// Detail returns everything the detail view needs for slug
func (s *ProjectService) Detail(slug string) (*models.ProjectDetail, bool) {
	p, ok := s.GetBySlug(slug)
	if !ok {
		return nil, false
	}
	return &models.ProjectDetail{
		Slug:    slug,
		Project: p,
		Gallery: GroupImages(p.Images),
	}, true
}

// Slugs returns the slug of every project in collection order
func (s *ProjectService) Slugs() []string {
	projects := s.store.Snapshot().Projects
	slugs := make([]string, len(projects))
	for i := range projects {
		slugs[i] = projects[i].Slug()
	}
	return slugs
}

// GroupImages buckets images by type. Groups appear in the order their type
// is first seen and keep the images' relative order.
func GroupImages(images []models.Image) []models.ImageGroup {
	groups := []models.ImageGroup{}
	pos := make(map[string]int)
	for _, img := range images {
		t := img.Type
		if t == "" {
			t = models.DefaultImageType
		}
		i, ok := pos[t]
		if !ok {
			i = len(groups)
			pos[t] = i
			groups = append(groups, models.ImageGroup{Type: t})
		}
		groups[i].Images = append(groups[i].Images, img)
	}
	return groups
}

func summarize(p *models.Project) models.ProjectSummary {
	return models.ProjectSummary{
		Slug:        p.Slug(),
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Tags:        p.Tags,
		Featured:    p.Featured,
	}
}
