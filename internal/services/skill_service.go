package services

import (
	"strings"

	"dixanta.dev/internal/content"
	"dixanta.dev/internal/models"
)

// AllCategories selects every technical category
const AllCategories = "All"

// SkillService handles the skills inventory
type SkillService struct {
	store *content.Store
}

// NewSkillService creates a new SkillService
func NewSkillService(store *content.Store) *SkillService {
	return &SkillService{store: store}
}

// Categories returns the technical category names in file order
func (s *SkillService) Categories() []string {
	technical := s.store.Snapshot().Skills.Technical
	names := make([]string, len(technical))
	for i, c := range technical {
		names[i] = c.Category
	}
	return names
}

// Technical returns the technical categories matching category. An empty
// category or AllCategories returns all of them.
func (s *SkillService) Technical(category string) []models.SkillCategory {
	technical := s.store.Snapshot().Skills.Technical
	if category == "" || category == AllCategories {
		return technical
	}

	matched := []models.SkillCategory{}
	for _, c := range technical {
		if strings.EqualFold(c.Category, category) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Soft returns the soft skill categories
func (s *SkillService) Soft() []models.SkillCategory {
	return s.store.Snapshot().Skills.Soft
}

// Summary counts categories and skills
func (s *SkillService) Summary() models.SkillSummary {
	skills := s.store.Snapshot().Skills
	return models.SkillSummary{
		TechnicalCategories: len(skills.Technical),
		TechnicalSkills:     countSkills(skills.Technical),
		SoftSkills:          countSkills(skills.Soft),
	}
}

// Overview assembles the Skills page payload
func (s *SkillService) Overview(category string) *models.SkillsResponse {
	return &models.SkillsResponse{
		Categories: s.Categories(),
		Technical:  s.Technical(category),
		Soft:       s.Soft(),
		Summary:    s.Summary(),
	}
}

func countSkills(categories []models.SkillCategory) int {
	n := 0
	for _, c := range categories {
		n += len(c.Skills)
	}
	return n
}
