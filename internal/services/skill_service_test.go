package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dixanta.dev/internal/content"
	"dixanta.dev/internal/models"
)

func newSkillStore() *content.Store {
	return content.NewStaticStore(&content.Snapshot{
		Skills: models.Skills{
			Technical: []models.SkillCategory{
				{Category: "Frontend", Skills: []models.Skill{{Name: "React", Projects: []string{"a", "b"}}, {Name: "CSS"}}},
				{Category: "Backend", Skills: []models.Skill{{Name: "Go"}}},
			},
			Soft: []models.SkillCategory{
				{Category: "Leadership", Skills: []models.Skill{{Name: "Mentoring"}, {Name: "Planning"}, {Name: "Hiring"}}},
			},
		},
	})
}

func TestSkillCategories(t *testing.T) {
	svc := NewSkillService(newSkillStore())
	assert.Equal(t, []string{"Frontend", "Backend"}, svc.Categories())
}

func TestSkillTechnicalFilter(t *testing.T) {
	svc := NewSkillService(newSkillStore())

	assert.Len(t, svc.Technical(""), 2)
	assert.Len(t, svc.Technical(AllCategories), 2)

	backend := svc.Technical("backend")
	if assert.Len(t, backend, 1) {
		assert.Equal(t, "Go", backend[0].Skills[0].Name)
	}

	assert.Empty(t, svc.Technical("Databases"))
}

func TestSkillSummary(t *testing.T) {
	svc := NewSkillService(newSkillStore())

	assert.Equal(t, models.SkillSummary{
		TechnicalCategories: 2,
		TechnicalSkills:     3,
		SoftSkills:          3,
	}, svc.Summary())
}

func TestSkillOverview(t *testing.T) {
	resp := NewSkillService(newSkillStore()).Overview("Frontend")

	assert.Equal(t, []string{"Frontend", "Backend"}, resp.Categories)
	assert.Len(t, resp.Technical, 1)
	assert.Len(t, resp.Soft, 1)
	assert.Equal(t, 3, resp.Summary.SoftSkills)
}

func TestAboutService(t *testing.T) {
	store := content.NewStaticStore(&content.Snapshot{
		About: models.About{PersonalInfo: models.PersonalInfo{Name: "Jane Doe"}},
	})
	assert.Equal(t, "Jane Doe", NewAboutService(store).Get().PersonalInfo.Name)
}
