package handlers

import (
	"net/http"

	"dixanta.dev/internal/services"
)

// ProfileHandler serves the About and Skills pages' data
type ProfileHandler struct {
	skillService *services.SkillService
	aboutService *services.AboutService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(ss *services.SkillService, as *services.AboutService) *ProfileHandler {
	return &ProfileHandler{skillService: ss, aboutService: as}
}

// GetSkills handles GET /api/skills?category=
func (h *ProfileHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.skillService.Overview(r.URL.Query().Get("category")))
}

// GetSkillSummary handles GET /api/skills/summary
func (h *ProfileHandler) GetSkillSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.skillService.Summary())
}

// GetAbout handles GET /api/about
func (h *ProfileHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.aboutService.Get())
}
