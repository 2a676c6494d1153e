package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dixanta.dev/internal/services"
	"dixanta.dev/internal/slug"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects?tag=&featured=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter := services.ProjectFilter{Tag: r.URL.Query().Get("tag")}

	if v := r.URL.Query().Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid featured flag")
			return
		}
		filter.Featured = &featured
	}

	respondJSON(w, http.StatusOK, h.projectService.List(filter))
}

// GetCategories handles GET /api/categories?tag=
func (h *ProjectHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Categories(r.URL.Query().Get("tag")))
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	// chi routes on RawPath when the request carries one, leaving the param
	// encoded. Otherwise it routes on Path, which is already decoded.
	s := chi.URLParam(r, "slug")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(s)
		if err != nil {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		s = unescaped
	}

	detail, ok := h.projectService.Detail(s)
	if !ok {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// DeriveSlug handles GET /api/slug?title=
func (h *ProjectHandler) DeriveSlug(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	s := slug.Derive(title)
	respondJSON(w, http.StatusOK, map[string]string{
		"title": title,
		"slug":  s,
		"path":  "/projects/" + s,
	})
}
