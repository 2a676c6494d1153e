package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"dixanta.dev/internal/content"
	"dixanta.dev/internal/services"
	"dixanta.dev/internal/sitemap"
)

// SitemapHandler serves /sitemap.xml
type SitemapHandler struct {
	projectService *services.ProjectService
	store          *content.Store
	baseURL        string
	logger         *zap.Logger
}

// NewSitemapHandler creates a new SitemapHandler
func NewSitemapHandler(ps *services.ProjectService, store *content.Store, baseURL string, logger *zap.Logger) *SitemapHandler {
	return &SitemapHandler{projectService: ps, store: store, baseURL: baseURL, logger: logger}
}

// GetSitemap handles GET /sitemap.xml
func (h *SitemapHandler) GetSitemap(w http.ResponseWriter, r *http.Request) {
	set := sitemap.Build(h.baseURL, h.projectService.Slugs(), h.store.Snapshot().LoadedAt)

	var buf bytes.Buffer
	if err := sitemap.Write(&buf, set); err != nil {
		h.logger.Error("failed to render sitemap", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to render sitemap")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
