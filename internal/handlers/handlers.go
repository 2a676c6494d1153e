package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dixanta.dev/internal/config"
	"dixanta.dev/internal/content"
	"dixanta.dev/internal/middleware"
	"dixanta.dev/internal/services"
	"dixanta.dev/static"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, store *content.Store, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	projectService := services.NewProjectService(store)
	skillService := services.NewSkillService(store)
	aboutService := services.NewAboutService(store)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	profileHandler := NewProfileHandler(skillService, aboutService)
	sitemapHandler := NewSitemapHandler(projectService, store, cfg.BaseURL, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/categories", projectHandler.GetCategories)
		r.Get("/slug", projectHandler.DeriveSlug)

		// Profile endpoints
		r.Get("/skills", profileHandler.GetSkills)
		r.Get("/skills/summary", profileHandler.GetSkillSummary)
		r.Get("/about", profileHandler.GetAbout)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "Not found")
		})
	})

	r.Get("/sitemap.xml", sitemapHandler.GetSitemap)

	// Static files
	assets := staticFS(cfg.StaticPath)
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(assets))))

	// Client routes all load the same shell; the client picks the page
	shell := serveShell(assets, logger)
	for _, path := range []string{"/", "/about", "/projects", "/projects/{slug}", "/skills", "/contact"} {
		r.Get(path, shell)
	}

	return r
}

// staticFS returns the client assets, from disk when dir is set
func staticFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return static.FS
}

// serveShell writes index.html from assets
func serveShell(assets fs.FS, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(assets, "index.html")
		if err != nil {
			logger.Error("failed to read index.html", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
