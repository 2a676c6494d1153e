package services

import (
	"dixanta.dev/internal/content"
	"dixanta.dev/internal/models"
)

// AboutService serves the biography
type AboutService struct {
	store *content.Store
}

// NewAboutService creates a new AboutService
func NewAboutService(store *content.Store) *AboutService {
	return &AboutService{store: store}
}

// Get returns the About document
func (s *AboutService) Get() *models.About {
	return &s.store.Snapshot().About
}
