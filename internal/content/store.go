package content

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dixanta.dev/internal/slug"
)

// Store serves the latest successfully loaded snapshot of a data directory.
// Readers never block; a failed reload leaves the previous snapshot in place.
type Store struct {
	dir    string
	logger *zap.Logger

	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializes reloads
}

// NewStore loads dir and returns a Store holding the result
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	s := &Store{dir: dir, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore wraps an already loaded snapshot. Reload on it is a no-op.
func NewStaticStore(snap *Snapshot) *Store {
	if snap.Slugs == nil {
		snap.Slugs = slug.NewIndex(snap.Projects.Titles())
	}
	s := &Store{logger: zap.NewNop()}
	s.current.Store(snap)
	return s
}

// Dir returns the data directory backing the store
func (s *Store) Dir() string {
	return s.dir
}

// Snapshot returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload reads the data directory again and swaps the snapshot in on success
func (s *Store) Reload() error {
	if s.dir == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := Load(s.dir)
	if err != nil {
		return err
	}
	s.current.Store(snap)

	s.logger.Info("content loaded",
		zap.String("dir", s.dir),
		zap.Int("projects", len(snap.Projects)),
		zap.Time("loaded_at", snap.LoadedAt),
	)
	return nil
}
