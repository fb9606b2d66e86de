package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Accelerator586/SunnyWeather/internal/model"
)

// FileStore keeps the saved place in a single JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed place store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save overwrites the saved place.
func (s *FileStore) Save(_ context.Context, place model.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(place, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal place: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot leave a torn record.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write place file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace place file: %w", err)
	}

	return nil
}

// Get returns the saved place, or ErrNoSavedPlace when none exists.
func (s *FileStore) Get(_ context.Context) (model.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.Place{}, ErrNoSavedPlace
	}
	if err != nil {
		return model.Place{}, fmt.Errorf("failed to read place file: %w", err)
	}

	var place model.Place
	if err := json.Unmarshal(data, &place); err != nil {
		return model.Place{}, fmt.Errorf("failed to unmarshal place: %w", err)
	}

	return place, nil
}

// Exists reports whether a place has been saved.
func (s *FileStore) Exists(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat place file: %w", err)
	}

	return true, nil
}
