package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mariage/internal/models"
)

// Ensure FileStore implements Store
var _ Store = (*FileStore)(nil)

// FileStore is the second fallback tier: one JSON file holding the
// whole list of records. Each save reads the list, appends with
// id = len+1 and rewrites the file. Not safe across processes, but
// there is exactly one writer.
type FileStore struct {
	mu   sync.Mutex
	file string
}

// NewFileStore returns a store backed by the given file. The file is
// created on first save.
func NewFileStore(filePath string) *FileStore {
	return &FileStore{file: filePath}
}

func (s *FileStore) Name() string {
	return "file"
}

// Save appends one record with the next sequential id.
func (s *FileStore) Save(ctx context.Context, rsvp models.Rsvp) (models.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rsvps, err := s.load()
	if err != nil {
		return models.Rsvp{}, err
	}

	if rsvp.CreatedAt == "" {
		rsvp.CreatedAt = models.Timestamp()
	}
	rsvp.ID = int64(len(rsvps) + 1)
	rsvps = append(rsvps, rsvp)

	if err := s.save(rsvps); err != nil {
		return models.Rsvp{}, err
	}
	return rsvp, nil
}

// List returns everything saved locally, oldest first.
func (s *FileStore) List(ctx context.Context) ([]models.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]models.Rsvp, error) {
	data, err := os.ReadFile(s.file)
	if os.IsNotExist(err) {
		return []models.Rsvp{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return []models.Rsvp{}, nil
	}

	var rsvps []models.Rsvp
	if err := json.Unmarshal(data, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return rsvps, nil
}

func (s *FileStore) save(rsvps []models.Rsvp) error {
	data, err := json.MarshalIndent(rsvps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return os.WriteFile(s.file, data, 0644)
}
