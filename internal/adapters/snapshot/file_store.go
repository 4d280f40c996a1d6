package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/niteshnanu12/vybe/internal/core/domain"
)

var _ domain.SnapshotStore = (*FileStore)(nil)

// FileStore keeps the snapshot as a JSON file. Writes go through a temporary
// file and a rename so a crash never leaves a half-written snapshot.
type FileStore struct {
	path string
}

func NewFileStore(dir, userID string) *FileStore {
	return &FileStore{path: filepath.Join(dir, keyFor(userID)+".json")}
}

// FileFactory returns a constructor for per-user file stores under dir.
func FileFactory(dir string) func(userID string) domain.SnapshotStore {
	return func(userID string) domain.SnapshotStore {
		return NewFileStore(dir, userID)
	}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(_ context.Context, snap domain.SessionSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	payload, err := encode(snap)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write workout snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace workout snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) (*domain.SessionSnapshot, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoSnapshot
		}
		return nil, fmt.Errorf("read workout snapshot: %w", err)
	}
	return decode(payload)
}
