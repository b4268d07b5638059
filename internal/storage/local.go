package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LocalStore writes artifacts under a base directory, one file per key.
// Writes go through a temp file and rename so a crashed run never leaves a
// truncated artifact behind, and a directory-level flock keeps overlapping
// runs from interleaving.
type LocalStore struct {
	dir   string
	flock *flock.Flock
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &LocalStore{
		dir:   dir,
		flock: flock.New(filepath.Join(dir, ".zonevault.lock")),
	}, nil
}

func (s *LocalStore) Name() string {
	return "local"
}

func (s *LocalStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer s.flock.Unlock()

	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create prefix for %s: %w", key, err)
	}

	tmpPath := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".tmp")
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file for %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Close() error {
	return nil
}
