package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FSStore serves objects from a local directory. Used by the batch CLI so a
// run can process files on disk without an object-store service.
type FSStore struct {
	root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

func (s *FSStore) pathFor(locator string) string {
	if filepath.IsAbs(locator) {
		return locator
	}
	return filepath.Join(s.root, strings.TrimPrefix(locator, "/"))
}

func (s *FSStore) Fetch(ctx context.Context, locator string) ([]byte, error) {
	return os.ReadFile(s.pathFor(locator))
}

func (s *FSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	path := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

var _ Store = (*FSStore)(nil)
