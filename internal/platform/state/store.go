package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the whole state blob.
type Store interface {
	Read(ctx context.Context) (Document, error)
	Write(ctx context.Context, doc Document) error
}

// FileStore keeps the blob as one indented JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Read(_ context.Context) (Document, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return Document{}, fmt.Errorf("read state: %w", err)
	}
	return Decode(payload)
}

func (s *FileStore) Write(_ context.Context, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := Encode(doc)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
