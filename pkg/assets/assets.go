// Package assets loads the reference fixtures served by the mock services:
// the video catalog JSON and the per-user JPEG images.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VideoCatalog is the asset name of the seeded video catalog.
const VideoCatalog = "videos.json"

// Common errors for asset access.
var (
	ErrNotFound    = errors.New("asset not found")
	ErrInvalidName = errors.New("invalid asset name")
)

// Store reads assets from a flat directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is not required to
// exist until an asset is read.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// ReadText returns the contents of a text asset.
func (s *Store) ReadText(name string) (string, error) {
	data, err := s.read(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBinary returns the contents of a binary asset.
func (s *Store) ReadBinary(name string) ([]byte, error) {
	return s.read(name)
}

func (s *Store) read(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
	}
	return data, nil
}
