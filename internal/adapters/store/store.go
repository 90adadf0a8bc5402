// Package store persists the reverse index as a flat JSON file.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexStore = (*Store)(nil)

// Store implements ports.IndexStore using a JSON object on disk.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a new IndexStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the persisted index.
func (s *Store) Load() (domain.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrIndexNotFound
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", s.path)
	}

	var idx domain.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, errors.Join(domain.ErrIndexCorrupt, zerr.With(zerr.Wrap(err, "failed to decode index"), "path", s.path))
	}
	if idx == nil {
		return nil, errors.Join(domain.ErrIndexCorrupt, zerr.With(zerr.New("index is not a JSON object"), "path", s.path))
	}

	return idx, nil
}

// Save writes the index atomically, replacing any previous content.
func (s *Store) Save(idx domain.Index) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx == nil {
		idx = domain.NewIndex()
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexMarshalFailed.Error())
	}

	if err := atomicWriteFile(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Clear removes the persisted index.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", s.path)
	}
	return nil
}

// atomicWriteFile writes data to a temp file in the same directory and renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	tmpFile, err := os.CreateTemp(dir, "build_lookup-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
