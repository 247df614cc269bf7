// Package storage is the durable key-value adapter the record store reads
// and writes whole JSON documents through. Two backends exist: loose JSON
// files (default) and an embedded badger database; both expose the same
// read-whole-document, save-whole-document contract.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Store persists string documents by key. Save must replace the whole
// document atomically; partial writes must never become visible.
type Store interface {
	Load(key string) (value string, found bool, err error)
	Save(key, value string) error
	Close() error
}

// Named storage backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// BaseDir returns the root data directory (~/.fieldlog), honouring the
// FIELDLOG_DIR override.
func BaseDir() (string, error) {
	if dir := os.Getenv("FIELDLOG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".fieldlog"), nil
}

// Open returns the store for the configured backend rooted at dir. An
// empty backend name selects the file backend.
func Open(dir, backend string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(dir), nil
	case BackendBadger:
		return OpenBadger(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// FileStore keeps one human-readable JSON document per key under dir.
type FileStore struct {
	dir string
}

// NewFileStore returns a file-backed store rooted at dir. The directory is
// created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load returns the document for key. A corrupt file is backed up alongside
// the original and reported as absent, so callers recover by starting from
// defaults instead of failing.
func (f *FileStore) Load(key string) (string, bool, error) {
	path := f.path(key)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	if !json.Valid(data) {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		log.Warn().Str("key", key).Str("backup", backupPath).Msg("backed up corrupt document")
		return "", false, nil
	}
	return string(data), true, nil
}

// Save atomically replaces the document for key: write to a temp file,
// then rename.
func (f *FileStore) Save(key, value string) error {
	path := f.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileStore) Close() error {
	return nil
}
