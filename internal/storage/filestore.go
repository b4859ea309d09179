package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a KeyValue backed by a JSON object on disk, for variants that
// run without fyne preferences.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	logger *slog.Logger
}

// OpenFileStore reads the store at path. A missing or corrupt file starts empty.
func OpenFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	store := &FileStore{
		path:   path,
		values: make(map[string]string),
		logger: logger,
	}
	if err := store.read(); err != nil {
		logger.Debug("starting with empty state file", "path", path, "error", err)
	}
	return store
}

// Path returns the backing file path.
func (store *FileStore) Path() string {
	return store.path
}

// String returns the stored value or "".
func (store *FileStore) String(key string) string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.values[key]
}

// SetString stores a value and writes the file.
func (store *FileStore) SetString(key string, value string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	store.writeLocked()
}

// RemoveValue deletes a key and writes the file.
func (store *FileStore) RemoveValue(key string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.values[key]; !ok {
		return
	}
	delete(store.values, key)
	store.writeLocked()
}

func (store *FileStore) read() error {
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(rawData, &values); err != nil {
		return fmt.Errorf("parse state file: %w", err)
	}
	store.values = values
	return nil
}

func (store *FileStore) writeLocked() {
	if err := store.flushLocked(); err != nil {
		store.logger.Warn("state not persisted", "path", store.path, "error", err)
	}
}

func (store *FileStore) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	serialized, err := json.MarshalIndent(store.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state json: %w", err)
	}

	tmpPath := store.path + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmpPath, store.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
