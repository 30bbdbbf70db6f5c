// Package jsonstore provides a JSON file-based implementation of KeyValueStore.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/runoshun/ticktick/internal/domain"
)

// storeVersion is written to the meta section of new files.
const storeVersion = 1

// corruptSuffix is appended to the path of an unparseable store file when it
// is moved aside.
const corruptSuffix = ".corrupt"

// ErrCorrupt reports that the store file could not be parsed. The file has
// been moved aside and the store starts empty.
var ErrCorrupt = errors.New("corrupt store file")

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Values map[string]string `json:"values"`
	Meta   meta              `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Version int `json:"version"`
}

// Store implements domain.KeyValueStore using a JSON file.
// Every operation takes a file lock so concurrent tick processes never
// interleave writes.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key and whether it exists.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.withLock(func(data *storeData) error {
		value, found = data.Values[key]
		return nil
	})
	return value, found, err
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Values[key] = value
		return nil
	})
}

// Delete removes key.
func (s *Store) Delete(_ context.Context, key string) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Values, key)
		return nil
	})
}

// Keys returns every stored key in sorted order.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.withLock(func(data *storeData) error {
		for k := range data.Values {
			keys = append(keys, k)
		}
		return nil
	})
	sort.Strings(keys)
	return keys, err
}

// Close is a no-op; the file is only held open while an operation runs.
func (s *Store) Close() error {
	return nil
}

// withLock executes fn with a shared (read) lock.
// A corrupt file is moved aside under an exclusive lock and reported as
// ErrCorrupt; later calls see an empty store.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}

	data, err := s.read()
	if errors.Is(err, errCorruptFile) {
		s.releaseLock(lock)
		return s.recoverCorrupt(fn)
	}
	defer s.releaseLock(lock)
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
// A corrupt file is moved aside and fn starts from an empty store.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if errors.Is(err, errCorruptFile) {
		if moveErr := s.moveAside(); moveErr != nil {
			return moveErr
		}
		data, err = emptyData(), nil
	}
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

// recoverCorrupt moves an unparseable store file aside under an exclusive lock.
// The file is parsed again first; if another process replaced it meanwhile,
// fn runs against the new contents.
func (s *Store) recoverCorrupt(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err == nil {
		return fn(data)
	}
	if !errors.Is(err, errCorruptFile) {
		return err
	}
	if moveErr := s.moveAside(); moveErr != nil {
		return moveErr
	}
	return fmt.Errorf("%w: %w, moved to %s", ErrCorrupt, err, s.path+corruptSuffix)
}

// moveAside renames the store file to its corrupt path, replacing any earlier one.
func (s *Store) moveAside() error {
	if err := os.Rename(s.path, s.path+corruptSuffix); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("move corrupt store file: %w", err)
	}
	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// errCorruptFile marks a parse failure of the store file.
var errCorruptFile = errors.New("parse store file")

func emptyData() *storeData {
	return &storeData{Meta: meta{Version: storeVersion}, Values: make(map[string]string)}
}

// read loads the store file. A missing file reads as an empty store.
func (s *Store) read() (*storeData, error) {
	data := emptyData()

	content, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read store file: %w", err)
		}
	} else if err := json.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorruptFile, err)
	}

	// Ensure map is initialized
	if data.Values == nil {
		data.Values = make(map[string]string)
	}

	return data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements KeyValueStore.
var _ domain.KeyValueStore = (*Store)(nil)
