// Package fs persists the digest-to-record store as a single JSON file,
// with read-only support for the legacy binary format it replaced.
package fs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/filemark/pkg/core"
)

// Default store file names. The current format is JSON; the legacy file
// is the same basename without the suffix.
const (
	DefaultStoreFile  = ".filemark.json"
	DefaultLegacyFile = ".filemark"
)

// Config holds the configuration for the filesystem-backed store.
type Config struct {
	Dir    string
	Name   string // current-format file name, defaults to DefaultStoreFile
	Legacy string // legacy-format file name, defaults to DefaultLegacyFile
	Logger *slog.Logger
}

// Repository loads and saves a store at one directory.
type Repository struct {
	dir    string
	name   string
	legacy string
	logger *slog.Logger
}

// NewRepository creates a repository for the directory in config.
func NewRepository(config Config) *Repository {
	if config.Name == "" {
		config.Name = DefaultStoreFile
	}
	if config.Legacy == "" {
		config.Legacy = DefaultLegacyFile
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{
		dir:    config.Dir,
		name:   config.Name,
		legacy: config.Legacy,
		logger: config.Logger,
	}
}

// Path returns the path of the current-format store file.
func (r *Repository) Path() string {
	return filepath.Join(r.dir, r.name)
}

// Load reads the store, preferring the current format. If only the
// legacy file exists it is decoded and immediately re-saved in the
// current format at the same directory, so the migration runs once.
// Returns core.ErrNoStore when neither format is present.
func (r *Repository) Load() (core.Store, error) {
	data, err := os.ReadFile(r.Path())
	switch {
	case err == nil:
		var store core.Store
		if err := json.Unmarshal(data, &store); err != nil {
			return nil, fmt.Errorf("parse %s: %w", r.Path(), err)
		}
		if store == nil {
			store = core.Store{}
		}
		return store, nil
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read %s: %w", r.Path(), err)
	}

	store, err := r.loadLegacy()
	if err != nil {
		return nil, err
	}

	r.logger.Warn("legacy store file detected, converting to json",
		"dir", r.dir, "legacy", r.legacy, "store", r.name)
	if err := r.Save(store); err != nil {
		return nil, fmt.Errorf("migrate legacy store: %w", err)
	}
	return store, nil
}

// Save serializes the full mapping to the current format, replacing any
// existing file. The write is atomic (temp file + rename).
func (r *Repository) Save(store core.Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.Path(), data, 0644); err != nil {
		return fmt.Errorf("save %s: %w", r.Path(), err)
	}
	return nil
}
