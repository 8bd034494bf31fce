package filemark

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/filemark/internal/platform"
	"github.com/aretw0/filemark/pkg/adapters/fs"
	"github.com/aretw0/filemark/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
)

// Service ties the locator, the store repository and the reconciler
// together for one run: locate and load once, reconcile per request,
// save once on Flush and only if something changed.
type Service struct {
	dir     string
	repo    *fs.Repository
	store   core.Store
	rec     *core.Reconciler
	logger  *slog.Logger
	changed bool
}

// Open locates the store starting at startDir and loads it. If no store
// file exists within the ascension bound, Open fails with core.ErrNoStore
// unless WithCreate was given, in which case an empty store is started at
// startDir and will be persisted on Flush.
func Open(startDir string, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	name, legacy := storeFileNames(o.basename)

	s := &Service{
		logger: logger,
		rec:    core.NewReconciler(o.digest, o.prompter, logger),
	}

	dir, err := platform.Locate(startDir, o.maxAncestors, name, legacy)
	switch {
	case err == nil:
		s.dir = dir
		s.repo = fs.NewRepository(fs.Config{Dir: dir, Name: name, Legacy: legacy, Logger: logger})
		store, err := s.repo.Load()
		if err != nil {
			return nil, err
		}
		s.store = store

	case errors.Is(err, core.ErrNoStore) && o.create:
		s.dir = startDir
		s.repo = fs.NewRepository(fs.Config{Dir: startDir, Name: name, Legacy: legacy, Logger: logger})
		s.store = core.Store{}
		// A brand new store counts as a change so Flush writes it out.
		s.changed = true
		logger.Debug("starting empty store", "dir", startDir)

	default:
		return nil, err
	}

	return s, nil
}

// storeFileNames derives the current and legacy store file names from an
// optional basename override.
func storeFileNames(basename string) (name, legacy string) {
	if basename == "" {
		return fs.DefaultStoreFile, fs.DefaultLegacyFile
	}
	return basename + ".json", basename
}

// Dir returns the directory holding the store.
func (s *Service) Dir() string {
	return s.dir
}

// Path returns the path of the current-format store file.
func (s *Service) Path() string {
	return s.repo.Path()
}

// Changed reports whether any processed request mutated the store.
func (s *Service) Changed() bool {
	return s.changed
}

// Process reconciles one request against the store under the given
// policy. core.ErrCancelled means the user aborted this item; the store
// is untouched and the caller may continue with the next request.
func (s *Service) Process(req core.Request, policy core.Policy) (core.Report, error) {
	out, err := s.rec.Reconcile(s.store, req, policy)
	if err != nil {
		return core.Report{}, err
	}
	if out.Changed {
		s.changed = true
	}
	return out.Report, nil
}

// Entries returns the records with their digests, unordered. A non-empty
// glob pattern filters by stored filename.
func (s *Service) Entries(glob string) ([]core.Entry, error) {
	entries := s.store.Entries()
	if glob == "" {
		return entries, nil
	}

	filtered := entries[:0]
	for _, e := range entries {
		ok, err := doublestar.Match(glob, e.Fname)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", glob, err)
		}
		if ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Flush persists the store if and only if something changed since Open.
func (s *Service) Flush() error {
	if !s.changed {
		return nil
	}
	if err := s.repo.Save(s.store); err != nil {
		return err
	}
	s.changed = false
	s.logger.Debug("store saved", "path", s.repo.Path(), "records", len(s.store))
	return nil
}
