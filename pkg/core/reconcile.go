package core

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"
)

// DigestFunc computes the content digest of the file at path.
type DigestFunc func(path string) (string, error)

// Request is one reconciliation target. At least one of Path and Digest
// must be set. When both are set the digest wins the lookup (no rehash)
// and the path still supplies the filename on creation.
type Request struct {
	Path   string
	Digest string
	Note   string
}

// Report describes the outcome of a single reconciliation to the caller.
type Report struct {
	// Digest is the key the lookup/creation used.
	Digest string
	// Found is true when an existing record was reported.
	Found bool
	// Created is true when a record was created or overwritten.
	Created bool
	// Missing names what was absent (the digest or the file's base name)
	// when the lookup missed and nothing was created.
	Missing string
	// Query is the base name of the requested path, for display next to
	// a found record whose stored filename differs. Empty if digest-only.
	Query string
	// Record is valid when Found or Created.
	Record Record
}

// Outcome is a Report plus whether the store was mutated.
type Outcome struct {
	Changed bool
	Report  Report
}

// Reconciler decides, per request, whether to report an existing record,
// create a new one, or do nothing, according to the add-policy.
// Dependencies are injected; the reconciler itself performs no I/O.
type Reconciler struct {
	digest   DigestFunc
	prompter Prompter
	logger   *slog.Logger
	now      func() time.Time
}

// NewReconciler creates a Reconciler. A nil logger falls back to
// slog.Default().
func NewReconciler(digest DigestFunc, prompter Prompter, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		digest:   digest,
		prompter: prompter,
		logger:   logger,
		now:      time.Now,
	}
}

// Reconcile runs the per-item state machine against store.
// The store is mutated in place only on the creation path; every other
// path, including cancellation, leaves it untouched.
func (r *Reconciler) Reconcile(store Store, req Request, policy Policy) (Outcome, error) {
	if req.Path == "" && req.Digest == "" {
		return Outcome{}, ErrInvalidRequest
	}

	key := req.Digest

	if policy != PolicyAdd {
		if key == "" {
			sum, err := r.digest(req.Path)
			if err != nil {
				return Outcome{}, err
			}
			key = sum
		}

		if rec, ok := store.Lookup(key); ok {
			return Outcome{Report: Report{
				Digest: key,
				Found:  true,
				Query:  baseName(req.Path),
				Record: rec,
			}}, nil
		}

		missing := req.Digest
		if missing == "" {
			missing = baseName(req.Path)
		}

		if policy == PolicySkip {
			return Outcome{Report: Report{Digest: key, Missing: missing}}, nil
		}

		// PolicyAsk: defer to the user. Empty answer means yes.
		add, err := r.confirm(fmt.Sprintf("%s not found in list, add?", missing), true)
		if err != nil {
			return Outcome{}, err
		}
		if !add {
			return Outcome{Report: Report{Digest: key, Missing: missing}}, nil
		}
	}

	if key == "" {
		sum, err := r.digest(req.Path)
		if err != nil {
			return Outcome{}, err
		}
		key = sum
	}

	rec := Record{
		Date: r.now().Format(DateLayout),
		Note: req.Note,
	}
	for rec.Note == "" {
		note, err := r.input("Enter note")
		if err != nil {
			return Outcome{}, err
		}
		if note == "" {
			r.logger.Warn("blank note not allowed")
			continue
		}
		rec.Note = note
	}

	if req.Path != "" {
		rec.Fname = baseName(req.Path)
	} else {
		// Only a digest was given; the display name has to come from the user.
		name, err := r.input("File name")
		if err != nil {
			return Outcome{}, err
		}
		rec.Fname = name
	}

	store.Put(key, rec)
	return Outcome{
		Changed: true,
		Report:  Report{Digest: key, Created: true, Record: rec},
	}, nil
}

func (r *Reconciler) confirm(question string, def bool) (bool, error) {
	if r.prompter == nil {
		return false, fmt.Errorf("confirmation needed but no prompter configured")
	}
	return r.prompter.Confirm(question, def)
}

func (r *Reconciler) input(label string) (string, error) {
	if r.prompter == nil {
		return "", fmt.Errorf("%s: no prompter configured", label)
	}
	return r.prompter.Input(label)
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
