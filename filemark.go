package filemark

import (
	"log/slog"

	impl "github.com/aretw0/filemark/pkg/filemark"

	"github.com/aretw0/filemark/pkg/core"
	"github.com/aretw0/filemark/pkg/digest"
)

// --- Types ---

// Record is one annotation keyed by a file's content digest.
type Record = core.Record

// Store is the in-memory digest-to-record mapping.
type Store = core.Store

// Entry pairs a record with its digest, for listing.
type Entry = core.Entry

// Request is one reconciliation target (path and/or digest, optional note).
type Request = core.Request

// Report describes the outcome of a single reconciliation.
type Report = core.Report

// Policy governs what happens when a requested digest has no record.
type Policy = core.Policy

// Prompter supplies interactive answers to the reconciler.
type Prompter = core.Prompter

// Service is the load-once, mutate-many, save-once run handle.
type Service = impl.Service

// FileConfig mirrors the optional YAML configuration file.
type FileConfig = impl.FileConfig

// Add-policies.
const (
	PolicyAsk  = core.PolicyAsk
	PolicyAdd  = core.PolicyAdd
	PolicySkip = core.PolicySkip
)

// Common errors.
var (
	ErrNoStore        = core.ErrNoStore
	ErrInvalidRequest = core.ErrInvalidRequest
	ErrCancelled      = core.ErrCancelled
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	return core.ParsePolicy(s)
}

// DigestFile returns the lowercase hex SHA-256 digest of the file at path.
func DigestFile(path string) (string, error) {
	return digest.Sum(path)
}

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = impl.Option

// WithMaxAncestors bounds the upward store search.
func WithMaxAncestors(n int) Option {
	return impl.WithMaxAncestors(n)
}

// WithStoreBasename overrides the store file basename.
func WithStoreBasename(name string) Option {
	return impl.WithStoreBasename(name)
}

// WithCreate starts an empty store when none is found.
func WithCreate(create bool) Option {
	return impl.WithCreate(create)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return impl.WithLogger(logger)
}

// WithPrompter sets the interactive prompter.
func WithPrompter(p Prompter) Option {
	return impl.WithPrompter(p)
}

// --- Entry points ---

// Open locates the store starting at startDir and loads it.
func Open(startDir string, opts ...Option) (*Service, error) {
	return impl.Open(startDir, opts...)
}

// LoadFileConfig reads the optional configuration file from dir.
func LoadFileConfig(dir string) (FileConfig, error) {
	return impl.LoadFileConfig(dir)
}
