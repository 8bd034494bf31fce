package filemark

import (
	"log/slog"

	"github.com/aretw0/filemark/pkg/core"
	"github.com/aretw0/filemark/pkg/digest"
)

// options holds the internal configuration for the filemark service.
type options struct {
	maxAncestors int
	basename     string
	create       bool
	logger       *slog.Logger
	prompter     core.Prompter
	digest       core.DigestFunc
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		maxAncestors: 0, // locator derives the bound from the start directory
		basename:     "",
		create:       false,
		logger:       nil,
		prompter:     nil,
		digest:       digest.Sum,
	}
}

// WithMaxAncestors bounds the upward store search. Values <= 0 keep the
// default bound (the start directory's path depth).
func WithMaxAncestors(n int) Option {
	return func(o *options) {
		o.maxAncestors = n
	}
}

// WithStoreBasename overrides the store file basename. The current
// format file is basename+".json", the legacy file is the basename.
func WithStoreBasename(name string) Option {
	return func(o *options) {
		o.basename = name
	}
}

// WithCreate starts an empty store at the start directory when no store
// file is found, instead of failing with core.ErrNoStore.
func WithCreate(create bool) Option {
	return func(o *options) {
		o.create = create
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrompter sets the prompter the reconciler asks for confirmations
// and notes. Required unless every request carries a note and no
// interactive decision can arise.
func WithPrompter(p core.Prompter) Option {
	return func(o *options) {
		o.prompter = p
	}
}

// WithDigest replaces the digest function (useful for tests).
func WithDigest(fn core.DigestFunc) Option {
	return func(o *options) {
		o.digest = fn
	}
}
