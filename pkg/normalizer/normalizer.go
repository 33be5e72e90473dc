package normalizer

import (
	internalnormalizer "github.com/goliatone/go-deckgen/internal/normalizer"
	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/logging"
)

// Options re-exports the internal builder configuration.
type Options = internalnormalizer.Options

// StyleDefaults re-exports the overrideable style defaults.
type StyleDefaults = internalnormalizer.StyleDefaults

// Builder re-exports the internal builder.
type Builder = internalnormalizer.Builder

// DefaultStyle returns the built-in brand style defaults.
func DefaultStyle() StyleDefaults {
	return internalnormalizer.DefaultStyle()
}

// NewBuilder constructs a Builder with defaults applied.
func NewBuilder(options Options) *Builder {
	return internalnormalizer.New(options)
}

// Option customises a one-shot Normalize call.
type Option func(*Options)

// WithLogger injects a diagnostics logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithStyleDefaults overrides the style defaults substituted for missing or
// mangled style blocks, typically resolved from a brand theme.
func WithStyleDefaults(style StyleDefaults) Option {
	return func(o *Options) {
		o.Style = style
	}
}

// Normalize admits and repairs a decoded payload in one call. It is the
// simplest entry point for callers holding an already-decoded value tree.
func Normalize(value any, opts ...Option) (deck.Deck, error) {
	var options Options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}
	return NewBuilder(options).Build(value)
}
