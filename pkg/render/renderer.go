package render

import (
	"context"

	"github.com/goliatone/go-deckgen/pkg/deck"
)

// Renderer converts a canonical deck into a byte representation. Renderers
// receive fully normalized input and must not perform their own defaulting;
// every field they read is guaranteed present and correctly typed.
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the filename extension (without dot) used when deriving
	// download filenames for this renderer's output.
	Extension() string
	Render(ctx context.Context, d deck.Deck, options RenderOptions) ([]byte, error)
}

// ThemeConfig carries a resolved brand theme selection into a renderer.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
}

// RenderOptions describes per-request overrides renderers can honour.
type RenderOptions struct {
	Theme    *ThemeConfig
	Metadata map[string]string
}
