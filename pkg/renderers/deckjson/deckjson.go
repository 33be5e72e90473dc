// Package deckjson renders the canonical deck as indented JSON. It is the
// default renderer: the output is the exact model handed to downstream
// presentation builders, which makes it the reference artifact for debugging
// what the normalizer repaired.
package deckjson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/render"
)

// Name identifies the renderer inside a registry.
const Name = "deckjson"

// Renderer emits the canonical deck model as JSON.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

func (*Renderer) Name() string        { return Name }
func (*Renderer) ContentType() string { return "application/json" }
func (*Renderer) Extension() string   { return "json" }

// Render marshals the deck. RenderOptions are ignored; the canonical model is
// theme-agnostic by the time it reaches serialization.
func (*Renderer) Render(ctx context.Context, d deck.Deck, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("deckjson: marshal deck: %w", err)
	}
	return append(payload, '\n'), nil
}
