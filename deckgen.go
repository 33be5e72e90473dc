package deckgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/logging"
	"github.com/goliatone/go-deckgen/pkg/normalizer"
	"github.com/goliatone/go-deckgen/pkg/orchestrator"
	"github.com/goliatone/go-deckgen/pkg/payload"
	"github.com/goliatone/go-deckgen/pkg/render"
)

// Deck aliases the canonical deck model for callers that only import the root
// package.
type Deck = deck.Deck

// Request aliases the orchestrator request.
type Request = orchestrator.Request

// Result aliases the orchestrator result.
type Result = orchestrator.Result

// RenderOptions aliases the per-request renderer overrides.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Normalize admits and repairs an already-decoded payload without rendering.
func Normalize(value any, opts ...normalizer.Option) (deck.Deck, error) {
	return normalizer.Normalize(value, opts...)
}

// Generate runs the full pipeline against a payload document and returns the
// rendered result. It is the simplest entry point for callers that just want
// output bytes plus a safe download filename.
func Generate(ctx context.Context, doc payload.Document, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// WithLogger forwards the logging option to the orchestrator.
func WithLogger(logger logging.Logger) orchestrator.Option {
	return orchestrator.WithLogger(logger)
}

// WithThemeSelector forwards a go-theme selector so requests can resolve
// brand themes ahead of normalization.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
