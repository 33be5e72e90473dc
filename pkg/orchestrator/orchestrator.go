package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	internalnormalizer "github.com/goliatone/go-deckgen/internal/normalizer"
	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/logging"
	"github.com/goliatone/go-deckgen/pkg/payload"
	"github.com/goliatone/go-deckgen/pkg/render"
	"github.com/goliatone/go-deckgen/pkg/renderers/deckjson"
	"github.com/goliatone/go-deckgen/pkg/renderers/outline"
)

const defaultRendererName = deckjson.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLogger injects the diagnostics logger shared by the gate, the
// normalizer, and the render dispatch.
func WithLogger(logger logging.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithRegistry injects a renderer registry, replacing the built-in one.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithStyleDefaults overrides the style defaults the normalizer substitutes
// for missing or mangled style blocks. A resolved brand theme takes precedence
// over this option for the requests that name one.
func WithStyleDefaults(style internalnormalizer.StyleDefaults) Option {
	return func(o *Orchestrator) {
		o.styleDefaults = &style
	}
}

// WithThemeSelector passes a go-theme selector so requests can resolve a brand
// theme/variant ahead of normalization. Resolved theme tokens seed the style
// defaults and travel to the renderer via RenderOptions.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithStrictLint makes every request report contract deviations, as if each
// Request set StrictLint.
func WithStrictLint() Option {
	return func(o *Orchestrator) {
		o.alwaysLint = true
	}
}

// Orchestrator coordinates the full pipeline from loose payload to rendered
// output: decode, gate, optional strict lint, normalization, theme resolution,
// and renderer dispatch. It applies sensible defaults (JSON renderer, nop
// logger) while remaining open to dependency injection.
type Orchestrator struct {
	logger          logging.Logger
	registry        *render.Registry
	defaultRenderer string
	styleDefaults   *internalnormalizer.StyleDefaults
	themeSelector   theme.ThemeSelector
	alwaysLint      bool
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a deck payload.
type Request struct {
	// Document supplies raw payload bytes plus their origin. Optional when
	// Payload is set.
	Document *payload.Document

	// Payload supplies an already-decoded value tree, bypassing the document
	// decode stage. Used by service layers that decode request bodies
	// themselves.
	Payload any

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a brand theme when a selector is
	// configured. Both empty means the built-in defaults apply.
	ThemeName    string
	ThemeVariant string

	// StrictLint reports where the payload deviated from the strict deck
	// contract. Deviations never fail the request; they surface in the result.
	StrictLint bool
}

// Result carries the canonical deck alongside the rendered output.
type Result struct {
	Deck        deck.Deck
	Output      []byte
	Filename    string
	ContentType string
	Deviations  []payload.Deviation
}

// Generate executes the gate → normalize → render sequence. The only
// client-addressable failure is a payload gate rejection; renderer and
// configuration errors indicate server-side wiring problems.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}

	value, err := o.resolveValue(req)
	if err != nil {
		return Result{}, err
	}

	var result Result
	if req.StrictLint || o.alwaysLint {
		deviations, err := payload.Lint(value)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: lint payload: %w", err)
		}
		for _, deviation := range deviations {
			o.logger.Info("contract deviation", "path", deviation.Path, "reason", deviation.Message)
		}
		result.Deviations = deviations
	}

	style, themeCfg, err := o.resolveTheme(req)
	if err != nil {
		return Result{}, err
	}

	builder := internalnormalizer.New(internalnormalizer.Options{
		Logger: o.logger,
		Style:  style,
	})
	normalized, err := builder.Build(value)
	if err != nil {
		return Result{}, err
	}
	result.Deck = normalized

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	output, err := renderer.Render(ctx, normalized, render.RenderOptions{Theme: themeCfg})
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	result.Output = output
	result.ContentType = renderer.ContentType()
	result.Filename = Filename(normalized.Meta, renderer.Extension())
	return result, nil
}

func (o *Orchestrator) resolveValue(req Request) (any, error) {
	if req.Payload != nil {
		return req.Payload, nil
	}
	if req.Document == nil {
		return nil, errors.New("orchestrator: document or payload is required")
	}
	value, err := req.Document.Decode()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode document: %w", err)
	}
	return value, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = logging.Nop()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(deckjson.New())
		o.registry.MustRegister(outline.MustNew())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
