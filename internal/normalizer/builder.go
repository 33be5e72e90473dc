package normalizer

import (
	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/logging"
	"github.com/goliatone/go-deckgen/pkg/payload"
)

// Builder turns loose deck payloads into canonical decks. It is stateless
// across invocations; concurrent Build calls are independent.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Logger != nil {
		opts.Logger = options.Logger
	}
	if options.Style != (StyleDefaults{}) {
		opts.Style = options.Style
	}
	return &Builder{opts: opts}
}

// Logger exposes the configured logger for pipeline stages composed around
// the builder.
func (b *Builder) Logger() logging.Logger {
	return b.opts.Logger
}

// Build admits the top-level payload shape and normalizes the deck inside it.
// The gate is the only failure path; everything below it repairs instead of
// rejecting.
func (b *Builder) Build(value any) (deck.Deck, error) {
	inner, err := payload.Admit(value)
	if err != nil {
		b.opts.Logger.Error("payload rejected", "reason", err)
		return deck.Deck{}, err
	}
	return b.BuildDeck(inner), nil
}

// BuildDeck normalizes an admitted deck mapping. It is a total function: any
// mapping produces a complete canonical deck with at least one slide.
func (b *Builder) BuildDeck(raw map[string]any) deck.Deck {
	meta := b.normalizeMeta(raw["meta"])

	entries, ok := asList(raw["slides"])
	if !ok && raw["slides"] != nil {
		b.opts.Logger.Warn("slides is not a sequence, treating as empty", "got", typeName(raw["slides"]))
	}

	if len(entries) == 0 {
		b.opts.Logger.Warn("no slides found, creating default title slide")
		return deck.Deck{
			Meta: meta,
			Slides: []deck.Slide{{
				ID:       "01",
				Type:     deck.SlideTypeTitle,
				Title:    meta.DeckTitle,
				Subtitle: meta.DeckSubtitle,
			}},
		}
	}

	slides := make([]deck.Slide, 0, len(entries))
	for i, entry := range entries {
		slides = append(slides, b.normalizeSlide(entry, i+1))
	}

	b.opts.Logger.Info("normalization complete", "slides", len(slides))
	return deck.Deck{Meta: meta, Slides: slides}
}
