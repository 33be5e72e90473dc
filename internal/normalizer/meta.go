package normalizer

import (
	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/sanitize"
)

// normalizeMeta fills and validates the deck-level metadata block. It is a
// total function: any input shape produces a complete Meta.
func (b *Builder) normalizeMeta(raw any) deck.Meta {
	m, ok := asMap(raw)
	if !ok {
		if raw != nil {
			b.opts.Logger.Warn("meta is not a mapping, using defaults", "got", typeName(raw))
		}
		m = map[string]any{}
	}

	meta := deck.Meta{
		DeckTitle:    fallbackString(m["deckTitle"], DefaultDeckTitle),
		DeckSubtitle: stringify(m["deckSubtitle"]),
		Author:       fallbackString(m["author"], DefaultAuthor),
		Date:         fallbackString(m["date"], DefaultDate),
		Customer:     fallbackString(m["customer"], DefaultCustomer),
		UseCase:      stringify(m["useCase"]),
	}

	// Customer and title end up in generated filenames, so they are made
	// filename-safe here once instead of at every consumer.
	meta.Customer = sanitize.FilenameSafe(meta.Customer)
	meta.DeckTitle = sanitize.FilenameSafe(meta.DeckTitle)

	meta.Style = b.normalizeStyle(m["style"])
	return meta
}

func (b *Builder) normalizeStyle(raw any) deck.Style {
	style, ok := asMap(raw)
	if !ok {
		if raw != nil {
			b.opts.Logger.Warn("style is not a mapping, using defaults", "got", typeName(raw))
		}
		style = map[string]any{}
	}

	defaults := b.opts.Style

	colors, ok := asMap(style["colors"])
	if !ok {
		if style["colors"] != nil {
			b.opts.Logger.Warn("colors is not a mapping, using defaults", "got", typeName(style["colors"]))
		}
		colors = map[string]any{}
	}

	palette := deck.Colors{
		Primary:    b.sanitizeColor("primary", colors, defaults.Colors.Primary),
		Accent1:    b.sanitizeColor("accent1", colors, defaults.Colors.Accent1),
		Accent2:    b.sanitizeColor("accent2", colors, defaults.Colors.Accent2),
		Text:       b.sanitizeColor("text", colors, defaults.Colors.Text),
		Background: b.sanitizeColor("background", colors, defaults.Colors.Background),
	}

	logo := stringify(style["logo"])
	if logo == "" {
		logo = defaults.Logo
	}
	clientLogo := stringify(style["clientLogo"])
	if clientLogo == "" {
		clientLogo = defaults.ClientLogo
	}

	return deck.Style{
		Font:       fallbackString(style["font"], defaults.Font),
		Colors:     palette,
		Logo:       logo,
		ClientLogo: clientLogo,
	}
}

// sanitizeColor validates one palette key against its own default. Missing
// keys keep the default untouched, so partial palettes never leak an invalid
// or empty color downstream.
func (b *Builder) sanitizeColor(key string, colors map[string]any, fallback string) string {
	value, ok := colors[key]
	if !ok {
		return fallback
	}
	result := sanitize.Color(value, fallback)
	if raw, isString := value.(string); !isString || result != raw {
		if result == fallback {
			b.opts.Logger.Warn("invalid color value, using fallback", "key", key, "fallback", fallback)
		} else {
			b.opts.Logger.Info("normalized color value", "key", key, "value", result)
		}
	}
	return result
}

// fallbackString keeps the supplied value when it is non-empty after
// stripping, otherwise substitutes the default.
func fallbackString(value any, fallback string) string {
	if s := truthyString(value); s != "" {
		return s
	}
	return fallback
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	switch value.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	default:
		return "scalar"
	}
}
