package orchestrator

import (
	"fmt"

	internalnormalizer "github.com/goliatone/go-deckgen/internal/normalizer"
	"github.com/goliatone/go-deckgen/pkg/render"
	"github.com/goliatone/go-deckgen/pkg/sanitize"
)

// Manifest token keys a brand theme can use to override the style defaults
// the normalizer substitutes for missing palette entries.
const (
	tokenPrimary    = "color.primary"
	tokenAccent1    = "color.accent1"
	tokenAccent2    = "color.accent2"
	tokenText       = "color.text"
	tokenBackground = "color.background"
	tokenFont       = "font.family"
	tokenLogo       = "asset.logo"
	tokenClientLogo = "asset.clientLogo"
)

// resolveTheme produces the style defaults for the request plus the theme
// configuration renderers receive. Without a selector or theme name the
// configured (or built-in) defaults apply.
func (o *Orchestrator) resolveTheme(req Request) (internalnormalizer.StyleDefaults, *render.ThemeConfig, error) {
	style := internalnormalizer.DefaultStyle()
	if o.styleDefaults != nil {
		style = *o.styleDefaults
	}

	if o.themeSelector == nil || req.ThemeName == "" {
		return style, nil, nil
	}

	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return internalnormalizer.StyleDefaults{}, nil, fmt.Errorf("orchestrator: resolve theme %q: %w", req.ThemeName, err)
	}
	if selection == nil || selection.Manifest == nil {
		return style, nil, nil
	}

	tokens := selection.Manifest.Tokens
	style = applyThemeTokens(style, tokens)

	cfg := &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
	}
	return style, cfg, nil
}

func applyThemeTokens(style internalnormalizer.StyleDefaults, tokens map[string]string) internalnormalizer.StyleDefaults {
	if len(tokens) == 0 {
		return style
	}

	// Theme palettes are validated against the built-in defaults so a broken
	// manifest can never weaken the canonical color guarantee.
	style.Colors.Primary = themeColor(tokens, tokenPrimary, style.Colors.Primary)
	style.Colors.Accent1 = themeColor(tokens, tokenAccent1, style.Colors.Accent1)
	style.Colors.Accent2 = themeColor(tokens, tokenAccent2, style.Colors.Accent2)
	style.Colors.Text = themeColor(tokens, tokenText, style.Colors.Text)
	style.Colors.Background = themeColor(tokens, tokenBackground, style.Colors.Background)

	if font := tokens[tokenFont]; font != "" {
		style.Font = font
	}
	if logo := tokens[tokenLogo]; logo != "" {
		style.Logo = logo
	}
	if clientLogo := tokens[tokenClientLogo]; clientLogo != "" {
		style.ClientLogo = clientLogo
	}
	return style
}

func themeColor(tokens map[string]string, key, fallback string) string {
	value, ok := tokens[key]
	if !ok {
		return fallback
	}
	return sanitize.Color(value, fallback)
}
