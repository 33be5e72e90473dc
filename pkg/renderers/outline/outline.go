// Package outline renders a canonical deck as a plain-text outline: one
// numbered section per slide with its flattened body lines. It exists for
// previews and diffing, not for presentation output, and doubles as the
// reference consumer of deck.Flatten.
package outline

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/render"
)

// Name identifies the renderer inside a registry.
const Name = "outline"

//go:embed templates/*.tpl
var templateFiles embed.FS

// Renderer emits a text outline via an embedded pongo2 template.
type Renderer struct {
	template *pongo2.Template
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the outline renderer, parsing the embedded template set.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("outline: open template dir: %w", err)
	}
	set := pongo2.NewSet("outline", pongo2.NewFSLoader(sub))
	tmpl, err := set.FromFile("outline.tpl")
	if err != nil {
		return nil, fmt.Errorf("outline: parse template: %w", err)
	}
	return &Renderer{template: tmpl}, nil
}

// MustNew panics when the embedded template fails to parse. Useful for
// init-time registry wiring.
func MustNew() *Renderer {
	renderer, err := New()
	if err != nil {
		panic(err)
	}
	return renderer
}

func (*Renderer) Name() string        { return Name }
func (*Renderer) ContentType() string { return "text/plain; charset=utf-8" }
func (*Renderer) Extension() string   { return "txt" }

// Render executes the outline template against the deck.
func (r *Renderer) Render(ctx context.Context, d deck.Deck, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slides := make([]map[string]any, 0, len(d.Slides))
	for i, slide := range d.Slides {
		slides = append(slides, map[string]any{
			"index": i + 1,
			"title": slide.Title,
			"kind":  string(slide.Type),
			"lines": slideLines(slide),
		})
	}

	var buf bytes.Buffer
	err := r.template.ExecuteWriter(pongo2.Context{
		"title":      d.Meta.DeckTitle,
		"subtitle":   d.Meta.DeckSubtitle,
		"customer":   d.Meta.Customer,
		"author":     d.Meta.Author,
		"date":       d.Meta.Date,
		"useCase":    d.Meta.UseCase,
		"primary":    d.Meta.Style.Colors.Primary,
		"accent1":    d.Meta.Style.Colors.Accent1,
		"accent2":    d.Meta.Style.Colors.Accent2,
		"background": d.Meta.Style.Colors.Background,
		"slides":     slides,
	}, &buf)
	if err != nil {
		return nil, fmt.Errorf("outline: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// slideLines picks the body lines for one outline section. Module tables get
// their own treatment; everything else goes through the content flattener.
func slideLines(slide deck.Slide) []string {
	if slide.Type == deck.SlideTypeModulesOverview && len(slide.Modules) > 0 {
		lines := make([]string, 0, len(slide.Modules))
		for _, module := range slide.Modules {
			parts := make([]string, 0, 2)
			if title := strings.TrimSpace(module.Title); title != "" {
				parts = append(parts, title)
			}
			if duration := strings.TrimSpace(module.Duration); duration != "" {
				parts = append(parts, duration)
			}
			if len(parts) == 0 {
				continue
			}
			lines = append(lines, strings.Join(parts, " – "))
		}
		return lines
	}
	return deck.Flatten(slide)
}
