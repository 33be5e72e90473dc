package deckjson_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/render"
	"github.com/goliatone/go-deckgen/pkg/renderers/deckjson"
)

func sampleDeck() deck.Deck {
	return deck.Deck{
		Meta: deck.Meta{
			DeckTitle: "Presentation",
			Author:    "SYNK GROUP",
			Date:      "2025-01-01",
			Customer:  "Client",
			Style: deck.Style{
				Font: "Arial",
				Colors: deck.Colors{
					Primary:    "#06206F",
					Accent1:    "#2FCAC3",
					Accent2:    "#966668",
					Text:       "#011533",
					Background: "#FFFFFF",
				},
			},
		},
		Slides: []deck.Slide{{
			ID:    "slide_01",
			Type:  deck.SlideTypeTitle,
			Title: "Hello",
		}},
	}
}

func TestRenderRoundTrips(t *testing.T) {
	renderer := deckjson.New()

	out, err := renderer.Render(context.Background(), sampleDeck(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		t.Fatal("output must end with a newline")
	}

	var decoded deck.Deck
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if diff := cmp.Diff(sampleDeck(), decoded); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestRenderHonoursContextCancellation(t *testing.T) {
	renderer := deckjson.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, sampleDeck(), render.RenderOptions{}); err == nil {
		t.Fatal("cancelled context must abort the render")
	}
}

func TestRendererMetadata(t *testing.T) {
	renderer := deckjson.New()

	if renderer.Name() != deckjson.Name {
		t.Errorf("name = %q", renderer.Name())
	}
	if renderer.ContentType() != "application/json" {
		t.Errorf("content type = %q", renderer.ContentType())
	}
	if renderer.Extension() != "json" {
		t.Errorf("extension = %q", renderer.Extension())
	}
}
