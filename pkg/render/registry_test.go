package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Extension() string   { return "txt" }

func (s stubRenderer) Render(_ context.Context, _ deck.Deck, _ render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "outline"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("outline")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "outline" {
		t.Fatalf("name = %q", renderer.Name())
	}

	if !registry.Has("outline") {
		t.Fatal("Has should report registered renderer")
	}
	if registry.Has("missing") {
		t.Fatal("Has should be false for unknown renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "outline"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := registry.Register(stubRenderer{name: "outline"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("duplicate registration error = %v", err)
	}
}

func TestRegistryRejectsInvalidRenderers(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatal("nil renderer must be rejected")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("empty renderer name must be rejected")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry, err := render.NewRegistryWith(
		stubRenderer{name: "outline"},
		stubRenderer{name: "deckjson"},
		stubRenderer{name: "markdown"},
	)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	want := []string{"deckjson", "markdown", "outline"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := render.NewRegistry()

	if _, err := registry.Get("nope"); err == nil {
		t.Fatal("unknown renderer must return an error")
	}
}
