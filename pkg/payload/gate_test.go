package payload_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-deckgen/pkg/payload"
)

func TestAdmitReturnsInnerDeck(t *testing.T) {
	inner := map[string]any{"meta": map[string]any{}, "slides": []any{}}
	got, err := payload.Admit(map[string]any{"deck": inner})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if diff := cmp.Diff(inner, got); diff != "" {
		t.Fatalf("inner deck must pass through unchanged (-want +got):\n%s", diff)
	}
}

func TestAdmitRejections(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		reason string
	}{
		{"not a mapping", []any{"deck"}, "not a mapping"},
		{"scalar payload", "deck", "not a mapping"},
		{"nil payload", nil, "not a mapping"},
		{"missing deck key", map[string]any{"slides": []any{}}, "missing deck key"},
		{"deck not a mapping", map[string]any{"deck": []any{}}, "deck not a mapping"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := payload.Admit(tc.value)
			var gateErr *payload.GateError
			if !errors.As(err, &gateErr) {
				t.Fatalf("expected GateError, got %v", err)
			}
			if gateErr.Reason != tc.reason {
				t.Fatalf("reason = %q, want %q", gateErr.Reason, tc.reason)
			}
		})
	}
}

func TestDocumentDecodeJSON(t *testing.T) {
	doc := payload.MustNewDocument(payload.SourceInline(), []byte(`{"deck": {"slides": []}}`))
	value, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := payload.Admit(value); err != nil {
		t.Fatalf("decoded JSON should pass the gate: %v", err)
	}
}

func TestDocumentDecodeYAML(t *testing.T) {
	raw := []byte("deck:\n  slides:\n    - type: title\n      title: Hello\n")
	doc := payload.MustNewDocument(payload.SourceInline(), raw)
	value, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	inner, err := payload.Admit(value)
	if err != nil {
		t.Fatalf("decoded YAML should pass the gate: %v", err)
	}
	if _, ok := inner["slides"]; !ok {
		t.Fatal("expected slides key in admitted deck")
	}
}

func TestDocumentFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"decks/minimal.yaml": &fstest.MapFile{
			Data: []byte("deck:\n  slides: []\n"),
		},
	}

	doc, err := payload.FromFS(fsys, "decks/minimal.yaml")
	if err != nil {
		t.Fatalf("from fs: %v", err)
	}
	if doc.Source().Kind() != payload.SourceKindFS {
		t.Errorf("source kind = %q, want %q", doc.Source().Kind(), payload.SourceKindFS)
	}
	if doc.Location() != "decks/minimal.yaml" {
		t.Errorf("location = %q", doc.Location())
	}

	value, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := payload.Admit(value); err != nil {
		t.Fatalf("embedded payload should pass the gate: %v", err)
	}

	if _, err := payload.FromFS(fsys, "decks/missing.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewDocumentValidation(t *testing.T) {
	if _, err := payload.NewDocument(nil, []byte("{}")); err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, err := payload.NewDocument(payload.SourceInline(), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
