package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/payload"
)

// LoadDocument reads a fixture and wraps it as a payload document. Testing
// helpers fail the test on error to keep contract tests concise.
func LoadDocument(t *testing.T, path string) payload.Document {
	t.Helper()

	doc, err := payload.FromFile(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// MustDecode decodes raw payload bytes into a loose value tree.
func MustDecode(t *testing.T, raw []byte) any {
	t.Helper()

	doc := payload.MustNewDocument(payload.SourceInline(), raw)
	value, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return value
}

// MustLoadDeck loads a JSON golden file into a canonical deck.
func MustLoadDeck(t *testing.T, path string) deck.Deck {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out deck.Deck
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteDeck writes a canonical deck golden when UPDATE_GOLDENS is enabled.
func WriteDeck(t *testing.T, path string, value deck.Deck) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
