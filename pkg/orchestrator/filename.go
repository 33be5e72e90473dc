package orchestrator

import (
	"fmt"

	"github.com/goliatone/go-deckgen/pkg/deck"
)

// Filename derives the download filename for a rendered deck:
// "{customer} - {deckTitle}.{ext}". Both components are already
// filename-safe after normalization, so no further escaping is needed beyond
// standard header encoding at the transport boundary.
func Filename(meta deck.Meta, ext string) string {
	return fmt.Sprintf("%s - %s.%s", meta.Customer, meta.DeckTitle, ext)
}
