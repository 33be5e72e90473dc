package normalizer

import "github.com/goliatone/go-deckgen/pkg/deck"

// Every default the normalizer can substitute is declared here, once, so the
// meta and slide paths can never drift apart.
const (
	DefaultDeckTitle = "Presentation"
	DefaultAuthor    = "SYNK GROUP"
	DefaultDate      = "2025-01-01"
	DefaultCustomer  = "Client"
	DefaultFont      = "Arial"

	DefaultContactName  = "Contact Person"
	DefaultContactEmail = "contact@example.com"
)

// StyleDefaults seeds the style block when a payload omits or mangles it.
// Brand themes can swap in their own palette; the zero value is not usable,
// use DefaultStyle as the base.
type StyleDefaults struct {
	Font       string
	Colors     deck.Colors
	Logo       string
	ClientLogo string
}

// DefaultStyle returns the built-in brand defaults.
func DefaultStyle() StyleDefaults {
	return StyleDefaults{
		Font: DefaultFont,
		Colors: deck.Colors{
			Primary:    "#06206F",
			Accent1:    "#2FCAC3",
			Accent2:    "#966668",
			Text:       "#011533",
			Background: "#FFFFFF",
		},
	}
}
