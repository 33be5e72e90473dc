package deck

// SlideType tags a slide with one of the closed vocabulary of kinds the
// rendering stage understands. Unrecognized values coerce to SlideTypeText
// during normalization.
type SlideType string

const (
	SlideTypeTitle           SlideType = "title"
	SlideTypeAgenda          SlideType = "agenda"
	SlideTypeContext         SlideType = "context"
	SlideTypeNeed            SlideType = "need"
	SlideTypeUnderstanding   SlideType = "understanding"
	SlideTypeVision          SlideType = "vision"
	SlideTypeApproach        SlideType = "approach"
	SlideTypePrinciples      SlideType = "principles"
	SlideTypeArchitecture    SlideType = "architecture"
	SlideTypeModulesOverview SlideType = "modules_overview"
	SlideTypeModuleDetail    SlideType = "module_detail"
	SlideTypeTransfer        SlideType = "transfer"
	SlideTypeDigital         SlideType = "digital"
	SlideTypeCoaching        SlideType = "coaching"
	SlideTypeTargetGroup     SlideType = "target_group"
	SlideTypeImpact          SlideType = "impact"
	SlideTypeAboutSynk       SlideType = "about_synk"
	SlideTypeTeam            SlideType = "team"
	SlideTypeReferences      SlideType = "references"
	SlideTypeExpertise       SlideType = "expertise"
	SlideTypePartners        SlideType = "partners"
	SlideTypeInvestment      SlideType = "investment"
	SlideTypeNextSteps       SlideType = "next_steps"
	SlideTypeContact         SlideType = "contact"

	// SlideTypeText is the generic fallback kind assigned to slides whose
	// declared type is missing or outside the vocabulary above.
	SlideTypeText SlideType = "text"
)

var slideTypes = map[SlideType]struct{}{
	SlideTypeTitle:           {},
	SlideTypeAgenda:          {},
	SlideTypeContext:         {},
	SlideTypeNeed:            {},
	SlideTypeUnderstanding:   {},
	SlideTypeVision:          {},
	SlideTypeApproach:        {},
	SlideTypePrinciples:      {},
	SlideTypeArchitecture:    {},
	SlideTypeModulesOverview: {},
	SlideTypeModuleDetail:    {},
	SlideTypeTransfer:        {},
	SlideTypeDigital:         {},
	SlideTypeCoaching:        {},
	SlideTypeTargetGroup:     {},
	SlideTypeImpact:          {},
	SlideTypeAboutSynk:       {},
	SlideTypeTeam:            {},
	SlideTypeReferences:      {},
	SlideTypeExpertise:       {},
	SlideTypePartners:        {},
	SlideTypeInvestment:      {},
	SlideTypeNextSteps:       {},
	SlideTypeContact:         {},
}

// ValidSlideType reports whether t belongs to the declared vocabulary. The
// generic "text" fallback is accepted too so already-canonical decks survive a
// second normalization pass unchanged.
func ValidSlideType(t SlideType) bool {
	if t == SlideTypeText {
		return true
	}
	_, ok := slideTypes[t]
	return ok
}

// Colors is the fixed five-key palette every canonical deck carries. All
// values are validated upper-case "#RRGGBB" strings; partial input never
// leaves a key empty.
type Colors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Accent1    string `json:"accent1" yaml:"accent1"`
	Accent2    string `json:"accent2" yaml:"accent2"`
	Text       string `json:"text" yaml:"text"`
	Background string `json:"background" yaml:"background"`
}

// Style holds the deck-level look and feel.
type Style struct {
	Font       string `json:"font" yaml:"font"`
	Colors     Colors `json:"colors" yaml:"colors"`
	Logo       string `json:"logo" yaml:"logo"`
	ClientLogo string `json:"clientLogo" yaml:"clientLogo"`
}

// Meta is the deck-level metadata block. DeckTitle and Customer are
// filename-safe: consumers may embed them in generated filenames without
// further escaping.
type Meta struct {
	DeckTitle    string `json:"deckTitle" yaml:"deckTitle"`
	DeckSubtitle string `json:"deckSubtitle" yaml:"deckSubtitle"`
	Author       string `json:"author" yaml:"author"`
	Date         string `json:"date" yaml:"date"`
	Customer     string `json:"customer" yaml:"customer"`
	UseCase      string `json:"useCase" yaml:"useCase"`
	Style        Style  `json:"style" yaml:"style"`
}

// Module describes one training module row on a modules_overview slide.
type Module struct {
	Title    string   `json:"title" yaml:"title"`
	Duration string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Outcomes []string `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
}

// Person describes a team member or trainer.
type Person struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
	Focus    string `json:"focus,omitempty" yaml:"focus,omitempty"`
	Bio      string `json:"bio,omitempty" yaml:"bio,omitempty"`
	PhotoRef string `json:"photoRef,omitempty" yaml:"photoRef,omitempty"`
}

// Contact holds the reach-out block on a contact slide.
type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role,omitempty" yaml:"role,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// LineItem is one investment/pricing row. Loose payloads may supply plain
// strings for items; those normalize to a LineItem carrying only Label.
type LineItem struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Slide is one canonical page. After normalization every slide carries a
// non-empty ID and Title, a vocabulary SlideType, and whatever type-dependent
// payload the input supplied, repaired to the correct shape.
type Slide struct {
	ID       string    `json:"id" yaml:"id"`
	Type     SlideType `json:"type" yaml:"type"`
	Title    string    `json:"title" yaml:"title"`
	Subtitle string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	Content []string   `json:"content,omitempty" yaml:"content,omitempty"`
	Text    string     `json:"text,omitempty" yaml:"text,omitempty"`
	Bullets []string   `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	Items   []LineItem `json:"items,omitempty" yaml:"items,omitempty"`
	Modules []Module   `json:"modules,omitempty" yaml:"modules,omitempty"`
	Members []Person   `json:"members,omitempty" yaml:"members,omitempty"`
	Contact *Contact   `json:"contact,omitempty" yaml:"contact,omitempty"`

	Visual     string `json:"visual,omitempty" yaml:"visual,omitempty"`
	DesignHint string `json:"designHint,omitempty" yaml:"designHint,omitempty"`
}

// Deck is the canonical presentation model: metadata plus at least one slide.
// It is a strict tree; slides are never shared or mutated after assembly.
type Deck struct {
	Meta   Meta    `json:"meta" yaml:"meta"`
	Slides []Slide `json:"slides" yaml:"slides"`
}
