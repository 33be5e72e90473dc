package normalizer

import (
	"fmt"

	"github.com/goliatone/go-deckgen/pkg/deck"
)

// normalizeSlide repairs one slide entry into its canonical form. Total:
// structurally impossible entries synthesize a minimal generic slide rather
// than failing. Position is 1-indexed input order and is the sole source of
// uniqueness for synthesized ids and titles.
func (b *Builder) normalizeSlide(raw any, position int) deck.Slide {
	m, ok := asMap(raw)
	if !ok {
		b.opts.Logger.Error("slide is not a mapping, creating minimal slide",
			"position", position, "got", typeName(raw))
		return deck.Slide{
			ID:      fmt.Sprintf("slide_%d", position),
			Type:    deck.SlideTypeText,
			Title:   fmt.Sprintf("Slide %d", position),
			Content: []string{},
		}
	}

	slide := deck.Slide{
		ID:         truthyString(m["id"]),
		Title:      truthyString(m["title"]),
		Subtitle:   stringify(m["subtitle"]),
		Text:       stringify(m["text"]),
		Visual:     stringify(m["visual"]),
		DesignHint: stringify(m["designHint"]),
	}

	if slide.ID == "" {
		slide.ID = fmt.Sprintf("slide_%02d", position)
		b.opts.Logger.Info("added missing slide id", "id", slide.ID)
	}

	slide.Type = b.slideType(m["type"], position)

	if slide.Title == "" {
		slide.Title = fmt.Sprintf("Slide %d", position)
		b.opts.Logger.Info("added missing slide title", "id", slide.ID, "title", slide.Title)
	}

	slide.Content, _ = stringList(m["content"])
	slide.Bullets, _ = stringList(m["bullets"])
	slide.Items = lineItems(m["items"])
	slide.Modules = moduleList(m["modules"])
	slide.Contact = contactInfo(m["contact"])

	if _, present := m["members"]; present {
		slide.Members = personList(m["members"])
	} else {
		slide.Members = personList(m["trainers"])
	}

	b.repairSlide(&slide, m)
	return slide
}

func (b *Builder) slideType(raw any, position int) deck.SlideType {
	value, ok := raw.(string)
	if ok && deck.ValidSlideType(deck.SlideType(value)) {
		return deck.SlideType(value)
	}
	b.opts.Logger.Warn("invalid slide type, defaulting to text",
		"position", position, "type", stringify(raw))
	return deck.SlideTypeText
}

// repairSlide applies the type-conditional structural guarantees keyed on the
// now-canonical slide type. Adding a slide kind with its own shape rules means
// adding one case here; nothing else branches on the type tag.
func (b *Builder) repairSlide(slide *deck.Slide, m map[string]any) {
	switch slide.Type {
	case deck.SlideTypeAgenda:
		_, hasItems := m["items"]
		_, hasContent := m["content"]
		if !hasItems && !hasContent {
			slide.Content = []string{}
			b.opts.Logger.Warn("agenda slide has no items or content", "id", slide.ID)
		}
	case deck.SlideTypeModulesOverview:
		if _, ok := asList(m["modules"]); !ok {
			slide.Modules = []deck.Module{}
			b.opts.Logger.Warn("modules_overview slide has no valid modules list", "id", slide.ID)
		}
	case deck.SlideTypeTeam:
		_, hasMembers := m["members"]
		_, hasTrainers := m["trainers"]
		if !hasMembers && !hasTrainers {
			slide.Members = []deck.Person{}
			b.opts.Logger.Warn("team slide has no members or trainers", "id", slide.ID)
		}
	case deck.SlideTypeInvestment:
		if _, ok := asList(m["items"]); !ok {
			slide.Items = []deck.LineItem{}
			b.opts.Logger.Warn("investment slide has no valid items list", "id", slide.ID)
		}
	case deck.SlideTypeContact:
		if _, ok := asMap(m["contact"]); !ok {
			slide.Contact = &deck.Contact{
				Name:  DefaultContactName,
				Email: DefaultContactEmail,
			}
			b.opts.Logger.Warn("contact slide has no valid contact mapping", "id", slide.ID)
		}
	case deck.SlideTypeTitle, deck.SlideTypeContext, deck.SlideTypeNeed,
		deck.SlideTypeUnderstanding, deck.SlideTypeVision, deck.SlideTypeApproach,
		deck.SlideTypePrinciples, deck.SlideTypeArchitecture, deck.SlideTypeModuleDetail,
		deck.SlideTypeTransfer, deck.SlideTypeDigital, deck.SlideTypeCoaching,
		deck.SlideTypeTargetGroup, deck.SlideTypeImpact, deck.SlideTypeAboutSynk,
		deck.SlideTypeReferences, deck.SlideTypeExpertise, deck.SlideTypePartners,
		deck.SlideTypeNextSteps, deck.SlideTypeText:
		// no shape requirements beyond the common guarantees
	}
}
