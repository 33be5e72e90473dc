// Package deck defines the canonical presentation model produced by the
// normalizer and consumed by renderers. Every field a renderer reads is
// guaranteed present with the correct type once a Deck leaves normalization:
// the five-key color palette is always fully populated, every slide carries a
// non-empty ID and Title, and type-dependent payloads (modules, members,
// contact, line items) arrive in their repaired shape. Renderers must not
// perform their own defaulting. Flatten collapses a slide's content fields
// into one ordered list of display strings for text-oriented output.
package deck
