// Package payload handles everything that happens to a deck payload before
// normalization: wrapping raw bytes with their origin, decoding JSON or YAML
// into a loose value tree, admitting or rejecting the top-level shape, and
// optionally linting against the strict contract the rendering API publishes.
// Admit is the only place in the pipeline allowed to reject a request; every
// stage below it repairs instead.
package payload
