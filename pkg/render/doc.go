// Package render defines the contract between the normalization core and the
// rendering collaborators: the Renderer interface, per-request RenderOptions,
// and a concurrency-safe Registry for renderer discovery. The package carries
// no rendering primitives itself.
package render
