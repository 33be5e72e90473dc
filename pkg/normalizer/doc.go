// Package normalizer is the public entry point to the deck repair pipeline:
// payload gate, metadata normalization, and per-slide structural repair. The
// builder lives in internal/normalizer and is re-exported here. Below the
// gate the pipeline is total: malformed-but-recoverable input is the expected
// common case and is corrected using documented defaults, never rejected.
package normalizer
