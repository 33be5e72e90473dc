// Package sanitize provides the pure value sanitizers the normalizer leans
// on: hex color validation with per-key fallbacks, filename-safe string
// preparation, and display-text cleanup backed by bluemonday's strict policy.
package sanitize
