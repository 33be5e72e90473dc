// Package orchestrator coordinates the deck pipeline end to end: payload
// decode, the admission gate, optional strict contract linting, metadata and
// slide normalization, brand theme resolution, and renderer dispatch through
// the registry. It is the integration surface a service layer or CLI talks
// to; each stage remains independently usable through its own package.
package orchestrator
