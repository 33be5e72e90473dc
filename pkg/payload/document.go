package payload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Document wraps a raw deck payload and its origin. The raw bytes may be JSON
// or YAML; Decode handles both since YAML is a superset of JSON.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("payload: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("payload: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// FromFile reads a payload from disk.
func FromFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("payload: read document: %w", err)
	}
	return NewDocument(SourceFromFile(path), data)
}

// FromFS reads a payload out of an fs.FS, such as an embedded fixture set.
func FromFS(fsys fs.FS, name string) (Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("payload: read document: %w", err)
	}
	return NewDocument(SourceFromFS(name), data)
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload bytes.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode unmarshals the raw payload into a loose value tree. No shape checks
// happen here; that is the gate's job.
func (d Document) Decode() (any, error) {
	var value any
	if err := yaml.Unmarshal(d.raw, &value); err != nil {
		return nil, fmt.Errorf("payload: decode document: %w", err)
	}
	return value, nil
}
