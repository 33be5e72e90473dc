package payload

import "path/filepath"

// Source identifies where a deck payload originated so diagnostics can point
// back at the document without the Document type leaking loader details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates payload origins.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindInline SourceKind = "inline"
)

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source pointing at an on-disk payload.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

// SourceFromFS returns a Source identifying a payload inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type inlineSource struct{}

func (inlineSource) Kind() SourceKind { return SourceKindInline }
func (inlineSource) Location() string { return "inline" }

// SourceInline marks payloads supplied directly as bytes, such as request
// bodies handed over by a service layer.
func SourceInline() Source {
	return inlineSource{}
}
