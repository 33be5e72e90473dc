package payload

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contract/deck_contract.yaml
var contractSpec []byte

// Deviation describes one point where a payload departs from the strict deck
// contract. Deviations are advisory: the normalizer repairs them anyway, but
// callers tuning an upstream agent want to see what had to be fixed.
type Deviation struct {
	Path    string
	Message string
}

func (d Deviation) String() string {
	if d.Path == "" {
		return d.Message
	}
	return d.Path + ": " + d.Message
}

var (
	contractOnce   sync.Once
	contractSchema *openapi3.Schema
	contractErr    error
)

func contract() (*openapi3.Schema, error) {
	contractOnce.Do(func() {
		loader := &openapi3.Loader{}
		spec, err := loader.LoadFromData(contractSpec)
		if err != nil {
			contractErr = fmt.Errorf("payload: load contract: %w", err)
			return
		}
		ref, ok := spec.Components.Schemas["RenderRequest"]
		if !ok || ref.Value == nil {
			contractErr = errors.New("payload: contract is missing the RenderRequest schema")
			return
		}
		contractSchema = ref.Value
	})
	return contractSchema, contractErr
}

// Lint validates a decoded payload against the strict deck contract and
// returns every deviation found. A nil slice means the payload already
// conforms. Lint never rejects; the gate decides viability and the normalizer
// decides repairs.
func Lint(value any) ([]Deviation, error) {
	schema, err := contract()
	if err != nil {
		return nil, err
	}

	visitErr := schema.VisitJSON(value, openapi3.MultiErrors())
	if visitErr == nil {
		return nil, nil
	}

	deviations := collectDeviations(visitErr)
	sort.SliceStable(deviations, func(i, j int) bool {
		return deviations[i].Path < deviations[j].Path
	})
	return deviations, nil
}

func collectDeviations(err error) []Deviation {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []Deviation
		for _, item := range multi {
			out = append(out, collectDeviations(item)...)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []Deviation{{
			Path:    strings.Join(schemaErr.JSONPointer(), "."),
			Message: schemaErr.Reason,
		}}
	}

	return []Deviation{{Message: err.Error()}}
}
