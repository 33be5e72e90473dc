package payload

// GateError reports a payload that is structurally unviable. It is the only
// failure the normalization pipeline surfaces to callers; anything less severe
// is repaired downstream instead of rejected.
type GateError struct {
	Reason string
}

func (e *GateError) Error() string {
	return "payload: " + e.Reason
}

// Admit confirms the top-level payload shape is viable at all and returns the
// inner deck mapping unchanged. It fails when the payload is not a mapping,
// lacks the "deck" key, or carries a non-mapping deck. This stage is read-only
// and performs no repair.
func Admit(value any) (map[string]any, error) {
	root, ok := value.(map[string]any)
	if !ok {
		return nil, &GateError{Reason: "not a mapping"}
	}

	raw, ok := root["deck"]
	if !ok {
		return nil, &GateError{Reason: "missing deck key"}
	}

	inner, ok := raw.(map[string]any)
	if !ok {
		return nil, &GateError{Reason: "deck not a mapping"}
	}
	return inner, nil
}
