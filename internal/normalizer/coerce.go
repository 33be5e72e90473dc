package normalizer

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-deckgen/pkg/deck"
)

// stringify renders a loose scalar as a string. Nil and empty values yield "".
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// truthyString mirrors stringify but treats values with no usable display
// form as absent: whitespace-only strings, falsy scalars (false, zero, nil)
// and container values all yield "" so a default can substitute. Truthy
// non-string scalars still stringify (42 becomes "42").
func truthyString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if !v {
			return ""
		}
	case int:
		if v == 0 {
			return ""
		}
	case int64:
		if v == 0 {
			return ""
		}
	case uint64:
		if v == 0 {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	case map[string]any, []any:
		return ""
	}
	s := stringify(value)
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// stringList coerces a loose value into a list of strings: a scalar wraps
// into a single-element list, list entries are stringified, and nil entries
// are dropped. The second return reports whether the key held any value at
// all, so callers can distinguish "absent" from "explicitly empty".
func stringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if entry == nil {
				continue
			}
			out = append(out, stringify(entry))
		}
		return out, true
	default:
		return []string{stringify(v)}, true
	}
}

func asMap(value any) (map[string]any, bool) {
	m, ok := value.(map[string]any)
	return m, ok
}

func asList(value any) ([]any, bool) {
	l, ok := value.([]any)
	return l, ok
}

func lineItems(value any) []deck.LineItem {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		out := make([]deck.LineItem, 0, len(v))
		for _, entry := range v {
			if entry == nil {
				continue
			}
			if m, ok := asMap(entry); ok {
				out = append(out, deck.LineItem{
					Label: stringify(m["label"]),
					Value: stringify(m["value"]),
					Note:  stringify(m["note"]),
				})
				continue
			}
			out = append(out, deck.LineItem{Label: stringify(entry)})
		}
		return out
	default:
		return []deck.LineItem{{Label: stringify(v)}}
	}
}

func moduleList(value any) []deck.Module {
	entries, ok := asList(value)
	if !ok {
		return nil
	}
	out := make([]deck.Module, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if m, ok := asMap(entry); ok {
			outcomes, _ := stringList(m["outcomes"])
			out = append(out, deck.Module{
				Title:    stringify(m["title"]),
				Duration: stringify(m["duration"]),
				Outcomes: outcomes,
			})
			continue
		}
		out = append(out, deck.Module{Title: stringify(entry)})
	}
	return out
}

func personList(value any) []deck.Person {
	entries, ok := asList(value)
	if !ok {
		return nil
	}
	out := make([]deck.Person, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if m, ok := asMap(entry); ok {
			out = append(out, deck.Person{
				Name:     stringify(m["name"]),
				Role:     stringify(m["role"]),
				Focus:    stringify(m["focus"]),
				Bio:      stringify(m["bio"]),
				PhotoRef: stringify(m["photoRef"]),
			})
			continue
		}
		out = append(out, deck.Person{Name: stringify(entry)})
	}
	return out
}

func contactInfo(value any) *deck.Contact {
	m, ok := asMap(value)
	if !ok {
		return nil
	}
	return &deck.Contact{
		Name:  stringify(m["name"]),
		Role:  stringify(m["role"]),
		Email: stringify(m["email"]),
		Phone: stringify(m["phone"]),
	}
}
