package deck

import (
	"strings"

	"github.com/goliatone/go-deckgen/pkg/sanitize"
)

// Flatten reduces a slide's heterogeneous content fields to one ordered list
// of display strings for renderers that lay text out as plain paragraphs.
// Precedence: content wins outright; otherwise a contact block, then the
// member roster; when none of those yield a line, the free-text field opens
// the output and bullets/items are appended after it. Every emitted line runs
// through the display-text sanitizer. An empty result is valid and means
// "render one blank paragraph".
func Flatten(s Slide) []string {
	if len(s.Content) > 0 {
		lines := make([]string, 0, len(s.Content))
		for _, entry := range s.Content {
			lines = append(lines, sanitize.Text(entry))
		}
		return lines
	}

	if s.Contact != nil {
		if lines := contactLines(*s.Contact); len(lines) > 0 {
			return lines
		}
	}

	if len(s.Members) > 0 {
		if lines := memberLines(s.Members); len(lines) > 0 {
			return lines
		}
	}

	var lines []string
	if text := sanitize.Text(s.Text); text != "" {
		lines = append(lines, text)
	}
	for _, bullet := range s.Bullets {
		lines = append(lines, sanitize.Text(bullet))
	}
	for _, item := range s.Items {
		line, ok := lineItemText(item)
		if !ok {
			continue
		}
		lines = append(lines, sanitize.Text(line))
	}
	return lines
}

func contactLines(c Contact) []string {
	var lines []string

	header := strings.TrimSpace(c.Name)
	if role := strings.TrimSpace(c.Role); role != "" {
		if header != "" {
			header += " - " + role
		} else {
			header = role
		}
	}
	if header != "" {
		lines = append(lines, sanitize.Text(header))
	}
	if email := strings.TrimSpace(c.Email); email != "" {
		lines = append(lines, sanitize.Text(email))
	}
	if phone := strings.TrimSpace(c.Phone); phone != "" {
		lines = append(lines, sanitize.Text(phone))
	}
	return lines
}

func memberLines(members []Person) []string {
	lines := make([]string, 0, len(members))
	for _, member := range members {
		line := strings.TrimSpace(member.Name)
		if role := strings.TrimSpace(member.Role); role != "" {
			if line != "" {
				line += " – " + role
			} else {
				line = role
			}
		}
		if focus := strings.TrimSpace(member.Focus); focus != "" {
			if line != "" {
				line += " (" + focus + ")"
			} else {
				line = focus
			}
		}
		if line == "" {
			continue
		}
		lines = append(lines, sanitize.Text(line))
	}
	return lines
}

func lineItemText(item LineItem) (string, bool) {
	parts := make([]string, 0, 3)
	for _, part := range []string{item.Label, item.Value, item.Note} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " – "), true
}
