package sanitize

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

const maxFilenameComponent = 200

var (
	hexColorPattern      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	shortHexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{3}$`)
	unsafeFilenameRunes  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	collapseWhitespace   = regexp.MustCompile(`[ \t]+`)

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Color validates a hex color value against a per-key fallback. Non-string
// input returns the fallback. A missing "#" prefix is tolerated, six-digit
// values are upper-cased, and three-digit shorthand expands to the doubled
// form ("#abc" becomes "#AABBCC"). Anything else returns the fallback. The
// function is pure; callers invoke it once per palette key with that key's own
// default.
func Color(value any, fallback string) string {
	raw, ok := value.(string)
	if !ok {
		return fallback
	}

	color := strings.TrimSpace(raw)
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}

	if hexColorPattern.MatchString(color) {
		return strings.ToUpper(color)
	}
	if shortHexColorPattern.MatchString(color) {
		r, g, b := color[1:2], color[2:3], color[3:4]
		return strings.ToUpper("#" + r + r + g + g + b + b)
	}
	return fallback
}

// FilenameSafe strips path and reserved characters plus ASCII control codes,
// trims trailing dots and spaces, and caps the result at 200 characters so the
// value can be embedded in a generated filename without further escaping. An
// input that sanitizes away entirely yields "Document".
func FilenameSafe(value any) string {
	text, ok := value.(string)
	if !ok {
		text = fmt.Sprintf("%v", value)
	}

	text = unsafeFilenameRunes.ReplaceAllString(text, "")
	text = strings.Trim(text, ". ")

	if text == "" {
		return "Document"
	}
	if runes := []rune(text); len(runes) > maxFilenameComponent {
		return string(runes[:maxFilenameComponent])
	}
	return text
}

// Text prepares a string for display output: HTML markup is stripped with a
// strict policy, entities are unescaped back to plain characters, control
// characters are dropped, and runs of spaces collapse to one.
func Text(raw string) string {
	cleaned := displayPolicy().Sanitize(raw)
	cleaned = html.UnescapeString(cleaned)
	cleaned = stripControl(cleaned)
	cleaned = collapseWhitespace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func displayPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
