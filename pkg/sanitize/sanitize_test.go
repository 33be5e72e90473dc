package sanitize_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-deckgen/pkg/sanitize"
)

func TestColor(t *testing.T) {
	fallback := "#000000"

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"missing hash prefix", "06206f", "#06206F"},
		{"already canonical", "#06206F", "#06206F"},
		{"lowercase upper-cased", "#2fcac3", "#2FCAC3"},
		{"short form expanded", "#ABC", "#AABBCC"},
		{"short form without hash", "abc", "#AABBCC"},
		{"surrounding whitespace", "  #FFFFFF  ", "#FFFFFF"},
		{"named color rejected", "blue", fallback},
		{"bad hex digits", "#GGGGGG", fallback},
		{"number rejected", 42, fallback},
		{"nil rejected", nil, fallback},
		{"empty string rejected", "", fallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitize.Color(tc.value, fallback); got != tc.want {
				t.Fatalf("Color(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestColorUsesPerKeyFallback(t *testing.T) {
	if got := sanitize.Color("nope", "#123456"); got != "#123456" {
		t.Fatalf("expected per-key fallback, got %q", got)
	}
}

func TestFilenameSafe(t *testing.T) {
	got := sanitize.FilenameSafe(`File<>with|bad?chars*`)
	for _, r := range `<>:"/\|?*` {
		if strings.ContainsRune(got, r) {
			t.Fatalf("result %q still contains %q", got, r)
		}
	}
	if got != "Filewithbadchars" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestFilenameSafeControlCharacters(t *testing.T) {
	got := sanitize.FilenameSafe("a\x00b\x1fc")
	if got != "abc" {
		t.Fatalf("control characters survived: %q", got)
	}
}

func TestFilenameSafeTrailingDotsAndSpaces(t *testing.T) {
	if got := sanitize.FilenameSafe("report. . "); got != "report" {
		t.Fatalf("expected trailing dots and spaces trimmed, got %q", got)
	}
}

func TestFilenameSafeEmptyFallsBack(t *testing.T) {
	if got := sanitize.FilenameSafe("???"); got != "Document" {
		t.Fatalf("expected Document fallback, got %q", got)
	}
}

func TestFilenameSafeCapsLength(t *testing.T) {
	long := strings.Repeat("x", 300)
	if got := sanitize.FilenameSafe(long); len(got) != 200 {
		t.Fatalf("expected 200 characters, got %d", len(got))
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Leadership basics", "Leadership basics"},
		{"markup stripped", "<b>Bold</b> claim", "Bold claim"},
		{"entities unescaped", "Research &amp; Development", "Research & Development"},
		{"whitespace collapsed", "too   many    spaces", "too many spaces"},
		{"control characters dropped", "line\x00break\x07", "linebreak"},
		{"trims surrounding space", "  padded  ", "padded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitize.Text(tc.in); got != tc.want {
				t.Fatalf("Text(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
