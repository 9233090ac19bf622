// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package escape_test

import (
	"testing"

	"go4.org/mem"

	"github.com/mjgray/semtree/internal/escape"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a\nb`, "a\nb"},
		{`a\tb\rc`, "a\tb\rc"},
		{`\"quoted\"`, `"quoted"`},
		{`back\\slash`, `back\slash`},
		{`solidus\/`, "solidus/"},
		{`\b\f`, "\b\f"},
		{`A`, "A"},
		{`é`, "é"},
		{`AB`, "AB"},

		// Invalid escapes decode to the replacement rune instead of failing.
		{`\q`, "�"},
		{`\uZZZZ`, "�"},
	}
	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%q): unexpected error: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquoteIncomplete(t *testing.T) {
	for _, input := range []string{`\`, `bad\`, `\u00`} {
		if got, err := escape.Unquote(mem.S(input)); err == nil {
			t.Errorf("Unquote(%q): got %q, want error", input, got)
		}
	}
}
