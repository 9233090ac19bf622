// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package semtree_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mjgray/semtree"
)

// tag renders a token as KIND or KIND(text) for compact test tables.
func tag(t semtree.Token) string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%v(%s)", t.Kind, t.Text)
}

func tags(tokens []semtree.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = tag(t)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		// Empty inputs
		{"", []string{"EOF"}},
		{"  ", []string{"EOF"}},
		{"\t  \r\n \t  \r\n", []string{"EOF"}},

		// Constants
		{"true false null", []string{"BOOLEAN(true)", "BOOLEAN(false)", "NULL", "EOF"}},

		// Punctuation carries no text.
		{"{ [ ] } , :", []string{"LBRACE", "LBRACKET", "RBRACKET", "RBRACE", "COMMA", "COLON", "EOF"}},

		// Strings: text is the content between the quotes, escapes verbatim.
		{`"" "a b c"`, []string{"STRING", "STRING(a b c)", "EOF"}},
		{`"a\nb\t\"c\""`, []string{`STRING(a\nb\t\"c\")`, "EOF"}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E4 -0.001e-100`, []string{
			"NUMBER(0)", "NUMBER(-1)", "NUMBER(5139)", "NUMBER(2.3)",
			"NUMBER(5e+9)", "NUMBER(3.6E4)", "NUMBER(-0.001e-100)", "EOF",
		}},

		// Unrecognized input becomes Error tokens; scanning continues.
		{`# 1`, []string{"ERROR(#)", "NUMBER(1)", "EOF"}},
		{`truthy`, []string{"ERROR(truthy)", "EOF"}},
		{`nil null`, []string{"ERROR(nil)", "NULL", "EOF"}},
		{`1 @ 2`, []string{"NUMBER(1)", "ERROR(@)", "NUMBER(2)", "EOF"}},

		// Unterminated string: Error token with the partial content.
		{`"abc`, []string{"ERROR(abc)", "EOF"}},
		{`"abc\`, []string{"ERROR(abc\\)", "EOF"}},

		// The spec's worked lexing example.
		{`{"a":1,"b":2}`, []string{
			"LBRACE", "STRING(a)", "COLON", "NUMBER(1)", "COMMA",
			"STRING(b)", "COLON", "NUMBER(2)", "RBRACE", "EOF",
		}},

		// Mixed types
		{`{"a": true, "b":[null, 1, 0.5]}`, []string{
			"LBRACE", "STRING(a)", "COLON", "BOOLEAN(true)", "COMMA",
			"STRING(b)", "COLON", "LBRACKET", "NULL", "COMMA",
			"NUMBER(1)", "COMMA", "NUMBER(0.5)", "RBRACKET", "RBRACE", "EOF",
		}},
	}

	for _, test := range tests {
		got := tags(semtree.Tokenize(strings.NewReader(test.input)))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizeSpans(t *testing.T) {
	const input = ` {"ab" : 12}`
	want := []semtree.Span{
		{Pos: 1, End: 2},   // {
		{Pos: 2, End: 6},   // "ab"
		{Pos: 7, End: 8},   // :
		{Pos: 9, End: 11},  // 12
		{Pos: 11, End: 12}, // }
		{Pos: 12, End: 12}, // EOF, one past the final character
	}
	var got []semtree.Span
	for _, tok := range semtree.Tokenize(strings.NewReader(input)) {
		got = append(got, tok.Span)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Input: %#q\nSpans: (-want, +got)\n%s", input, diff)
	}
}

func TestScannerRestart(t *testing.T) {
	// A scanner is exhausted after its EOF token; a fresh scanner on the
	// same input repeats the same sequence.
	const input = `[true]`
	first := tags(semtree.Tokenize(strings.NewReader(input)))
	second := tags(semtree.Tokenize(strings.NewReader(input)))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Tokenize not repeatable: (-first, +second)\n%s", diff)
	}

	s := semtree.NewScanner(strings.NewReader(input))
	for s.Next() {
	}
	if s.Err() != nil {
		t.Errorf("Err: got %v, want nil", s.Err())
	}
	if s.Next() {
		t.Error("Next after EOF: got true, want false")
	}
}

func TestScannerEOFOnce(t *testing.T) {
	s := semtree.NewScanner(strings.NewReader("null"))
	var eofs int
	for s.Next() {
		if s.Kind() == semtree.EOF {
			eofs++
		}
	}
	if eofs != 1 {
		t.Errorf("EOF tokens: got %d, want 1", eofs)
	}
}

func TestKindNames(t *testing.T) {
	kinds := []semtree.Kind{
		semtree.LBrace, semtree.RBrace, semtree.LBracket, semtree.RBracket,
		semtree.Colon, semtree.Comma, semtree.String, semtree.Number,
		semtree.Boolean, semtree.Null, semtree.EOF, semtree.Error,
	}
	for _, k := range kinds {
		got, ok := semtree.ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q): got %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if k, ok := semtree.ParseKind("BOGUS"); ok {
		t.Errorf("ParseKind(BOGUS): got %v, true; want false", k)
	}
	if k, ok := semtree.ParseKind("INVALID"); ok {
		t.Errorf("ParseKind(INVALID): got %v, true; want false", k)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  semtree.Token
		want string
	}{
		{semtree.Token{Kind: semtree.LBrace}, "<LBRACE>"},
		{semtree.Token{Kind: semtree.String, Text: "a b"}, "<STRING, a b>"},
		{semtree.Token{Kind: semtree.String}, "<STRING, >"},
		{semtree.Token{Kind: semtree.Number, Text: "-1.5"}, "<NUMBER, -1.5>"},
		{semtree.Token{Kind: semtree.Null}, "<NULL>"},
		{semtree.Token{Kind: semtree.EOF}, "<EOF>"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("String: got %q, want %q", got, test.want)
		}
	}
}
