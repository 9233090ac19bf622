// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package semtree

import "fmt"

// A Kind is the lexical class of a token in the grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid  Kind = iota // invalid kind
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LBracket             // left square bracket "["
	RBracket             // right square bracket "]"
	Colon                // colon ":"
	Comma                // comma ","
	String               // quoted string
	Number               // number
	Boolean              // constant: true or false
	Null                 // constant: null
	EOF                  // end of input
	Error                // unrecognized input
)

var kindStr = [...]string{
	Invalid:  "INVALID",
	LBrace:   "LBRACE",
	RBrace:   "RBRACE",
	LBracket: "LBRACKET",
	RBracket: "RBRACKET",
	Colon:    "COLON",
	Comma:    "COMMA",
	String:   "STRING",
	Number:   "NUMBER",
	Boolean:  "BOOLEAN",
	Null:     "NULL",
	EOF:      "EOF",
	Error:    "ERROR",
}

// String returns the wire name of k, as used in token files.
func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// ParseKind returns the Kind named by a wire name, and reports whether the
// name is known. The name "INVALID" is not considered known.
func ParseKind(name string) (Kind, bool) {
	for k, s := range kindStr {
		if Kind(k) != Invalid && s == name {
			return Kind(k), true
		}
	}
	return Invalid, false
}

// A Token is a single classified unit of input. Tokens are values; once
// produced by a Scanner they are never modified.
//
// The Text of a structural token ("{", "}", "[", "]", ":", ",") and of an EOF
// token is empty. A String token's Text is the content between the quotation
// marks with escape sequences preserved verbatim. An Error token's Text is
// the offending input.
type Token struct {
	Kind Kind
	Text string
	Span Span
}

// Pos returns the starting offset of t in its source input.
func (t Token) Pos() int { return t.Span.Pos }

// String renders t in the one-token-per-line wire form, "<KIND, text>" for
// tokens with text and "<KIND>" otherwise.
func (t Token) String() string {
	if t.Text == "" && t.Kind != String {
		return fmt.Sprintf("<%v>", t.Kind)
	}
	return fmt.Sprintf("<%v, %s>", t.Kind, t.Text)
}
