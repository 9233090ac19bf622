// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package ast

import "fmt"

// An ErrKind classifies a finding recorded during parsing.
type ErrKind byte

// Constants defining the valid ErrKind values.
const (
	SyntaxError           ErrKind = iota // token sequence violates the grammar
	DuplicateKey                         // repeated key within one object
	InconsistentArrayType                // array element of a differing kind
)

var errKindStr = [...]string{
	SyntaxError:           "syntax error",
	DuplicateKey:          "duplicate key",
	InconsistentArrayType: "inconsistent array type",
}

func (k ErrKind) String() string {
	v := int(k)
	if v >= len(errKindStr) {
		return "unknown error"
	}
	return errKindStr[v]
}

// An Error is a single finding recorded while parsing a token sequence.
// Findings are data, not control flow: the parser accumulates them in
// discovery order and keeps going, so every parse returns a tree along with
// the complete list of findings.
type Error struct {
	Kind    ErrKind
	Message string
	Pos     int // offset of the finding in the source input
}

// Error satisfies the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%v: %s (offset %d)", e.Kind, e.Message, e.Pos)
}
