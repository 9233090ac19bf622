// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

// Package ast defines a parse tree for the semtree notation, a validating
// parser that constructs trees from token sequences, and a renderer for the
// indented textual form of a tree.
package ast

import (
	"strconv"

	"go4.org/mem"

	"github.com/mjgray/semtree"
	"github.com/mjgray/semtree/internal/escape"
)

// A NodeKind identifies the grammar production a node represents.
type NodeKind byte

// Constants defining the valid NodeKind values.
const (
	KindMissing NodeKind = iota // placeholder for an unparseable value
	KindObject
	KindArray
	KindPair
	KindString
	KindNumber
	KindBool
	KindNull
)

var nodeKindStr = [...]string{
	KindMissing: "Missing",
	KindObject:  "Object",
	KindArray:   "Array",
	KindPair:    "Pair",
	KindString:  "String",
	KindNumber:  "Number",
	KindBool:    "Boolean",
	KindNull:    "Null",
}

func (k NodeKind) String() string {
	v := int(k)
	if v >= len(nodeKindStr) {
		return nodeKindStr[KindMissing]
	}
	return nodeKindStr[v]
}

// A Node is one node of a parse tree. Nodes form a strict tree: each node
// exclusively owns its children, and a tree is never modified once the
// parser returns it.
type Node interface {
	Kind() NodeKind
	Span() semtree.Span
}

// A Datum is a Node with a text representation.
type Datum interface {
	Node
	Text() string
}

// An Object is a collection of key-value pairs. Duplicate keys are retained
// in insertion order; the parser flags them but does not drop them.
type Object struct {
	span  semtree.Span
	Pairs []*Pair
}

// Kind satisfies the Node interface.
func (o *Object) Kind() NodeKind { return KindObject }

// Span satisfies the Node interface.
func (o *Object) Span() semtree.Span { return o.span }

// Find returns the first pair of o with the given key, or nil.
func (o *Object) Find(key string) *Pair {
	for _, p := range o.Pairs {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// A Pair is a single key-value pair belonging to an Object.
type Pair struct {
	span semtree.Span

	Key   string
	Value Node
}

// Kind satisfies the Node interface.
func (p *Pair) Kind() NodeKind { return KindPair }

// Span satisfies the Node interface.
func (p *Pair) Span() semtree.Span { return p.span }

// An Array is a sequence of values.
type Array struct {
	span   semtree.Span
	Values []Node
}

// Kind satisfies the Node interface.
func (a *Array) Kind() NodeKind { return KindArray }

// Span satisfies the Node interface.
func (a *Array) Span() semtree.Span { return a.span }

// A Missing node stands in for a value the parser could not recover from
// the input. It keeps the tree complete so that rendering a partial parse
// never fails.
type Missing struct {
	span semtree.Span
}

// Kind satisfies the Node interface.
func (m *Missing) Kind() NodeKind { return KindMissing }

// Span satisfies the Node interface.
func (m *Missing) Span() semtree.Span { return m.span }

type datum struct {
	span semtree.Span
	text string
}

// Span satisfies the Node interface.
func (d datum) Span() semtree.Span { return d.span }

// Text satisfies the Datum interface.
func (d datum) Text() string { return d.text }

// A String is a string value. Its text is the token text, with escape
// sequences still encoded.
type String struct{ datum }

// Kind satisfies the Node interface.
func (String) Kind() NodeKind { return KindString }

// Unescape returns the decoded value of s. Text whose escape sequences
// cannot be decoded is returned verbatim.
func (s String) Unescape() string {
	dec, err := escape.Unquote(mem.S(s.text))
	if err != nil {
		return s.text
	}
	return string(dec)
}

// A Number is a numeric value.
type Number struct{ datum }

// Kind satisfies the Node interface.
func (Number) Kind() NodeKind { return KindNumber }

// Float64 returns the value of n as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(n.text, 64)
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	value bool
}

// Kind satisfies the Node interface.
func (Bool) Kind() NodeKind { return KindBool }

// Value returns the truth value of b.
func (b Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct{ datum }

// Kind satisfies the Node interface.
func (Null) Kind() NodeKind { return KindNull }
