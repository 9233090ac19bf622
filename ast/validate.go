// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/mds/mapset"
)

type scopeKind byte

const (
	objectScope scopeKind = iota
	arrayScope
)

// A scope tracks the validation state of one open object or array
// production: the keys an object has used so far, or the element kind an
// array's first element established.
type scope struct {
	kind scopeKind
	keys mapset.Set[string] // object scopes: keys already observed
	elem NodeKind           // array scopes: established element kind
	seen bool               // array scopes: elem has been established
}

// A checker holds the validation scopes of the composite productions
// currently open during a parse. Frames are pushed and popped in step with
// the parser's recursion, so sibling and nested composites never share
// state.
type checker struct {
	scopes []*scope
}

func (c *checker) pushObject() {
	c.scopes = append(c.scopes, &scope{kind: objectScope, keys: mapset.New[string]()})
}

func (c *checker) pushArray() {
	c.scopes = append(c.scopes, &scope{kind: arrayScope})
}

func (c *checker) pop() { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *checker) top() *scope { return c.scopes[len(c.scopes)-1] }

// observeKey records key as seen in the innermost object scope. It returns
// nil for a new key, or a DuplicateKey finding at pos for a repetition.
// Keys compare by exact string equality, case-sensitive, unnormalized.
func (c *checker) observeKey(key string, pos int) *Error {
	sc := c.top()
	if sc.keys.Has(key) {
		return &Error{
			Kind:    DuplicateKey,
			Message: fmt.Sprintf("duplicate key %q in object", key),
			Pos:     pos,
		}
	}
	sc.keys.Add(key)
	return nil
}

// observeElement checks n against the element kind established by the first
// element of the innermost array scope, returning nil on a match or an
// InconsistentArrayType finding at pos otherwise. Only the top-level kind of
// n is compared; the contents of nested objects and arrays are not
// inspected. Missing placeholders neither establish nor violate the kind.
func (c *checker) observeElement(n Node, pos int) *Error {
	k := n.Kind()
	if k == KindMissing {
		return nil
	}
	sc := c.top()
	if !sc.seen {
		sc.elem = k
		sc.seen = true
		return nil
	}
	if k != sc.elem {
		return &Error{
			Kind:    InconsistentArrayType,
			Message: fmt.Sprintf("inconsistent array element: expected %v, got %v", sc.elem, k),
			Pos:     pos,
		}
	}
	return nil
}
