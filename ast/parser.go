// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package ast

import (
	"fmt"
	"strings"

	"github.com/mjgray/semtree"
)

// Parse consumes a token sequence and returns the parse tree of the first
// value it encodes, along with every finding recorded on the way. The
// grammar is LL(1); tokens are consumed by a single forward cursor with no
// backtracking.
//
// Parse never fails outright: syntax errors abort only the production they
// occur in, the parser resynchronizes at the next comma or closing delimiter
// where one exists, and unparseable values are replaced by Missing
// placeholders. The returned root is never nil, and the findings are in
// discovery order. Tokens between the first complete value and EOF are
// themselves a syntax error.
func Parse(tokens []semtree.Token) (Node, []Error) {
	p := &parser{tokens: tokens}
	root, ok := p.parseValue()
	if ok {
		if t := p.cur(); t.Kind != semtree.EOF {
			p.errorf(t.Pos(), "trailing input: unexpected %v after value", t.Kind)
		}
	}
	return root, p.errs
}

type parser struct {
	tokens []semtree.Token
	pos    int
	errs   []Error
	check  checker
}

// cur returns the token under the cursor. A missing trailing EOF token is
// synthesized so the grammar can always look ahead.
func (p *parser) cur() semtree.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	var end int
	if n := len(p.tokens); n > 0 {
		end = p.tokens[n-1].Span.End
	}
	return semtree.Token{Kind: semtree.EOF, Span: semtree.Span{Pos: end, End: end}}
}

func (p *parser) advance() { p.pos++ }

// parseValue parses value := object | array | STRING | NUMBER | BOOLEAN |
// NULL. On failure it reports a syntax error, leaves the offending token for
// the caller to resynchronize on, and returns a Missing placeholder.
func (p *parser) parseValue() (Node, bool) {
	tok := p.cur()
	switch tok.Kind {
	case semtree.LBrace:
		return p.parseObject()
	case semtree.LBracket:
		return p.parseArray()
	case semtree.String:
		p.advance()
		return String{datum{span: tok.Span, text: tok.Text}}, true
	case semtree.Number:
		p.advance()
		return Number{datum{span: tok.Span, text: tok.Text}}, true
	case semtree.Boolean:
		p.advance()
		return Bool{datum: datum{span: tok.Span, text: tok.Text}, value: tok.Text == "true"}, true
	case semtree.Null:
		p.advance()
		return Null{datum{span: tok.Span, text: tok.Text}}, true
	case semtree.Error:
		p.errorf(tok.Pos(), "invalid token %q", tok.Text)
	default:
		p.errorf(tok.Pos(), "unexpected %v in value", tok.Kind)
	}
	return &Missing{span: tok.Span}, false
}

// parseObject parses object := LBRACE (pair (COMMA pair)*)? RBRACE.
// Precondition: the cursor is on LBRACE.
func (p *parser) parseObject() (Node, bool) {
	obj := &Object{span: p.cur().Span}
	p.advance()
	p.check.pushObject()
	defer p.check.pop()

	if c := p.cur(); c.Kind == semtree.RBrace {
		p.advance()
		obj.span.End = c.Span.End
		return obj, true
	}
	for {
		if c := p.cur(); c.Kind == semtree.EOF {
			p.errorf(c.Pos(), "unterminated object")
			obj.span.End = c.Span.End
			return obj, false
		}

		pair, ok := p.parsePair()
		if pair != nil {
			obj.Pairs = append(obj.Pairs, pair)
		}
		if !ok {
			p.resync(semtree.RBrace)
		}

		if c := p.cur(); c.Kind != semtree.Comma && c.Kind != semtree.RBrace && c.Kind != semtree.EOF {
			p.errorf(c.Pos(), "%s", kindLabel([]semtree.Kind{semtree.Comma, semtree.RBrace}, c.Kind))
			p.advance()
			p.resync(semtree.RBrace)
		}
		switch c := p.cur(); c.Kind {
		case semtree.Comma:
			p.advance() // continue with the next pair
		case semtree.RBrace:
			p.advance()
			obj.span.End = c.Span.End
			return obj, true
		default: // EOF
			p.errorf(c.Pos(), "unterminated object")
			obj.span.End = c.Span.End
			return obj, false
		}
	}
}

// parsePair parses pair := STRING COLON value. A pair whose key and colon
// were consumed is returned even if its value failed to parse, with a
// Missing placeholder standing in for the value.
func (p *parser) parsePair() (*Pair, bool) {
	key := p.cur()
	if key.Kind != semtree.String {
		p.errorf(key.Pos(), "expected %v for object key, got %v", semtree.String, key.Kind)
		return nil, false
	}
	p.advance()
	p.report(p.check.observeKey(key.Text, key.Pos()))

	if c := p.cur(); c.Kind != semtree.Colon {
		p.errorf(c.Pos(), "expected %v after object key %q, got %v", semtree.Colon, key.Text, c.Kind)
		return nil, false
	}
	p.advance()

	val, ok := p.parseValue()
	return &Pair{
		span:  semtree.Span{Pos: key.Span.Pos, End: val.Span().End},
		Key:   key.Text,
		Value: val,
	}, ok
}

// parseArray parses array := LBRACKET (value (COMMA value)*)? RBRACKET.
// Precondition: the cursor is on LBRACKET.
func (p *parser) parseArray() (Node, bool) {
	arr := &Array{span: p.cur().Span}
	p.advance()
	p.check.pushArray()
	defer p.check.pop()

	if c := p.cur(); c.Kind == semtree.RBracket {
		p.advance()
		arr.span.End = c.Span.End
		return arr, true
	}
	for {
		if c := p.cur(); c.Kind == semtree.EOF {
			p.errorf(c.Pos(), "unterminated array")
			arr.span.End = c.Span.End
			return arr, false
		}

		elem, ok := p.parseValue()
		arr.Values = append(arr.Values, elem)
		p.report(p.check.observeElement(elem, elem.Span().Pos))
		if !ok {
			p.resync(semtree.RBracket)
		}

		if c := p.cur(); c.Kind != semtree.Comma && c.Kind != semtree.RBracket && c.Kind != semtree.EOF {
			p.errorf(c.Pos(), "%s", kindLabel([]semtree.Kind{semtree.Comma, semtree.RBracket}, c.Kind))
			p.advance()
			p.resync(semtree.RBracket)
		}
		switch c := p.cur(); c.Kind {
		case semtree.Comma:
			p.advance() // continue with the next element
		case semtree.RBracket:
			p.advance()
			arr.span.End = c.Span.End
			return arr, true
		default: // EOF
			p.errorf(c.Pos(), "unterminated array")
			arr.span.End = c.Span.End
			return arr, false
		}
	}
}

// resync discards tokens after a failed production until the cursor reaches
// a comma, the given closing delimiter, or EOF, and reports whether a
// resynchronization point was found. The delimiter itself is left for the
// caller.
func (p *parser) resync(close semtree.Kind) bool {
	for {
		switch p.cur().Kind {
		case semtree.Comma, close:
			return true
		case semtree.EOF:
			return false
		}
		p.advance()
	}
}

func (p *parser) errorf(pos int, msg string, args ...any) {
	p.errs = append(p.errs, Error{
		Kind:    SyntaxError,
		Message: fmt.Sprintf(msg, args...),
		Pos:     pos,
	})
}

func (p *parser) report(err *Error) {
	if err != nil {
		p.errs = append(p.errs, *err)
	}
}

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(want []semtree.Kind, got semtree.Kind) string {
	var exp string
	if len(want) == 1 {
		exp = want[0].String()
	} else {
		last := len(want) - 1
		ss := make([]string, last)
		for i, k := range want[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + want[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
