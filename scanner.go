// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package semtree

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token. Lexical problems never stop the
// scan; they surface as Error tokens that a parser must reject.
type Scanner struct {
	r    *bufio.Reader
	buf  bytes.Buffer // current token text
	tok  Kind
	err  error
	done bool // the EOF token has been emitted

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input and reports whether a token
// is available. When the input is exhausted, Next emits a single EOF token
// positioned one past the final character, then reports false on subsequent
// calls. Next also reports false if reading the input fails; the caller can
// distinguish exhaustion from failure with Err.
func (s *Scanner) Next() bool {
	if s.done || s.err != nil {
		return false
	}
	s.buf.Reset()
	s.tok = Invalid
	s.pos = s.end

	for {
		ch, err := s.rune()
		if err == io.EOF {
			s.pos = s.end
			s.tok = EOF
			s.done = true
			return true
		} else if err != nil {
			return false
		}

		// Discard whitespace.
		if isSpace(ch) {
			s.pos = s.end
			continue
		}

		// Handle punctuation. Structural tokens carry no text.
		if t, ok := selfDelim(ch); ok {
			s.tok = t
			return true
		}

		// Handle string values.
		if ch == '"' {
			s.scanString()
			return true
		}

		// Handle numbers.
		if isNumStart(ch) {
			s.scanNumber(ch)
			return true
		}

		// Handle constants: true, false, null.
		if isNameRune(ch) {
			s.scanName(ch)
			return true
		}

		// Anything else is reported as an Error token carrying the rune.
		s.buf.WriteRune(ch)
		s.tok = Error
		return true
	}
}

// Kind returns the kind of the current token.
func (s *Scanner) Kind() Kind { return s.tok }

// Text returns the text of the current token.
func (s *Scanner) Text() string { return s.buf.String() }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Token returns a copy of the current token.
func (s *Scanner) Token() Token {
	return Token{Kind: s.tok, Text: s.buf.String(), Span: s.Span()}
}

// Err returns the first read error encountered by Next, if any. Exhaustion
// of the input is not an error.
func (s *Scanner) Err() error { return s.err }

// Tokenize consumes all of r and returns its tokens in order, terminated by
// a single EOF token. Tokenize is total over malformed input: unrecognized
// runes, unknown constants, and unterminated strings become Error tokens.
// String tokens carry the text between the quotation marks with escape
// sequences preserved verbatim; decoding is left to consumers. If reading r
// fails, the tokens scanned so far are returned without a trailing EOF.
func Tokenize(r io.Reader) []Token {
	s := NewScanner(r)
	var tokens []Token
	for s.Next() {
		tokens = append(tokens, s.Token())
	}
	return tokens
}

// scanString scans the remainder of a string whose opening quotation mark
// was already consumed. The token text is the content between the marks with
// escape sequences kept verbatim. A string still open at the end of input
// yields an Error token holding the partial content.
func (s *Scanner) scanString() {
	for {
		ch, err := s.rune()
		if err != nil {
			s.tok = Error
			return
		} else if ch == '"' {
			s.tok = String
			return
		}
		s.buf.WriteRune(ch)
		if ch == '\\' {
			esc, err := s.rune()
			if err != nil {
				s.tok = Error
				return
			}
			s.buf.WriteRune(esc)
		}
	}
}

// scanNumber scans a number: an optional leading sign, digits, an optional
// fraction, and an optional exponent. Scanning stops at the first rune that
// does not extend this shape.
func (s *Scanner) scanNumber(start rune) {
	s.buf.WriteRune(start)
	s.tok = Number

	_, ch, err := s.readWhile(isDigit)
	if err != nil {
		return
	}

	// If a decimal point follows, consume a fractional part.
	if ch == '.' {
		s.buf.WriteRune(ch)
		_, ch, err = s.readWhile(isDigit)
		if err != nil {
			return
		}
	}

	// If an exponent follows, consume it.
	if ch != 'e' && ch != 'E' {
		s.unrune()
		return
	}
	s.buf.WriteRune(ch)

	ch, err = s.rune()
	if err != nil {
		return
	}
	if ch == '-' || ch == '+' {
		s.buf.WriteRune(ch)
	} else {
		s.unrune()
	}
	if _, _, err := s.readWhile(isDigit); err != nil {
		return
	}
	s.unrune()
}

// scanName scans an identifier-like sequence and classifies it as one of the
// constants true, false, or null. Any other name is an Error token.
func (s *Scanner) scanName(first rune) {
	s.buf.WriteRune(first)
	if _, _, err := s.readWhile(isNameRune); err == nil {
		s.unrune()
	}

	got := mem.B(s.buf.Bytes())
	switch {
	case got.Equal(mem.S("true")), got.Equal(mem.S("false")):
		s.tok = Boolean
	case got.Equal(mem.S("null")):
		s.tok = Null
	default:
		s.tok = Error
	}
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	if err != nil && err != io.EOF {
		s.err = err
	}
	s.last = nb
	s.end += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// readWhile consumes runes matching f from the input until EOF or until a
// rune not matching f is found. The first non-matching rune (if any) is
// returned; it is the caller's responsibility to unread it, if desired.
// The int reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err != nil {
			return nr, 0, err
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isNameRune(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

var self = [...]Kind{LBrace, RBrace, LBracket, RBracket, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
