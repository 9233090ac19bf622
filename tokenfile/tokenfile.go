// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

// Package tokenfile reads and writes the one-token-per-line exchange format
// used to feed pre-lexed input to the parser. Each line encodes one token as
// "<KIND, text>", or "<KIND>" for tokens that carry no text, with KIND drawn
// from the wire names of [semtree.Kind].
package tokenfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mjgray/semtree"
)

// ParseLine decodes a single token line. The token's span is left zero; Read
// assigns line-based spans.
func ParseLine(line string) (semtree.Token, error) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "<") || !strings.HasSuffix(s, ">") {
		return semtree.Token{}, fmt.Errorf("missing angle brackets in %q", line)
	}
	name, text, _ := strings.Cut(s[1:len(s)-1], ", ")
	kind, ok := semtree.ParseKind(name)
	if !ok {
		return semtree.Token{}, fmt.Errorf("unknown token kind %q", name)
	}
	return semtree.Token{Kind: kind, Text: text}, nil
}

// Read decodes tokens from r, one per line. Blank lines and EOF lines are
// skipped; the parser synthesizes its own end-of-input token, so output
// produced by Write round-trips through Read. Each token's span is the
// 0-based index of the line it was decoded from, so downstream findings
// refer back to token-file lines. A malformed line is an error carrying its
// 1-based line number.
func Read(r io.Reader) ([]semtree.Token, error) {
	var tokens []semtree.Token
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tok, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if tok.Kind == semtree.EOF {
			continue
		}
		tok.Span = semtree.Span{Pos: lineno - 1, End: lineno}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return tokens, nil
}

// Write encodes tokens to w, one per line, in the form Read accepts.
func Write(w io.Writer, tokens []semtree.Token) error {
	bw := bufio.NewWriter(w)
	for _, t := range tokens {
		fmt.Fprintln(bw, t)
	}
	return bw.Flush()
}
