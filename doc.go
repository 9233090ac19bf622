// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

// Package semtree implements a lexical scanner for a JSON-like notation.
//
// # Scanning
//
// The Scanner type splits a character stream into classified tokens.
// Construct a scanner from an io.Reader and call its Next method to iterate
// over the stream:
//
//	s := semtree.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Scanning is total: malformed input is reported as Error tokens rather than
// failures, so every input produces a finite token sequence terminated by a
// single EOF token. The eager form of the same operation is Tokenize:
//
//	tokens := semtree.Tokenize(input)
//
// # Parsing and validation
//
// The ast subpackage consumes a token sequence and builds a parse tree,
// checking objects for duplicate keys and arrays for elements of uniform
// kind. Findings are accumulated as data alongside the tree; parsing never
// aborts on malformed input. See the ast package documentation.
//
// # Token files
//
// The tokenfile subpackage reads and writes the one-token-per-line exchange
// format ("<KIND, text>") used to feed pre-lexed inputs to the parser.
package semtree
