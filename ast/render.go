// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package ast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// A Formatter carries the settings for rendering parse trees. A zero value
// is ready for use with default settings.
type Formatter struct{}

func (f Formatter) indent() string { return "  " }

// Format renders an indented representation of n to w with default settings.
func Format(w io.Writer, n Node) error {
	var f Formatter
	return f.Format(w, n)
}

// FormatToString formats n to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(n Node) string {
	var buf bytes.Buffer
	if Format(&buf, n) != nil {
		return ""
	}
	return buf.String()
}

// Format renders an indented, line-oriented representation of n to w. Each
// node occupies one line; each level of nesting indents by one unit. Object
// pairs render as `Pair "key":` followed by their value, array elements each
// render on their own line, and leaves render their literal token text, with
// string escape sequences kept verbatim so every node stays on one line
// (String.Unescape decodes them). Rendering is deterministic (children keep
// insertion order) and total over trees holding Missing placeholders from
// partial parses.
func (f Formatter) Format(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	f.formatNode(bw, n, "")
	return bw.Flush()
}

func (f Formatter) formatNode(w *bufio.Writer, n Node, indent string) {
	switch t := n.(type) {
	case *Object:
		fmt.Fprintf(w, "%sObject:\n", indent)
		for _, pr := range t.Pairs {
			f.formatNode(w, pr, indent+f.indent())
		}
	case *Array:
		fmt.Fprintf(w, "%sArray:\n", indent)
		for _, v := range t.Values {
			f.formatNode(w, v, indent+f.indent())
		}
	case *Pair:
		fmt.Fprintf(w, "%sPair \"%s\":\n", indent, t.Key)
		f.formatNode(w, t.Value, indent+f.indent())
	case String:
		fmt.Fprintf(w, "%sString: \"%s\"\n", indent, t.Text())
	case Number:
		fmt.Fprintf(w, "%sNumber: %s\n", indent, t.Text())
	case Bool:
		fmt.Fprintf(w, "%sBoolean: %s\n", indent, t.Text())
	case Null:
		fmt.Fprintf(w, "%sNull\n", indent)
	case *Missing:
		fmt.Fprintf(w, "%sMissing\n", indent)
	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}
