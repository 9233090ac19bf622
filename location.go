// Copyright (C) 2024 M. J. Gray. All Rights Reserved.

package semtree

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
