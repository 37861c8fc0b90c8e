package cellshape

import "iter"

// CellView is a read-only view of one terminal cell as exposed by a Row.
type CellView struct {
	// Rune is the cell's primary codepoint. Zero for an empty cell.
	Rune rune

	// Style is the face variant implied by the cell's attributes.
	Style Style

	// HasExtensions reports whether combining codepoints (grapheme
	// extensions) are attached to this cell. The codepoints themselves
	// come from Row.Extensions.
	HasExtensions bool

	// SpacerTail marks the second column of a double-width glyph. Spacer
	// tails never start or break runs and are never shaped on their own;
	// they are covered by the wide glyph's own output cell.
	SpacerTail bool
}

// Empty reports whether the cell has no character.
func (v CellView) Empty() bool { return v.Rune == 0 }

// Row is a read-only view over one terminal line.
//
// The shaping core only consumes this abstraction; the terminal grid that
// backs it (cursor state, scrollback, cell attributes) is out of scope.
// RowBuffer is a self-contained implementation for embedders and tests.
type Row interface {
	// CellCount returns the row width in columns.
	CellCount() int

	// CellAt returns the view of the cell in the given column.
	CellAt(col int) CellView

	// Extensions returns the combining codepoints attached to the cell in
	// the given column, in order. Empty for cells without extensions.
	Extensions(col int) iter.Seq[rune]

	// IsGraphemeBreak reports whether a new grapheme cluster begins at the
	// given column. Selection boundaries only split runs at columns where
	// this is true, so a selection edge can never cut a cluster in half.
	IsGraphemeBreak(col int) bool
}

// Selection is a row-relative range of selected columns, inclusive on both
// ends. Start and End may be given in either order; the run iterator
// normalizes to forward order.
type Selection struct {
	Start int
	End   int
}

// normalized returns the selection with Start <= End.
func (s Selection) normalized() Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}
