package cellshape

import "golang.org/x/image/math/fixed"

// TextRun is a maximal span of cells on one terminal row that share a
// single resolved font. It is the unit of work handed to a shaping
// backend.
//
// A TextRun is only valid until the next RunIterator.Next call on the same
// engine: it references the engine's shared accumulation buffers. Shape it
// before advancing the iterator; do not persist it.
type TextRun struct {
	// Offset is the starting column of the run.
	Offset int

	// CellCount is the span width in columns, including the spacer-tail
	// columns of wide glyphs. Always >= 1 for a yielded run.
	CellCount int

	// Font is the resolved font index shared by every cell in the run.
	Font FontIndex

	// ContentHash is a stable 64-bit hash of the run's codepoints, their
	// cluster columns, and the font index. It is the shape-cache key:
	// every input that affects shaping output is folded in.
	ContentHash uint64
}

// Cell is one positioned glyph reference in shaped output.
type Cell struct {
	// Column is the terminal column this glyph's cluster starts at. Not
	// necessarily contiguous with its neighbors: a ligature's constituent
	// columns appear as padding cells after (or before) the glyph cell.
	Column int

	// GlyphID is the glyph to render. Meaningless when HasGlyph is false.
	GlyphID GlyphID

	// HasGlyph distinguishes real glyph cells from padding cells. A
	// padding cell (HasGlyph false) covers a column whose character was
	// consumed by a wider glyph or ligature; it renders no foreground but
	// keeps the column's background continuous.
	HasGlyph bool

	// XOffset and YOffset are sub-cell offsets relative to the cell's
	// natural origin, in 26.6 fixed-point pixels. Nonzero for glyphs in
	// multi-glyph clusters whose visual origin does not align with the
	// column grid.
	XOffset fixed.Int26_6
	YOffset fixed.Int26_6
}
