package cellshape

import (
	"iter"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/zen-xu/cellshape/emoji"
)

// bufCell is one cell of a RowBuffer.
type bufCell struct {
	r            rune
	style        Style
	ext          []rune
	spacerTail   bool
	clusterStart bool
}

// RowBuffer is a self-contained Row implementation.
//
// It is a convenience for embedders that do not bring their own terminal
// grid, and the fixture the package tests are built on. Strings are laid
// out with Unicode-correct grapheme segmentation and wide-character
// handling: double-width clusters occupy two columns, the second marked as
// a spacer tail.
type RowBuffer struct {
	cells []bufCell
}

// NewRowBuffer creates an empty row of the given width in columns.
func NewRowBuffer(width int) *RowBuffer {
	return &RowBuffer{cells: make([]bufCell, width)}
}

// CellCount implements Row.
func (b *RowBuffer) CellCount() int { return len(b.cells) }

// CellAt implements Row.
func (b *RowBuffer) CellAt(col int) CellView {
	if col < 0 || col >= len(b.cells) {
		return CellView{}
	}
	c := b.cells[col]
	return CellView{
		Rune:          c.r,
		Style:         c.style,
		HasExtensions: len(c.ext) > 0,
		SpacerTail:    c.spacerTail,
	}
}

// Extensions implements Row.
func (b *RowBuffer) Extensions(col int) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if col < 0 || col >= len(b.cells) {
			return
		}
		for _, cp := range b.cells[col].ext {
			if !yield(cp) {
				return
			}
		}
	}
}

// IsGraphemeBreak implements Row.
func (b *RowBuffer) IsGraphemeBreak(col int) bool {
	if col <= 0 || col >= len(b.cells) {
		return true
	}
	c := b.cells[col]
	if c.spacerTail {
		return false
	}
	return c.clusterStart || c.r == 0
}

// Clear empties every cell, keeping the row width.
func (b *RowBuffer) Clear() {
	clear(b.cells)
}

// SetCell places a single-codepoint cluster in the given column.
func (b *RowBuffer) SetCell(col int, r rune, style Style) {
	b.SetCluster(col, style, r)
}

// SetCluster places one grapheme cluster in the given column. The first
// codepoint is the cell's primary; the rest become grapheme extensions
// (combining marks, variation selectors, ZWJ sequence parts). A
// double-width cluster also claims the following column as a spacer tail.
func (b *RowBuffer) SetCluster(col int, style Style, cps ...rune) {
	if col < 0 || col >= len(b.cells) || len(cps) == 0 {
		return
	}
	var ext []rune
	if len(cps) > 1 {
		ext = append(ext, cps[1:]...)
	}
	b.cells[col] = bufCell{
		r:            cps[0],
		style:        style,
		ext:          ext,
		clusterStart: true,
	}
	if clusterWidth(cps) == 2 && col+1 < len(b.cells) {
		b.cells[col+1] = bufCell{style: style, spacerTail: true}
	}
}

// SetString lays out s from column 0 in the regular style.
func (b *RowBuffer) SetString(s string) {
	b.SetStringAt(0, s, StyleRegular)
}

// SetStringAt lays out s starting at the given column. Each grapheme
// cluster occupies one column (two for wide clusters). Layout stops when
// the row is full; the remainder of s is dropped.
func (b *RowBuffer) SetStringAt(col int, s string, style Style) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if col >= len(b.cells) {
			return
		}
		cps := g.Runes()
		b.SetCluster(col, style, cps...)
		col += clusterWidth(cps)
	}
}

// clusterWidth returns the column width of a grapheme cluster, 1 or 2.
// An emoji presentation selector promotes the cluster to wide even when
// the base codepoint is narrow on its own.
func clusterWidth(cps []rune) int {
	w := runewidth.StringWidth(string(cps))
	for _, cp := range cps {
		if cp == emoji.VS16 {
			w = 2
			break
		}
	}
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}
