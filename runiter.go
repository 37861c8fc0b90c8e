package cellshape

import (
	"github.com/zen-xu/cellshape/emoji"
)

// replacementRune is substituted for a cluster no single face can render.
const replacementRune rune = 0xFFFD

// RunOption configures one row's run iteration.
type RunOption func(*runOptions)

// runOptions holds optional per-row iteration state.
type runOptions struct {
	sel    Selection
	hasSel bool
	cursor int
}

// defaultRunOptions returns the default run options.
func defaultRunOptions() runOptions {
	return runOptions{cursor: -1}
}

// WithSelection marks a selected column range, inclusive on both ends and
// accepted in either order. Runs split exactly at the selection's start
// column and one past its end column, but only where the row reports a
// grapheme boundary, so a selection edge never cuts a cluster.
func WithSelection(start, end int) RunOption {
	return func(o *runOptions) {
		o.sel = Selection{Start: start, End: end}.normalized()
		o.hasSel = true
	}
}

// WithCursor marks the cursor column. The cursor's cell is isolated into
// its own run so it can be restyled without reshaping neighbors — unless
// the cell carries grapheme extensions, in which case no break is forced
// and a modified emoji under the cursor stays whole.
func WithCursor(col int) RunOption {
	return func(o *runOptions) {
		o.cursor = col
	}
}

// RunIterator walks one row left to right, yielding maximal runs of cells
// that share a resolved font, split at style changes, font fallback
// boundaries, selection edges, and the cursor.
//
// The iterator writes into its engine's shared accumulation buffers:
// shape each run before calling Next again, and never interleave two
// iterations on one engine.
type RunIterator struct {
	eng *Engine
	row Row

	sel    Selection
	hasSel bool

	// cursorBreak is the column runs must split around for the cursor,
	// or -1 when no break applies.
	cursorBreak int

	col   int
	limit int
}

// RunIterator starts iterating the given row.
//
// Trailing empty cells are excluded up front: a run never extends into
// pure trailing emptiness, and an all-empty row yields no runs at all.
func (e *Engine) RunIterator(row Row, opts ...RunOption) *RunIterator {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	limit := row.CellCount()
	for limit > 0 {
		v := row.CellAt(limit - 1)
		if !v.Empty() || v.SpacerTail {
			break
		}
		limit--
	}

	cursorBreak := -1
	if o.cursor >= 0 && o.cursor < limit && !row.CellAt(o.cursor).HasExtensions {
		cursorBreak = o.cursor
	}

	return &RunIterator{
		eng:         e,
		row:         row,
		sel:         o.sel,
		hasSel:      o.hasSel,
		cursorBreak: cursorBreak,
		limit:       limit,
	}
}

// Next yields the next run, or false once the row's trimmed content is
// consumed. The returned run references engine state and is valid only
// until the following Next call.
func (it *RunIterator) Next() (TextRun, bool) {
	// Buffers are cleared unconditionally so a failed Shape on the
	// previous run cannot leak into this one.
	it.eng.resetRun()

	var (
		runFont  FontIndex
		runStyle Style
		haveFont bool
		runStart int
		hash     = newContentHash()
	)

	for it.col < it.limit {
		col := it.col
		view := it.row.CellAt(col)

		// The second column of a wide glyph: covered by the wide
		// glyph's own output, consumed without shaping.
		if view.SpacerTail {
			it.col++
			continue
		}

		if haveFont {
			if view.Style != runStyle {
				break
			}
			// Cursor isolation: end the run when reaching the cursor
			// cell, and again at the first cell past it. The comparisons
			// are crossings rather than equalities because the column
			// right after the cursor may be a spacer tail that never
			// reaches this check.
			if it.cursorBreak >= 0 {
				if col == it.cursorBreak {
					break
				}
				if runStart <= it.cursorBreak && col > it.cursorBreak {
					break
				}
			}
			// Selection edges split runs, but only at grapheme
			// boundaries; an edge inside a cluster defers to the next
			// cluster start.
			if it.hasSel && it.row.IsGraphemeBreak(col) {
				if runStart < it.sel.Start && col >= it.sel.Start {
					break
				}
				if runStart <= it.sel.End && col > it.sel.End {
					break
				}
			}
		}

		pres := it.presentation(view, col)
		font, fallback := it.resolveCell(view, col, pres)

		if haveFont && font != runFont {
			break
		}
		if !haveFont {
			runFont = font
			runStyle = view.Style
			runStart = col
			haveFont = true
		}

		if fallback != 0 {
			it.eng.accumulate(fallback, col)
			hash = hash.addRune(fallback, col)
		} else {
			cp := view.Rune
			if cp == 0 {
				cp = ' '
			}
			it.eng.accumulate(cp, col)
			hash = hash.addRune(cp, col)
			for ext := range it.row.Extensions(col) {
				if emoji.IsVariationSelector(ext) {
					continue
				}
				it.eng.accumulate(ext, col)
				hash = hash.addRune(ext, col)
			}
		}
		it.col++
	}

	if !haveFont {
		return TextRun{}, false
	}

	hash = hash.addFont(runFont)
	return TextRun{
		Offset:      runStart,
		CellCount:   it.col - runStart,
		Font:        runFont,
		ContentHash: uint64(hash),
	}, true
}

// presentation returns the presentation forced by a variation selector
// immediately following the cell's primary codepoint, if any.
func (it *RunIterator) presentation(view CellView, col int) Presentation {
	if !view.HasExtensions {
		return PresentationDefault
	}
	for ext := range it.row.Extensions(col) {
		if ext == emoji.VS15 {
			return PresentationText
		}
		if ext == emoji.VS16 {
			return PresentationEmoji
		}
		break
	}
	return PresentationDefault
}

// resolveCell resolves a font index covering the cell's full grapheme
// cluster. When no single face covers the whole cluster, the cluster is
// replaced wholesale: first with U+FFFD, then with U+0020. The second
// return is the substituted codepoint, or 0 when the cluster resolved
// as-is.
//
// A collection resolving neither U+FFFD nor U+0020 violates the
// FontResolver contract; that case panics rather than erroring, as no row
// can ever shape against such a collection.
func (it *RunIterator) resolveCell(view CellView, col int, pres Presentation) (FontIndex, rune) {
	if ix, ok := it.resolveCluster(view, col, pres); ok {
		return ix, 0
	}

	if ix, ok := it.eng.resolver.Resolve(replacementRune, view.Style, PresentationDefault); ok {
		logger().Debug("cellshape: cluster fell back to replacement character",
			"column", col, "codepoint", view.Rune)
		return ix, replacementRune
	}
	if ix, ok := it.eng.resolver.Resolve(' ', view.Style, PresentationDefault); ok {
		return ix, ' '
	}

	panic("cellshape: font collection covers neither U+FFFD nor U+0020; FontResolver contract violated")
}

// resolveCluster finds a single face supporting the primary codepoint and
// every extension codepoint of the cell. Variation selectors are never
// sent to resolution; they only steer it through the presentation hint.
// Partial coverage is rejected: a cluster is never split across faces.
func (it *RunIterator) resolveCluster(view CellView, col int, pres Presentation) (FontIndex, bool) {
	cp := view.Rune
	if cp == 0 {
		cp = ' '
	}
	ix, ok := it.eng.resolver.Resolve(cp, view.Style, pres)
	if !ok {
		return FontIndex{}, false
	}
	if view.HasExtensions {
		for ext := range it.row.Extensions(col) {
			if emoji.IsVariationSelector(ext) {
				continue
			}
			if !it.eng.resolver.SupportsCodepoint(ix, ext, pres) {
				return FontIndex{}, false
			}
		}
	}
	return ix, true
}
