// Package cellshape converts rows of terminal cells into positioned
// glyph references, handling ligatures, multi-codepoint grapheme clusters
// (emoji modifiers, ZWJ sequences, combining marks), variation selectors,
// and font fallback across a prioritized collection.
//
// The pipeline has three stages:
//
//   - RunIterator: walks a row left to right, grouping cells into maximal
//     runs that share one resolved font, splitting at style changes, font
//     fallback boundaries, selection edges, and the cursor column.
//   - Engine.Shape: hands one run to a pluggable Backend and turns the
//     glyph stream back into per-column cells, padding the columns that
//     ligatures and wide glyphs consumed so backgrounds stay contiguous.
//   - cache.Cache: replays shaped output for runs whose content hash
//     repeats across frames, which for a mostly static screen is nearly
//     all of them.
//
// # Example usage
//
//	eng := cellshape.New(resolver,
//	    cellshape.WithBackend(cellshape.NewHarfbuzzBackend()),
//	)
//
//	row := cellshape.NewRowBuffer(80)
//	row.SetString("== hello 👋🏽 ==")
//
//	it := eng.RunIterator(row, cellshape.WithCursor(cursorCol))
//	for run, ok := it.Next(); ok; run, ok = it.Next() {
//	    cells, err := eng.ShapeCached(run)
//	    if err != nil {
//	        return err
//	    }
//	    draw(run, cells)
//	}
//
// # Backends
//
// Shaping itself is pluggable through the Backend interface:
//
//   - HarfbuzzBackend: full shaping via go-text/typesetting — ligature
//     substitution, kerning, cluster merging.
//   - DirectBackend: no shaping; grapheme clusters are segmented manually
//     and multi-codepoint clusters map to synthetic per-cluster glyphs.
//     The default.
//   - NoopBackend: strict codepoint-to-glyph passthrough.
//
// Sprite fonts (box drawing, powerline glyphs) bypass the backend
// entirely: their codepoints are their glyph indices.
//
// # Threading
//
// One Engine serves one rendering thread. Run iteration and shaping share
// the engine's buffers, so each run must be shaped before the iterator
// advances. Writing direction is always left to right; RTL layout is not
// supported.
package cellshape
