package cellshape

import (
	"golang.org/x/image/math/fixed"

	"github.com/zen-xu/cellshape/cache"
)

// ShapeCache is the shape result cache instantiated for shaped cells.
type ShapeCache = cache.Cache[Cell]

// Engine turns terminal rows into positioned glyph cells.
//
// An Engine owns the mutable state the whole pipeline shares: the
// codepoint accumulation buffer filled by its RunIterator and the cell
// output buffer filled by Shape. Because of that sharing, usage is
// strictly sequential: obtain a RunIterator, and for each run it yields,
// call Shape (or ShapeCached) before advancing the iterator. Slices
// returned by Shape alias the output buffer and are only valid until the
// next Shape call.
//
// An Engine is single-threaded. It holds no locks; if the resolver's font
// collection can change concurrently, the caller must hold the resolver's
// read lock across each Next/Shape pair. Use one Engine per rendering
// thread.
type Engine struct {
	resolver FontResolver
	backend  Backend
	cache    *ShapeCache
	maxCells int

	// Run accumulation state, filled by the RunIterator, cleared at the
	// start of every Next call regardless of prior failures.
	runes    []rune
	clusters []int

	// Cell output buffer, reused across Shape calls.
	cells []Cell
}

// New creates an Engine using the given font resolver.
// Without options it shapes through a DirectBackend and memoizes results
// in a cache of cache.DefaultCapacity entries.
func New(resolver FontResolver, opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = NewDirectBackend()
	}
	e := &Engine{
		resolver: resolver,
		backend:  o.backend,
		maxCells: o.maxCells,
	}
	if !o.cacheDisabled {
		e.cache = cache.New[Cell](o.cacheCapacity)
	}
	return e
}

// Backend returns the engine's shaping backend.
func (e *Engine) Backend() Backend { return e.backend }

// Cache returns the shape result cache, or nil if disabled.
func (e *Engine) Cache() *ShapeCache { return e.cache }

// resetRun clears the accumulation buffers for a new run.
func (e *Engine) resetRun() {
	e.runes = e.runes[:0]
	e.clusters = e.clusters[:0]
}

// accumulate feeds one codepoint with its cluster column into the run
// buffers. Called by the RunIterator for every accepted cell.
func (e *Engine) accumulate(r rune, cluster int) {
	e.runes = append(e.runes, r)
	e.clusters = append(e.clusters, cluster)
}

// Shape transforms the current run's accumulated codepoint stream into
// positioned glyph cells.
//
// The produced cell sequence covers every column in
// [run.Offset, run.Offset+run.CellCount) at least once: columns whose
// characters merged into a wider glyph or ligature appear as padding
// cells (HasGlyph false) so background rendering stays per-column.
//
// The returned slice aliases the engine's output buffer and is valid only
// until the next Shape call.
func (e *Engine) Shape(run TextRun) ([]Cell, error) {
	e.cells = e.cells[:0]

	// Nothing accumulated: nothing to shape, skip the backend entirely.
	if len(e.runes) == 0 {
		return e.cells, nil
	}

	if run.Font.Special() {
		return e.shapeSpecial(run)
	}

	face := e.resolver.FaceFor(run.Font)
	glyphs, err := e.backend.ShapeRun(face, e.runes, e.clusters)
	if err != nil {
		return nil, &BackendError{Offset: run.Offset, Err: err}
	}

	if err := e.assemble(run, glyphs); err != nil {
		return nil, err
	}
	return e.cells, nil
}

// shapeSpecial handles sprite fonts: no shaping, each accumulated
// codepoint is its own glyph index at its recorded column.
func (e *Engine) shapeSpecial(run TextRun) ([]Cell, error) {
	for i, r := range e.runes {
		err := e.emit(Cell{
			Column:   e.clusters[i],
			GlyphID:  GlyphID(r),
			HasGlyph: true,
		})
		if err != nil {
			return nil, err
		}
	}
	if err := e.pad(lastColumn(e.cells, run.Offset)+1, run.Offset+run.CellCount); err != nil {
		return nil, err
	}
	return e.cells, nil
}

// assemble converts the backend's glyph stream into the per-column cell
// sequence, inserting padding cells wherever a column's character was
// consumed by a wider glyph.
func (e *Engine) assemble(run TextRun, glyphs []Glyph) error {
	end := run.Offset + run.CellCount
	col := run.Offset

	i := 0
	for i < len(glyphs) {
		c := glyphs[i].Cluster

		// A cluster starting past the expected column means the skipped
		// columns were merged leftward into a glyph we have not reached
		// yet (right-attached ligatures). Backfill them as padding.
		if c > col {
			if err := e.pad(col, c); err != nil {
				return err
			}
			col = c
		}

		// All glyphs of one cluster land on the cluster's column.
		// Within the cluster, each glyph's advance shifts the offset of
		// the glyphs after it.
		var x, y fixed.Int26_6
		for i < len(glyphs) && glyphs[i].Cluster == c {
			g := glyphs[i]
			err := e.emit(Cell{
				Column:   c,
				GlyphID:  g.ID,
				HasGlyph: true,
				XOffset:  x + g.XOffset,
				YOffset:  y + g.YOffset,
			})
			if err != nil {
				return err
			}
			x += g.XAdvance
			y += g.YAdvance
			i++
		}
		if c+1 > col {
			col = c + 1
		}
	}

	// Columns the final glyph consumed (trailing ligature halves, wide
	// glyph spacer columns) become trailing padding.
	return e.pad(col, end)
}

// pad emits null-glyph padding cells for every column in [from, to).
func (e *Engine) pad(from, to int) error {
	for col := from; col < to; col++ {
		if err := e.emit(Cell{Column: col}); err != nil {
			return err
		}
	}
	return nil
}

// emit appends one cell to the output buffer, honoring the fixed capacity
// if one was configured.
func (e *Engine) emit(c Cell) error {
	if e.maxCells > 0 && len(e.cells) >= e.maxCells {
		return ErrBufferCapacity
	}
	e.cells = append(e.cells, c)
	return nil
}

// lastColumn returns the highest column emitted so far, or start-1 if
// nothing was.
func lastColumn(cells []Cell, start int) int {
	if len(cells) == 0 {
		return start - 1
	}
	return cells[len(cells)-1].Column
}

// ShapeCached is Shape with memoization through the shape result cache.
//
// On a hit the cache's owned copy is returned directly (treat it as
// read-only); on a miss the run is shaped and a deep copy of the result
// inserted. With the cache disabled it is exactly Shape.
func (e *Engine) ShapeCached(run TextRun) ([]Cell, error) {
	if e.cache != nil {
		if cells, ok := e.cache.Get(run.ContentHash); ok {
			return cells, nil
		}
	}
	cells, err := e.Shape(run)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.Put(run.ContentHash, cells)
	}
	return cells, nil
}
