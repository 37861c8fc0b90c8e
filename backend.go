package cellshape

import "golang.org/x/image/math/fixed"

// Glyph is one glyph/position/cluster triple produced by a Backend.
type Glyph struct {
	// ID is the glyph index in the shaped face.
	ID GlyphID

	// Cluster is the terminal column of the cluster this glyph belongs
	// to. Several glyphs may share a cluster (base + mark rendered as two
	// glyphs); one glyph may cover several columns (ligature).
	Cluster int

	// XAdvance and YAdvance move the pen to the next glyph, in 26.6
	// fixed-point pixels.
	XAdvance fixed.Int26_6
	YAdvance fixed.Int26_6

	// XOffset and YOffset displace this glyph from the pen position.
	XOffset fixed.Int26_6
	YOffset fixed.Int26_6
}

// Backend performs the low-level shaping transform for one run.
//
// Implementations fall into two classes. Full-shaping backends
// (HarfbuzzBackend) substitute ligatures and merge grapheme clusters
// themselves. Direct-mapping backends (DirectBackend, NoopBackend) cannot;
// they map codepoints to glyphs through the Face, clustering manually
// where needed.
//
// Backends may keep internal scratch buffers and are therefore not safe
// for concurrent use. One backend instance belongs to one Engine.
type Backend interface {
	// FullShaping reports whether the backend performs ligature and
	// cluster substitution itself.
	FullShaping() bool

	// ShapeRun shapes one run. runes is the run's accumulated codepoint
	// stream and clusters the parallel column tags: runes[i] belongs to
	// terminal column clusters[i]. Both slices alias engine-owned buffers
	// and must not be retained. The returned slice is valid until the
	// next ShapeRun call on the same backend.
	ShapeRun(face Face, runes []rune, clusters []int) ([]Glyph, error)
}

// NoopBackend is the minimal passthrough backend: every codepoint maps to
// its own glyph via Face.GlyphIndex, with no ligatures and no cluster
// merging. Combining marks come out as separate glyphs on the same column.
// Useful as a placeholder and in tests; terminals wanting correct emoji
// should use DirectBackend or HarfbuzzBackend.
type NoopBackend struct {
	buf []Glyph
}

// NewNoopBackend creates a NoopBackend.
func NewNoopBackend() *NoopBackend { return &NoopBackend{} }

// FullShaping implements Backend.
func (*NoopBackend) FullShaping() bool { return false }

// ShapeRun implements Backend.
func (b *NoopBackend) ShapeRun(face Face, runes []rune, clusters []int) ([]Glyph, error) {
	b.buf = b.buf[:0]
	for i, r := range runes {
		gid, ok := face.GlyphIndex(r)
		if !ok {
			return nil, ErrMissingGlyph
		}
		b.buf = append(b.buf, Glyph{ID: gid, Cluster: clusters[i]})
	}
	return b.buf, nil
}
