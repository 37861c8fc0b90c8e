package cellshape

import "github.com/rivo/uniseg"

// DirectBackend maps grapheme clusters to glyphs without a shaping pass.
//
// It segments the accumulated codepoint stream into extended grapheme
// clusters (UAX #29). Single-codepoint clusters map straight to a glyph
// via Face.GlyphIndex; multi-codepoint clusters (emoji with modifiers, ZWJ
// sequences, combining marks) cannot be rendered glyph-by-glyph without
// real shaping, so the backend requests a synthetic per-cluster glyph
// reservation from the face instead. No ligature substitution happens.
type DirectBackend struct {
	buf []Glyph
}

// NewDirectBackend creates a DirectBackend.
func NewDirectBackend() *DirectBackend { return &DirectBackend{} }

// FullShaping implements Backend.
func (*DirectBackend) FullShaping() bool { return false }

// ShapeRun implements Backend.
func (b *DirectBackend) ShapeRun(face Face, runes []rune, clusters []int) ([]Glyph, error) {
	b.buf = b.buf[:0]

	g := uniseg.NewGraphemes(string(runes))
	i := 0 // index of the current cluster's first rune
	for g.Next() {
		cps := g.Runes()
		if i >= len(clusters) {
			break
		}
		col := clusters[i]

		if len(cps) == 1 {
			gid, ok := face.GlyphIndex(cps[0])
			if !ok {
				return nil, ErrMissingGlyph
			}
			b.buf = append(b.buf, Glyph{ID: gid, Cluster: col})
		} else {
			b.buf = append(b.buf, Glyph{
				ID:      face.GraphemeGlyph(g.Str()),
				Cluster: col,
			})
		}
		i += len(cps)
	}
	return b.buf, nil
}
