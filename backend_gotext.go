package cellshape

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// graphemeGlyphBase is the first synthetic glyph index handed out by
// GoTextFace.GraphemeGlyph. The range sits far above any real glyph id
// (fonts top out at 65535 glyphs) so renderers can tell the two apart.
const graphemeGlyphBase GlyphID = 1 << 20

// GoTextFace wraps a go-text/typesetting face for use with cellshape
// backends. It is the concrete Face type HarfbuzzBackend shapes with, and
// it also serves DirectBackend through nominal glyph lookup.
//
// GoTextFace is not safe for concurrent use: the underlying font.Face
// carries mutable glyph caches, and the grapheme reservation table is
// unguarded. One GoTextFace belongs to one shaping thread.
type GoTextFace struct {
	face *font.Face
	size fixed.Int26_6

	// graphemes maps a cluster's UTF-8 encoding to its reserved
	// synthetic glyph index.
	graphemes map[string]GlyphID
}

// NewGoTextFace wraps an already-parsed typesetting face at the given
// pixel size.
func NewGoTextFace(face *font.Face, sizePx float64) *GoTextFace {
	return &GoTextFace{
		face: face,
		size: floatToFixed(sizePx),
	}
}

// ParseGoTextFace parses raw TTF/OTF data and wraps it at the given pixel
// size. Parsing is delegated entirely to go-text/typesetting.
func ParseGoTextFace(data []byte, sizePx float64) (*GoTextFace, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cellshape: parsing font: %w", err)
	}
	return NewGoTextFace(face, sizePx), nil
}

// Face returns the wrapped typesetting face.
func (f *GoTextFace) Face() *font.Face { return f.face }

// GlyphIndex implements Face.
func (f *GoTextFace) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := f.face.NominalGlyph(r)
	return GlyphID(gid), ok
}

// GraphemeGlyph implements Face. Reservations are per-face and stable for
// the face's lifetime.
func (f *GoTextFace) GraphemeGlyph(cluster string) GlyphID {
	if gid, ok := f.graphemes[cluster]; ok {
		return gid
	}
	if f.graphemes == nil {
		f.graphemes = make(map[string]GlyphID)
	}
	gid := graphemeGlyphBase + GlyphID(len(f.graphemes))
	f.graphemes[cluster] = gid
	return gid
}

// HarfbuzzBackend is the full-shaping backend, built on
// go-text/typesetting's HarfBuzz implementation. It performs ligature
// substitution, kerning, and grapheme cluster merging; the engine turns the
// resulting glyph stream back into per-column cells.
//
// Text direction is forced left-to-right: terminals address cells by
// column and this package does not attempt RTL layout.
//
// HarfbuzzBackend keeps internal scratch state and is not safe for
// concurrent use.
type HarfbuzzBackend struct {
	shaper   shaping.HarfbuzzShaper
	features []shaping.FontFeature
	buf      []Glyph
}

// NewHarfbuzzBackend creates a HarfbuzzBackend with the given OpenType
// feature settings applied to every run, e.g. Feature{"liga", 0} to
// disable standard ligatures.
func NewHarfbuzzBackend(features ...Feature) *HarfbuzzBackend {
	b := &HarfbuzzBackend{}
	for _, ft := range features {
		b.features = append(b.features, shaping.FontFeature{
			Tag:   ot.MustNewTag(ft.Tag),
			Value: ft.Value,
		})
	}
	return b
}

// FullShaping implements Backend.
func (*HarfbuzzBackend) FullShaping() bool { return true }

// ShapeRun implements Backend. The face must be a *GoTextFace.
func (b *HarfbuzzBackend) ShapeRun(face Face, runes []rune, clusters []int) ([]Glyph, error) {
	gtf, ok := face.(*GoTextFace)
	if !ok {
		return nil, fmt.Errorf("%w: HarfbuzzBackend needs a *GoTextFace, got %T", ErrFaceUnsupported, face)
	}

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    di.DirectionLTR,
		Face:         gtf.face,
		Size:         gtf.size,
		Script:       detectScript(runes),
		Language:     language.NewLanguage("en"),
		FontFeatures: b.features,
	}
	out := b.shaper.Shape(input)

	b.buf = b.buf[:0]
	for _, g := range out.Glyphs {
		idx := g.TextIndex()
		if idx < 0 || idx >= len(clusters) {
			return nil, fmt.Errorf("%w: glyph cluster %d outside run of %d codepoints",
				ErrShapingFailed, idx, len(clusters))
		}
		b.buf = append(b.buf, Glyph{
			ID:       GlyphID(g.GlyphID),
			Cluster:  clusters[idx],
			XAdvance: g.XAdvance,
			YAdvance: g.YAdvance,
			XOffset:  g.XOffset,
			YOffset:  g.YOffset,
		})
	}
	return b.buf, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Terminal runs are already split by font, which in
// practice also splits by script; this heuristic covers the rest.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
