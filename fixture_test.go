package cellshape

import "github.com/zen-xu/cellshape/emoji"

// fakeGlyphBias keeps fake glyph ids visibly distinct from raw codepoints
// so sprite-font assertions cannot pass by accident.
const fakeGlyphBias GlyphID = 0x1000

// fakeFace is a Face with deterministic glyph ids: the glyph for a
// codepoint is the codepoint plus fakeGlyphBias.
type fakeFace struct {
	missing   map[rune]bool
	graphemes map[string]GlyphID
}

func (f *fakeFace) GlyphIndex(r rune) (GlyphID, bool) {
	if f.missing[r] {
		return 0, false
	}
	return GlyphID(r) + fakeGlyphBias, true
}

func (f *fakeFace) GraphemeGlyph(cluster string) GlyphID {
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

// fakeFont pairs a face with its coverage predicate.
type fakeFont struct {
	face   *fakeFace
	covers func(r rune, pres Presentation) bool
}

// fakeResolver resolves against an ordered collection of fake fonts,
// optionally routing some codepoints to a sprite font first.
type fakeResolver struct {
	fonts  []fakeFont
	sprite func(r rune) SpriteKind
}

func (rv *fakeResolver) Resolve(r rune, style Style, pres Presentation) (FontIndex, bool) {
	if rv.sprite != nil {
		if k := rv.sprite(r); k != SpriteNone {
			return FontIndex{Sprite: k}, true
		}
	}
	for i, f := range rv.fonts {
		if f.covers(r, pres) {
			return FontIndex{Face: FaceID(i)}, true
		}
	}
	return FontIndex{}, false
}

func (rv *fakeResolver) SupportsCodepoint(ix FontIndex, r rune, pres Presentation) bool {
	if ix.Special() {
		return true
	}
	return rv.fonts[ix.Face].covers(r, pres)
}

func (rv *fakeResolver) FaceFor(ix FontIndex) Face {
	return rv.fonts[ix.Face].face
}

// coversText is the base text font: BMP codepoints that do not default to
// emoji presentation, refused under a forced emoji presentation.
func coversText(r rune, pres Presentation) bool {
	return pres != PresentationEmoji && r <= 0xFFFF && !emoji.DefaultEmojiPresentation(r)
}

// coversEmoji is the emoji fallback font: emoji-default codepoints,
// sequence components, and anything forced to emoji presentation.
func coversEmoji(r rune, pres Presentation) bool {
	if pres == PresentationText {
		return false
	}
	return emoji.DefaultEmojiPresentation(r) || pres == PresentationEmoji || emoji.IsComponent(r)
}

// newTestResolver builds a two-font collection: face 0 is the base text
// font, face 1 the emoji font behind it.
func newTestResolver() *fakeResolver {
	return &fakeResolver{fonts: []fakeFont{
		{face: &fakeFace{}, covers: coversText},
		{face: &fakeFace{}, covers: coversEmoji},
	}}
}

// collectRuns drains a run iterator. Only the run metadata survives;
// tests that inspect accumulated codepoints must do so inside their own
// loop before advancing.
func collectRuns(it *RunIterator) []TextRun {
	var runs []TextRun
	for {
		run, ok := it.Next()
		if !ok {
			return runs
		}
		runs = append(runs, run)
	}
}

// stubBackend is a scriptable Backend for engine tests.
type stubBackend struct {
	full  bool
	calls int
	fn    func(face Face, runes []rune, clusters []int) ([]Glyph, error)
}

func (b *stubBackend) FullShaping() bool { return b.full }

func (b *stubBackend) ShapeRun(face Face, runes []rune, clusters []int) ([]Glyph, error) {
	b.calls++
	return b.fn(face, runes, clusters)
}
