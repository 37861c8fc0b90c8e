package cellshape

// GlyphID is a glyph index within a font face.
type GlyphID uint32

// FaceID is an opaque handle into a resolver's prioritized face collection.
type FaceID uint16

// SpriteKind identifies a synthetic sprite font: a non-file-backed glyph
// source where the codepoint itself is the glyph index and no shaping is
// performed.
type SpriteKind uint8

const (
	// SpriteNone means the font is a regular, file-backed face.
	SpriteNone SpriteKind = iota

	// SpriteBox is the box-drawing and block-element sprite set.
	SpriteBox

	// SpritePowerline is the powerline triangle/arc sprite set.
	SpritePowerline
)

// spriteKindNames maps SpriteKind to string names.
var spriteKindNames = [...]string{
	SpriteNone:      "None",
	SpriteBox:       "Box",
	SpritePowerline: "Powerline",
}

// String returns the string name of the sprite kind.
func (k SpriteKind) String() string {
	if int(k) < len(spriteKindNames) {
		return spriteKindNames[k]
	}
	return unknownStr
}

// FontIndex identifies the face chosen to render a run.
//
// A FontIndex is either a resolved face (Sprite == SpriteNone, Face is the
// handle into the collection) or a synthetic sprite font (Sprite !=
// SpriteNone). Sprite runs skip shaping entirely: each codepoint maps 1:1
// to a glyph index equal to the codepoint.
//
// FontIndex is comparable; run segmentation breaks whenever it changes.
type FontIndex struct {
	// Sprite tags synthetic sprite fonts. SpriteNone for real faces.
	Sprite SpriteKind

	// Face is the handle into the resolver's face collection.
	// Meaningless when Sprite != SpriteNone.
	Face FaceID
}

// Special reports whether the index refers to a synthetic sprite font.
func (ix FontIndex) Special() bool {
	return ix.Sprite != SpriteNone
}

// Face provides glyph lookup for one loaded font face.
//
// Direct-mapping backends use it to turn codepoints into glyphs without a
// shaping pass; full-shaping backends may require a specific concrete type
// (see HarfbuzzBackend, which needs a *GoTextFace).
type Face interface {
	// GlyphIndex returns the glyph for a single codepoint.
	// ok is false if the face has no glyph for it.
	GlyphIndex(r rune) (gid GlyphID, ok bool)

	// GraphemeGlyph returns a synthetic glyph index reserved for a
	// multi-codepoint grapheme cluster, given its UTF-8 encoding.
	// Backends that cannot shape such clusters natively use the
	// reservation so the renderer can special-case it. Repeated calls
	// with the same cluster return the same index.
	GraphemeGlyph(cluster string) GlyphID
}

// FontResolver maps codepoints to faces in a prioritized font collection.
//
// Implementations must guarantee coverage of U+0020 (space) and U+FFFD
// (replacement character) in at least one face per style: the run iterator
// falls back to those when nothing else resolves, and a collection without
// them is a configuration invariant violation, not a recoverable error.
//
// The resolver is the only shared resource the shaping core touches. If the
// collection can be mutated concurrently (config reload), callers must hold
// the resolver's read lock for the duration of one Next/Shape pair; the core
// itself takes no locks.
type FontResolver interface {
	// Resolve returns the index of the highest-priority face that can
	// render r in the given style, honoring a forced presentation.
	// ok is false if no face covers r.
	Resolve(r rune, style Style, pres Presentation) (ix FontIndex, ok bool)

	// SupportsCodepoint reports whether the face identified by ix can
	// render r under the given presentation. Used to verify that a single
	// face covers an entire grapheme cluster.
	SupportsCodepoint(ix FontIndex, r rune, pres Presentation) bool

	// FaceFor returns the face for a resolved (non-special) index.
	FaceFor(ix FontIndex) Face
}

// Feature is an OpenType feature setting forwarded to full-shaping
// backends, e.g. {"liga", 0} to disable standard ligatures.
type Feature struct {
	// Tag is the 4-character OpenType feature tag.
	Tag string

	// Value is the feature value; 0 disables, 1 enables, larger values
	// select alternates where the feature supports them.
	Value uint32
}
