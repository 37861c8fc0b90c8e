package cellshape

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Style identifies which variant of a font family renders a cell.
// It is derived from the cell's bold and italic attributes and is one of
// the inputs to font resolution; a style change always terminates a run.
type Style uint8

const (
	// StyleRegular is the default upright style.
	StyleRegular Style = iota

	// StyleBold is the bold variant.
	StyleBold

	// StyleItalic is the italic variant.
	StyleItalic

	// StyleBoldItalic is the combined bold and italic variant.
	StyleBoldItalic
)

// styleNames maps Style to string names.
var styleNames = [...]string{
	StyleRegular:    "Regular",
	StyleBold:       "Bold",
	StyleItalic:     "Italic",
	StyleBoldItalic: "BoldItalic",
}

// String returns the string name of the style.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return unknownStr
}

// StyleFromAttrs returns the style for a cell's bold and italic attributes.
func StyleFromAttrs(bold, italic bool) Style {
	switch {
	case bold && italic:
		return StyleBoldItalic
	case bold:
		return StyleBold
	case italic:
		return StyleItalic
	default:
		return StyleRegular
	}
}

// Presentation is a rendering preference for codepoints that have both a
// text and an emoji form. It is forced by the variation selectors U+FE0E
// (text) and U+FE0F (emoji); without a selector no preference is forced
// and the resolver picks per its own policy.
type Presentation uint8

const (
	// PresentationDefault forces nothing; the resolver decides.
	PresentationDefault Presentation = iota

	// PresentationText is forced by U+FE0E.
	PresentationText

	// PresentationEmoji is forced by U+FE0F.
	PresentationEmoji
)

// presentationNames maps Presentation to string names.
var presentationNames = [...]string{
	PresentationDefault: "Default",
	PresentationText:    "Text",
	PresentationEmoji:   "Emoji",
}

// String returns the string name of the presentation.
func (p Presentation) String() string {
	if int(p) < len(presentationNames) {
		return presentationNames[p]
	}
	return unknownStr
}
