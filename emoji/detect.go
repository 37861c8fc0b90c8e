// Package emoji classifies the codepoints and sequences that drive
// text-vs-emoji presentation decisions during run segmentation, and that
// font resolvers use to route clusters to an emoji-capable face.
package emoji

// Codepoints with fixed roles in emoji sequences.
const (
	// VS15 is the text presentation variation selector (U+FE0E).
	VS15 rune = 0xFE0E

	// VS16 is the emoji presentation variation selector (U+FE0F).
	VS16 rune = 0xFE0F

	// ZWJ is the zero-width joiner (U+200D) that glues composite
	// sequences together (family, profession, flags of convenience).
	ZWJ rune = 0x200D

	// Keycap is the combining enclosing keycap (U+20E3).
	Keycap rune = 0x20E3

	// CancelTag (U+E007F) terminates subdivision flag tag sequences.
	CancelTag rune = 0xE007F
)

// IsVariationSelector reports whether r is one of the presentation
// variation selectors U+FE0E / U+FE0F. Variation selectors steer font
// resolution but are never themselves sent to it, and never fed to a
// shaping backend as fallback content.
func IsVariationSelector(r rune) bool {
	return r == VS15 || r == VS16
}

// IsModifier reports whether r is a skin tone modifier
// (Fitzpatrick scale, U+1F3FB - U+1F3FF).
func IsModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsZWJ reports whether r is the zero-width joiner.
func IsZWJ(r rune) bool {
	return r == ZWJ
}

// IsRegionalIndicator reports whether r is a regional indicator symbol.
// Two regional indicators form a flag (e.g. U+1F1FA U+1F1F8 = US flag).
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsTagCharacter reports whether r is an emoji tag character
// (U+E0020 - U+E007E), used in subdivision flag sequences.
func IsTagCharacter(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}

// IsKeycapBase reports whether r can start a keycap sequence:
// digits, '#' and '*'.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsComponent reports whether r only ever appears inside an emoji
// sequence: modifiers, regional indicators, tags, ZWJ, variation
// selectors, and the enclosing keycap.
func IsComponent(r rune) bool {
	switch {
	case IsModifier(r):
		return true
	case IsRegionalIndicator(r):
		return true
	case IsTagCharacter(r) || r == CancelTag:
		return true
	case r == ZWJ:
		return true
	case IsVariationSelector(r):
		return true
	case r == Keycap:
		return true
	}
	return false
}

// DefaultEmojiPresentation reports whether r displays as emoji without
// needing VS16 (the Emoji_Presentation=Yes property). Resolvers use this
// to route a bare codepoint to an emoji face when no selector forces a
// choice.
func DefaultEmojiPresentation(r rune) bool {
	switch {
	// Emoticons
	case r >= 0x1F600 && r <= 0x1F64F:
		return true
	// Miscellaneous Symbols and Pictographs
	case r >= 0x1F300 && r <= 0x1F5FF:
		return true
	// Transport and Map Symbols
	case r >= 0x1F680 && r <= 0x1F6FF:
		return true
	// Supplemental Symbols and Pictographs
	case r >= 0x1F900 && r <= 0x1F9FF:
		return true
	// Symbols and Pictographs Extended-A and -B
	case r >= 0x1FA00 && r <= 0x1FAFF:
		return true
	// Skin tone modifiers
	case IsModifier(r):
		return true
	// Regional indicators
	case IsRegionalIndicator(r):
		return true
	default:
		return false
	}
}

// TextDefault reports whether r is an emoji-capable codepoint that
// nevertheless defaults to text presentation (Emoji=Yes,
// Emoji_Presentation=No): dingbats, miscellaneous symbols, a handful of
// arrows and punctuation. These render as emoji only under VS16.
func TextDefault(r rune) bool {
	switch {
	// Dingbats
	case r >= 0x2702 && r <= 0x27B0:
		return true
	// Miscellaneous Symbols
	case r >= 0x2600 && r <= 0x26FF:
		return true
	// Arrows with emoji variants
	case r == 0x2194 || r == 0x2195 || (r >= 0x2196 && r <= 0x2199):
		return true
	case r == 0x21A9 || r == 0x21AA:
		return true
	// Double exclamation, interrobang
	case r == 0x203C || r == 0x2049:
		return true
	// Information source, circled M
	case r == 0x2139 || r == 0x24C2:
		return true
	// Media control symbols
	case r >= 0x23E9 && r <= 0x23F3:
		return true
	case r >= 0x23F8 && r <= 0x23FA:
		return true
	// Trade mark, copyright, registered
	case r == 0x2122 || r == 0x00A9 || r == 0x00AE:
		return true
	default:
		return false
	}
}
