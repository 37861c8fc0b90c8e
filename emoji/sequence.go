package emoji

// unknownStr is the string returned for unknown sequence enum values.
const unknownStr = "Unknown"

// SequenceType indicates the kind of emoji sequence a cluster forms.
type SequenceType int

const (
	// SequenceNone means the cluster is not an emoji sequence.
	SequenceNone SequenceType = iota

	// SequenceSimple is a single emoji codepoint.
	SequenceSimple

	// SequenceZWJ is a zero-width-joiner sequence (family, profession).
	SequenceZWJ

	// SequenceFlag is a country flag of two regional indicators.
	SequenceFlag

	// SequenceKeycap is a keycap sequence (# + VS16 + U+20E3).
	SequenceKeycap

	// SequenceModified is a base emoji with a skin tone modifier.
	SequenceModified

	// SequenceTag is a subdivision flag tag sequence.
	SequenceTag

	// SequencePresentation is a text-default codepoint forced to emoji
	// presentation by VS16.
	SequencePresentation
)

// sequenceTypeNames maps SequenceType to string names.
var sequenceTypeNames = [...]string{
	SequenceNone:         "None",
	SequenceSimple:       "Simple",
	SequenceZWJ:          "ZWJ",
	SequenceFlag:         "Flag",
	SequenceKeycap:       "Keycap",
	SequenceModified:     "Modified",
	SequenceTag:          "Tag",
	SequencePresentation: "Presentation",
}

// String returns the string name of the sequence type.
func (t SequenceType) String() string {
	if int(t) >= 0 && int(t) < len(sequenceTypeNames) {
		return sequenceTypeNames[t]
	}
	return unknownStr
}

// Classify determines what kind of emoji sequence a grapheme cluster's
// codepoints form. The cluster is taken as a whole, the way a terminal
// cell stores it: the primary codepoint plus its extensions.
func Classify(cps []rune) SequenceType {
	if len(cps) == 0 {
		return SequenceNone
	}

	base := cps[0]

	if len(cps) == 1 {
		if DefaultEmojiPresentation(base) {
			return SequenceSimple
		}
		return SequenceNone
	}

	// Keycap: base + optional VS16 + U+20E3.
	if IsKeycapBase(base) && cps[len(cps)-1] == Keycap {
		return SequenceKeycap
	}

	// Country flag: two regional indicators.
	if len(cps) == 2 && IsRegionalIndicator(base) && IsRegionalIndicator(cps[1]) {
		return SequenceFlag
	}

	// Subdivision flag: base + tag characters + cancel tag.
	if cps[len(cps)-1] == CancelTag {
		return SequenceTag
	}

	for _, cp := range cps[1:] {
		if IsZWJ(cp) {
			return SequenceZWJ
		}
	}

	if len(cps) == 2 && IsModifier(cps[1]) {
		return SequenceModified
	}

	if cps[1] == VS16 && TextDefault(base) {
		return SequencePresentation
	}

	if DefaultEmojiPresentation(base) {
		return SequenceSimple
	}
	return SequenceNone
}
