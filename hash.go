package cellshape

// FNV-1a constants, as in hash/fnv. Inlined so the per-codepoint hash
// update during run iteration stays allocation-free.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// contentHash incrementally builds a TextRun.ContentHash. The zero value
// is not valid; start from newContentHash.
type contentHash uint64

func newContentHash() contentHash {
	return contentHash(fnvOffset64)
}

// addByte folds one byte into the hash.
func (h contentHash) addByte(b byte) contentHash {
	return contentHash((uint64(h) ^ uint64(b)) * fnvPrime64)
}

// addUint32 folds a 32-bit value into the hash, little-endian.
func (h contentHash) addUint32(v uint32) contentHash {
	h = h.addByte(byte(v))
	h = h.addByte(byte(v >> 8))
	h = h.addByte(byte(v >> 16))
	h = h.addByte(byte(v >> 24))
	return h
}

// addRune folds one codepoint and its cluster column into the hash.
func (h contentHash) addRune(r rune, cluster int) contentHash {
	h = h.addUint32(uint32(r))
	h = h.addUint32(uint32(cluster))
	return h
}

// addFont folds the run's font index into the hash.
func (h contentHash) addFont(ix FontIndex) contentHash {
	h = h.addByte(byte(ix.Sprite))
	h = h.addByte(byte(ix.Face))
	h = h.addByte(byte(ix.Face >> 8))
	return h
}
