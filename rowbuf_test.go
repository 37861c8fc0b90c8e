package cellshape

import (
	"slices"
	"testing"
)

// TestRowBufferSetString tests plain-text layout: one column per
// character, regular style, no extensions.
func TestRowBufferSetString(t *testing.T) {
	row := NewRowBuffer(10)
	row.SetString("abc")

	if row.CellCount() != 10 {
		t.Fatalf("Expected width 10, got %d", row.CellCount())
	}
	for i, want := range []rune{'a', 'b', 'c'} {
		v := row.CellAt(i)
		if v.Rune != want || v.Style != StyleRegular || v.HasExtensions || v.SpacerTail {
			t.Errorf("Cell %d: expected plain %q, got %+v", i, want, v)
		}
	}
	if !row.CellAt(3).Empty() {
		t.Errorf("Cell 3: expected empty, got %+v", row.CellAt(3))
	}
}

// TestRowBufferWideCluster tests that a CJK character claims two columns
// with a spacer tail and that following text shifts right.
func TestRowBufferWideCluster(t *testing.T) {
	row := NewRowBuffer(10)
	row.SetString("a漢b")

	head := row.CellAt(1)
	if head.Rune != '漢' || head.SpacerTail {
		t.Fatalf("Expected wide head at column 1, got %+v", head)
	}
	tail := row.CellAt(2)
	if !tail.SpacerTail || tail.Rune != 0 {
		t.Fatalf("Expected spacer tail at column 2, got %+v", tail)
	}
	if row.CellAt(3).Rune != 'b' {
		t.Errorf("Expected 'b' at column 3, got %+v", row.CellAt(3))
	}
}

// TestRowBufferEmojiPresentationWidth tests that VS16 promotes a narrow
// base to a two-column cluster.
func TestRowBufferEmojiPresentationWidth(t *testing.T) {
	row := NewRowBuffer(10)
	row.SetStringAt(0, "☀️x", StyleRegular) // sun + VS16

	if v := row.CellAt(0); v.Rune != 0x2600 || !v.HasExtensions {
		t.Fatalf("Expected sun with extension at column 0, got %+v", v)
	}
	if !row.CellAt(1).SpacerTail {
		t.Errorf("Expected a spacer tail at column 1, got %+v", row.CellAt(1))
	}
	if row.CellAt(2).Rune != 'x' {
		t.Errorf("Expected 'x' at column 2, got %+v", row.CellAt(2))
	}
}

// TestRowBufferExtensions tests the extension iterator for a combining
// mark cluster.
func TestRowBufferExtensions(t *testing.T) {
	row := NewRowBuffer(5)
	row.SetString("éz") // e + combining acute

	v := row.CellAt(0)
	if v.Rune != 'e' || !v.HasExtensions {
		t.Fatalf("Expected e with extensions, got %+v", v)
	}
	got := slices.Collect(row.Extensions(0))
	if !slices.Equal(got, []rune{0x0301}) {
		t.Errorf("Extensions: expected [U+0301], got %v", got)
	}
	// Combining mark does not widen the cluster.
	if v := row.CellAt(1); v.Rune != 'z' {
		t.Errorf("Expected 'z' at column 1, got %+v", v)
	}
	if ext := slices.Collect(row.Extensions(1)); len(ext) != 0 {
		t.Errorf("Expected no extensions at column 1, got %v", ext)
	}
}

// TestRowBufferGraphemeBreak tests break classification: edges and
// cluster starts break, spacer tails never do.
func TestRowBufferGraphemeBreak(t *testing.T) {
	row := NewRowBuffer(6)
	row.SetString("a漢b")

	cases := []struct {
		col  int
		want bool
	}{
		{0, true},  // row edge
		{1, true},  // cluster start
		{2, false}, // spacer tail
		{3, true},  // cluster start
		{4, true},  // empty cell
		{6, true},  // past the end
	}
	for _, tc := range cases {
		if got := row.IsGraphemeBreak(tc.col); got != tc.want {
			t.Errorf("IsGraphemeBreak(%d): expected %v, got %v", tc.col, tc.want, got)
		}
	}
}

// TestRowBufferOverflow tests that layout drops clusters past the row
// edge, including a wide cluster whose tail would not fit.
func TestRowBufferOverflow(t *testing.T) {
	row := NewRowBuffer(3)
	row.SetString("abcdef")
	if row.CellAt(2).Rune != 'c' {
		t.Errorf("Expected 'c' at the last column, got %+v", row.CellAt(2))
	}

	row = NewRowBuffer(3)
	row.SetString("ab漢")
	// The wide head fits in the last column; its tail is off the row.
	if v := row.CellAt(2); v.Rune != '漢' {
		t.Errorf("Expected the wide head at column 2, got %+v", v)
	}
}

// TestRowBufferClear tests that Clear keeps the width and empties cells.
func TestRowBufferClear(t *testing.T) {
	row := NewRowBuffer(4)
	row.SetString("hi")
	row.Clear()

	if row.CellCount() != 4 {
		t.Fatalf("Expected width 4 after Clear, got %d", row.CellCount())
	}
	for col := 0; col < 4; col++ {
		if !row.CellAt(col).Empty() {
			t.Errorf("Cell %d not empty after Clear: %+v", col, row.CellAt(col))
		}
	}
}

// TestRowBufferStyledSegments tests per-cluster styling through
// SetStringAt and SetCell.
func TestRowBufferStyledSegments(t *testing.T) {
	row := NewRowBuffer(6)
	row.SetStringAt(0, "ab", StyleBold)
	row.SetStringAt(2, "cd", StyleItalic)
	row.SetCell(4, 'e', StyleBoldItalic)

	wantStyles := []Style{StyleBold, StyleBold, StyleItalic, StyleItalic, StyleBoldItalic}
	for col, want := range wantStyles {
		if got := row.CellAt(col).Style; got != want {
			t.Errorf("Cell %d: expected style %v, got %v", col, want, got)
		}
	}
}

// TestRowBufferOutOfRange tests that out-of-range access is inert.
func TestRowBufferOutOfRange(t *testing.T) {
	row := NewRowBuffer(2)
	row.SetCell(-1, 'x', StyleRegular)
	row.SetCell(2, 'x', StyleRegular)

	if !row.CellAt(-1).Empty() || !row.CellAt(2).Empty() {
		t.Error("Out-of-range CellAt must return an empty view")
	}
	for col := 0; col < 2; col++ {
		if !row.CellAt(col).Empty() {
			t.Errorf("Cell %d unexpectedly written: %+v", col, row.CellAt(col))
		}
	}
}
