package qrgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fillMatrix(values [][]byte) *ByteMatrix {
	m := NewByteMatrix(len(values[0]), len(values))
	for y, row := range values {
		copy(m.Data[y], row)
	}
	return m
}

func TestPenaltyRule1Runs(t *testing.T) {
	m := fillMatrix([][]byte{
		{1, 1, 1, 1, 1, 0},
		{0, 1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1},
	})
	// One horizontal run of exactly 5 scores 3; the checkerboard remainder
	// contributes nothing.
	if got := applyMaskPenaltyRule1(m); got != 3 {
		t.Errorf("rule 1 = %d, want 3", got)
	}

	m.Set(5, 0, 1) // extend the run to 6
	if got := applyMaskPenaltyRule1(m); got != 4 {
		t.Errorf("rule 1 after extension = %d, want 4", got)
	}
}

func TestPenaltyRule2Blocks(t *testing.T) {
	m := fillMatrix([][]byte{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 1},
	})
	if got := applyMaskPenaltyRule2(m); got != 3 {
		t.Errorf("rule 2 = %d, want 3", got)
	}

	// A 2x3 dark region counts two overlapping blocks.
	m = fillMatrix([][]byte{
		{1, 1, 1},
		{1, 1, 1},
		{0, 0, 0},
	})
	if got := applyMaskPenaltyRule2(m); got != 6 {
		t.Errorf("rule 2 = %d, want 6", got)
	}
}

func TestPenaltyRule3FinderLookalike(t *testing.T) {
	row := []byte{1, 0, 1, 1, 1, 0, 1, 0, 0, 0, 0}
	m := NewByteMatrix(len(row), 1)
	copy(m.Data[0], row)
	if got := applyMaskPenaltyRule3(m); got != 40 {
		t.Errorf("rule 3 = %d, want 40", got)
	}

	// Without the four light modules there is no penalty.
	m.Set(10, 0, 1)
	if got := applyMaskPenaltyRule3(m); got != 0 {
		t.Errorf("rule 3 without quiet run = %d, want 0", got)
	}
}

func TestPenaltyRule4DarkRatio(t *testing.T) {
	m := NewByteMatrix(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, 1)
		}
	}
	// 100% dark deviates 50 points from the ideal: 10 steps of 5%.
	if got := applyMaskPenaltyRule4(m); got != 100 {
		t.Errorf("rule 4 all dark = %d, want 100", got)
	}

	m.Set(0, 0, 0)
	m.Set(1, 0, 0) // 87.5% dark: 7 full steps
	if got := applyMaskPenaltyRule4(m); got != 70 {
		t.Errorf("rule 4 = %d, want 70", got)
	}
}

func TestMicroEdgeScore(t *testing.T) {
	m := NewByteMatrix(11, 11)
	// Three dark modules on the right edge, two on the bottom edge.
	m.Set(10, 1, 1)
	m.Set(10, 2, 1)
	m.Set(10, 3, 1)
	m.Set(1, 10, 1)
	m.Set(2, 10, 1)
	// The corner module counts on both edges.
	m.Set(10, 10, 1)
	if got := microEdgeScore(m); got != 3*16+4 {
		t.Errorf("microEdgeScore = %d, want %d", got, 3*16+4)
	}
}

func TestDataMaskFormulas(t *testing.T) {
	// Spot-check each predicate against its defining formula.
	for i, tc := range []struct {
		r, c int
		want [8]bool
	}{
		{0, 0, [8]bool{true, true, true, true, true, true, true, true}},
		{1, 1, [8]bool{true, false, false, false, true, false, true, false}},
		{2, 3, [8]bool{false, true, true, false, true, true, true, false}},
	} {
		for mask := 0; mask < 8; mask++ {
			if got := DataMasks[mask](tc.r, tc.c); got != tc.want[mask] {
				t.Errorf("case %d: mask %d at (%d,%d) = %v, want %v", i, mask, tc.r, tc.c, got, tc.want[mask])
			}
		}
	}
}

func TestChooseMaskDeterministic(t *testing.T) {
	a := encodeForTest(t, "DETERMINISM", nil)
	b := encodeForTest(t, "DETERMINISM", nil)
	if a.Mask != b.Mask {
		t.Fatalf("masks differ: %d vs %d", a.Mask, b.Mask)
	}
	if diff := cmp.Diff(a.Matrix.Data, b.Matrix.Data); diff != "" {
		t.Errorf("matrices differ (-first +second):\n%s", diff)
	}
}

func TestChooseMaskIsBestScoring(t *testing.T) {
	sym := encodeForTest(t, "BEST MASK", &Options{Micro: MicroForbidden})

	seg := sym.Segments[0]
	codewords, err := assembleCodewords(Segments{seg}, sym.Version, sym.Level, false)
	if err != nil {
		t.Fatal(err)
	}
	d := sym.Size()
	scratch := NewByteMatrix(d, d)
	bestPenalty := -1
	bestMask := 0
	for mask := 0; mask < 8; mask++ {
		buildMatrix(codewords, sym.Level, sym.Version, mask, scratch)
		p := calculateMaskPenalty(scratch)
		if bestPenalty == -1 || p < bestPenalty {
			bestPenalty = p
			bestMask = mask
		}
	}
	if sym.Mask != bestMask {
		t.Errorf("Mask = %d, want %d", sym.Mask, bestMask)
	}
}

func TestPinnedMask(t *testing.T) {
	mask := 5
	sym := encodeForTest(t, "PINNED", &Options{Micro: MicroForbidden, Mask: &mask})
	if sym.Mask != 5 {
		t.Errorf("Mask = %d, want 5", sym.Mask)
	}
}
