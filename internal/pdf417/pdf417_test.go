package pdf417

import (
	"testing"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func TestEncodePDF417ProducesRowsWithConsistentWidth(t *testing.T) {
	result, err := encodePDF417(false)(registry.Request{Source: []byte("PDF417 TEST MESSAGE")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WidthRows) < 3 {
		t.Fatalf("got %d rows, want at least 3", len(result.WidthRows))
	}
	wantWidth := 0
	for _, run := range result.WidthRows[0] {
		wantWidth += int(run)
	}
	for i, row := range result.WidthRows {
		sum := 0
		for _, run := range row {
			sum += int(run)
		}
		if sum != wantWidth {
			t.Errorf("row %d total width = %d, want %d (all rows must match)", i, sum, wantWidth)
		}
	}
}

func TestEncodePDF417RejectsEmptyInput(t *testing.T) {
	_, err := encodePDF417(false)(registry.Request{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestEncodePDF417CompactUsesShortStop(t *testing.T) {
	full, err := encodePDF417(false)(registry.Request{Source: []byte("12345")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	compact, err := encodePDF417(true)(registry.Request{Source: []byte("12345")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(compact.WidthRows[0]) >= len(full.WidthRows[0]) {
		t.Errorf("compact row length %d should be shorter than full row length %d", len(compact.WidthRows[0]), len(full.WidthRows[0]))
	}
}

func TestEccLevelForScalesWithDataSize(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{10, 2},
		{100, 3},
		{300, 4},
		{800, 5},
		{2000, 6},
	}
	for _, c := range cases {
		if got := eccLevelFor(c.n); got != c.want {
			t.Errorf("eccLevelFor(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestRoundSqrtRoundsToNearest(t *testing.T) {
	cases := []struct{ n, want int }{
		{1, 1},
		{4, 2},
		{10, 3}, // sqrt(10)=3.16 -> nearest is 3
		{20, 4}, // sqrt(20)=4.47 -> nearest is 4
	}
	for _, c := range cases {
		if got := roundSqrt(c.n); got != c.want {
			t.Errorf("roundSqrt(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestCeilDivRoundsUp(t *testing.T) {
	if got := ceilDiv(10, 3); got != 4 {
		t.Errorf("ceilDiv(10,3) = %d, want 4", got)
	}
	if got := ceilDiv(9, 3); got != 3 {
		t.Errorf("ceilDiv(9,3) = %d, want 3", got)
	}
}

func TestCodewordPatternRunsSumToSeventeen(t *testing.T) {
	for cluster := 0; cluster < 3; cluster++ {
		for value := 0; value < 929; value += 37 {
			runs := codewordPattern(cluster, value)
			if len(runs) != 8 {
				t.Fatalf("codewordPattern(%d,%d) returned %d runs, want 8", cluster, value, len(runs))
			}
			sum := 0
			for _, r := range runs {
				sum += int(r)
			}
			if sum != 17 {
				t.Errorf("codewordPattern(%d,%d) runs sum to %d, want 17", cluster, value, sum)
			}
		}
	}
}

func TestCompactDataChoosesNumericForDigitsOnly(t *testing.T) {
	out := compactData([]byte("123456"))
	if out[0] != latchNumeric {
		t.Errorf("compactData on digits-only input should latch numeric, got %d", out[0])
	}
}

func TestCompactDataStartsInTextWithoutLatch(t *testing.T) {
	// The symbol's initial mode is Text, so a leading Text block emits
	// data codewords directly; 900 appears only on a return to Text
	// from another mode.
	out := compactData([]byte("abc123"))
	if len(out) == 0 {
		t.Fatal("compactData returned no codewords")
	}
	for _, cw := range out {
		if cw == latchText {
			t.Errorf("leading Text block should not emit the 900 latch, got stream %v", out)
		}
		if cw < 0 || cw > 928 {
			t.Errorf("codeword %d out of PDF417 range", cw)
		}
	}
}

func TestCompactDataChoosesByteForUnrepresentableInput(t *testing.T) {
	out := compactData([]byte{0xff, 0x01, 0x02})
	if out[0] != latchByte6 && out[0] != latchByteAny {
		t.Errorf("compactData on non-Text-representable input should latch a byte mode, got %d", out[0])
	}
}
