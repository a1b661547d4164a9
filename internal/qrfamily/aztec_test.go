package qrfamily

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func TestBitStuffNoWordAllZeroOrAllOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.SampledFrom([]int{6, 8, 10, 12}).Draw(t, "w")
		n := rapid.IntRange(1, 400).Draw(t, "n")
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = rapid.Bool().Draw(t, "bit")
		}
		for i, word := range bitStuff(bits, w) {
			if word == 0 || word == 1<<w-1 {
				t.Fatalf("word %d = %#x is all-%d (w=%d)", i, word, word&1, w)
			}
		}
	})
}

func TestBitStuffStuffsAllOnesRun(t *testing.T) {
	bits := make([]bool, 12)
	for i := range bits {
		bits[i] = true
	}
	words := bitStuff(bits, 6)
	// Five ones trigger a stuffed zero: 111110, then the displaced
	// bits continue into the next word.
	if len(words) < 2 {
		t.Fatalf("got %d words, want at least 2", len(words))
	}
	if words[0] != 0b111110 {
		t.Errorf("first word = %#b, want 111110", words[0])
	}
}

func TestBitStuffRoundTripsUnstuffedContent(t *testing.T) {
	// Words without a uniform first-(w-1)-bit prefix pass through
	// unchanged: 0b101010... never triggers stuffing.
	bits := make([]bool, 24)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	words := bitStuff(bits, 6)
	if len(words) != 4 {
		t.Fatalf("got %d words, want 4 (no stuffing expected)", len(words))
	}
	for i, word := range words {
		if word != 0b101010 {
			t.Errorf("word %d = %#b, want 101010", i, word)
		}
	}
}

func TestAztecDataBitsDigitMode(t *testing.T) {
	buf := aztecDataBits([]byte("123"))
	// D/L latch (5 bits) plus three 4-bit digit codes.
	if buf.length() != 5+3*4 {
		t.Errorf("digit-mode bit length = %d, want 17", buf.length())
	}
}

func TestAztecDataBitsUpperMode(t *testing.T) {
	buf := aztecDataBits([]byte("AZTEC RUNE"))
	if buf.length() != 10*5 {
		t.Errorf("upper-mode bit length = %d, want 50", buf.length())
	}
}

func TestAztecDataBitsBinaryShift(t *testing.T) {
	buf := aztecDataBits([]byte{0x00, 0xff})
	// B/S (5) + length (5) + two 8-bit bytes.
	if buf.length() != 5+5+2*8 {
		t.Errorf("binary-shift bit length = %d, want 26", buf.length())
	}
}

func TestEncodeAztecSmallMessage(t *testing.T) {
	result, err := encodeAztec(registry.Request{Source: []byte("AZTEC")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Rows != 19 || result.Cols != 19 {
		t.Errorf("size = %dx%d, want the smallest 19x19 grid", result.Rows, result.Cols)
	}
	// Bullseye center is always dark.
	if !result.Modules[9][9] {
		t.Error("bullseye center module must be dark")
	}
	// First ring out from the center is light on its axes.
	if result.Modules[9][10] || result.Modules[8][9] {
		t.Error("first bullseye ring must be light")
	}
}

func TestEncodeAztecGrowsWithData(t *testing.T) {
	small, err := encodeAztec(registry.Request{Source: []byte("A")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	big, err := encodeAztec(registry.Request{Source: make([]byte, 300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if big.Rows <= small.Rows {
		t.Errorf("300-byte symbol (%d) should outgrow 1-byte symbol (%d)", big.Rows, small.Rows)
	}
	if (big.Rows-19)%4 != 0 {
		t.Errorf("grid size %d not on the 19+4k progression", big.Rows)
	}
}

func TestEncodeAztecTooLong(t *testing.T) {
	_, err := encodeAztec(registry.Request{Source: make([]byte, 4000)})
	if err == nil {
		t.Fatal("expected too-long error")
	}
}

func TestAztecModeBitsLength(t *testing.T) {
	buf := aztecModeBits(1, 5)
	if buf.length() != 40 {
		t.Errorf("mode message = %d bits, want 40 (4 data + 6 check words of 4 bits)", buf.length())
	}
}

func TestEncodeAztecRuneModeMessageInverted(t *testing.T) {
	r0, err := encodeAztecRune(registry.Request{Source: []byte{0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r255, err := encodeAztecRune(registry.Request{Source: []byte{255}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := false
	for r := 0; r < 11 && !diff; r++ {
		for c := 0; c < 11; c++ {
			if r0.Modules[r][c] != r255.Modules[r][c] {
				diff = true
				break
			}
		}
	}
	if !diff {
		t.Error("distinct Rune values must yield distinct module grids")
	}
}
