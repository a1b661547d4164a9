package maxicode

import (
	"testing"

	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/rs"
)

func TestEncodeMaxiCodeMode2(t *testing.T) {
	req := registry.Request{
		Source:  []byte("MAXICODE TEST"),
		Option1: 2,
		Primary: "12345,840,1",
	}
	result, err := encodeMaxiCode(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Rows != gridRows || result.Cols != gridCols {
		t.Errorf("size = %dx%d, want %dx%d", result.Rows, result.Cols, gridRows, gridCols)
	}
	if len(result.Modules) != gridRows {
		t.Fatalf("modules has %d rows, want %d", len(result.Modules), gridRows)
	}
}

func TestEncodeMaxiCodeDefaultsWithoutPrimary(t *testing.T) {
	req := registry.Request{Source: []byte("no primary supplied")}
	result, err := encodeMaxiCode(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Rows != gridRows {
		t.Errorf("rows = %d, want %d", result.Rows, gridRows)
	}
}

func TestEncodeMaxiCodeRejectsMalformedPrimary(t *testing.T) {
	req := registry.Request{Source: []byte("x"), Primary: "not-a-valid-primary"}
	_, err := encodeMaxiCode(req)
	if err == nil {
		t.Fatal("expected error for malformed primary message")
	}
}

func TestEncodeMaxiCodeAutoModeFromPrimary(t *testing.T) {
	// Numeric postcode auto-selects mode 2; an alphanumeric one mode 3.
	for _, tc := range []struct {
		primary string
	}{
		{"123456,840,1"},
		{"B1050,056,1"},
	} {
		_, err := encodeMaxiCode(registry.Request{Source: []byte("x"), Primary: tc.primary})
		if err != nil {
			t.Errorf("primary %q: unexpected error: %v", tc.primary, err)
		}
	}
}

func TestPrimary2FieldPlacement(t *testing.T) {
	var cw [144]byte
	primary2(&cw, []byte("123456"), 840, 1)
	if cw[0]&0x0f != 2 {
		t.Errorf("mode tag = %d, want 2", cw[0]&0x0f)
	}
	for i := 0; i < 10; i++ {
		if cw[i] > 0x3f {
			t.Errorf("codeword %d = %d exceeds 6 bits", i, cw[i])
		}
	}
	// 123456 = 0x1E240: low two bits (00) sit in cw[0] bits 4-5.
	if cw[0]>>4 != 0 {
		t.Errorf("cw[0] postcode bits = %d, want 0", cw[0]>>4)
	}
	if cw[1] != (123456&0xfc)>>2 {
		t.Errorf("cw[1] = %d, want %d", cw[1], (123456&0xfc)>>2)
	}
}

func TestPrimary3ModeTag(t *testing.T) {
	var cw [144]byte
	primary3(&cw, []byte("B1050 "), 56, 1)
	if cw[0]&0x0f != 3 {
		t.Errorf("mode tag = %d, want 3", cw[0]&0x0f)
	}
}

func TestMaxiLookupSetAValues(t *testing.T) {
	cases := []struct {
		in       byte
		set, chr byte
	}{
		{'A', 1, 1},
		{'Z', 1, 26},
		{'0', 1, 48},
		{'9', 1, 57},
		{'"', 1, 34},
		{'+', 1, 43},
		{'a', 2, 1},
		{'`', 2, 0},
		{' ', 0, 32}, // multi-set, resolved later
		{13, 0, 13},  // CR
	}
	for _, tc := range cases {
		set, chr := maxiLookup(tc.in)
		if set != tc.set || chr != tc.chr {
			t.Errorf("maxiLookup(%q) = (%d, %d), want (%d, %d)", tc.in, set, chr, tc.set, tc.chr)
		}
	}
}

func TestTextProcessNumberCompression(t *testing.T) {
	// Fifteen digits: the first nine compress into NS plus five
	// codewords; the remaining six stay as Set A digit values.
	var cw [144]byte
	if err := textProcess(&cw, 4, []byte("123456789012345"), 0, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Modes 4/6 place the first nine text characters in the primary
	// tail, starting at codeword 1.
	if cw[1] != maxiNS {
		t.Fatalf("first codeword = %d, want NS (%d)", cw[1], maxiNS)
	}
	value := 0
	for i := 2; i <= 6; i++ {
		value = value<<6 | int(cw[i])
	}
	if value != 123456789 {
		t.Errorf("compressed value = %d, want 123456789", value)
	}
}

func TestTextProcessShiftBForSingleLowercase(t *testing.T) {
	// One lowercase letter inside uppercase text takes a Shift B, not
	// a latch: A a A -> 'A', SHB, 'a', 'A'.
	var cw [144]byte
	if err := textProcess(&cw, 4, []byte("AaA"), 0, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cw[1] != 1 { // 'A'
		t.Errorf("cw[1] = %d, want 1", cw[1])
	}
	if cw[2] != maxiShiftB {
		t.Errorf("cw[2] = %d, want Shift B (%d)", cw[2], maxiShiftB)
	}
	if cw[3] != 1 { // 'a' in Set B
		t.Errorf("cw[3] = %d, want 1", cw[3])
	}
	if cw[4] != 1 { // back in Set A without a latch
		t.Errorf("cw[4] = %d, want 1", cw[4])
	}
}

func TestTextProcessLatchBForLowercaseRun(t *testing.T) {
	var cw [144]byte
	if err := textProcess(&cw, 4, []byte("Aabc"), 0, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cw[1] != 1 {
		t.Errorf("cw[1] = %d, want 1 ('A')", cw[1])
	}
	if cw[2] != maxiLatchB {
		t.Errorf("cw[2] = %d, want Latch B (%d)", cw[2], maxiLatchB)
	}
	if cw[3] != 1 || cw[4] != 2 || cw[5] != 3 {
		t.Errorf("cw[3:6] = %v, want [1 2 3] (abc in Set B)", cw[3:6])
	}
}

func TestTextProcessTooLong(t *testing.T) {
	var cw [144]byte
	big := make([]byte, 100)
	for i := range big {
		big[i] = 'A'
	}
	if err := textProcess(&cw, 2, big, 0, -1); err == nil {
		t.Fatal("expected too-long error for 100 characters in mode 2")
	}
}

func TestInterleavedECCLength(t *testing.T) {
	gf := rs.NewGF(6, maxiPoly)
	data := make([]byte, 84)
	out := interleavedECC(gf, data, 40)
	if len(out) != 40 {
		t.Fatalf("ECC length = %d, want 40", len(out))
	}
}
