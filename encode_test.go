package symcore

import (
	"strings"
	"testing"
)

// TestEncodeSeedScenarios runs one subtest per symbology/input/option
// combination, checking the invariants each scenario names rather than
// an exact pixel match (several encoders are documented
// simplifications — see DESIGN.md).
func TestEncodeSeedScenarios(t *testing.T) {
	t.Run("Code128_Zint", func(t *testing.T) {
		sym := &Symbol{Symbology: Code128}
		if err := Encode(sym, []byte("Zint")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sym.Rows != 1 {
			t.Errorf("rows = %d, want 1", sym.Rows)
		}
		if sym.Width <= 0 {
			t.Errorf("width = %d, want > 0", sym.Width)
		}
		if sym.Text != "Zint" {
			t.Errorf("HRT = %q, want %q", sym.Text, "Zint")
		}
	})

	t.Run("ITF14", func(t *testing.T) {
		sym := &Symbol{Symbology: ITF14}
		if err := Encode(sym, []byte("1234567890123")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sym.Text) != 14 {
			t.Errorf("HRT length = %d, want 14 (13 digits + check digit)", len(sym.Text))
		}
		if sym.Width <= 0 {
			t.Errorf("width = %d, want > 0", sym.Width)
		}
	})

	t.Run("DataMatrix_123456", func(t *testing.T) {
		sym := &Symbol{Symbology: DataMatrix}
		if err := Encode(sym, []byte("123456")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sym.Rows != 10 || sym.Width != 10 {
			t.Errorf("size = %dx%d, want 10x10", sym.Rows, sym.Width)
		}
		if !sym.GetModule(sym.Rows-1, sym.Width-1) {
			t.Errorf("bottom-right corner module must be forced dark")
		}
	})

	t.Run("PDF417_digits", func(t *testing.T) {
		sym := &Symbol{Symbology: PDF417, Option1: 2, Option2: 4}
		if err := Encode(sym, []byte(strings.Repeat("1", 40))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sym.Rows < 3 {
			t.Errorf("rows = %d, want >= 3", sym.Rows)
		}
		if sym.Width <= 0 {
			t.Errorf("width = %d, want > 0", sym.Width)
		}
	})

	t.Run("MaxiCode_mode2", func(t *testing.T) {
		sym := &Symbol{Symbology: MaxiCode, Option1: 2, Primary: "123456,840,1"}
		if err := Encode(sym, []byte("abc")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sym.Rows != 33 || sym.Width != 30 {
			t.Errorf("size = %dx%d, want 33x30", sym.Rows, sym.Width)
		}
	})

	t.Run("DataMatrix_C40LetterRun", func(t *testing.T) {
		sym := &Symbol{Symbology: DataMatrix}
		if err := Encode(sym, []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sym.Rows <= 0 || sym.Width <= 0 {
			t.Errorf("size = %dx%d, want positive", sym.Rows, sym.Width)
		}
	})

	t.Run("DotCode_A1B2C3", func(t *testing.T) {
		sym := &Symbol{Symbology: DotCode}
		if err := Encode(sym, []byte("A1B2C3")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if (sym.Rows+sym.Width)%2 == 0 {
			t.Errorf("h+w = %d, want odd", sym.Rows+sym.Width)
		}
		for r := 0; r < sym.Rows; r++ {
			for c := 0; c < sym.Width; c++ {
				if sym.GetModule(r, c) && (r+c)%2 != 0 {
					t.Fatalf("dark module at (%d,%d) has odd r+c, want even", r, c)
				}
			}
		}
	})
}

// TestEncodeInvariants checks the invariant that applies across every
// symbology: a successful encode always leaves a positive row/column
// count.
func TestEncodeInvariants(t *testing.T) {
	cases := []struct {
		name string
		sym  Symbology
		data string
	}{
		{"Code39", Code39, "ZINT-4"},
		{"Codabar", Codabar, "A1234B"},
		{"Code93", Code93, "ZINT93"},
		{"Telepen", Telepen, "Zint"},
		{"VIN", VIN, "1M8GDM9AXKP042788"},
		{"PZN", PZN, "123456"},
		{"MSIPlessey", MSIPlessey, "1234567"},
		{"ChannelCode", ChannelCode, "123"},
		{"QRCode", QRCode, "ZINT"},
		{"MicroQRCode", MicroQRCode, "123"},
		{"HanXin", HanXin, "Zint"},
		{"Aztec", Aztec, "Zint"},
		{"GridMatrix", GridMatrix, "Zint"},
		{"RMQRCode", RMQRCode, "Zint"},
		{"MicroPDF417", MicroPDF417, "12345"},
		{"EAN13", EAN13, "400638133393"},
		{"EAN8", EAN8, "4007239"},
		{"UPCA", UPCA, "03600029145"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sym := &Symbol{Symbology: tc.sym}
			if err := Encode(sym, []byte(tc.data)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sym.Rows <= 0 {
				t.Errorf("rows = %d, want > 0", sym.Rows)
			}
			if sym.Width <= 0 {
				t.Errorf("width = %d, want > 0", sym.Width)
			}
		})
	}
}

func TestEncodeAztecRune(t *testing.T) {
	sym := &Symbol{Symbology: AztecRune}
	if err := Encode(sym, []byte{42}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym.Rows != 11 || sym.Width != 11 {
		t.Errorf("size = %dx%d, want 11x11", sym.Rows, sym.Width)
	}

	sym2 := &Symbol{Symbology: AztecRune}
	if err := Encode(sym2, []byte{1, 2}); err == nil {
		t.Fatalf("expected error for multi-byte Aztec Rune input")
	}
}

func TestEncodeEmptyInputFails(t *testing.T) {
	sym := &Symbol{Symbology: Code128}
	err := Encode(sym, nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	ee, ok := err.(*EncodeError)
	if !ok {
		t.Fatalf("error type = %T, want *EncodeError", err)
	}
	if ee.Code != CodeInvalidData {
		t.Errorf("code = %d, want %d", ee.Code, CodeInvalidData)
	}
}

func TestEncodeSegsRejectsMultiSegmentLinear(t *testing.T) {
	sym := &Symbol{Symbology: Code128}
	err := EncodeSegs(sym, []Segment{{Source: []byte("A")}, {Source: []byte("B")}})
	if err == nil {
		t.Fatal("expected error: linear symbologies reject multi-segment input")
	}
}
