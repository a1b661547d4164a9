package pdf417

import "testing"

func TestValueInSubmodeAlphaAndLower(t *testing.T) {
	if v, ok := valueInSubmode(subAlpha, 'A'); !ok || v != 0 {
		t.Errorf("ALPHA 'A' = %d,%v want 0,true", v, ok)
	}
	if v, ok := valueInSubmode(subAlpha, 'Z'); !ok || v != 25 {
		t.Errorf("ALPHA 'Z' = %d,%v want 25,true", v, ok)
	}
	if v, ok := valueInSubmode(subAlpha, ' '); !ok || v != 26 {
		t.Errorf("ALPHA ' ' = %d,%v want 26,true", v, ok)
	}
	if _, ok := valueInSubmode(subAlpha, 'a'); ok {
		t.Errorf("ALPHA should not contain lowercase 'a'")
	}
	if v, ok := valueInSubmode(subLower, 'a'); !ok || v != 0 {
		t.Errorf("LOWER 'a' = %d,%v want 0,true", v, ok)
	}
}

func TestFindSubmodePrefersAlphaThenLowerThenMixedThenPunct(t *testing.T) {
	if sub, _, ok := findSubmode('Q'); !ok || sub != subAlpha {
		t.Errorf("findSubmode('Q') sub = %d, want subAlpha", sub)
	}
	if sub, _, ok := findSubmode('q'); !ok || sub != subLower {
		t.Errorf("findSubmode('q') sub = %d, want subLower", sub)
	}
	if sub, _, ok := findSubmode('5'); !ok || sub != subMixed {
		t.Errorf("findSubmode('5') sub = %d, want subMixed", sub)
	}
	if sub, _, ok := findSubmode(';'); !ok || sub != subPunct {
		t.Errorf("findSubmode(';') sub = %d, want subPunct", sub)
	}
	if _, _, ok := findSubmode(0x00); ok {
		t.Errorf("findSubmode(0x00) should fail: no submode contains a control byte")
	}
}

func TestLatchPathReachesPunctOnlyThroughMixed(t *testing.T) {
	path := latchPath(subAlpha, subPunct)
	if len(path) != 2 || path[0] != 28 || path[1] != 27 {
		t.Errorf("latchPath(alpha,punct) = %v, want [28 27] (ALPHA->MIXED->PUNCT)", path)
	}
	path = latchPath(subPunct, subAlpha)
	if len(path) != 1 || path[0] != 29 {
		t.Errorf("latchPath(punct,alpha) = %v, want [29]", path)
	}
	if p := latchPath(subAlpha, subAlpha); p != nil {
		t.Errorf("latchPath(alpha,alpha) = %v, want nil (no latch needed)", p)
	}
}

func TestTextCompactionStaysInAlphaForUppercaseRun(t *testing.T) {
	cws, ok := textCompaction([]byte("ZINT"))
	if !ok {
		t.Fatal("textCompaction should accept an all-uppercase run")
	}
	// 4 values pack into 2 codewords with no submode switch needed.
	if len(cws) != 2 {
		t.Errorf("len(cws) = %d, want 2", len(cws))
	}
	// 'Z'->25, 'I'->8 packed as 30*25+8
	if cws[0] != 30*25+8 {
		t.Errorf("cws[0] = %d, want %d", cws[0], 30*25+8)
	}
	// 'N'->13, 'T'->19 packed as 30*13+19
	if cws[1] != 30*13+19 {
		t.Errorf("cws[1] = %d, want %d", cws[1], 30*13+19)
	}
}

func TestTextCompactionSwitchesToMixedForDigitsAndBack(t *testing.T) {
	cws, ok := textCompaction([]byte("A1B"))
	if !ok {
		t.Fatal("textCompaction should accept letters mixed with digits")
	}
	if len(cws) == 0 {
		t.Fatal("expected at least one codeword")
	}
}

func TestTextCompactionRejectsUnrepresentableByte(t *testing.T) {
	if _, ok := textCompaction([]byte{0x01}); ok {
		t.Error("textCompaction should reject a control byte no submode represents")
	}
}

func TestTextCompactionPadsOddValueCount(t *testing.T) {
	// A single value, "A", must still emit one full codeword padded with 29.
	cws, ok := textCompaction([]byte("A"))
	if !ok {
		t.Fatal("textCompaction should accept a single letter")
	}
	if len(cws) != 1 {
		t.Fatalf("len(cws) = %d, want 1", len(cws))
	}
	if cws[0] != 30*0+29 {
		t.Errorf("cws[0] = %d, want %d", cws[0], 30*0+29)
	}
}
