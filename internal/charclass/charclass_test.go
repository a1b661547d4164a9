package charclass

import "testing"

func TestIsChrRequiresAllFlagsPresent(t *testing.T) {
	if !IsChr(Digit, '5') {
		t.Error("'5' should be a Digit")
	}
	if IsChr(Digit, 'A') {
		t.Error("'A' should not be a Digit")
	}
	if !IsChr(Digit|SetC, '5') {
		t.Error("'5' should be Digit and SetC")
	}
}

func TestIsSaneFindsFirstDisqualifyingByte(t *testing.T) {
	if got := IsSane(Digit, []byte("123")); got != 0 {
		t.Errorf("IsSane all-digits = %d, want 0", got)
	}
	if got := IsSane(Digit, []byte("12A4")); got != 3 {
		t.Errorf("IsSane with non-digit at index 2 = %d, want 3 (1-based)", got)
	}
}

func TestIsSaneLookupMapsToCharsetPositions(t *testing.T) {
	positions, fail := IsSaneLookup([]byte("ABC"), []byte("CAB"))
	if fail != 0 {
		t.Fatalf("unexpected failure at position %d", fail)
	}
	want := []int{2, 0, 1}
	for i, p := range positions {
		if p != want[i] {
			t.Errorf("positions[%d] = %d, want %d", i, p, want[i])
		}
	}
}

func TestIsSaneLookupReportsFirstAbsentByte(t *testing.T) {
	_, fail := IsSaneLookup([]byte("ABC"), []byte("ABX"))
	if fail != 3 {
		t.Errorf("fail = %d, want 3", fail)
	}
}

func TestCountDigitsCountsConsecutiveDigitsFromStart(t *testing.T) {
	if got := CountDigits([]byte("123abc"), 0); got != 3 {
		t.Errorf("CountDigits = %d, want 3", got)
	}
	if got := CountDigits([]byte("123abc"), 3); got != 0 {
		t.Errorf("CountDigits at non-digit start = %d, want 0", got)
	}
}

func TestTwoDigitLookaheadRequiresBothBytesDigits(t *testing.T) {
	if !TwoDigitLookahead([]byte("12ab"), 0) {
		t.Error("expected true for \"12\"")
	}
	if TwoDigitLookahead([]byte("1a"), 0) {
		t.Error("expected false for \"1a\"")
	}
	if TwoDigitLookahead([]byte("1"), 0) {
		t.Error("expected false when only one byte remains")
	}
}

func TestIsArsenicExcludesConfusableLetters(t *testing.T) {
	for _, c := range []byte{'I', 'O', 'Q'} {
		if IsChr(Arsenic, c) {
			t.Errorf("%q should not be in the Arsenic (VIN) set", c)
		}
	}
	if !IsChr(Arsenic, 'A') {
		t.Error("'A' should be in the Arsenic (VIN) set")
	}
}

func TestIsTechnetiumMatchesCode39Alphabet(t *testing.T) {
	for _, c := range []byte(" -.$/+%") {
		if !IsChr(Technetium, c) {
			t.Errorf("%q should be in the Technetium (Code 39) set", c)
		}
	}
	if IsChr(Technetium, '@') {
		t.Error("'@' should not be in the Technetium (Code 39) set")
	}
}
