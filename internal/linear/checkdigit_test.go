package linear

import "testing"

func TestGS1Mod10KnownUPCCheckDigit(t *testing.T) {
	// "036000291452" is a standard UPC-A test number; 2 is the published
	// check digit for payload "03600029145".
	digits := []int{0, 3, 6, 0, 0, 0, 2, 9, 1, 4, 5}
	if got := GS1Mod10(digits); got != 2 {
		t.Errorf("GS1Mod10(%v) = %d, want 2", digits, got)
	}
}

func TestMod43MatchesAlphabetIndexSum(t *testing.T) {
	// values 1,2,3 sum to 6, and mod43Alphabet[6] == '6'.
	if got := Mod43([]int{1, 2, 3}); got != '6' {
		t.Errorf("Mod43 = %q, want '6'", got)
	}
}

func TestMod43ValueRoundTripsWithMod43Alphabet(t *testing.T) {
	for i, c := range mod43Alphabet {
		if got := Mod43Value(c); got != i {
			t.Errorf("Mod43Value(%q) = %d, want %d", c, got, i)
		}
	}
	if got := Mod43Value('!'); got != -1 {
		t.Errorf("Mod43Value('!') = %d, want -1", got)
	}
}

func TestVINCheckKnownGoodVIN(t *testing.T) {
	// 1M8GDM9AXKP042788 is a widely cited worked example for the ISO
	// 3779 weighted mod-11 check; its 9th character is the check digit.
	check, err := VINCheck([]byte("1M8GDM9AXKP042788"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check != 'X' {
		t.Errorf("VINCheck = %q, want 'X'", check)
	}
}

func TestVINCheckRejectsWrongLength(t *testing.T) {
	_, err := VINCheck([]byte("SHORT"))
	if err == nil {
		t.Fatal("expected error for non-17-character VIN")
	}
}

func TestVINCheckRejectsDisallowedLetters(t *testing.T) {
	for _, c := range []byte{'I', 'O', 'Q'} {
		vin := []byte("1M8GDM9AXKP042788")
		vin[0] = c
		if _, err := VINCheck(vin); err == nil {
			t.Errorf("expected error for VIN containing %q", c)
		}
	}
}

func TestPZNCheckRejectsCheckValueTen(t *testing.T) {
	// sum chosen so sum%11 == 10: positions 1..7 weighted 1..7.
	digits := []int{9, 9, 9, 9, 9, 9, 9} // sum = 9*(1+2+...+7) = 9*28 = 252, 252%11 = 10
	_, ok := PZNCheck(digits)
	if ok {
		t.Error("expected ok=false when check value is 10")
	}
}

func TestCheckDigitsMSIMod10MatchesStandaloneMod10(t *testing.T) {
	digits := []int{1, 2, 3, 4, 5}
	want := msiMod10(digits)
	got, ok := CheckDigits(digits, CDMSIMod10)
	if !ok || len(got) != 1 || got[0] != want {
		t.Errorf("CheckDigits(CDMSIMod10) = %v, want [%d]", got, want)
	}
}

func TestCheckDigitsMSIMod11IBMAppendsSecondMod10Pass(t *testing.T) {
	digits := []int{1, 2, 3, 4, 5}
	first := msiMod11(digits, 7)
	got, _ := CheckDigits(digits, CDMSIMod11IBM10)
	if len(got) != 2 || got[0] != first {
		t.Fatalf("CheckDigits(CDMSIMod11IBM10) = %v, first digit want %d", got, first)
	}
	wantSecond := msiMod10(append(append([]int{}, digits...), first))
	if got[1] != wantSecond {
		t.Errorf("second check digit = %d, want %d", got[1], wantSecond)
	}
}

func TestCheckDigitsNoneReturnsNil(t *testing.T) {
	got, ok := CheckDigits([]int{1, 2, 3}, CDNone)
	if !ok || got != nil {
		t.Errorf("CheckDigits(CDNone) = %v, want nil", got)
	}
}

func TestCheckDigitsDispatchMatchesTypedHelpers(t *testing.T) {
	digits := []int{0, 3, 6, 0, 0, 0, 2, 9, 1, 4, 5}
	cases := []struct {
		name string
		kind CheckDigitKind
		want int
	}{
		{"GS1Mod10", CDGS1Mod10, GS1Mod10(digits)},
		{"DPWeighted49", CDDPWeighted49, DPWeighted49(digits)},
		{"Mod11Wrap10", CDMod11Wrap10, Mod11Wrap(digits, 10)},
		{"Mod11Wrap9", CDMod11Wrap9, Mod11Wrap(digits, 9)},
		{"Mod43Silver", CDMod43Silver, mod43Sum(digits)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CheckDigits(digits, tc.kind)
			if !ok || len(got) != 1 || got[0] != tc.want {
				t.Errorf("CheckDigits(%s) = %v, want [%d]", tc.name, got, tc.want)
			}
		})
	}
}

func TestCheckDigitsPZNRejectsCheckValueTen(t *testing.T) {
	digits := []int{9, 9, 9, 9, 9, 9, 9}
	if _, ok := CheckDigits(digits, CDMod11PZN); ok {
		t.Error("expected ok=false when the PZN check value is 10")
	}
}
