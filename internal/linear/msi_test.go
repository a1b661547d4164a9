package linear

import (
	"testing"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func TestEncodeMSINoneAppendsNoCheckDigit(t *testing.T) {
	result, err := encodeMSI(registry.Request{Source: []byte("1234"), Option2: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HRT != "1234" {
		t.Errorf("HRT = %q, want %q (no check digit appended)", result.HRT, "1234")
	}
}

func TestEncodeMSIMod10AppendsOneCheckDigit(t *testing.T) {
	digits := []int{1, 2, 3, 4}
	want := msiMod10(digits)
	result, err := encodeMSI(registry.Request{Source: []byte("1234"), Option2: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantHRT := "1234" + digitsToString([]int{want})
	if result.HRT != wantHRT {
		t.Errorf("HRT = %q, want %q", result.HRT, wantHRT)
	}
}

func TestEncodeMSIStartAndStopPatternsPresent(t *testing.T) {
	result, err := encodeMSI(registry.Request{Source: []byte("9")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := result.WidthRows[0]
	wantStart := widthStringBytes(msiStart)
	for i, w := range wantStart {
		if row[i] != w {
			t.Fatalf("start pattern mismatch at %d: got %d, want %d", i, row[i], w)
		}
	}
	wantStop := widthStringBytes(msiStop)
	tail := row[len(row)-len(wantStop):]
	for i, w := range wantStop {
		if tail[i] != w {
			t.Fatalf("stop pattern mismatch at %d: got %d, want %d", i, tail[i], w)
		}
	}
}

func TestEncodeMSIRejectsEmptyInput(t *testing.T) {
	_, err := encodeMSI(registry.Request{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
