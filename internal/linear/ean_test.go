package linear

import (
	"testing"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func TestEncodeEAN13AppendsCheckDigit(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2}
	check := GS1Mod10(data)
	result, err := encodeEAN13(registry.Request{Source: []byte("123456789012")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := digitsToString(append(append([]int{}, data...), check))
	if result.HRT != want {
		t.Errorf("HRT = %q, want %q", result.HRT, want)
	}
	if result.WidthRows[0][0] != 1 {
		t.Errorf("width-string must start with a bar run (latch=1), got %d", result.WidthRows[0][0])
	}
}

func TestEncodeEAN13RejectsMismatchedCheckDigit(t *testing.T) {
	_, err := encodeEAN13(registry.Request{Source: []byte("1234567890127")})
	if err == nil {
		t.Fatal("expected error: \"1234567890127\" does not carry the correct check digit")
	}
}

func TestEncodeEAN13AcceptsSuppliedCorrectCheckDigit(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2}
	check := GS1Mod10(data)
	source := digitsToString(append(append([]int{}, data...), check))
	_, err := encodeEAN13(registry.Request{Source: []byte(source)})
	if err != nil {
		t.Fatalf("unexpected error for correct check digit: %v", err)
	}
}

func TestEncodeEAN8RejectsWrongLength(t *testing.T) {
	_, err := encodeEAN8(registry.Request{Source: []byte("123456")})
	if err == nil {
		t.Fatal("expected error for 6-digit EAN-8 input")
	}
}

func TestEncodeUPCAWidthStringSumsToFixedWidth(t *testing.T) {
	result, err := encodeUPCA(registry.Request{Source: []byte("01234567890")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := 0
	for _, w := range result.WidthRows[0] {
		sum += int(w)
	}
	// 3(guard) + 6*7(left digits) + 5(center) + 6*7(right digits) + 3(guard) = 95
	if sum != 95 {
		t.Errorf("UPC-A width-string sum = %d, want 95", sum)
	}
}
