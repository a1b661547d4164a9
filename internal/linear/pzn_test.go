package linear

import (
	"testing"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func TestEncodePZNComputesCheckDigitInHRT(t *testing.T) {
	// digits 1,2,3,4,5,6 weighted 1..6: sum = 1+4+9+16+25+36 = 91, 91%11 = 3
	result, err := encodePZN(registry.Request{Source: []byte("123456")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HRT != "PZN-1234563" {
		t.Errorf("HRT = %q, want %q", result.HRT, "PZN-1234563")
	}
}

func TestEncodePZNRejectsWrongLength(t *testing.T) {
	_, err := encodePZN(registry.Request{Source: []byte("12345")})
	if err == nil {
		t.Fatal("expected error for 5-digit PZN")
	}
}

func TestEncodePZNRejectsNonDigits(t *testing.T) {
	_, err := encodePZN(registry.Request{Source: []byte("12345A")})
	if err == nil {
		t.Fatal("expected error for non-digit input")
	}
}
