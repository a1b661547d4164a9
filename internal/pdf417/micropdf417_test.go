package pdf417

import (
	"testing"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func TestEncodeMicroPDF417PicksSmallestFittingVariant(t *testing.T) {
	result, err := encodeMicroPDF417(registry.Request{Source: []byte("123")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WidthRows) == 0 {
		t.Fatal("expected at least one row")
	}
	// smallest variant with cols*rows-ec >= 3 data codewords (900 latch + 2 Text codewords) is {1,11,4}
	if len(result.WidthRows) != 11 {
		t.Errorf("rows = %d, want 11 (smallest fitting variant)", len(result.WidthRows))
	}
}

func TestEncodeMicroPDF417HonorsRequestedColumns(t *testing.T) {
	result, err := encodeMicroPDF417(registry.Request{Source: []byte("123"), Option2: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// smallest 4-column variant fitting 3 data codewords is {4,4,8}
	if len(result.WidthRows) != 4 {
		t.Errorf("rows = %d, want 4 (smallest fitting 4-column variant)", len(result.WidthRows))
	}
}

func TestEncodeMicroPDF417RejectsDataExceedingAllVariants(t *testing.T) {
	big := make([]byte, 2000)
	for i := range big {
		big[i] = 'x'
	}
	_, err := encodeMicroPDF417(registry.Request{Source: big})
	if err == nil {
		t.Fatal("expected error for data exceeding every variant's capacity")
	}
}

func TestEncodeMicroPDF417RejectsEmptyInput(t *testing.T) {
	_, err := encodeMicroPDF417(registry.Request{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
