package datamatrix

import "testing"

func TestSmallestForPicksMinimalFittingSize(t *testing.T) {
	s, ok := smallestFor(3)
	if !ok || s.Size != 10 {
		t.Fatalf("smallestFor(3) = %+v, ok=%v, want size 10", s, ok)
	}
	s, ok = smallestFor(4)
	if !ok || s.Size != 12 {
		t.Fatalf("smallestFor(4) = %+v, ok=%v, want size 12", s, ok)
	}
}

func TestSmallestForRejectsOverLargestCapacity(t *testing.T) {
	_, ok := smallestFor(1559)
	if ok {
		t.Fatal("expected smallestFor to fail for data exceeding the largest symbol's capacity")
	}
}

func TestSymbolsTableIsSortedByIncreasingCapacity(t *testing.T) {
	for i := 1; i < len(symbols); i++ {
		if symbols[i].DataCW <= symbols[i-1].DataCW {
			t.Errorf("symbols[%d].DataCW = %d, want > symbols[%d].DataCW = %d", i, symbols[i].DataCW, i-1, symbols[i-1].DataCW)
		}
	}
}
