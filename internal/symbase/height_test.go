package symbase

import "testing"

func TestSetHeightUsesDefaultWhenNoUserHeight(t *testing.T) {
	rowHeight, total, noncompliant := SetHeight(HeightParams{
		Min: 5, Default: 10, Max: 50,
		Rows:           2,
		FixedRowHeight: []float64{0, 0},
	})
	if total != 20 {
		t.Errorf("total = %v, want 20", total)
	}
	if noncompliant {
		t.Error("expected compliant result")
	}
	for i, h := range rowHeight {
		if h != 10 {
			t.Errorf("rowHeight[%d] = %v, want 10", i, h)
		}
	}
}

func TestSetHeightDistributesUserHeightAcrossZeroRows(t *testing.T) {
	_, total, _ := SetHeight(HeightParams{
		Default: 10, UserHeight: 30,
		Rows:           2,
		FixedRowHeight: []float64{0, 0},
	})
	if total != 30 {
		t.Errorf("total = %v, want 30", total)
	}
}

func TestSetHeightPerRowUsesUserHeightDirectly(t *testing.T) {
	rowHeight, total, _ := SetHeight(HeightParams{
		Default: 10, UserHeight: 7, HeightPerRow: true,
		Rows:           3,
		FixedRowHeight: []float64{0, 0, 0},
	})
	if total != 21 {
		t.Errorf("total = %v, want 21", total)
	}
	for i, h := range rowHeight {
		if h != 7 {
			t.Errorf("rowHeight[%d] = %v, want 7", i, h)
		}
	}
}

func TestSetHeightFlagsBelowMinimum(t *testing.T) {
	_, _, noncompliant := SetHeight(HeightParams{
		Min: 100, Default: 10, Max: 0,
		Rows:           1,
		FixedRowHeight: []float64{0},
	})
	if !noncompliant {
		t.Error("expected noncompliant result when total falls below Min")
	}
}

func TestSetHeightRespectsFixedRowsWhenComputingRemainder(t *testing.T) {
	rowHeight, total, _ := SetHeight(HeightParams{
		Default: 10, UserHeight: 30,
		Rows:           2,
		FixedRowHeight: []float64{20, 0},
	})
	if rowHeight[0] != 20 {
		t.Errorf("fixed row height changed to %v, want unchanged 20", rowHeight[0])
	}
	if rowHeight[1] != 10 {
		t.Errorf("computed row height = %v, want 10 (30-20 remainder)", rowHeight[1])
	}
	if total != 30 {
		t.Errorf("total = %v, want 30", total)
	}
}
