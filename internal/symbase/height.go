package symbase

// HeightParams mirrors the inputs a set_height() routine takes: the
// standard's min/default/max X-height, the caller's requested total
// height (0 if unset), and the number of symbol rows.
type HeightParams struct {
	Min, Default, Max float64
	UserHeight        float64
	HeightPerRow      bool
	Rows              int
	// FixedRowHeight carries any rows whose height the caller already
	// pinned (0 entries are "use computed value"); its length must equal
	// Rows.
	FixedRowHeight []float64
}

// SetHeight computes the per-row heights and total symbol height,
// returning whether the result is noncompliant with Min/Max (a warning
// only surfaced by the caller when CompliantHeight is set).
func SetHeight(p HeightParams) (rowHeight []float64, total float64, noncompliant bool) {
	rowHeight = make([]float64, p.Rows)
	copy(rowHeight, p.FixedRowHeight)

	zeroCount := 0
	fixedSum := 0.0
	for _, h := range rowHeight {
		if h == 0 {
			zeroCount++
		} else {
			fixedSum += h
		}
	}

	var perRow float64
	switch {
	case p.UserHeight > 0 && p.HeightPerRow:
		perRow = p.UserHeight
	case p.UserHeight > 0 && zeroCount > 0:
		perRow = (p.UserHeight - fixedSum) / float64(zeroCount)
	default:
		perRow = p.Default
	}
	if perRow < 0.5 {
		perRow = 0.5
	}

	for i := range rowHeight {
		if rowHeight[i] == 0 {
			rowHeight[i] = perRow
		}
		total += rowHeight[i]
	}

	if p.Min > 0 && total < p.Min {
		noncompliant = true
	}
	if p.Max > 0 && total > p.Max {
		noncompliant = true
	}
	return rowHeight, total, noncompliant
}
