// Package symbase holds shared post-processing: expanding a linear
// encoder's width-string into a packed module row, and computing
// per-row heights from a standard's min/default/max formula.
package symbase

// WidthString is the interior representation linear encoders build:
// each element is a run length in modules (1-9), starting with a bar
// (even indices are bars, odd are spaces). It is a sized slice of small
// integers, not ASCII digits, so no source-language character encoding
// of the width-string carries over.
type WidthString []byte

// Sum returns the total module width the string expands to.
func (w WidthString) Sum() int {
	total := 0
	for _, n := range w {
		total += int(n)
	}
	return total
}

// Expand paints one packed bitmap row from a width-string, alternating
// bar/space starting at latch=bar. The returned row is a
// big-endian-packed []byte of length ceil(width/8); moduleWidth is the
// number of modules painted (== w.Sum()).
func Expand(w WidthString) (row []byte, moduleWidth int) {
	width := w.Sum()
	row = make([]byte, (width+7)/8)
	latch := true // true = bar (dark), false = space
	col := 0
	for _, run := range w {
		if latch {
			for i := 0; i < int(run); i++ {
				row[col>>3] |= 0x80 >> uint(col&7)
				col++
			}
		} else {
			col += int(run)
		}
		latch = !latch
	}
	return row, width
}

// ExpandRows expands every row of a multi-row linear symbol (e.g.
// Codablock-F) in one call.
func ExpandRows(rows []WidthString) (packed [][]byte, width int) {
	packed = make([][]byte, len(rows))
	for i, w := range rows {
		row, moduleWidth := Expand(w)
		packed[i] = row
		if moduleWidth > width {
			width = moduleWidth
		}
	}
	return packed, width
}
