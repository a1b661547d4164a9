package pdf417

import (
	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/rs"
)

// microVariant is one row of the MicroPDF417 {columns, data_cws} ->
// {rows, ec_cws} variant table. The real standard tables 34 (rows,
// columns) combinations with per-variant RAP (row address pattern)
// start values; this is a reduced table spanning columns 1-4 with this
// port's own EC counts (4 to 14, rising with symbol size), not the
// literal ISO/IEC 24728 Annex table — see DESIGN.md.
type microVariant struct {
	cols, rows, ecCws int
}

var microVariants = []microVariant{
	{1, 11, 4}, {1, 14, 4}, {1, 17, 4}, {1, 20, 4}, {1, 24, 4}, {1, 28, 4},
	{2, 8, 6}, {2, 11, 6}, {2, 14, 6}, {2, 17, 6}, {2, 20, 8}, {2, 23, 8}, {2, 26, 8},
	{3, 6, 8}, {3, 8, 8}, {3, 10, 8}, {3, 12, 8}, {3, 15, 8}, {3, 20, 8}, {3, 26, 8}, {3, 32, 10}, {3, 38, 10}, {3, 44, 10},
	{4, 4, 8}, {4, 6, 8}, {4, 8, 10}, {4, 10, 10}, {4, 12, 10}, {4, 15, 10}, {4, 20, 12}, {4, 26, 12}, {4, 32, 12}, {4, 38, 14}, {4, 44, 14},
}

func encodeMicroPDF417(req registry.Request) (registry.Result, error) {
	if len(req.Source) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}

	// MicroPDF417 runs the same Appendix D block segmentation as the
	// full-size symbol but starts in Byte mode, not Text: a leading
	// Byte block emits no latch, and a leading Text block needs the
	// 900 that a full-size symbol would omit.
	data := emitBlocks(segmentBlocks(req.Source), modeBYT)

	wantCols := req.Option2
	var chosen *microVariant
	for i := range microVariants {
		v := &microVariants[i]
		if wantCols != 0 && v.cols != wantCols {
			continue
		}
		if v.rows*v.cols-v.ecCws >= len(data) {
			if chosen == nil || v.rows*v.cols < chosen.rows*chosen.cols {
				chosen = v
			}
		}
	}
	if chosen == nil {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data too long for MicroPDF417"}
	}

	dataCwCount := chosen.rows*chosen.cols - chosen.ecCws
	codewords := make([]int, dataCwCount)
	copy(codewords, data)
	for i := len(data); i < dataCwCount; i++ {
		codewords[i] = padCodeword
	}

	gf := rs.NewPrimeGF(929, 3)
	code := rs.InitWideCode(gf, chosen.ecCws, 1)
	ec := code.Encode(codewords)
	codewords = append(codewords, ec...)

	widthRows := make([][]byte, chosen.rows)
	for r := 0; r < chosen.rows; r++ {
		rowCws := make([]int, chosen.cols)
		copy(rowCws, codewords[r*chosen.cols:(r+1)*chosen.cols])
		widthRows[r] = assembleMicroRow(r, chosen.rows, chosen.cols, rowCws)
	}

	return registry.Result{
		WidthRows:     widthRows,
		MinHeight:     2,
		DefaultHeight: float64(chosen.rows) * 2,
	}, nil
}

// assembleMicroRow mirrors assembleRow but without the 17/18-module
// start/stop patterns MicroPDF417 drops in favor of RAP (row address
// pattern) codewords at the left edge; the RAP value cycles with row
// index the same way the full-size left descriptor does.
func assembleMicroRow(rowIdx, rows, cols int, rowCws []int) []byte {
	cluster := rowIdx % 3
	rap := (rowIdx % 52) + 1

	out := []byte{1, 1, 1, 1, 1, 1} // reduced left RAP placeholder
	out = append(out, codewordPattern(cluster, rap%929)...)
	for _, cw := range rowCws {
		out = append(out, codewordPattern(cluster, cw)...)
	}
	out = append(out, 1, 1, 1, 1) // reduced right finder
	return out
}
