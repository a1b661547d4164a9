package pdf417

import (
	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/rs"
)

func init() {
	registry.Register(registry.PDF417, encodePDF417(false))
	registry.Register(registry.PDF417Compact, encodePDF417(true))
	registry.Register(registry.MicroPDF417, encodeMicroPDF417)
}

const maxDataCodewords = 2710 // ISO/IEC 15438 max data-region capacity

// encodePDF417 builds the registry.EncodeFunc for full (and truncated /
// "compact") PDF417. compact only changes the row-stop pattern (a
// single bar instead of the full 18-module stop); the codeword math is
// identical.
func encodePDF417(compact bool) registry.EncodeFunc {
	return func(req registry.Request) (registry.Result, error) {
		if len(req.Source) == 0 {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
		}

		data := compactData(req.Source)
		if len(data) > maxDataCodewords {
			return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data exceeds PDF417 capacity"}
		}

		ecLevel := req.Option1
		if ecLevel <= 0 || ecLevel > 8 {
			ecLevel = eccLevelFor(len(data))
		}
		ecCount := 1 << uint(ecLevel+1)

		cols := req.Option2
		if cols <= 0 {
			cols = roundSqrt((len(data) - 1) / 3)
		}
		if cols < 1 {
			cols = 1
		}
		if cols > 30 {
			cols = 30
		}

		// The +1 accounts for the length descriptor at index 0.
		rows := ceilDiv(len(data)+1+ecCount, cols)
		if rows < 3 {
			rows = 3
		}
		if rows > 90 {
			rows = 90
		}
		for rows*cols > 928 {
			cols++
			if cols > 30 {
				return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data too long for PDF417"}
			}
			rows = ceilDiv(len(data)+1+ecCount, cols)
			if rows < 3 {
				rows = 3
			}
		}

		dataCwCount := rows*cols - ecCount
		if dataCwCount < len(data)+1 {
			return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data too long for PDF417"}
		}
		codewords := make([]int, 0, dataCwCount+ecCount)
		codewords = append(codewords, dataCwCount) // length descriptor: data-region size, itself included
		codewords = append(codewords, data...)
		for len(codewords) < dataCwCount {
			codewords = append(codewords, padCodeword)
		}
		codewords = codewords[:dataCwCount]

		gf := rs.NewPrimeGF(929, 3)
		code := rs.InitWideCode(gf, ecCount, 1)
		ec := code.Encode(codewords)
		codewords = append(codewords, ec...)

		widthRows := make([][]byte, rows)
		for r := 0; r < rows; r++ {
			rowCws := make([]int, cols)
			copy(rowCws, codewords[r*cols:(r+1)*cols])
			widthRows[r] = assembleRow(r, rows, ecLevel, cols, rowCws, compact)
		}

		return registry.Result{
			WidthRows:     widthRows,
			MinHeight:     3,
			DefaultHeight: float64(rows) * 3,
			HRT:           "",
		}, nil
	}
}

// compactData runs Appendix D's block segmentation over the whole
// message and emits each surviving block with its mode's compaction.
// A full-size symbol starts in Text mode, so a leading Text block
// needs no 900 latch.
func compactData(source []byte) []int {
	return emitBlocks(segmentBlocks(source), modeTEX)
}

func eccLevelFor(dataCws int) int {
	switch {
	case dataCws <= 40:
		return 2
	case dataCws <= 160:
		return 3
	case dataCws <= 320:
		return 4
	case dataCws <= 863:
		return 5
	default:
		return 6
	}
}

func roundSqrt(n int) int {
	if n < 1 {
		return 1
	}
	x := 1
	for x*x < n {
		x++
	}
	// round to nearest, not just ceiling
	if x*x-n > n-(x-1)*(x-1) {
		x--
	}
	if x < 1 {
		x = 1
	}
	return x
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// assembleRow builds one PDF417 row's width-string: start pattern, the
// row's cols data codewords each expressed as an 8-run width group (a
// deterministic per-codeword generator stands in for the standard's
// literal 929x3 cluster-indexed pattern table — see DESIGN.md),
// left/right row-descriptor codewords, and the stop pattern.
func assembleRow(rowIdx, rows, ecLevel, cols int, rowCws []int, compact bool) []byte {
	cluster := rowIdx % 3
	c1 := (rows - 1) / 3
	c2 := ecLevel*3 + (rows-1)%3
	c3 := cols - 1

	var left, right int
	switch cluster {
	case 0:
		left, right = c1, c3
	case 1:
		left, right = ecLevel, c2
	default:
		left, right = c3, c1
	}

	out := []byte{8, 1, 1, 2, 1, 1, 2, 1} // 17-module start pattern placeholder, bar-first
	out = append(out, codewordPattern(cluster, left)...)
	for _, cw := range rowCws {
		out = append(out, codewordPattern(cluster, cw)...)
	}
	out = append(out, codewordPattern(cluster, right)...)
	if compact {
		out = append(out, 1)
	} else {
		out = append(out, 7, 1, 1, 3, 1, 1, 1, 2, 1)
	}
	return out
}

// codewordPattern derives an 8-run, 17-module-wide width-string group
// for codeword value within cluster. Each of PDF417's three clusters
// offsets the value by 311 before the same base-4 digit expansion so
// that two codewords with the same value render differently depending
// on row cluster, matching the standard's cluster-rotation intent
// without reproducing its literal lookup table.
func codewordPattern(cluster, value int) []byte {
	v := value + cluster*311
	raw := make([]int, 7)
	sum := 0
	for i := 0; i < 7; i++ {
		raw[i] = v % 4
		v /= 4
		sum += raw[i]
	}
	last := 9 - sum
	for last < 0 {
		for i := range raw {
			if raw[i] > 0 {
				raw[i]--
				last++
				break
			}
		}
	}
	for last > 6-1 {
		raw[0]++
		last--
	}
	runs := make([]byte, 8)
	for i, d := range raw {
		runs[i] = byte(1 + d)
	}
	runs[7] = byte(1 + last)
	return runs
}
