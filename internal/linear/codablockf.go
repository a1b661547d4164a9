package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

const codablockFRowLen = 8

func init() {
	registry.Register(registry.CodablockF, encodeCodablockF)
}

// encodeCodablockF wraps the Code 128 codeset walk (code128Values,
// shared with code128.go) across several stacked rows: each row is an
// ordinary Code 128 Set B symbol with one extra codeword — a row
// indicator — inserted right after the start character, and its own
// checksum and stop pattern. Option1 overrides the row width in
// characters; rows shorter than that are the last, partial row.
func encodeCodablockF(req registry.Request) (registry.Result, error) {
	rowLen := req.Option1
	if rowLen <= 0 {
		rowLen = codablockFRowLen
	}
	source := req.Source
	if len(source) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}

	var rows [][]byte
	for i := 0; i < len(source); i += rowLen {
		end := i + rowLen
		if end > len(source) {
			end = len(source)
		}
		rows = append(rows, source[i:end])
	}

	widthRows := make([][]byte, len(rows))
	for r, row := range rows {
		values, err := code128Values(row, false, false)
		if err != nil {
			return registry.Result{}, err
		}
		indicator := (r * 4) % 96
		withIndicator := append(append([]int{}, values[:1]...), append([]int{indicator}, values[1:]...)...)

		check := withIndicator[0]
		for i := 1; i < len(withIndicator); i++ {
			check += withIndicator[i] * i
		}
		check %= 103
		withIndicator = append(withIndicator, check)

		var b strings.Builder
		for _, v := range withIndicator {
			b.WriteString(code128PatternFor(v))
		}
		b.WriteString(code128Stop)
		widthRows[r] = widthStringBytes(b.String())
	}

	return registry.Result{
		WidthRows:     widthRows,
		HRT:           string(source),
		MinHeight:     float64(len(rows)) * 10.0,
		DefaultHeight: float64(len(rows)) * 10.0,
	}, nil
}
