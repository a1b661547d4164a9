package symcore

import (
	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/symbase"
)

const maxHRT = 256

// Encode runs the encoder selected by sym.Symbology against source,
// filling in sym.EncodedData, Rows, Width, RowHeight, Height and Text.
// It returns nil on success, an *EncodeError in the warning range
// (1-4) on noncompliance, or an *EncodeError with a failure code
// otherwise.
func Encode(sym *Symbol, source []byte) error {
	return EncodeSegs(sym, []Segment{{Source: source, ECI: sym.ECI}})
}

// EncodeSegs is the multi-ECI-segment counterpart of Encode, for
// symbologies that admit more than one Segment.
func EncodeSegs(sym *Symbol, segs []Segment) error {
	if len(segs) == 0 {
		return promote(sym, newError(CodeInvalidData, "no input data"))
	}
	if len(segs) > 1 && !sym.Symbology.IsMatrix() {
		return promote(sym, newError(CodeInvalidOption, "multi-segment ECI input is only supported by matrix symbologies"))
	}

	req := registry.Request{
		Source:          segs[0].Source,
		ECI:             sym.ECI,
		Option1:         sym.Option1,
		Option2:         sym.Option2,
		Option3:         sym.Option3,
		GS1:             sym.InputMode&ModeGS1 != 0,
		GS1Parens:       sym.InputMode&ModeGS1Parens != 0,
		GS1NoCheck:      sym.InputMode&ModeGS1NoCheck != 0,
		DataMode:        sym.InputMode&ModeData != 0,
		Escape:          sym.InputMode&ModeEscape != 0,
		ExtraEscape:     sym.InputMode&ModeExtraEscape != 0,
		Fast:            sym.InputMode&ModeFast != 0,
		ReaderInit:      sym.OutputOptions&OutReaderInit != 0,
		StructAppIndex:  sym.StructApp.Index,
		StructAppCount:  sym.StructApp.Count,
		StructAppID:     sym.StructApp.ID,
		Primary:         sym.Primary,
		CompliantHeight: sym.OutputOptions&OutCompliantHeight != 0,
		HeightPerRow:    sym.InputMode&ModeHeightPerRow != 0,
		UserHeight:      sym.Height,
		Debugf:          sym.logf,
	}
	for _, s := range segs {
		req.Segs = append(req.Segs, registry.Segment{Source: s.Source, ECI: s.ECI})
	}

	result, err := registry.Dispatch(sym.Symbology, req)
	if err != nil {
		rerr, ok := err.(*registry.Err)
		if !ok {
			return promote(sym, newError(CodeEncodingProblem, "%s", err.Error()))
		}
		return promote(sym, &EncodeError{Code: Code(rerr.Code), Message: rerr.Message})
	}

	sym.EncodedData = nil
	sym.Rows = 0
	sym.Width = 0

	if sym.Symbology.IsMatrix() {
		assembleMatrix(sym, result)
	} else {
		assembleLinear(sym, result)
	}

	rowHeight, total, noncompliant := symbase.SetHeight(symbase.HeightParams{
		Min:            result.MinHeight,
		Default:        result.DefaultHeight,
		Max:            result.MaxHeight,
		UserHeight:     sym.Height,
		HeightPerRow:   sym.InputMode&ModeHeightPerRow != 0,
		Rows:           sym.Rows,
		FixedRowHeight: result.RowHeight,
	})
	sym.RowHeight = rowHeight
	sym.Height = total

	sym.Text = result.HRT
	var warnErr *EncodeError
	if len(sym.Text) > maxHRT {
		sym.Text = sym.Text[:maxHRT]
		warnErr = &EncodeError{Code: CodeHRTTruncated, Message: "human-readable text truncated"}
	}
	if noncompliant && sym.OutputOptions&OutCompliantHeight != 0 {
		warnErr = &EncodeError{Code: CodeNoncompliant, Message: "symbol height outside the standard's recommended range"}
	}
	if result.WarnCode != 0 {
		warnErr = &EncodeError{Code: Code(result.WarnCode), Message: result.WarnMessage}
	}

	if warnErr != nil {
		sym.Errtxt = warnErr.Message
		return promote(sym, warnErr)
	}
	sym.Errtxt = ""
	return nil
}

func assembleLinear(sym *Symbol, result registry.Result) {
	for _, row := range result.WidthRows {
		packed, width := symbase.Expand(symbase.WidthString(row))
		sym.EncodedData = append(sym.EncodedData, packed)
		if width > sym.Width {
			sym.Width = width
		}
		sym.Rows++
	}
}

func assembleMatrix(sym *Symbol, result registry.Result) {
	sym.Width = result.Cols
	sym.Rows = result.Rows
	rowBytes := (result.Cols + 7) / 8
	sym.EncodedData = make([][]byte, result.Rows)
	for r := 0; r < result.Rows; r++ {
		sym.EncodedData[r] = make([]byte, rowBytes)
		for c := 0; c < result.Cols; c++ {
			if r < len(result.Modules) && c < len(result.Modules[r]) && result.Modules[r][c] {
				sym.EncodedData[r][c>>3] |= 0x80 >> uint(c&7)
			}
		}
	}
}
