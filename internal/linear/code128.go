package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/gs1"
	"github.com/uSwapExchange/symcore/internal/registry"
)

// Code 128 codeset switch/special codeword values, shared across A/B/C
// (see code128patterns.go for the bar/space pattern each maps to).
const (
	code128Shift = 98
	code128CodeC = 99
	code128CodeB = 100
	code128CodeA = 101
)

type code128Set int

const (
	code128SetA code128Set = iota
	code128SetB
	code128SetC
)

func init() {
	registry.Register(registry.Code128, encodeCode128(false, false))
	registry.Register(registry.Code128AB, encodeCode128(true, false))
	registry.Register(registry.GS1_128, encodeCode128(false, true))
}

// encodeCode128 returns the Code 128 encoder. restrictAB disables the C
// codeset entirely (the Code128AB variant some carriers require, since
// a C-set digit pair can be misread as a check digit by older
// parsers). gs1Mode wraps the source through the GS1 AI reducer first
// and opens the symbol with the leading FNC1 a GS1-128 reader expects.
func encodeCode128(restrictAB, gs1Mode bool) registry.EncodeFunc {
	return func(req registry.Request) (registry.Result, error) {
		source := req.Source
		if len(source) == 0 {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
		}
		if gs1Mode {
			reduced, err := gs1.Verify(source, gs1.Options{Parens: req.GS1Parens, NoCheck: req.GS1NoCheck})
			if err != nil {
				if gerr, ok := err.(*gs1.Error); ok && gerr.Fatal {
					return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: gerr.Message}
				}
			}
			source = reduced
			if len(source) == 0 {
				return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
			}
		}

		values, err := code128Values(source, restrictAB, gs1Mode)
		if err != nil {
			return registry.Result{}, err
		}

		check := values[0]
		for i := 1; i < len(values); i++ {
			check += values[i] * i
		}
		check %= 103
		values = append(values, check)

		var pattern strings.Builder
		for _, v := range values {
			pattern.WriteString(code128PatternFor(v))
		}
		pattern.WriteString(code128Stop)

		return registry.Result{
			WidthRows:     [][]byte{widthStringBytes(pattern.String())},
			HRT:           code128HRT(source),
			MinHeight:     10.0,
			DefaultHeight: 50.0,
		}, nil
	}
}

// code128HRT renders the human-readable text, substituting the GS1
// FNC1 separator byte for the parenthesis-free AI markers readers
// conventionally print it as.
func code128HRT(source []byte) string {
	if !bytesContainsByte(source, gs1.FNC1) {
		return string(source)
	}
	return strings.ReplaceAll(string(source), string(rune(gs1.FNC1)), " ")
}

func bytesContainsByte(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

// code128Values runs the codeset-selection walk: maximal runs of four
// or more digits latch into Set C (packed two digits per codeword),
// everything else stays in A or B with a SHIFT for a single
// off-codeset character and a CODE A/CODE B switch otherwise.
func code128Values(data []byte, restrictAB, gs1Mode bool) ([]int, error) {
	values := make([]int, 0, len(data))
	cur := code128StartSet(data, restrictAB)
	values = append(values, code128StartValue(cur))
	if gs1Mode {
		values = append(values, code128FNC1)
	}

	i := 0
	for i < len(data) {
		b := data[i]
		if b == gs1.FNC1 {
			values = append(values, code128FNC1)
			i++
			continue
		}

		if !restrictAB && cur != code128SetC && code128DigitRun(data[i:]) >= 4 {
			values = append(values, code128CodeC)
			cur = code128SetC
			continue
		}

		if cur == code128SetC {
			if code128DigitRun(data[i:]) >= 2 {
				d1 := int(data[i] - '0')
				d2 := int(data[i+1] - '0')
				values = append(values, d1*10+d2)
				i += 2
				continue
			}
			next := code128SetB
			if _, ok := code128ValueA(data[i]); ok {
				if _, okB := code128ValueB(data[i]); !okB {
					next = code128SetA
				}
			}
			values = append(values, code128SwitchValue(next))
			cur = next
			continue
		}

		if cur == code128SetA {
			if v, ok := code128ValueA(b); ok {
				values = append(values, v)
				i++
				continue
			}
			if v, ok := code128ValueB(b); ok {
				values = append(values, code128Shift, v)
				i++
				continue
			}
			return nil, &registry.Err{Code: registry.ErrInvalidData, Message: "character not representable in Code 128"}
		}

		if v, ok := code128ValueB(b); ok {
			values = append(values, v)
			i++
			continue
		}
		if v, ok := code128ValueA(b); ok {
			values = append(values, code128Shift, v)
			i++
			continue
		}
		return nil, &registry.Err{Code: registry.ErrInvalidData, Message: "character not representable in Code 128"}
	}

	return values, nil
}

func code128StartSet(data []byte, restrictAB bool) code128Set {
	if !restrictAB && code128DigitRun(data) >= 4 {
		return code128SetC
	}
	if len(data) > 0 {
		if _, ok := code128ValueA(data[0]); ok {
			if _, ok := code128ValueB(data[0]); !ok {
				return code128SetA
			}
		}
	}
	return code128SetB
}

func code128StartValue(s code128Set) int {
	switch s {
	case code128SetA:
		return code128StartA
	case code128SetC:
		return code128StartC
	default:
		return code128StartB
	}
}

func code128SwitchValue(s code128Set) int {
	switch s {
	case code128SetA:
		return code128CodeA
	case code128SetC:
		return code128CodeC
	default:
		return code128CodeB
	}
}

// code128DigitRun counts the ASCII-digit run at the front of b, not
// crossing a GS1 FNC1 marker.
func code128DigitRun(b []byte) int {
	n := 0
	for n < len(b) && b[n] != gs1.FNC1 && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	return n
}

func code128ValueA(c byte) (int, bool) {
	switch {
	case c <= 31:
		return int(c) + 64, true
	case c >= 32 && c <= 95:
		return int(c) - 32, true
	}
	return 0, false
}

func code128ValueB(c byte) (int, bool) {
	if c >= 32 && c <= 127 {
		return int(c) - 32, true
	}
	return 0, false
}
