package linear

import (
	"github.com/uSwapExchange/symcore/internal/registry"
)

// eanL is the "set A"/odd-parity 7-module digit pattern, given as a
// space-bar-space-bar run-length literal (the digit always follows a
// bar, so its first run is a space). eanR (the right-hand/"set C"
// pattern) is the same four widths read as a bar-space-bar-space run:
// R is L with bars and spaces swapped, and swapping an SBSB run's
// roles produces the identical width sequence read as BSBS, so one
// table serves both.
var eanL = [10]string{
	"3211", "2221", "2122", "1411", "1132",
	"1231", "1114", "1312", "1213", "3112",
}

// eanG is the "set B"/even-parity pattern used for EAN-13's left-hand
// digits when the parity table below calls for it.
var eanG = [10]string{
	"1123", "1222", "2212", "1141", "2311",
	"1321", "4111", "2131", "3121", "2113",
}

// ean13Parity gives, for each possible leading digit 0-9, the L/G
// sequence ('L'=odd/set-A, 'G'=even/set-B) the following six digits
// use; this is what lets EAN-13 encode 13 digits' worth of information
// in 12 explicit digit patterns plus a parity choice.
var ean13Parity = [10]string{
	"LLLLLL", "LLGLGG", "LLGGLG", "LLGGGL", "LGLLGG",
	"LGGLLG", "LGGGLL", "LGLGLG", "LGLGGL", "LGGLGL",
}

const (
	eanGuard  = "111"
	eanCenter = "11111"
)

func init() {
	registry.Register(registry.EAN13, encodeEAN13)
	registry.Register(registry.EAN8, encodeEAN8)
	registry.Register(registry.UPCA, encodeUPCA)
}

// encodeEAN13 accepts 12 or 13 digits (13th being the check digit,
// recomputed and verified if given, appended if not).
func encodeEAN13(req registry.Request) (registry.Result, error) {
	digits, err := allDigits(req.Source)
	if err != nil {
		return registry.Result{}, err
	}
	digits, err = withCheckDigit(digits, 12)
	if err != nil {
		return registry.Result{}, err
	}

	parity := ean13Parity[digits[0]]
	pattern := eanGuard
	for i := 0; i < 6; i++ {
		if parity[i] == 'L' {
			pattern += eanL[digits[i+1]]
		} else {
			pattern += eanG[digits[i+1]]
		}
	}
	pattern += eanCenter
	for i := 7; i < 13; i++ {
		pattern += eanL[digits[i]]
	}
	pattern += eanGuard

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(pattern)},
		HRT:           digitsToString(digits),
		MinHeight:     22.85,
		DefaultHeight: 22.85,
	}, nil
}

// encodeEAN8 accepts 7 or 8 digits; all left-hand digits use set A
// (EAN-8 has no implicit leading digit, unlike EAN-13).
func encodeEAN8(req registry.Request) (registry.Result, error) {
	digits, err := allDigits(req.Source)
	if err != nil {
		return registry.Result{}, err
	}
	digits, err = withCheckDigit(digits, 7)
	if err != nil {
		return registry.Result{}, err
	}

	pattern := eanGuard
	for i := 0; i < 4; i++ {
		pattern += eanL[digits[i]]
	}
	pattern += eanCenter
	for i := 4; i < 8; i++ {
		pattern += eanL[digits[i]]
	}
	pattern += eanGuard

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(pattern)},
		HRT:           digitsToString(digits),
		MinHeight:     18.0,
		DefaultHeight: 18.0,
	}, nil
}

// encodeUPCA accepts 11 or 12 digits (UPC-A is EAN-13's twelve-digit
// sibling: all left-hand digits are set A, no parity table needed
// since there is no thirteenth implicit digit).
func encodeUPCA(req registry.Request) (registry.Result, error) {
	digits, err := allDigits(req.Source)
	if err != nil {
		return registry.Result{}, err
	}
	digits, err = withCheckDigit(digits, 11)
	if err != nil {
		return registry.Result{}, err
	}

	pattern := eanGuard
	for i := 0; i < 6; i++ {
		pattern += eanL[digits[i]]
	}
	pattern += eanCenter
	for i := 6; i < 12; i++ {
		pattern += eanL[digits[i]]
	}
	pattern += eanGuard

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(pattern)},
		HRT:           digitsToString(digits),
		MinHeight:     22.85,
		DefaultHeight: 22.85,
	}, nil
}

// withCheckDigit normalizes digits to exactly dataLen+1 entries: if
// dataLen digits were given, it appends the computed GS1 mod-10 check
// digit; if dataLen+1 were given, it verifies the supplied check digit
// matches. Any other length is an error.
func withCheckDigit(digits []int, dataLen int) ([]int, error) {
	switch len(digits) {
	case 0:
		return nil, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	case dataLen:
		checks, _ := CheckDigits(digits, CDGS1Mod10)
		return append(digits, checks...), nil
	case dataLen + 1:
		want, _ := CheckDigits(digits[:dataLen], CDGS1Mod10)
		if digits[dataLen] != want[0] {
			return nil, &registry.Err{Code: registry.ErrInvalidCheck, Message: "check digit does not match"}
		}
		return digits, nil
	default:
		return nil, &registry.Err{Code: registry.ErrTooLong, Message: "wrong number of digits for this symbology"}
	}
}
