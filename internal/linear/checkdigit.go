// Package linear implements the linear (1D) symbology encoders: one
// routine per symbology (or per closely related family), sharing the
// check-digit, width-string and HRT helpers below.
//
// Check-digit polymorphism is modeled as a closed enum + dispatch
// rather than dynamic dispatch — CheckDigitKind is the enum and
// CheckDigits the dispatch every digit-valued encoder routes through.
package linear

// CheckDigitKind selects a CheckDigits algorithm. VIN's check is the
// one algorithm not enumerated here: it works on raw characters
// through a transliteration table with a fixed position excluded from
// the sum, so it keeps its own typed entry point, VINCheck.
type CheckDigitKind int

const (
	CDNone          CheckDigitKind = iota
	CDMod11Wrap10                  // Code 11 "C" digit
	CDMod11Wrap9                   // Code 11 "K" digit
	CDMod43Silver                  // Code 39, value is a silver-set index
	CDMod11PZN                     // PZN, positions 1-7 weighted 1-7
	CDGS1Mod10                     // alternating weights 3/1 from the right
	CDDPWeighted49                 // DP Leitcode/Identcode, weights 4/9 alternating from the right
	CDMSIMod10                     // MSI Plessey mod-10
	CDMSIMod10Mod10                // MSI Plessey mod-10 then mod-10 again
	CDMSIMod11IBM                  // MSI Plessey mod-11, weight wrap 7
	CDMSIMod11IBM10                // MSI Plessey mod-11 (IBM) then mod-10
	CDMSIMod11NCR                  // MSI Plessey mod-11, weight wrap 9
	CDMSIMod11NCR10                // MSI Plessey mod-11 (NCR) then mod-10
)

// CheckDigits runs the algorithm kind names over the payload's digit
// values (silver-set indexes for CDMod43Silver) and returns the check
// value(s) to append, in emission order. ok is false when the
// algorithm rejects the payload (CDMod11PZN disallows a check value
// of 10).
func CheckDigits(digits []int, kind CheckDigitKind) (checks []int, ok bool) {
	switch kind {
	case CDMod11Wrap10:
		return []int{Mod11Wrap(digits, 10)}, true
	case CDMod11Wrap9:
		return []int{Mod11Wrap(digits, 9)}, true
	case CDMod43Silver:
		return []int{mod43Sum(digits)}, true
	case CDMod11PZN:
		check, ok := PZNCheck(digits)
		return []int{check}, ok
	case CDGS1Mod10:
		return []int{GS1Mod10(digits)}, true
	case CDDPWeighted49:
		return []int{DPWeighted49(digits)}, true
	case CDMSIMod10:
		return []int{msiMod10(digits)}, true
	case CDMSIMod10Mod10:
		first := msiMod10(digits)
		return []int{first, msiMod10(append(append([]int{}, digits...), first))}, true
	case CDMSIMod11IBM:
		return []int{msiMod11(digits, 7)}, true
	case CDMSIMod11IBM10:
		first := msiMod11(digits, 7)
		return []int{first, msiMod10(append(append([]int{}, digits...), first))}, true
	case CDMSIMod11NCR:
		return []int{msiMod11(digits, 9)}, true
	case CDMSIMod11NCR10:
		first := msiMod11(digits, 9)
		return []int{first, msiMod10(append(append([]int{}, digits...), first))}, true
	}
	return nil, true
}

// Mod11Wrap computes the Code 11 check digit: weighted sum of digit
// values (mod-11 positions, '-' counts as 10) with weights cycling
// 1..wrap from the rightmost digit, result mod 11. A result of 10 is
// rendered as the character '-'.
func Mod11Wrap(digits []int, wrap int) int {
	sum, weight := 0, 1
	for i := len(digits) - 1; i >= 0; i-- {
		sum += digits[i] * weight
		weight++
		if weight > wrap {
			weight = 1
		}
	}
	return sum % 11
}

// mod43Alphabet is Code 39's check-digit alphabet order (the "silver
// set"): digits, uppercase, then the seven symbols.
var mod43Alphabet = []byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%")

// Mod43 computes the Code 39 check character from its mod-43 sum over
// mod43Alphabet.
func Mod43(values []int) byte {
	return mod43Alphabet[mod43Sum(values)]
}

func mod43Sum(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum % 43
}

// Mod43Value returns c's index in the mod-43 alphabet, or -1.
func Mod43Value(c byte) int {
	for i, a := range mod43Alphabet {
		if a == c {
			return i
		}
	}
	return -1
}

// PZNCheck computes the PZN check digit: sum over positions 1..7 with
// multipliers 1..7, mod 11; a result of 10 is invalid.
func PZNCheck(digits []int) (int, bool) {
	sum := 0
	for i, d := range digits {
		sum += d * (i + 1)
	}
	check := sum % 11
	return check, check != 10
}

// GS1Mod10 computes the standard GS1 check digit: alternating
// weights 3/1 starting with 3 on the rightmost digit, result is
// (10 - sum%10) % 10.
func GS1Mod10(digits []int) int {
	sum, weight := 0, 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += digits[i] * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	return (10 - sum%10) % 10
}

// DPWeighted49 computes the Deutsche Post Leitcode/Identcode check
// digit: weights 4 and 9 alternating from the rightmost digit, result
// (10 - sum%10) % 10.
func DPWeighted49(digits []int) int {
	sum, weight := 0, 4
	for i := len(digits) - 1; i >= 0; i-- {
		sum += digits[i] * weight
		if weight == 4 {
			weight = 9
		} else {
			weight = 4
		}
	}
	return (10 - sum%10) % 10
}

// vinWeights is the fixed positional weight table for VIN's weighted
// mod-11 check (position 9 is the check digit itself, weight 0 there
// in the reference sum but it occupies the position).
var vinWeights = []int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// vinTransliteration maps letters to their VIN numeric value; I, O, Q
// are disallowed.
func vinTransliteration(c byte) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	switch c {
	case 'I', 'O', 'Q':
		return 0, false
	case 'A', 'J':
		return 1, true
	case 'B', 'K', 'S':
		return 2, true
	case 'C', 'L', 'T':
		return 3, true
	case 'D', 'M', 'U':
		return 4, true
	case 'E', 'N', 'V':
		return 5, true
	case 'F', 'W':
		return 6, true
	case 'G', 'P', 'X':
		return 7, true
	case 'H', 'Y':
		return 8, true
	case 'R', 'Z':
		return 9, true
	}
	return 0, false
}

// VINCheck computes the VIN weighted mod-11 check digit over a 17-byte
// VIN (the check digit itself, at position 9 (0-based 8), is excluded
// from the weighted sum and may be any value in the input — the
// computed value replaces it). A result of 10 is rendered as 'X'.
func VINCheck(vin []byte) (byte, error) {
	if len(vin) != 17 {
		return 0, newLenError(len(vin))
	}
	sum := 0
	for i, c := range vin {
		if i == 8 {
			continue
		}
		v, ok := vinTransliteration(c)
		if !ok {
			return 0, newCharError(c)
		}
		sum += v * vinWeights[i]
	}
	check := sum % 11
	if check == 10 {
		return 'X', nil
	}
	return byte('0' + check), nil
}

func newLenError(n int) error {
	return &lenError{n}
}

type lenError struct{ n int }

func (e *lenError) Error() string { return "VIN must be exactly 17 characters" }

func newCharError(c byte) error { return &charError{c} }

type charError struct{ c byte }

func (e *charError) Error() string { return "VIN contains a disallowed character" }

// msiMod10 is the Luhn-style check used both standalone and as the
// second pass of the mod11+mod10 variants.
func msiMod10(digits []int) int {
	sum, double := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// msiMod11 computes the IBM (wrap 7) or NCR (wrap 9) mod-11 check.
func msiMod11(digits []int, wrap int) int {
	sum, weight := 0, 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += digits[i] * weight
		weight++
		if weight > wrap {
			weight = 2
		}
	}
	return (11 - sum%11) % 11
}

// msiCheckKinds maps MSI Plessey's Option2 variant selector 0-6 onto
// the shared check-digit dispatch.
var msiCheckKinds = [...]CheckDigitKind{
	CDNone, CDMSIMod10, CDMSIMod10Mod10,
	CDMSIMod11IBM, CDMSIMod11IBM10,
	CDMSIMod11NCR, CDMSIMod11NCR10,
}
