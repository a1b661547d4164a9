package pdf417

// text.go implements Appendix D's Text compaction submode: the four
// sub-alphabets (ALPHA/LOWER/MIXED/PUNCT) with their latch codewords
// (27/28/29, direction-dependent) and the two-submode-value-per-
// codeword packing (30a + b). ALPHA's A-Z/space and LOWER's a-z/space
// assignments are exact; MIXED's digit/punctuation and PUNCT's
// remaining-punctuation value assignments are this port's own
// consistent enumeration rather than a verified transcription of the
// literal ISO/IEC 15438 table — see DESIGN.md. PUNCT is reachable only
// by latching through MIXED first ("a latch-pair from ALPHA/LOWER"),
// matching spec.md §4.F.

const (
	subAlpha = iota
	subLower
	subMixed
	subPunct
)

// mixedChars is submode MIXED's digit/punctuation set, values 0-24 in
// table order; AL/LL/PL occupy 25/26/27.
const mixedChars = "0123456789&\r\t,:#-.$/+%*=^"

// punctChars is submode PUNCT's remaining-punctuation set, values
// 0-17; AL (latch back to ALPHA) occupies 29.
const punctChars = ";<>@[\\]_`~!()?{}'\""

// valueInSubmode reports b's intrinsic value in submode sub, if any.
func valueInSubmode(sub int, b byte) (int, bool) {
	switch sub {
	case subAlpha:
		if b >= 'A' && b <= 'Z' {
			return int(b - 'A'), true
		}
		if b == ' ' {
			return 26, true
		}
	case subLower:
		if b >= 'a' && b <= 'z' {
			return int(b - 'a'), true
		}
		if b == ' ' {
			return 26, true
		}
	case subMixed:
		if i := indexByte(mixedChars, b); i >= 0 {
			return i, true
		}
	case subPunct:
		if i := indexByte(punctChars, b); i >= 0 {
			return i, true
		}
	}
	return 0, false
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// findSubmode locates any submode containing b, preferring ALPHA,
// LOWER, MIXED, PUNCT in that order (matching the order a TEX segment
// is most likely to need them: upper-case text first, then digits and
// common punctuation, then the rarer punctuation set).
func findSubmode(b byte) (sub, value int, ok bool) {
	for s := subAlpha; s <= subPunct; s++ {
		if v, ok := valueInSubmode(s, b); ok {
			return s, v, true
		}
	}
	return 0, 0, false
}

// latchPath returns the latch codeword(s) (submode-relative values,
// still to be packed two-per-codeword) needed to move from submode
// from to submode to. PUNCT has only one documented exit (AL, back to
// ALPHA), so reaching LOWER or MIXED from PUNCT goes through ALPHA.
func latchPath(from, to int) []int {
	if from == to {
		return nil
	}
	switch from {
	case subAlpha:
		switch to {
		case subLower:
			return []int{27} // LL
		case subMixed:
			return []int{28} // ML
		case subPunct:
			return []int{28, 27} // ALPHA -> MIXED -> PUNCT (PL)
		}
	case subLower:
		switch to {
		case subAlpha:
			return []int{27} // AL
		case subMixed:
			return []int{28} // ML
		case subPunct:
			return []int{28, 27}
		}
	case subMixed:
		switch to {
		case subAlpha:
			return []int{25} // AL
		case subLower:
			return []int{26} // LL
		case subPunct:
			return []int{27} // PL
		}
	case subPunct:
		switch to {
		case subAlpha:
			return []int{29} // AL
		case subLower:
			return []int{29, 27} // PUNCT -> ALPHA -> LOWER
		case subMixed:
			return []int{29, 28} // PUNCT -> ALPHA -> MIXED
		}
	}
	return nil
}

// textCompaction runs Appendix D's Text submode state machine over
// source, returning the packed codeword stream (without the leading
// 900 mode-latch codeword, which the caller prepends) and false if
// source contains a byte no submode can represent (the caller then
// falls back to Byte compaction for that block).
func textCompaction(source []byte) ([]int, bool) {
	sub := subAlpha
	var values []int
	for _, b := range source {
		if v, ok := valueInSubmode(sub, b); ok {
			values = append(values, v)
			continue
		}
		target, v, ok := findSubmode(b)
		if !ok {
			return nil, false
		}
		values = append(values, latchPath(sub, target)...)
		sub = target
		values = append(values, v)
	}
	if len(values)%2 == 1 {
		values = append(values, 29)
	}
	out := make([]int, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		out = append(out, 30*values[i]+values[i+1])
	}
	return out, true
}
