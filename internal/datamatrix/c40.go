package datamatrix

// c40.go defines the C40 compaction mode's basic-set value table and
// the base-1600 triple-packing shared by C40, Text, and X12 (modes.go
// adds Text/X12/EDIFACT/BASE256's own value tables); lookahead.go picks
// which of the six modes covers each run of input.

// c40Value reports the C40 basic-set value (0-39) for b, and whether b
// is encodable without a shift into C40's basic set (space, 0-9, A-Z).
// Lowercase, punctuation and control bytes need C40's Shift1/2/3
// sub-sets and are treated as "not eligible" here: a run breaks at the
// first ineligible byte, which is always correct, just not always
// maximally compact.
func c40Value(b byte) (int, bool) {
	switch {
	case b == ' ':
		return 3, true
	case b >= '0' && b <= '9':
		return int(b-'0') + 4, true
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 14, true
	}
	return 0, false
}

// c40Eligible reports whether b belongs to C40's basic set.
func c40Eligible(b byte) bool {
	_, ok := c40Value(b)
	return ok
}

const (
	c40Latch   = 230
	c40Unlatch = 254
)

// encodeTriples packs run through valueOf as base-1600 triples two
// codewords at a time (formula 1600a+40b+c+1, shared by C40, Text, and
// X12). A final partial triple is zero-padded: harmless since the
// codeword count, driven by the symbol's data capacity rather than an
// in-band terminator, tells the decoder where the triple stream ends.
func encodeTriples(run []byte, valueOf func(byte) (int, bool)) []int {
	values := make([]int, len(run))
	for i, b := range run {
		values[i], _ = valueOf(b)
	}
	var out []int
	for i := 0; i < len(values); i += 3 {
		a, b, c := values[i], 0, 0
		if i+1 < len(values) {
			b = values[i+1]
		}
		if i+2 < len(values) {
			c = values[i+2]
		}
		packed := 1600*a + 40*b + c + 1
		out = append(out, packed/256, packed%256)
	}
	return out
}
