// Package pdf417 implements PDF417 and MicroPDF417: Appendix D's
// Numeric, Text, and Byte compaction submodes, with the full
// mid-message TEX/BYT/NUM block segmentation (segmentation.go) and
// Text submode's ALPHA/LOWER/MIXED/PUNCT latch-switching state
// machine (text.go). GF(929) Reed-Solomon error correction lives in
// internal/rs/wide.go; row/column/cluster layout is the standard's
// "symbol structure".
package pdf417

const (
	latchText    = 900
	latchByte6   = 901 // byte compaction, count not a multiple of six
	latchNumeric = 902
	shiftByte    = 913 // single byte while latched in Text
	latchByteAny = 924 // byte compaction, exact multiple of six
	padCodeword  = 900
)

// numericCompaction implements Appendix D's numeric submode: each
// group of up to 44 digits is treated as a decimal integer with a
// leading "1" digit prepended (to preserve leading zeros), then
// converted to base 900.
func numericCompaction(digits []byte) []int {
	var out []int
	for i := 0; i < len(digits); i += 44 {
		end := i + 44
		if end > len(digits) {
			end = len(digits)
		}
		out = append(out, numericGroup(digits[i:end])...)
	}
	return out
}

func numericGroup(digits []byte) []int {
	value := make([]byte, 0, len(digits)+1)
	value = append(value, 1)
	for _, d := range digits {
		value = append(value, d-'0')
	}
	n := big10(value)
	var rev []int
	for !n.isZero() {
		var r int
		n, r = n.divMod(900)
		rev = append(rev, r)
	}
	if len(rev) == 0 {
		rev = []int{0}
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[i] = v
	}
	reverseInts(out)
	return out
}

func reverseInts(v []int) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// big10 is a minimal base-10-digit big integer, just large enough to
// support the repeated divide-by-900 numericGroup needs; math/big
// would also serve but a small hand-rolled numeric helper keeps this
// one routine's working storage plain byte slices.
type big10 []byte

func (n big10) isZero() bool {
	for _, d := range n {
		if d != 0 {
			return false
		}
	}
	return true
}

func (n big10) divMod(divisor int) (big10, int) {
	quotient := make(big10, len(n))
	remainder := 0
	for i, d := range n {
		cur := remainder*10 + int(d)
		quotient[i] = byte(cur / divisor)
		remainder = cur % divisor
	}
	// strip leading zero quotient digits
	start := 0
	for start < len(quotient)-1 && quotient[start] == 0 {
		start++
	}
	return quotient[start:], remainder
}

// byteCompaction implements Appendix D's byte submode: every run of 6
// bytes converts to 5 base-900 codewords via big-endian base-256 to
// base-900 conversion; a trailing partial run (1-5 bytes) emits one
// codeword per byte.
func byteCompaction(data []byte) []int {
	var out []int
	i := 0
	for ; i+6 <= len(data); i += 6 {
		out = append(out, sixBytesToFive900(data[i:i+6])...)
	}
	for ; i < len(data); i++ {
		out = append(out, int(data[i]))
	}
	return out
}

func sixBytesToFive900(b []byte) []int {
	var value uint64
	for _, x := range b {
		value = value*256 + uint64(x)
	}
	out := make([]int, 5)
	for i := 4; i >= 0; i-- {
		out[i] = int(value % 900)
		value /= 900
	}
	return out
}

