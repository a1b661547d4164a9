// Package charclass provides the 256-entry byte classification table
// shared by every linear encoder. It is the only place that inspects
// raw bytes after ECI conversion.
package charclass

// Flag is a bitset of character classes a byte may belong to.
type Flag uint32

const (
	Digit Flag = 1 << iota // '0'-'9'
	SetA                   // Code 128 set A: control chars + upper + punctuation
	SetB                   // Code 128 set B: printable ASCII 32-127
	SetC                   // Code 128 set C: digit pairs only (handled by caller, flag marks digit membership)
	ISO646                 // ISO/IEC 646 invariant subset
	UpperHex               // 'A'-'F'
	LowerHex               // 'a'-'f'
	Space                  // ' '
	Minus                  // '-'
	Period                 // '.'
	Plus                   // '+'
	Hash                    // '#'
	Asterisk                // '*'
	Technetium              // Code 39 "silver" set: digits, upper, space, -.$/+%
	Arsenic                 // VIN transliteration set: digits + upper minus I,O,Q
)

var table [256]Flag

func init() {
	for b := 0; b < 256; b++ {
		var f Flag
		c := byte(b)
		switch {
		case c >= '0' && c <= '9':
			f |= Digit | SetC
		}
		if c >= 0x20 && c <= 0x5f {
			f |= SetA
		}
		if c < 0x20 || c == 0x7f {
			f |= SetA
		}
		if c >= 0x20 && c <= 0x7f {
			f |= SetB
		}
		if isISO646(c) {
			f |= ISO646
		}
		if c >= 'A' && c <= 'F' {
			f |= UpperHex
		}
		if c >= 'a' && c <= 'f' {
			f |= LowerHex
		}
		switch c {
		case ' ':
			f |= Space
		case '-':
			f |= Minus
		case '.':
			f |= Period
		case '+':
			f |= Plus
		case '#':
			f |= Hash
		case '*':
			f |= Asterisk
		}
		if isTechnetium(c) {
			f |= Technetium
		}
		if isArsenic(c) {
			f |= Arsenic
		}
		table[b] = f
	}
}

func isISO646(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	}
	switch c {
	case ' ', '!', '"', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '_':
		return true
	}
	return false
}

// isTechnetium is Code 39's "silver" alphabet: digits, uppercase, space and
// the six symbols -.$/+%.
func isTechnetium(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return true
	}
	switch c {
	case ' ', '-', '.', '$', '/', '+', '%':
		return true
	}
	return false
}

// isArsenic is the VIN transliteration alphabet: digits and uppercase
// letters excluding I, O and Q (visually confusable with 1 and 0).
func isArsenic(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return c != 'I' && c != 'O' && c != 'Q'
	}
	return false
}

// IsChr reports whether byte b belongs to every class set in flags.
func IsChr(flags Flag, b byte) bool {
	return table[b]&flags == flags
}

// IsSane scans src and returns the 1-based index of the first byte that is
// NOT a member of flags, or 0 if every byte qualifies.
func IsSane(flags Flag, src []byte) int {
	for i, b := range src {
		if table[b]&flags != flags {
			return i + 1
		}
	}
	return 0
}

// IsSaneLookup maps every byte of src to its index within charset (the
// position of the matching byte in charset), failing with the 1-based
// position of the first byte absent from charset.
func IsSaneLookup(charset []byte, src []byte) ([]int, int) {
	index := make(map[byte]int, len(charset))
	for i, c := range charset {
		if _, exists := index[c]; !exists {
			index[c] = i
		}
	}
	positions := make([]int, len(src))
	for i, b := range src {
		pos, ok := index[b]
		if !ok {
			return nil, i + 1
		}
		positions[i] = pos
	}
	return positions, 0
}

// CountDigits returns the length of the run of consecutive digit bytes
// starting at src[start] (0 if src[start] is not a digit).
func CountDigits(src []byte, start int) int {
	n := 0
	for start+n < len(src) && src[start+n] >= '0' && src[start+n] <= '9' {
		n++
	}
	return n
}

// TwoDigitLookahead reports whether src[pos] and src[pos+1] are both
// digits, the look-ahead PDF417/Data Matrix encoders use to decide digit-pair
// compaction.
func TwoDigitLookahead(src []byte, pos int) bool {
	return pos+1 < len(src) && charIsDigit(src[pos]) && charIsDigit(src[pos+1])
}

func charIsDigit(b byte) bool { return b >= '0' && b <= '9' }
