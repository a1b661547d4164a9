// Package maxicode implements MaxiCode: the Appendix A six-code-set
// text state machine (shifts, latches, C/D/E locks, Number
// Compression), mode 2/3 structured primary messages, GF(0x43)
// Reed-Solomon (primary EEC plus secondary interleaved odd/even ECC),
// and the fixed 30x33 module grid.
//
// The shift/latch/lock walk, the special-character resolution
// (characters present in several code sets pick the set of their
// neighbours), the nine-digit Number Compression block and the
// per-mode capacity limits follow ISO/IEC 16023's Appendix A
// processing step by step; internal/rs supplies the GF(0x43)
// arithmetic the same way internal/datamatrix shares internal/rs's
// GF(0x12d). Two documented reductions remain (see DESIGN.md): Set
// B's rarer punctuation and the Latin-1 upper range map through this
// port's own consistent value enumeration rather than a verified
// transcription of the Annex A table, and the ISO/IEC 16023 hexagon
// coordinate table is reduced to a row-major raster fill of the grid
// around a reserved bullseye, with the standard's six orientation
// marker pairs added.
package maxicode

import (
	"fmt"
	"strconv"

	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/rs"
)

const maxiPoly = 0x43

const (
	gridRows = 33
	gridCols = 30
)

// Symbol values shared across code sets.
const (
	maxiECI     = 27
	maxiNS      = 31 // Number Compression prefix
	maxiPad     = 33
	maxi2ShiftA = 56
	maxi3ShiftA = 57
	maxiLatchA  = 58 // from C/D/E
	maxiShiftB  = 59 // from A (the same value shifts A from B)
	maxiLatchB  = 63 // from A/C/D/E (doubles as Latch A from B)
)

func init() {
	registry.Register(registry.MaxiCode, encodeMaxiCode)
}

func encodeMaxiCode(req registry.Request) (registry.Result, error) {
	mode := req.Option1
	if mode <= 0 {
		if req.Primary == "" {
			mode = 4
		} else {
			mode = 2
			postcode, _, _, ok := parsePrimary(req.Primary)
			if !ok {
				return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "malformed primary message: want \"postcode,country,service\""}
			}
			for i := 0; i < len(postcode); i++ {
				if (postcode[i] < '0' || postcode[i] > '9') && postcode[i] != ' ' {
					mode = 3
					break
				}
			}
		}
	}
	if mode < 2 || mode > 6 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidOption, Message: "invalid MaxiCode mode"}
	}

	var cw [144]byte
	scmVV := -1

	if mode == 2 || mode == 3 {
		postcode, country, service, ok := parsePrimary(req.Primary)
		if !ok {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "malformed primary message: want \"postcode,country,service\""}
		}
		if len(postcode) < 1 || len(postcode) > 9 {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "invalid postcode length in primary message"}
		}
		if mode == 2 {
			pc := postcode
			for i := 0; i < len(pc); i++ {
				if pc[i] == ' ' {
					pc = pc[:i]
					break
				}
				if pc[i] < '0' || pc[i] > '9' {
					return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "non-numeric postcode in primary message"}
				}
			}
			primary2(&cw, []byte(pc), country, service)
		} else {
			pc := []byte(postcode)
			if len(pc) > 6 {
				pc = pc[:6]
			}
			for len(pc) < 6 {
				pc = append(pc, ' ')
			}
			for i, c := range pc {
				if c >= 'a' && c <= 'z' {
					pc[i] = c - 'a' + 'A'
				}
			}
			for _, c := range pc {
				if set, _ := maxiLookup(c); c < ' ' || set > 1 {
					return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "invalid character in postcode in primary message"}
				}
			}
			primary3(&cw, pc, country, service)
		}

		if req.Option2 != 0 {
			if req.Option2 < 0 || req.Option2 > 100 {
				return registry.Result{}, &registry.Err{Code: registry.ErrInvalidOption, Message: "invalid SCM prefix version"}
			}
			scmVV = req.Option2 - 1
		}
	} else {
		cw[0] = byte(mode)
	}

	if err := textProcess(&cw, mode, req.Source, req.ECI, scmVV); err != nil {
		return registry.Result{}, err
	}

	gf := rs.NewGF(6, maxiPoly)
	primaryCode := rs.InitCode(gf, 10, 1, 1)
	copy(cw[10:20], primaryCode.Encode(cw[0:10]))

	eclen := 40
	datalen := 84
	if mode == 5 {
		eclen = 56
		datalen = 68
	}
	copy(cw[20+datalen:], interleavedECC(gf, cw[20:20+datalen], eclen))

	modules := placeHexGrid(cw[:20+datalen+eclen])

	return registry.Result{
		Modules:       modules,
		Rows:          gridRows,
		Cols:          gridCols,
		MinHeight:     float64(gridRows),
		DefaultHeight: float64(gridRows),
	}, nil
}

// parsePrimary splits "postcode,country,service" (the composite
// Primary payload format) into its three fields.
func parsePrimary(primary string) (postcode string, country, service int, ok bool) {
	if primary == "" {
		return "", 0, 0, false
	}
	parts := splitN(primary, ',', 3)
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	c, err1 := strconv.Atoi(parts[1])
	s, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return "", 0, 0, false
	}
	return parts[0], c, s, true
}

func splitN(s string, sep byte, n int) []string {
	var out []string
	start := 0
	for i := 0; i < len(s) && len(out) < n-1; i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// primary2 packs the mode 2 structured primary: numeric postcode (with
// its digit count), country and service class, bit-sliced across the
// ten 6-bit primary codewords.
func primary2(cw *[144]byte, postcode []byte, country, service int) {
	pc := 0
	for _, c := range postcode {
		pc = pc*10 + int(c-'0')
	}
	pclen := len(postcode)

	cw[0] = byte((pc&0x03)<<4) | 2
	cw[1] = byte((pc & 0xfc) >> 2)
	cw[2] = byte((pc & 0x3f00) >> 8)
	cw[3] = byte((pc & 0xfc000) >> 14)
	cw[4] = byte((pc & 0x3f00000) >> 20)
	cw[5] = byte((pc&0x3c000000)>>26) | byte((pclen&0x3)<<4)
	cw[6] = byte((pclen&0x3c)>>2) | byte((country&0x3)<<4)
	cw[7] = byte((country & 0xfc) >> 2)
	cw[8] = byte((country&0x300)>>8) | byte((service&0xf)<<2)
	cw[9] = byte((service & 0x3f0) >> 4)
}

// primary3 packs the mode 3 structured primary: six Code Set A
// postcode characters (already upper-cased and padded), country and
// service class.
func primary3(cw *[144]byte, postcode []byte, country, service int) {
	var p [6]byte
	for i := 0; i < 6; i++ {
		_, p[i] = maxiLookup(postcode[i])
	}

	cw[0] = (p[5]&0x03)<<4 | 3
	cw[1] = (p[4]&0x03)<<4 | (p[5]&0x3c)>>2
	cw[2] = (p[3]&0x03)<<4 | (p[4]&0x3c)>>2
	cw[3] = (p[2]&0x03)<<4 | (p[3]&0x3c)>>2
	cw[4] = (p[1]&0x03)<<4 | (p[2]&0x3c)>>2
	cw[5] = (p[0]&0x03)<<4 | (p[1]&0x3c)>>2
	cw[6] = (p[0]&0x3c)>>2 | byte((country&0x3)<<4)
	cw[7] = byte((country & 0xfc) >> 2)
	cw[8] = byte((country&0x300)>>8) | byte((service&0xf)<<2)
	cw[9] = byte((service & 0x3f0) >> 4)
}

// maxiLookup gives a byte its Appendix A code set (1-5, or 0 for the
// characters present in more than one set, resolved later against
// their neighbours) and its symbol value within that set. Set A and
// the lower-case/control core of Sets B and E use the standard's own
// values; Set B's rarer punctuation and the Latin-1 upper range use
// this port's consistent enumeration (see DESIGN.md).
func maxiLookup(b byte) (set, chr byte) {
	switch {
	case b == 13 || b == 28 || b == 29 || b == 30: // CR FS GS RS
		return 0, b
	case b == ' ' || b == ',' || b == '.' || b == '/' || b == ':':
		return 0, b
	case b >= 'A' && b <= 'Z':
		return 1, b - 'A' + 1
	case b >= '"' && b <= '+': // " # $ % & ' ( ) * +
		return 1, b
	case b == '-' || (b >= '0' && b <= '9'):
		return 1, b
	case b == '`':
		return 2, 0
	case b >= 'a' && b <= 'z':
		return 2, b - 'a' + 1
	case b < 31: // remaining C0 controls
		return 5, b
	case b == 31: // US
		return 5, 35
	case b < 128: // Set B punctuation and DEL
		return 2, maxiSetB[b]
	case b < 180:
		return 3, cdeValue(b - 128)
	case b < 232:
		return 4, cdeValue(b - 180)
	default:
		return 5, 36 + (b - 232)
	}
}

// maxiSetB values for the ASCII punctuation only Set B carries.
// Space/comma/period/slash/colon sit at 47-51 per the standard; the
// rest fill Set B's free value slots in ASCII order.
var maxiSetB = map[byte]byte{
	'!': 32, ';': 34, '<': 35, '=': 36, '>': 37, '?': 38, '@': 39,
	'[': 40, '\\': 41, ']': 42, '^': 43, '_': 44, '{': 45, '|': 46,
	'}': 52, '~': 53, 127: 54,
}

// cdeValue maps an index 0-51 onto Set C/D's usable data values,
// stepping over ECI/FS/GS/RS/NS (27-31) and the pad value (33).
func cdeValue(i byte) byte {
	switch {
	case i < 27:
		return i
	case i == 27:
		return 32
	default:
		return i + 6 // 34-57
	}
}

func valueInArray(v byte, arr []byte) int {
	for _, a := range arr {
		if a == v {
			return int(v)
		}
	}
	return -1
}

// bestSurroundingSet picks a multi-set character's code set from its
// neighbours: the previous character's set wins unless the next
// character's set is an eligible lower-numbered one; with neither
// eligible the first candidate applies.
func bestSurroundingSet(idx, length int, set []byte, candidates []byte) byte {
	opt1 := valueInArray(set[idx-1], candidates)
	if idx+1 < length {
		opt2 := valueInArray(set[idx+1], candidates)
		if opt2 != -1 && opt1 > opt2 {
			return byte(opt2)
		}
	}
	if opt1 != -1 {
		return byte(opt1)
	}
	return candidates[0]
}

func maxiBump(set, chr []byte, pos int, length *int) {
	if pos < 143 {
		copy(set[pos+1:144], set[pos:143])
		copy(chr[pos+1:144], chr[pos:143])
	}
	*length++
}

// textProcess runs the Appendix A formatting walk over source and
// distributes the resulting 6-bit characters into the codeword array:
// secondary message only for modes 2/3, primary tail plus secondary
// for modes 4/5/6.
func textProcess(cw *[144]byte, mode int, source []byte, eci, scmVV int) error {
	if len(source) > 144 {
		return tooLong()
	}
	if scmVV != -1 {
		if len(source) > 135 {
			return tooLong()
		}
		source = append([]byte(fmt.Sprintf("[)>\x1e01\x1d%02d", scmVV)), source...)
	}

	set := make([]byte, 144)
	chr := make([]byte, 144)
	for i := range set {
		set[i] = 255
	}
	length := len(source)
	for i, b := range source {
		set[i], chr[i] = maxiLookup(b)
	}

	// Resolve characters representable in more than one code set.
	if set[0] == 0 {
		if chr[0] == 13 {
			chr[0] = 0 // CR in Set A
		}
		set[0] = 1
	}
	set15 := []byte{1, 5}
	set12 := []byte{1, 2}
	set12345 := []byte{1, 2, 3, 4, 5}
	for i := 1; i < length; i++ {
		if set[i] != 0 {
			continue
		}
		switch chr[i] {
		case 13: // CR
			set[i] = bestSurroundingSet(i, length, set, set15)
			if set[i] != 5 {
				chr[i] = 0
			}
		case 28, 29, 30: // FS GS RS keep their value except in Set E
			set[i] = bestSurroundingSet(i, length, set, set12345)
			if set[i] == 5 {
				chr[i] += 4 // 32-34
			}
		case 32: // space
			set[i] = bestSurroundingSet(i, length, set, set12345)
			switch set[i] {
			case 1:
				chr[i] = 32
			case 2:
				chr[i] = 47
			default:
				chr[i] = 59
			}
		case 44, 46, 47, 58: // , . / :
			set[i] = bestSurroundingSet(i, length, set, set12)
			if set[i] == 2 {
				switch chr[i] {
				case 44:
					chr[i] = 48
				case 46:
					chr[i] = 49
				case 47:
					chr[i] = 50
				default:
					chr[i] = 51
				}
			}
		}
	}

	// Padding continues the last character's set (B if B, else A).
	padSet := byte(1)
	if length > 0 && set[length-1] == 2 {
		padSet = 2
	}
	for i := length; i < 144; i++ {
		set[i] = padSet
		chr[i] = maxiPad
	}

	// Mark nine-digit runs for Number Compression.
	count := 0
	for i := 0; i < 144; i++ {
		if set[i] == 1 && chr[i] >= 48 && chr[i] <= 57 {
			count++
			if count == 9 {
				for j := i - 8; j <= i; j++ {
					set[j] = 6
				}
				count = 0
			}
		} else {
			count = 0
		}
	}

	insertShiftsAndLatches(set, chr, &length)

	// Emit each marked digit run as NS plus a 30-bit value in five
	// 6-bit codewords, reclaiming three positions.
	for i := 0; i <= 135; {
		if set[i] != 6 {
			i++
			continue
		}
		value := 0
		for j := 0; j < 9; j++ {
			value = value*10 + int(chr[i+j]-'0')
		}
		chr[i] = maxiNS
		chr[i+1] = byte((value >> 24) & 0x3f)
		chr[i+2] = byte((value >> 18) & 0x3f)
		chr[i+3] = byte((value >> 12) & 0x3f)
		chr[i+4] = byte((value >> 6) & 0x3f)
		chr[i+5] = byte(value & 0x3f)
		i += 6
		copy(set[i:141], set[i+3:144])
		copy(chr[i:141], chr[i+3:144])
		length -= 3
	}

	if eci != 0 {
		maxiBump(set, chr, 0, &length)
		chr[0] = maxiECI
		switch {
		case eci <= 31:
			maxiBump(set, chr, 1, &length)
			chr[1] = byte(eci)
		case eci <= 1023:
			maxiBump(set, chr, 1, &length)
			maxiBump(set, chr, 1, &length)
			chr[1] = byte(0x20 | (eci>>6)&0x0f)
			chr[2] = byte(eci & 0x3f)
		case eci <= 32767:
			for j := 0; j < 3; j++ {
				maxiBump(set, chr, 1, &length)
			}
			chr[1] = byte(0x30 | (eci>>12)&0x07)
			chr[2] = byte((eci >> 6) & 0x3f)
			chr[3] = byte(eci & 0x3f)
		default:
			for j := 0; j < 4; j++ {
				maxiBump(set, chr, 1, &length)
			}
			chr[1] = byte(0x38 | (eci>>18)&0x03)
			chr[2] = byte((eci >> 12) & 0x3f)
			chr[3] = byte((eci >> 6) & 0x3f)
			chr[4] = byte(eci & 0x3f)
		}
	}

	switch {
	case (mode == 2 || mode == 3) && length > 84:
		return tooLong()
	case (mode == 4 || mode == 6) && length > 93:
		return tooLong()
	case mode == 5 && length > 77:
		return tooLong()
	}

	if mode == 2 || mode == 3 {
		copy(cw[20:104], chr[0:84])
	} else if mode == 5 {
		copy(cw[1:10], chr[0:9])
		copy(cw[20:88], chr[9:77])
	} else {
		copy(cw[1:10], chr[0:9])
		copy(cw[20:104], chr[9:93])
	}
	return nil
}

// insertShiftsAndLatches walks the resolved set assignments inserting
// shift, latch and lock characters so a reader tracking the current
// code set decodes every value in its intended set.
func insertShiftsAndLatches(set, chr []byte, length *int) {
	currentSet := byte(1)
	i := 0
	for i < 144 {
		if set[i] != currentSet && set[i] != 6 {
			switch set[i] {
			case 1:
				if currentSet == 2 {
					if i+1 < 144 && set[i+1] == 1 {
						if i+2 < 144 && set[i+2] == 1 {
							if i+3 < 144 && set[i+3] == 1 {
								maxiBump(set, chr, i, length)
								chr[i] = maxiLatchB // Latch A from B
								currentSet = 1
								i += 3
							} else {
								maxiBump(set, chr, i, length)
								chr[i] = maxi3ShiftA
								i += 2
							}
						} else {
							maxiBump(set, chr, i, length)
							chr[i] = maxi2ShiftA
							i++
						}
					} else {
						maxiBump(set, chr, i, length)
						chr[i] = maxiShiftB // Shift A from B
					}
				} else {
					maxiBump(set, chr, i, length)
					chr[i] = maxiLatchA
					currentSet = 1
				}
			case 2:
				if currentSet != 1 || (i+1 < 144 && set[i+1] == 2) {
					maxiBump(set, chr, i, length)
					chr[i] = maxiLatchB
					currentSet = 2
				} else {
					maxiBump(set, chr, i, length)
					chr[i] = maxiShiftB
				}
			case 3, 4, 5:
				if (i == 0 && i+3 < 144 && set[i+1] == set[i] && set[i+2] == set[i] && set[i+3] == set[i]) ||
					(i > 0 && set[i-1] == set[i] && i+2 < 144 && set[i+1] == set[i] && set[i+2] == set[i]) {
					// Two consecutive shifts lock the set in.
					if i == 0 {
						maxiBump(set, chr, i, length)
						chr[i] = 60 + set[i] - 3
						i++
						maxiBump(set, chr, i, length)
						chr[i] = 60 + set[i] - 3
						i += 3
					} else {
						maxiBump(set, chr, i-1, length)
						chr[i-1] = 60 + set[i] - 3
						i += 2
					}
					currentSet = set[i]
				} else {
					maxiBump(set, chr, i, length)
					chr[i] = 60 + set[i] - 3
				}
			}
			i++ // allow for the bump
		}
		i++
	}
}

func tooLong() error {
	return &registry.Err{Code: registry.ErrTooLong, Message: "input data too long for MaxiCode"}
}

// interleavedECC splits secondary data into odd/even streams and
// encodes each independently with eccLen/2 EC codewords, interleaving
// the residuals back together.
func interleavedECC(gf *rs.GF, data []byte, eccLen int) []byte {
	half := eccLen / 2
	var odd, even []byte
	for i, b := range data {
		if i%2 == 0 {
			even = append(even, b)
		} else {
			odd = append(odd, b)
		}
	}
	evenCode := rs.InitCode(gf, half, 1, 1)
	oddCode := rs.InitCode(gf, half, 1, 1)
	evenEC := evenCode.Encode(even)
	oddEC := oddCode.Encode(odd)

	out := make([]byte, 0, eccLen)
	for i := 0; i < half; i++ {
		out = append(out, evenEC[i], oddEC[i])
	}
	return out
}

// placeHexGrid lays the 6-bit codeword stream's bits into the fixed
// 30x33 grid in row-major order around a reserved central bullseye,
// then adds the standard's six orientation marker pairs — exact hex
// coordinates per module are a documented simplification here; see
// package doc.
func placeHexGrid(codewords []byte) [][]bool {
	modules := make([][]bool, gridRows)
	for r := range modules {
		modules[r] = make([]bool, gridCols)
	}

	centerR, centerC := gridRows/2, gridCols/2
	reserved := make([][]bool, gridRows)
	for r := range reserved {
		reserved[r] = make([]bool, gridCols)
	}
	for radius := 1; radius <= 3; radius++ {
		for r := centerR - radius; r <= centerR+radius; r++ {
			for c := centerC - radius; c <= centerC+radius; c++ {
				if r < 0 || r >= gridRows || c < 0 || c >= gridCols {
					continue
				}
				onRing := r == centerR-radius || r == centerR+radius || c == centerC-radius || c == centerC+radius
				if onRing && radius%2 == 1 {
					modules[r][c] = true
					reserved[r][c] = true
				}
			}
		}
	}

	// Orientation markers, reserved before data fill.
	markers := [][2]int{
		{0, 28}, {0, 29}, // top right filler
		{9, 10}, {9, 11}, {10, 11}, // top left
		{15, 7}, {16, 8}, // left hand
		{16, 20}, {17, 20}, // right hand
		{22, 10}, {23, 10}, // bottom left
		{22, 17}, {23, 17}, // bottom right
	}
	for _, m := range markers {
		modules[m[0]][m[1]] = true
		reserved[m[0]][m[1]] = true
	}

	bits := make([]bool, 0, len(codewords)*6)
	for _, cwd := range codewords {
		for i := 5; i >= 0; i-- {
			bits = append(bits, (cwd>>uint(i))&1 == 1)
		}
	}

	idx := 0
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			if reserved[r][c] {
				continue
			}
			if idx < len(bits) {
				modules[r][c] = bits[idx]
				idx++
			}
		}
	}
	return modules
}
