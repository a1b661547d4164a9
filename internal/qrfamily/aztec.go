package qrfamily

import (
	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/rs"
)

// aztec.go gives Aztec and Aztec Runes their own data path over
// internal/rs's WideGF: Aztec's codewords are not bytes but 6-, 8-,
// 10- or 12-bit words over GF(2^k) with a per-tier irreducible
// polynomial, filled from the high-level bit stream with the
// standard's anti-transparency bit stuffing. The module geometry
// (central bullseye finder, mode-message ring, zigzag data fill)
// shares this package's grid machinery rather than the standard's
// spiral domino walk — see DESIGN.md. Aztec applies no data mask; the
// bit stuffing is what prevents long same-color runs.

// aztecTier maps a symbol-size band to its codeword width and GF(2^k)
// irreducible polynomial (ISO/IEC 24778 table 3).
type aztecTier struct {
	wordSize int
	poly     int
	maxBits  int // total codeword bits this tier's sizes can hold
}

var aztecTiers = []aztecTier{
	{6, 0x43, 240},      // x^6+x+1
	{8, 0x12d, 1920},    // x^8+x^5+x^3+x^2+1
	{10, 0x409, 10208},  // x^10+x^3+1
	{12, 0x1069, 19200}, // x^12+x^6+x^5+x^3+1
}

const (
	aztecLatchDigit  = 30 // D/L from Upper, 5 bits
	aztecBinaryShift = 31 // B/S, 5 bits
)

// aztecDataBits runs the high-level encoder: Upper-mode 5-bit codes
// for uppercase-and-space input, a Digit-mode latch plus 4-bit codes
// for all-digit input, and the Binary Shift escape for everything
// else. The encoder starts in Upper mode.
func aztecDataBits(source []byte) *bitBuffer {
	buf := &bitBuffer{}
	switch {
	case aztecAllDigits(source):
		buf.put(aztecLatchDigit, 5)
		for _, b := range source {
			buf.put(int(b-'0')+2, 4)
		}
	case aztecAllUpper(source):
		for _, b := range source {
			if b == ' ' {
				buf.put(1, 5)
				continue
			}
			buf.put(int(b-'A')+2, 5)
		}
	default:
		for i := 0; i < len(source); {
			run := len(source) - i
			if run > 2047+31 {
				run = 2047 + 31
			}
			buf.put(aztecBinaryShift, 5)
			if run <= 31 {
				buf.put(run, 5)
			} else {
				buf.put(0, 5)
				buf.put(run-31, 11)
			}
			for j := 0; j < run; j++ {
				buf.put(int(source[i+j]), 8)
			}
			i += run
		}
	}
	return buf
}

func aztecAllDigits(source []byte) bool {
	for _, b := range source {
		if b < '0' || b > '9' {
			return false
		}
	}
	return len(source) > 0
}

func aztecAllUpper(source []byte) bool {
	for _, b := range source {
		if (b < 'A' || b > 'Z') && b != ' ' {
			return false
		}
	}
	return len(source) > 0
}

// bitStuff packs bits into w-bit words with the standard's stuffing
// rule: whenever the first w-1 bits of a word are all equal, a
// complement bit is stuffed as the word's final bit and the displaced
// data bit starts the next word. The final partial word pads with 1s;
// if padding would make it all ones the lowest bit flips to 0 so no
// word is ever all-zero or all-one.
func bitStuff(bits []bool, w int) []int {
	var words []int
	word, n := 0, 0
	for i := 0; i < len(bits); i++ {
		if n == w-1 && (word == 0 || word == 1<<(w-1)-1) {
			stuffed := word << 1
			if word == 0 {
				stuffed |= 1
			}
			words = append(words, stuffed)
			word, n = 0, 0
		}
		word <<= 1
		if bits[i] {
			word |= 1
		}
		n++
		if n == w {
			words = append(words, word)
			word, n = 0, 0
		}
	}
	if n > 0 {
		for n < w {
			word = word<<1 | 1
			n++
		}
		if word == 1<<w-1 {
			word &^= 1
		}
		words = append(words, word)
	}
	return words
}

func encodeAztec(req registry.Request) (registry.Result, error) {
	if len(req.Source) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}

	data := aztecDataBits(req.Source)

	var words, ec []int
	var tier aztecTier
	fitted := false
	for _, t := range aztecTiers {
		words = bitStuff(data.bits, t.wordSize)
		ecCount := len(words)*23/100 + 3
		if (len(words)+ecCount)*t.wordSize <= t.maxBits {
			gf := rs.NewBinaryWideGF(t.wordSize, t.poly)
			code := rs.InitWideCode(gf, ecCount, 1)
			ec = code.Encode(words)
			tier = t
			fitted = true
			break
		}
	}
	if !fitted {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data too long for Aztec"}
	}

	stream := &bitBuffer{}
	for _, w := range append(words, ec...) {
		stream.put(w, tier.wordSize)
	}

	// Smallest full-range grid (19 + 4k modules) whose area outside
	// the 15x15 finder core holds the codeword stream.
	n := 19
	for n*n-15*15 < stream.length() {
		n += 4
	}

	g := newGrid(n)
	placeBullseye(g, 7)
	placeAztecModeMessage(g, 7, aztecModeBits((n-19)/4+1, len(words)))

	g.placeZigzag(stream, -1)
	return matrixResult(g, float64(n)), nil
}

// aztecModeBits builds the full-range 16-bit mode word (5 bits layer
// count minus one, 11 bits data-word count minus one) followed by six
// GF(16) Reed-Solomon check words, 40 bits total.
func aztecModeBits(layers, dataWords int) *bitBuffer {
	words := []int{
		(layers - 1) >> 1,
		((layers-1)&1)<<3 | (dataWords-1)>>8&7,
		(dataWords - 1) >> 4 & 0xf,
		(dataWords - 1) & 0xf,
	}
	gf := rs.NewBinaryWideGF(4, 0x13)
	code := rs.InitWideCode(gf, 6, 1)
	ec := code.Encode(words)
	buf := &bitBuffer{}
	for _, w := range append(words, ec...) {
		buf.put(w, 4)
	}
	return buf
}

// placeBullseye draws the concentric square finder rings out to
// radius r around the grid center: dark at even ring distance, light
// at odd, every cell reserved.
func placeBullseye(g *grid, r int) {
	cx := g.n / 2
	for dr := -r; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			dist := dr
			if dist < 0 {
				dist = -dist
			}
			if dc > dist {
				dist = dc
			}
			if -dc > dist {
				dist = -dc
			}
			g.set(cx+dr, cx+dc, dist%2 == 0)
		}
	}
}

// placeAztecModeMessage writes the mode-message bits clockwise around
// the ring at distance r from the center: top side left to right,
// right side top to bottom, bottom side right to left, left side
// bottom to top, skipping the four corners and, when a side carries an
// even number of bits, that side's center cell (the reference-grid
// position); see sideOffsets.
func placeAztecModeMessage(g *grid, r int, bits *bitBuffer) {
	cx := g.n / 2
	perSide := bits.length() / 4
	idx := 0
	next := func() bool {
		b := idx < bits.length() && bits.bits[idx]
		idx++
		return b
	}
	offsets := sideOffsets(perSide)
	for _, off := range offsets {
		g.set(cx-r, cx+off, next()) // top, left to right
	}
	for _, off := range offsets {
		g.set(cx+off, cx+r, next()) // right, top to bottom
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		g.set(cx+r, cx+offsets[i], next()) // bottom, right to left
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		g.set(cx+offsets[i], cx-r, next()) // left, bottom to top
	}
}

// sideOffsets returns count offsets centered on a ring side, skipping
// offset 0 when count is even (the full-range symbol's reference-grid
// cell; the compact Rune ring has no reference grid and uses an odd
// count).
func sideOffsets(count int) []int {
	var out []int
	half := count / 2
	for off := -half; off <= half; off++ {
		if off == 0 && count%2 == 0 {
			continue
		}
		out = append(out, off)
		if len(out) == count {
			break
		}
	}
	return out
}

// encodeAztecRune encodes Aztec Runes: a single byte value 0-255
// carried entirely in the mode message of an 11x11 symbol — two
// 4-bit data words plus five GF(16) check words, the 28-bit result
// XORed with an alternating 1010... pattern to distinguish a Rune
// from a full symbol's mode message.
func encodeAztecRune(req registry.Request) (registry.Result, error) {
	if len(req.Source) != 1 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "Aztec Runes encode exactly one byte value 0-255"}
	}

	v := req.Source[0]
	words := []int{int(v >> 4), int(v & 0xf)}
	gf := rs.NewBinaryWideGF(4, 0x13)
	code := rs.InitWideCode(gf, 5, 1)
	ec := code.Encode(words)

	buf := &bitBuffer{}
	for _, w := range append(words, ec...) {
		buf.put(w, 4)
	}
	for i := range buf.bits {
		if i%2 == 0 {
			buf.bits[i] = !buf.bits[i]
		}
	}

	g := newGrid(11)
	placeBullseye(g, 4)
	placeAztecModeMessage(g, 5, buf)
	return matrixResult(g, 11), nil
}
