package qrfamily

import "github.com/uSwapExchange/symcore/internal/registry"

// totalCodewords is ISO/IEC 18004 Table 9's per-version codeword
// total (data+EC) for versions 1-10; QR support here is capped at
// version 10 (byte-mode-only, single-block RS) — see DESIGN.md for why
// versions 11-40's multi-block interleaving is out of scope.
var totalCodewords = []int{0, 26, 44, 70, 100, 134, 172, 196, 242, 292, 346}

// ecRatio approximates each EC level's fraction of total codewords
// spent on error correction (derived from the real per-level ratios,
// not ISO's literal per-version/per-block EC table — multi-block RS
// interleaving for QR proper is a documented simplification, matching
// the same call already made for Data Matrix's 144x144 skew).
var ecRatio = map[int]float64{1: 0.20, 2: 0.38, 3: 0.50, 4: 0.65}

func clampLevel(opt1 int) int {
	if opt1 < 1 || opt1 > 4 {
		return 2 // M
	}
	return opt1
}

func chooseVersion(dataLen, level int) (version, dataCW, ecCW int, ok bool) {
	ratio := ecRatio[level]
	for v := 1; v <= 10; v++ {
		total := totalCodewords[v]
		ec := int(float64(total)*ratio + 0.5)
		if ec < 2 {
			ec = 2
		}
		data := total - ec
		countBits := 8
		if v > 9 {
			countBits = 16
		}
		needBits := 4 + countBits + 8*dataLen + 4
		if needBits <= data*8 {
			return v, data, ec, true
		}
	}
	return 0, 0, 0, false
}

func encodeQRCode(req registry.Request) (registry.Result, error) {
	data := req.Source
	if len(data) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}

	level := clampLevel(req.Option1)
	version, dataCW, ecCW, ok := chooseVersion(len(data), level)
	if !ok {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data exceeds QR Code version 10 capacity"}
	}

	buf := &bitBuffer{}
	buf.put(0b0100, 4) // byte mode
	countBits := 8
	if version > 9 {
		countBits = 16
	}
	buf.put(len(data), countBits)
	for _, b := range data {
		buf.put(int(b), 8)
	}
	if buf.length() < dataCW*8 {
		term := 4
		if dataCW*8-buf.length() < 4 {
			term = dataCW*8 - buf.length()
		}
		buf.put(0, term)
	}
	buf.padToByte()
	padBytes := [2]int{0xEC, 0x11}
	for pi := 0; buf.length()/8 < dataCW; pi++ {
		buf.put(padBytes[pi%2], 8)
	}

	codewords := buf.bytes()[:dataCW]
	all := reedSolomon(codewords, ecCW)

	n := 17 + version*4
	g := newGrid(n)
	g.placeFinder(0, 0)
	g.placeFinder(0, n-7)
	g.placeFinder(n-7, 0)
	g.placeTiming(8)
	g.set(n-8, 8, true)

	if version >= 2 {
		for _, r := range alignmentPositions(version) {
			for _, c := range alignmentPositions(version) {
				if g.reserved[r][c] {
					continue
				}
				placeAlignment(g, r, c)
			}
		}
	}
	reserveFormatAreas(g, n)

	bits := &bitBuffer{}
	for _, b := range all {
		bits.put(int(b), 8)
	}
	g.placeZigzag(bits, 6)

	best, mask := bestMask(g, []int{0, 1, 2, 3, 4, 5, 6, 7})
	writeFormatInfo(best, level, mask, n)

	return matrixResult(best, float64(n)), nil
}

func alignmentPositions(version int) []int {
	table := [][]int{
		nil, nil,
		{6, 18}, {6, 22}, {6, 26}, {6, 30}, {6, 34},
		{6, 22, 38}, {6, 24, 42}, {6, 26, 46}, {6, 28, 50},
	}
	if version < len(table) {
		return table[version]
	}
	return nil
}

func placeAlignment(g *grid, row, col int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			dark := dr == -2 || dr == 2 || dc == -2 || dc == 2 || (dr == 0 && dc == 0)
			g.set(row+dr, col+dc, dark)
		}
	}
}

func reserveFormatAreas(g *grid, n int) {
	for i := 0; i < 8; i++ {
		g.reserved[8][i] = true
		g.reserved[8][n-1-i] = true
		g.reserved[i][8] = true
		g.reserved[n-1-i][8] = true
	}
	g.reserved[8][8] = true
}

// formatInfo computes QR's 15-bit format-info word: a 5-bit
// level/mask payload protected by a (15,5) BCH code, then XORed with
// the standard's fixed mask 0x5412 so an all-zero format is never
// transmitted.
func formatInfo(level, mask int) int {
	levelBits := map[int]int{1: 0b01, 2: 0b00, 3: 0b11, 4: 0b10}[level]
	data := (levelBits << 3) | mask
	rem := data << 10
	g := 0x537
	for i := 14; i >= 10; i-- {
		if rem&(1<<uint(i)) != 0 {
			rem ^= g << uint(i-10)
		}
	}
	return ((data << 10) | rem) ^ 0x5412
}

func writeFormatInfo(g *grid, level, mask, n int) {
	f := formatInfo(level, mask)
	for i := 0; i < 15; i++ {
		bit := (f>>uint(14-i))&1 == 1
		switch {
		case i < 6:
			g.set(8, i, bit)
		case i == 6:
			g.set(8, 7, bit)
		case i == 7:
			g.set(8, 8, bit)
		case i == 8:
			g.set(7, 8, bit)
		default:
			g.set(14-i, 8, bit)
		}
		if i < 8 {
			g.set(n-1-i, 8, bit)
		} else {
			g.set(8, n-15+i, bit)
		}
	}
}
