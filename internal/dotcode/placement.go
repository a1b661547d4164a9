package dotcode

// dotPatterns gives each codeword value 0-112 its 9-bit symbol
// character dot pattern (Annex C).
var dotPatterns = [113]uint16{
	0x155, 0x0ab, 0x0ad, 0x0b5, 0x0d5, 0x156, 0x15a, 0x16a, 0x1aa, 0x0ae,
	0x0b6, 0x0ba, 0x0d6, 0x0da, 0x0ea, 0x12b, 0x12d, 0x135, 0x14b, 0x14d,
	0x153, 0x159, 0x165, 0x169, 0x195, 0x1a5, 0x1a9, 0x057, 0x05b, 0x05d,
	0x06b, 0x06d, 0x075, 0x097, 0x09b, 0x09d, 0x0a7, 0x0b3, 0x0b9, 0x0cb,
	0x0cd, 0x0d3, 0x0d9, 0x0e5, 0x0e9, 0x12e, 0x136, 0x13a, 0x14e, 0x15c,
	0x166, 0x16c, 0x172, 0x174, 0x196, 0x19a, 0x1a6, 0x1ac, 0x1b2, 0x1b4,
	0x1ca, 0x1d2, 0x1d4, 0x05e, 0x06e, 0x076, 0x07a, 0x09e, 0x0bc, 0x0ce,
	0x0dc, 0x0e6, 0x0ec, 0x0f2, 0x0f4, 0x117, 0x11b, 0x11d, 0x127, 0x133,
	0x139, 0x147, 0x163, 0x171, 0x18b, 0x18d, 0x193, 0x199, 0x1a3, 0x1b1,
	0x1c5, 0x1c9, 0x1d1, 0x02f, 0x037, 0x03b, 0x03d, 0x04f, 0x067, 0x073,
	0x079, 0x08f, 0x0c7, 0x0e3, 0x0f1, 0x11e, 0x13c, 0x178, 0x18e, 0x19c,
	0x1b8, 0x1c6, 0x1cc,
}

// applyMask113 prefixes the mask value as codeword 0 and adds the
// mask's cumulative weight (0, 3, 7 or 17 per position) to each data
// codeword mod 113. Check words are computed over the masked stream.
func applyMask113(mask int, data []int) []int {
	weights := [4]int{0, 3, 7, 17}
	out := make([]int, len(data)+1)
	out[0] = mask
	weight := 0
	for j, cw := range data {
		out[j+1] = (weight + cw) % 113
		weight += weights[mask]
	}
	return out
}

// makeDotStream expands masked codewords to the dot bit stream: the
// mask value as two bits, every following codeword as its 9-bit
// Annex C pattern, padded with set bits out to the symbol's dot count.
func makeDotStream(masked []int, nDots int) []bool {
	var bits []bool
	for i := 1; i >= 0; i-- {
		bits = append(bits, (masked[0]>>uint(i))&1 == 1)
	}
	for _, cw := range masked[1:] {
		p := dotPatterns[cw]
		for i := 8; i >= 0; i-- {
			bits = append(bits, (p>>uint(i))&1 == 1)
		}
	}
	for len(bits) < nDots {
		bits = append(bits, true)
	}
	return bits
}

// fold lays the dot stream onto the checkerboard: only cells with
// (r+c) even are ever candidates for a dark dot; odd cells are always
// left light. Fold order is row-major for every height; see DESIGN.md.
// No cell is set aside for the trailing stream bits: the corner cells
// receive whatever bits the row-major walk reaches them with.
func fold(bits []bool, h, w int) [][]bool {
	grid := make([][]bool, h)
	for r := range grid {
		grid[r] = make([]bool, w)
	}

	idx := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if (r+c)%2 != 0 {
				continue
			}
			if idx < len(bits) {
				grid[r][c] = bits[idx]
				idx++
			}
		}
	}
	return grid
}

// forceCorners marks the six corner escape positions dark for the
// mask picker's forced-corner pass.
func forceCorners(grid [][]bool, h, w int) {
	corners := cornerCells(h, w)
	for _, c := range corners {
		if c[0] >= 0 && c[0] < h && c[1] >= 0 && c[1] < w {
			grid[c[0]][c[1]] = true
		}
	}
}

// cornerCells returns six checkerboard-valid (r+c even) cells near
// the physical corners of the grid — the cells forceCorners darkens;
// fold does not reserve them for message bits. snapEven nudges any raw corner anchor that
// lands on an odd-sum cell one column inward so it stays on the
// checkerboard regardless of h/w's parity.
func cornerCells(h, w int) [][2]int {
	raw := [][2]int{
		{0, 0}, {0, w - 1}, {1, w - 1},
		{h - 2, 0}, {h - 1, 0}, {h - 1, w - 1},
	}
	out := make([][2]int, len(raw))
	for i, c := range raw {
		out[i] = snapEven(c[0], c[1], w)
	}
	return out
}

func snapEven(r, c, w int) [2]int {
	if (r+c)%2 != 0 {
		if c > 0 {
			c--
		} else if c+1 < w {
			c++
		}
	}
	return [2]int{r, c}
}

// score evaluates one masked grid: a fixed quota of h*w/2 minus the
// isolated dot count minus an exponential empty-column penalty ("Hgt^n"
// for n consecutive empty columns). Empty rows and the dot runs along
// the edges are not scored.
func score(grid [][]bool, h, w int) int {
	isolated := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !grid[r][c] {
				continue
			}
			if !hasNeighborDot(grid, h, w, r, c) {
				isolated++
			}
		}
	}

	emptyCols := 0
	colPenalty := 0
	for c := 0; c < w; c++ {
		empty := true
		for r := 0; r < h; r++ {
			if grid[r][c] {
				empty = false
				break
			}
		}
		if empty {
			emptyCols++
			colPenalty += pow(h, emptyCols)
		} else {
			emptyCols = 0
		}
	}

	return h*w/2 - isolated - colPenalty
}

func hasNeighborDot(grid [][]bool, h, w, r, c int) bool {
	deltas := [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	for _, d := range deltas {
		rr, cc := r+d[0], c+d[1]
		if rr >= 0 && rr < h && cc >= 0 && cc < w && grid[rr][cc] {
			return true
		}
	}
	return false
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
		if out > 1<<20 {
			return out
		}
	}
	return out
}
