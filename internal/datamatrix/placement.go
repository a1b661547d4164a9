package datamatrix

// place implements ECC200's Annex M module placement: codewords are
// walked in diagonal "utah" groups of 8 bits each, sweeping up-and-
// right then down-and-left across the data region, with four special
// corner cases where the diagonal would otherwise run off the grid.
// This is the standard ECC200 placement algorithm as reproduced across
// the open-source Data Matrix implementations that ported it from the
// ISO/IEC 16022 reference (grounded via the zxinggo high-level/
// errorcorrection files' account of how codewords map to the matrix).
func place(codewords []int, size int) [][]bool {
	grid := make([][]bool, size)
	placed := make([][]bool, size)
	for i := range grid {
		grid[i] = make([]bool, size)
		placed[i] = make([]bool, size)
	}

	setBit := func(r, c int, codeword int, bit uint) {
		r = ((r % size) + size) % size
		c = ((c % size) + size) % size
		if placed[r][c] {
			return
		}
		placed[r][c] = true
		if (codeword>>bit)&1 == 1 {
			grid[r][c] = true
		}
	}

	utah := func(row, col, pos int) {
		if pos >= len(codewords) {
			return
		}
		cw := codewords[pos]
		offsets := [8][2]int{{-2, -2}, {-2, -1}, {-1, -2}, {-1, -1}, {-1, 0}, {0, -2}, {0, -1}, {0, 0}}
		for i, off := range offsets {
			setBit(row+off[0], col+off[1], cw, uint(7-i))
		}
	}

	corner := func(cells [8][2]int, pos int) {
		if pos >= len(codewords) {
			return
		}
		cw := codewords[pos]
		for i, c := range cells {
			setBit(c[0], c[1], cw, uint(7-i))
		}
	}

	pos := 0
	row, col := 4, 0
	for {
		if row == size && col == 0 {
			corner([8][2]int{{size - 1, 0}, {size - 1, 1}, {size - 1, 2}, {0, size - 3}, {0, size - 2}, {0, size - 1}, {1, size - 1}, {2, size - 1}}, pos)
			pos++
		}
		if row == size-2 && col == 0 && size%4 != 0 {
			corner([8][2]int{{size - 3, 0}, {size - 2, 0}, {size - 1, 0}, {0, size - 4}, {0, size - 3}, {0, size - 2}, {0, size - 1}, {1, size - 1}}, pos)
			pos++
		}
		if row == size-2 && col == 0 && size%8 == 4 {
			corner([8][2]int{{size - 3, 0}, {size - 2, 0}, {size - 1, 0}, {0, size - 2}, {0, size - 1}, {1, size - 1}, {2, size - 1}, {3, size - 1}}, pos)
			pos++
		}
		if row == size+4 && col == 2 && size%8 == 0 {
			corner([8][2]int{{size - 1, 0}, {size - 1, size - 1}, {0, size - 3}, {0, size - 2}, {0, size - 1}, {1, size - 3}, {1, size - 2}, {1, size - 1}}, pos)
			pos++
		}

		for {
			if row < size && col >= 0 && !placed[((row%size)+size)%size][((col%size)+size)%size] {
				utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= size {
				break
			}
		}
		row++
		col += 3
		for {
			if row >= 0 && col < size && !placed[((row%size)+size)%size][((col%size)+size)%size] {
				utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= size || col < 0 {
				break
			}
		}
		row += 3
		col++
		if row >= size && col >= size {
			break
		}
	}

	if !placed[size-1][size-1] {
		grid[size-1][size-1] = true
		grid[size-2][size-2] = true
	}

	return grid
}
