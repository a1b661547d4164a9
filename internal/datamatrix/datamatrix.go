package datamatrix

import (
	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/rs"
)

const dmPoly = 0x12d // ECC200's GF(256) generator polynomial

func init() {
	registry.Register(registry.DataMatrix, encodeDataMatrix)
}

func encodeDataMatrix(req registry.Request) (registry.Result, error) {
	if len(req.Source) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}

	raw := encodeHighLevel(req.Source)
	info, ok := smallestFor(len(raw))
	if !ok {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data too long for any ECC200 symbol size"}
	}
	data := pad(raw, info.DataCW)

	gf := rs.NewGF(8, dmPoly)
	perBlock := info.DataCW / info.Blocks
	ecPerBlock := info.ErrorCW / info.Blocks
	var ecAll []int
	for b := 0; b < info.Blocks; b++ {
		start := b * perBlock
		end := start + perBlock
		if b == info.Blocks-1 {
			end = info.DataCW
		}
		block := make([]byte, end-start)
		for i, v := range data[start:end] {
			block[i] = byte(v)
		}
		rsCode := rs.InitCode(gf, ecPerBlock, 1, 1)
		ec := rsCode.Encode(block)
		for _, e := range ec {
			ecAll = append(ecAll, int(e))
		}
	}

	codewords := append(append([]int{}, data...), ecAll...)
	interior := place(codewords, info.Size-2)
	modules := overlayFinder(interior, info.Size)

	return registry.Result{
		Modules:       modules,
		Rows:          info.Size,
		Cols:          info.Size,
		HRT:           "",
		MinHeight:     float64(info.Size),
		DefaultHeight: float64(info.Size),
	}, nil
}

// overlayFinder wraps the interior data grid with ECC200's finder
// pattern: a solid L down the left column and bottom row, and a
// dashed (alternating) line across the top row and right column.
func overlayFinder(interior [][]bool, size int) [][]bool {
	modules := make([][]bool, size)
	for r := 0; r < size; r++ {
		modules[r] = make([]bool, size)
	}
	for c := 0; c < size; c++ {
		modules[size-1][c] = true
		modules[0][c] = c%2 == 0
	}
	for r := 0; r < size; r++ {
		modules[r][0] = true
		modules[r][size-1] = (size-1-r)%2 == 0
	}
	for r := 0; r < size-2; r++ {
		for c := 0; c < size-2; c++ {
			if interior[r][c] {
				modules[r+1][c+1] = true
			}
		}
	}
	return modules
}
