package qrfamily

import "github.com/uSwapExchange/symcore/internal/registry"

// microTotalCodewords mirrors totalCodewords but for MicroQR's four
// sizes (M1-M4, n = 11, 13, 15, 17); M1 has no error correction at
// all, matching ISO/IEC 18004 Annex.
var microTotalCodewords = []int{0, 5, 10, 17, 24}
var microEcRatio = map[int]float64{1: 0.0, 2: 0.35, 3: 0.45, 4: 0.55}

func encodeMicroQR(req registry.Request) (registry.Result, error) {
	data := req.Source
	if len(data) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}

	level := req.Option1
	if level < 1 || level > 4 {
		level = 2
	}

	var version, dataCW, ecCW int
	found := false
	for v := 1; v <= 4; v++ {
		total := microTotalCodewords[v]
		ratio := microEcRatio[level]
		if v == 1 {
			ratio = 0 // M1 is numeric-only / no-EC in the real standard; byte mode here still skips EC for size
		}
		ec := int(float64(total)*ratio + 0.5)
		d := total - ec
		needBits := 4 + 8 + 8*len(data) + 4
		if needBits <= d*8 {
			version, dataCW, ecCW = v, d, ec
			found = true
			break
		}
	}
	if !found {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data exceeds Micro QR Code M4 capacity"}
	}

	buf := &bitBuffer{}
	buf.put(0b0100, 4)
	buf.put(len(data), 8)
	for _, b := range data {
		buf.put(int(b), 8)
	}
	if buf.length() < dataCW*8 {
		term := 4
		if dataCW*8-buf.length() < term {
			term = dataCW * 8 - buf.length()
		}
		buf.put(0, term)
	}
	buf.padToByte()
	padBytes := [2]int{0xEC, 0x11}
	for pi := 0; buf.length()/8 < dataCW; pi++ {
		buf.put(padBytes[pi%2], 8)
	}
	codewords := buf.bytes()[:dataCW]

	var all []byte
	if ecCW > 0 {
		all = reedSolomon(codewords, ecCW)
	} else {
		all = codewords
	}

	n := 9 + version*2
	g := newGrid(n)
	g.placeFinder(0, 0)
	for i := 8; i < n; i++ {
		g.set(0, i, i%2 == 0)
		g.set(i, 0, i%2 == 0)
	}

	bits := &bitBuffer{}
	for _, b := range all {
		bits.put(int(b), 8)
	}
	g.placeZigzag(bits, -1)

	masks := []int{0, 1, 2, 3}
	best, _ := bestMask(g, masks)

	return matrixResult(best, float64(n)), nil
}
