// Package qrfamily implements the QR-code family: QR Code proper,
// Micro QR, rMQR, Aztec, Han Xin, and Grid Matrix all share one
// placement/mask/RS skeleton in their originating standards, and this
// package keeps that sharing.
//
// The bit-buffer-plus-zigzag-placement-plus-single-mask shape is
// grounded directly on a byte-mode QR encoder's encodeQR: the same
// qrBitBuffer accumulator, the same finder/timing/alignment/format-info
// placement order, and the same zigzag data-placement walk. Two things
// that reference simplifies are restored here: internal/rs's byte-wide
// GF(256) Reed-Solomon (rather than a private gfExp/gfLog/
// rsGeneratorPoly, though the primitive polynomial 0x11d is the same
// QR-standard one) and a full 8-mask penalty scorer (the reference
// always used mask 0). rMQR/Aztec/Han Xin/Grid Matrix reuse this engine
// with symbology-specific grid shapes; see variants.go and DESIGN.md
// for how far each's fidelity goes relative to its own standard.
package qrfamily

import (
	"github.com/uSwapExchange/symcore/internal/registry"
	"github.com/uSwapExchange/symcore/internal/rs"
)

const qrPoly = 0x11d // ISO/IEC 18004 GF(256) primitive polynomial

func init() {
	registry.Register(registry.QRCode, encodeQRCode)
	registry.Register(registry.MicroQRCode, encodeMicroQR)
	registry.Register(registry.RMQRCode, encodeRMQR)
	registry.Register(registry.Aztec, encodeAztec)
	registry.Register(registry.AztecRune, encodeAztecRune)
	registry.Register(registry.HanXin, encodeHanXin)
	registry.Register(registry.GridMatrix, encodeGridMatrix)
}

// bitBuffer is the shared MSB-first bit accumulator every encoder in
// this package builds its codeword stream with, ported from the
// teacher's qrBitBuffer.
type bitBuffer struct {
	bits []bool
}

func (b *bitBuffer) put(value, length int) {
	for i := length - 1; i >= 0; i-- {
		b.bits = append(b.bits, (value>>uint(i))&1 == 1)
	}
}

func (b *bitBuffer) length() int { return len(b.bits) }

func (b *bitBuffer) padToByte() {
	for b.length()%8 != 0 {
		b.put(0, 1)
	}
}

// bytes packs the buffer's bits (already a multiple of 8) into bytes.
func (b *bitBuffer) bytes() []byte {
	out := make([]byte, b.length()/8)
	for i := range out {
		for bit := 0; bit < 8; bit++ {
			if b.bits[i*8+bit] {
				out[i] |= 1 << uint(7-bit)
			}
		}
	}
	return out
}

// reedSolomon runs internal/rs's byte-wide codec with the QR-family
// primitive polynomial, returning data||ec as the final codeword
// sequence (residual order un-reversed to match the bitstream order
// QR placement expects, unlike the raw residual contract internal/rs
// returns by default).
func reedSolomon(data []byte, ecCount int) []byte {
	gf := rs.NewGF(8, qrPoly)
	code := rs.InitCode(gf, ecCount, 0, 1)
	ec := code.Encode(data)
	out := make([]byte, 0, len(data)+len(ec))
	out = append(out, data...)
	for i := len(ec) - 1; i >= 0; i-- {
		out = append(out, ec[i])
	}
	return out
}

// grid is the mutable module matrix every variant places into:
// modules holds the color, reserved marks cells the data placement
// walk must skip (finder/timing/alignment/format-info regions).
type grid struct {
	n         int
	modules   [][]bool
	reserved  [][]bool
}

func newGrid(n int) *grid {
	g := &grid{n: n, modules: make([][]bool, n), reserved: make([][]bool, n)}
	for i := range g.modules {
		g.modules[i] = make([]bool, n)
		g.reserved[i] = make([]bool, n)
	}
	return g
}

func (g *grid) set(r, c int, dark bool) {
	if r < 0 || r >= g.n || c < 0 || c >= g.n {
		return
	}
	g.modules[r][c] = dark
	g.reserved[r][c] = true
}

func (g *grid) placeFinder(row, col int) {
	for r := -1; r <= 7; r++ {
		for c := -1; c <= 7; c++ {
			rr, cc := row+r, col+c
			if rr < 0 || rr >= g.n || cc < 0 || cc >= g.n {
				continue
			}
			dark := (r >= 0 && r <= 6 && (c == 0 || c == 6)) ||
				(c >= 0 && c <= 6 && (r == 0 || r == 6)) ||
				(r >= 2 && r <= 4 && c >= 2 && c <= 4)
			g.set(rr, cc, dark)
		}
	}
}

func (g *grid) placeTiming(clear int) {
	for i := clear; i < g.n-clear; i++ {
		g.set(clear-2, i, i%2 == 0)
		g.set(i, clear-2, i%2 == 0)
	}
}

// placeZigzag walks the standard QR right-to-left, bottom-to-top (or
// top-to-bottom every other column) two-column zigzag, skipping the
// vertical timing column and any reserved cell, writing bits from data
// in order. Returns how many bits were consumed.
func (g *grid) placeZigzag(data *bitBuffer, timingCol int) int {
	bitIdx := 0
	for col := g.n - 1; col >= 0; col -= 2 {
		if col == timingCol {
			col--
		}
		for row := 0; row < g.n; row++ {
			for c := 0; c < 2; c++ {
				cc := col - c
				actualRow := row
				if ((col+1)/2)%2 == 0 {
					actualRow = g.n - 1 - row
				}
				if cc < 0 || cc >= g.n || actualRow < 0 || actualRow >= g.n {
					continue
				}
				if g.reserved[actualRow][cc] {
					continue
				}
				if bitIdx < data.length() {
					g.modules[actualRow][cc] = data.bits[bitIdx]
					bitIdx++
				}
			}
		}
	}
	return bitIdx
}

// applyMask XORs mask pattern p (QR's eight standard predicates) over
// every non-reserved cell.
func applyMask(g *grid, p int) {
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.reserved[r][c] {
				continue
			}
			if maskBit(p, r, c) {
				g.modules[r][c] = !g.modules[r][c]
			}
		}
	}
}

func maskBit(p, r, c int) bool {
	switch p {
	case 0:
		return (r+c)%2 == 0
	case 1:
		return r%2 == 0
	case 2:
		return c%3 == 0
	case 3:
		return (r+c)%3 == 0
	case 4:
		return (r/2+c/3)%2 == 0
	case 5:
		return (r*c)%2+(r*c)%3 == 0
	case 6:
		return ((r*c)%2+(r*c)%3)%2 == 0
	default:
		return ((r+c)%2+(r*c)%3)%2 == 0
	}
}

// penalty scores a candidate masked grid with three of ISO/IEC 18004
// §8.8.2's penalty rules (run-length, 2x2 blocks, dark-module ratio);
// the finder-like pattern rule is not scored. Lower is better, matching
// the standard's rule of picking the mask that minimizes total penalty.
func penalty(g *grid) int {
	total := 0
	for r := 0; r < g.n; r++ {
		total += runPenalty(g.modules[r])
	}
	for c := 0; c < g.n; c++ {
		col := make([]bool, g.n)
		for r := 0; r < g.n; r++ {
			col[r] = g.modules[r][c]
		}
		total += runPenalty(col)
	}
	for r := 0; r < g.n-1; r++ {
		for c := 0; c < g.n-1; c++ {
			v := g.modules[r][c]
			if g.modules[r][c+1] == v && g.modules[r+1][c] == v && g.modules[r+1][c+1] == v {
				total += 3
			}
		}
	}
	dark := 0
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.modules[r][c] {
				dark++
			}
		}
	}
	percent := dark * 100 / (g.n * g.n)
	total += abs(percent/5-10) * 10
	return total
}

func runPenalty(line []bool) int {
	total := 0
	run := 1
	for i := 1; i < len(line); i++ {
		if line[i] == line[i-1] {
			run++
			continue
		}
		if run >= 5 {
			total += run - 2
		}
		run = 1
	}
	if run >= 5 {
		total += run - 2
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// bestMask tries every mask in masks, returning the grid copy and
// index with the lowest penalty score.
func bestMask(base *grid, masks []int) (*grid, int) {
	var best *grid
	bestScore := 1 << 30
	bestIdx := masks[0]
	for _, m := range masks {
		cand := base.clone()
		applyMask(cand, m)
		score := penalty(cand)
		if score < bestScore {
			bestScore = score
			best = cand
			bestIdx = m
		}
	}
	return best, bestIdx
}

func (g *grid) clone() *grid {
	out := newGrid(g.n)
	for r := range g.modules {
		copy(out.modules[r], g.modules[r])
		copy(out.reserved[r], g.reserved[r])
	}
	return out
}

func matrixResult(g *grid, minHeight float64) registry.Result {
	return registry.Result{
		Modules:       g.modules,
		Rows:          g.n,
		Cols:          g.n,
		MinHeight:     minHeight,
		DefaultHeight: minHeight,
	}
}
