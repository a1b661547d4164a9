// Package rs implements two Reed-Solomon parameterizations: a byte-wide
// GF (degree <= 8) with precomputed log tables, shared by every
// symbology that corrects over GF(256)-or-smaller, and a wider GF
// (prime field or GF(2^k), k up to ~30) for PDF417's GF(929) and
// Aztec's larger fields.
//
// The classical index_of/alpha_to/genpoly construction below is
// grounded on Phil Karn's RS codec as carried into an FX.25 forward
// error correction layer (init_rs_char): the same table layout, the
// same generator-polynomial-built-one-root-at-a-time-in-index-form
// loop.
package rs

// GF is an immutable byte-wide Galois field: log/antilog tables built
// from a primitive polynomial of degree <= 8. Any number of Code values
// may share one GF by reference — the tables are immutable constants,
// so any number of encoders may reference them.
type GF struct {
	nn      int // 2^symsize - 1
	symsize int
	alphaTo []byte
	indexOf []byte
}

// NewGF builds the log/antilog tables for a degree-symsize field whose
// elements satisfy the primitive polynomial poly, leading term included
// (e.g. 0x12d = x^8+x^5+x^3+x^2+1 for Data Matrix with symsize 8,
// 0x43 = x^6+x+1 for MaxiCode with symsize 6).
func NewGF(symsize int, poly int) *GF {
	nn := (1 << symsize) - 1
	gf := &GF{nn: nn, symsize: symsize, alphaTo: make([]byte, nn+1), indexOf: make([]byte, nn+1)}

	gf.indexOf[0] = byte(nn)
	gf.alphaTo[nn] = 0
	sr := 1
	for i := 0; i < nn; i++ {
		gf.indexOf[sr] = byte(i)
		gf.alphaTo[i] = byte(sr)
		sr <<= 1
		if sr&(1<<uint(symsize)) != 0 {
			sr ^= poly
		}
		sr &= nn
	}
	return gf
}

func (gf *GF) modnn(x int) int {
	for x >= gf.nn {
		x -= gf.nn
		x = (x >> uint(gf.symsize)) + (x & gf.nn)
	}
	return x
}

// Mul multiplies two field elements via the log tables.
func (gf *GF) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.alphaTo[gf.modnn(int(gf.indexOf[a])+int(gf.indexOf[b]))]
}

// Code is a generator polynomial over a GF, stored in index form for
// fast encoding — mirroring fx25_init.go's "convert genpoly to index
// form for quicker encoding" step.
type Code struct {
	gf      *GF
	genpoly []byte // index form, length nroots+1
	nroots  int
	fcr     int
	prim    int
}

// InitCode builds the generator polynomial (x-a^index)(x-a^(index+1))...
// for nsym roots starting at the given index, over gf. prim is the
// primitive element step between consecutive roots (1 for every
// symbology this core implements).
func InitCode(gf *GF, nsym int, index int, prim int) *Code {
	c := &Code{gf: gf, nroots: nsym, fcr: index, prim: prim, genpoly: make([]byte, nsym+1)}
	c.genpoly[0] = 1
	for i, root := 0, index*prim; i < nsym; i, root = i+1, root+prim {
		c.genpoly[i+1] = 1
		for j := i; j > 0; j-- {
			if c.genpoly[j] != 0 {
				c.genpoly[j] = c.genpoly[j-1] ^ gf.alphaTo[gf.modnn(int(gf.indexOf[c.genpoly[j]])+root)]
			} else {
				c.genpoly[j] = c.genpoly[j-1]
			}
		}
		c.genpoly[0] = gf.alphaTo[gf.modnn(int(gf.indexOf[c.genpoly[0]])+root)]
	}
	for i := range c.genpoly {
		c.genpoly[i] = gf.indexOf[c.genpoly[i]]
	}
	return c
}

// Encode runs the classical systematic LFSR division, returning the
// residual codewords in reverse order (residual[0] is the
// lowest-degree remainder, residual[nroots-1] the highest).
func (c *Code) Encode(data []byte) []byte {
	gf := c.gf
	bb := make([]byte, c.nroots)
	for _, dataByte := range data {
		feedback := gf.indexOf[dataByte^bb[0]]
		if int(feedback) != gf.nn {
			for j := 1; j < c.nroots; j++ {
				bb[j] ^= gf.alphaTo[gf.modnn(int(feedback)+int(c.genpoly[c.nroots-j]))]
			}
		}
		copy(bb, bb[1:])
		if int(feedback) != gf.nn {
			bb[c.nroots-1] = gf.alphaTo[gf.modnn(int(feedback)+int(c.genpoly[0]))]
		} else {
			bb[c.nroots-1] = 0
		}
	}
	residual := make([]byte, c.nroots)
	for i, v := range bb {
		residual[c.nroots-1-i] = v
	}
	return residual
}

// Syndromes returns the nroots syndrome values for data||residual. All
// zero means the codeword is consistent (no error detected); this is
// the companion half of the encode/decode round-trip property.
func (c *Code) Syndromes(codeword []byte) []int {
	gf := c.gf
	// Encode's residual is stored lowest-degree first; read it back
	// highest-degree first so data||residual evaluates as one polynomial.
	poly := codeword
	if n := len(codeword); n >= c.nroots {
		poly = append([]byte(nil), codeword[:n-c.nroots]...)
		for i := n - 1; i >= n-c.nroots; i-- {
			poly = append(poly, codeword[i])
		}
	}
	syn := make([]int, c.nroots)
	for i := 0; i < c.nroots; i++ {
		root := (c.fcr + i) * c.prim
		var acc byte
		for _, b := range poly {
			if acc == 0 {
				acc = b
			} else {
				acc = b ^ gf.alphaTo[gf.modnn(int(gf.indexOf[acc])+root)]
			}
		}
		syn[i] = int(acc)
	}
	return syn
}

// Decode recovers the original data codewords from a possibly-corrupted
// data||residual block, correcting up to nroots/2 symbol errors. It
// reports ok=false when the syndromes are nonzero but no valid
// correction was found.
func (c *Code) Decode(codeword []byte) (data []byte, ok bool) {
	syn := c.Syndromes(codeword)
	allZero := true
	for _, s := range syn {
		if s != 0 {
			allZero = false
			break
		}
	}
	n := len(codeword)
	if allZero {
		out := make([]byte, n-c.nroots)
		copy(out, codeword[:n-c.nroots])
		return out, true
	}

	locator, errCount := berlekampMassey(c.gf, syn, c.nroots)
	if errCount == 0 {
		return nil, false
	}
	positions := chienSearch(c.gf, locator, n)
	if len(positions) != errCount {
		return nil, false
	}
	corrected := append([]byte(nil), codeword...)
	if !forneyCorrect(c.gf, corrected, syn, locator, positions, c.fcr, c.prim) {
		return nil, false
	}
	out := make([]byte, n-c.nroots)
	copy(out, corrected[:n-c.nroots])
	return out, true
}

// berlekampMassey finds the error-locator polynomial from the syndromes.
func berlekampMassey(gf *GF, syn []int, nroots int) (locator []byte, errCount int) {
	c := make([]byte, nroots+1)
	b := make([]byte, nroots+1)
	c[0], b[0] = 1, 1
	l, m := 0, 1
	var bCoeff byte = 1

	for n := 0; n < nroots; n++ {
		var delta byte
		for i := 0; i <= l; i++ {
			delta ^= gfMulSyn(gf, c[i], syn[n-i])
		}
		if delta == 0 {
			m++
			continue
		}
		t := append([]byte(nil), c...)
		coef := gf.Mul(delta, gfInverse(gf, bCoeff))
		for i := 0; i+m < len(c); i++ {
			c[i+m] ^= gf.Mul(coef, b[i])
		}
		if 2*l <= n {
			l = n + 1 - l
			b = t
			bCoeff = delta
			m = 1
		} else {
			m++
		}
	}
	return c[:l+1], l
}

func gfMulSyn(gf *GF, a byte, synVal int) byte {
	if synVal < 0 {
		return 0
	}
	return gf.Mul(a, byte(synVal))
}

func gfInverse(gf *GF, a byte) byte {
	if a == 0 {
		return 0
	}
	return gf.alphaTo[gf.modnn(gf.nn-int(gf.indexOf[a]))]
}

// chienSearch finds the roots of the error locator polynomial by brute
// force substitution, returning codeword positions (0-based, from the
// start of codeword) where errors occurred.
func chienSearch(gf *GF, locator []byte, n int) []int {
	var positions []int
	for i := 0; i < n; i++ {
		// Evaluate locator at alpha^-(i) ... equivalently test x = alpha^(n-1-i).
		x := gf.modnn(gf.nn - i)
		var acc byte
		for j, coef := range locator {
			if coef == 0 {
				continue
			}
			term := gf.alphaTo[gf.modnn(int(gf.indexOf[coef])+x*j)]
			acc ^= term
		}
		if acc == 0 {
			positions = append(positions, n-1-i)
		}
	}
	return positions
}

// forneyCorrect applies the Forney algorithm to fix the error magnitudes
// at the given positions, in place.
func forneyCorrect(gf *GF, codeword []byte, syn []int, locator []byte, positions []int, fcr, prim int) bool {
	// Error evaluator polynomial: omega(x) = [S(x)*Lambda(x)] mod x^nroots
	nroots := len(syn)
	synPoly := make([]byte, nroots)
	for i, s := range syn {
		synPoly[i] = byte(s)
	}
	omega := make([]byte, nroots)
	for i := 0; i < nroots; i++ {
		var acc byte
		for j := 0; j <= i && j < len(locator); j++ {
			acc ^= gf.Mul(locator[j], synPoly[i-j])
		}
		omega[i] = acc
	}

	for _, pos := range positions {
		x := gf.alphaTo[gf.modnn(pos)]
		xInv := gfInverse(gf, x)

		var num byte
		for i, coef := range omega {
			if coef == 0 {
				continue
			}
			num ^= gf.alphaTo[gf.modnn(int(gf.indexOf[coef])+i*gf.modnn(gf.nn-int(gf.indexOf[xInv])))]
		}

		var denom byte = 0
		for i := 1; i < len(locator); i += 2 {
			if locator[i] == 0 {
				continue
			}
			denom ^= gf.alphaTo[gf.modnn(int(gf.indexOf[locator[i]])+(i-1)*gf.modnn(gf.nn-int(gf.indexOf[xInv])))]
		}
		if denom == 0 {
			return false
		}
		magnitude := gf.Mul(num, gfInverse(gf, denom))
		idx := len(codeword) - 1 - pos
		if idx < 0 || idx >= len(codeword) {
			return false
		}
		codeword[idx] ^= magnitude
	}
	return true
}
