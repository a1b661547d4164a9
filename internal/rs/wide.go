package rs

// WideGF is the larger-field counterpart to GF: PDF417 needs GF(929), a
// prime field (characteristic 929, not a power of 2), and Aztec needs
// GF(2^k) for k up to 12 depending on symbol size. Both share one
// log/antilog-table representation parameterized by the field's order.
//
// These tables are conceptually heap-allocated resources paired with a
// teardown step in the originating implementation; in Go the garbage
// collector reclaims them once the WideGF value is unreachable, so
// there is no explicit Close/teardown — see DESIGN.md for why that
// substitution is safe here.
type WideGF struct {
	order   int // field size (929 for PDF417, 2^k for Aztec)
	prime   bool
	alphaTo []uint32
	indexOf []uint32
	// poly is set only for the GF(2^k) (Aztec) case, where
	// field addition is XOR but elements are tracked as polynomials
	// mod the field's irreducible polynomial rather than as residues
	// mod a prime.
	poly int
}

// NewPrimeGF builds GF(p) log/antilog tables using generator as a
// primitive root of p. PDF417 calls this with p=929, generator=3.
func NewPrimeGF(p, generator int) *WideGF {
	gf := &WideGF{order: p, prime: true, alphaTo: make([]uint32, p), indexOf: make([]uint32, p)}
	x := 1
	for i := 0; i < p-1; i++ {
		gf.alphaTo[i] = uint32(x)
		gf.indexOf[x] = uint32(i)
		x = (x * generator) % p
	}
	return gf
}

// NewBinaryWideGF builds GF(2^k) log/antilog tables from an irreducible
// polynomial of degree k (k up to ~30). Aztec selects poly per version.
func NewBinaryWideGF(k int, poly int) *WideGF {
	order := 1 << uint(k)
	gf := &WideGF{order: order, prime: false, poly: poly, alphaTo: make([]uint32, order), indexOf: make([]uint32, order)}
	sr := 1
	for i := 0; i < order-1; i++ {
		gf.alphaTo[i] = uint32(sr)
		gf.indexOf[sr] = uint32(i)
		sr <<= 1
		if sr&order != 0 {
			sr ^= poly
		}
		sr &= order - 1
	}
	return gf
}

// Add returns a+b in the field: modular addition for the prime-field
// case, XOR for GF(2^k).
func (gf *WideGF) Add(a, b int) int {
	if gf.prime {
		return (a + b) % gf.order
	}
	return a ^ b
}

// Mul returns a*b in the field via the log tables.
func (gf *WideGF) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if gf.prime {
		logSum := (int(gf.indexOf[a]) + int(gf.indexOf[b])) % (gf.order - 1)
		return int(gf.alphaTo[logSum])
	}
	logSum := (int(gf.indexOf[uint32(a)]) + int(gf.indexOf[uint32(b)])) % (gf.order - 1)
	return int(gf.alphaTo[logSum])
}

func (gf *WideGF) inverse(a int) int {
	if gf.prime {
		logA := int(gf.indexOf[a])
		return int(gf.alphaTo[(gf.order-1-logA)%(gf.order-1)])
	}
	logA := int(gf.indexOf[uint32(a)])
	return int(gf.alphaTo[(gf.order-1-logA)%(gf.order-1)])
}

// WideCode is a generator polynomial over a WideGF, built the same way
// as the byte-wide Code but with int coefficients.
type WideCode struct {
	gf      *WideGF
	genpoly []int
	nroots  int
}

// InitWideCode builds the degree-nsym generator polynomial starting at
// root index "index", primitive step 1 (both PDF417 and Aztec use
// consecutive roots).
func InitWideCode(gf *WideGF, nsym int, index int) *WideCode {
	c := &WideCode{gf: gf, nroots: nsym, genpoly: make([]int, nsym+1)}
	c.genpoly[0] = 1
	root := index
	for i := 0; i < nsym; i++ {
		c.genpoly[i+1] = 1
		for j := i; j > 0; j-- {
			c.genpoly[j] = gf.Add(c.genpoly[j], gf.Mul(c.genpoly[j-1], gf.elementAt(root)))
		}
		c.genpoly[0] = gf.Mul(c.genpoly[0], gf.elementAt(root))
		root++
	}
	return c
}

func (gf *WideGF) elementAt(logIndex int) int {
	return int(gf.alphaTo[logIndex%(gf.order-1)])
}

// Encode runs systematic polynomial division over the wide field,
// returning the nsym residual codewords in reverse order, consistent
// with the byte-wide Code.Encode contract.
func (c *WideCode) Encode(data []int) []int {
	gf := c.gf
	bb := make([]int, c.nroots)
	for _, d := range data {
		feedback := gf.Add(d, bb[0])
		copy(bb, bb[1:])
		bb[c.nroots-1] = 0
		if feedback != 0 {
			for j := 0; j < c.nroots; j++ {
				bb[j] = gf.Add(bb[j], gf.Mul(feedback, c.genpoly[c.nroots-1-j]))
			}
		}
	}
	residual := make([]int, c.nroots)
	for i, v := range bb {
		residual[c.nroots-1-i] = v
	}
	return residual
}
