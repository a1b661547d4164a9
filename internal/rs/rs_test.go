package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCodeEncodeSyndromesAllZero(t *testing.T) {
	gf := NewGF(8, 0x12d)
	code := InitCode(gf, 10, 1, 1)

	data := []byte("123456ABCDEFG")
	ec := code.Encode(data)

	codeword := append(append([]byte{}, data...), ec...)
	syn := code.Syndromes(codeword)
	for i, s := range syn {
		assert.Equalf(t, 0, s, "syndrome %d should be zero for an untouched codeword", i)
	}
}

func TestCodeDecodeRoundTripsUncorrupted(t *testing.T) {
	gf := NewGF(8, 0x12d)
	code := InitCode(gf, 8, 1, 1)

	data := []byte("hello reed solomon")
	ec := code.Encode(data)
	codeword := append(append([]byte{}, data...), ec...)

	decoded, ok := code.Decode(codeword)
	assert.True(t, ok)
	assert.Equal(t, data, decoded)
}

func TestCodeEncodeSyndromesAllZeroRapid(t *testing.T) {
	gf := NewGF(8, 0x12d)
	code := InitCode(gf, 12, 1, 1)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 60).Draw(t, "n")
		data := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "data")

		ec := code.Encode(data)
		codeword := append(append([]byte{}, data...), ec...)
		syn := code.Syndromes(codeword)
		for _, s := range syn {
			if s != 0 {
				t.Fatalf("nonzero syndrome for untouched codeword of length %d", n)
			}
		}
	})
}

func TestWideCodeEncodeRoundTrips(t *testing.T) {
	gf := NewPrimeGF(929, 3)
	code := InitWideCode(gf, 6, 1)

	data := []int{1, 2, 3, 4, 5, 900, 899, 0}
	ec := code.Encode(data)
	if len(ec) != 6 {
		t.Fatalf("ec length = %d, want 6", len(ec))
	}
	for _, v := range ec {
		if v < 0 || v >= 929 {
			t.Fatalf("ec codeword %d out of GF(929) range", v)
		}
	}
}
