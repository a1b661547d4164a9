package dotcode

// DotCode's error correction runs over the prime field GF(113) with
// primitive element 3, interleaved into as many Reed-Solomon blocks
// as the codeword count requires (a single block once the total stays
// under the field order). This field is prime like PDF417's GF(929)
// but small enough that the generator table is built inline rather
// than through internal/rs's WideGF (whose encode contract returns a
// detached residual; DotCode's interleaving writes check words into
// scattered positions of one shared array).

const gf113 = 113

// rs113Encode appends nc check words to the data words and returns
// the full codeword sequence, check words interleaved in place the
// way the dot stream expects them.
func rs113Encode(data []int, nc int) []int {
	root := make([]int, gf113-1)
	root[0] = 1
	for i := 1; i < gf113-1; i++ {
		root[i] = root[i-1] * 3 % gf113
	}

	nd := len(data)
	nw := nd + nc
	wd := make([]int, nw)
	copy(wd, data)

	// Interleave into enough blocks that each stays within the field.
	step := (nw + gf113 - 2) / (gf113 - 1)
	for start := 0; start < step; start++ {
		blockND := (nd - start + step - 1) / step
		blockNW := (nw - start + step - 1) / step
		blockNC := blockNW - blockND

		c := make([]int, blockNC+1)
		c[0] = 1
		for i := 1; i <= blockNC; i++ {
			for j := blockNC; j >= 1; j-- {
				c[j] = (gf113 + c[j] - root[i]*c[j-1]%gf113) % gf113
			}
		}

		for i := blockND; i < blockNW; i++ {
			wd[start+i*step] = 0
		}
		for i := 0; i < blockND; i++ {
			k := (wd[start+i*step] + wd[start+blockND*step]) % gf113
			for j := 0; j < blockNC-1; j++ {
				wd[start+(blockND+j)*step] = (gf113 - c[j+1]*k%gf113 + wd[start+(blockND+j+1)*step]) % gf113
			}
			wd[start+(blockND+blockNC-1)*step] = (gf113 - c[blockNC]*k%gf113) % gf113
		}
		for i := blockND; i < blockNW; i++ {
			wd[start+i*step] = (gf113 - wd[start+i*step]) % gf113
		}
	}
	return wd
}
