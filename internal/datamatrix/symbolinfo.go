// Package datamatrix implements ECC200 Data Matrix: a high-level
// encoder choosing among all six codeword modes (ASCII, C40, Text,
// X12, EDIFACT, BASE256) via an Annex P-style look-ahead
// (lookahead.go), Reed-Solomon error correction over internal/rs's
// byte-wide GF(256), and the Annex M diagonal module-placement walk.
//
// The symbol size table and the shape of the high-level encoder are
// grounded on a zxing-derived Data Matrix encoder's file layout
// (symbolinfo.go, highlevel.go, errorcorrection.go): this package keeps
// their division of labor (size selection, codeword emission, then
// RS-per-block) while building its own mode-selection state machine
// rather than porting that Java-derived one verbatim. C40 and Text are
// restricted to their basic sets (no Shift1/2/3 sub-sets); see
// DESIGN.md. Square symbols only; rectangular ECC200 sizes are a
// non-goal.
package datamatrix

// SymbolInfo describes one ECC200 square symbol size: its side length
// in modules, usable data codewords, error codewords, and how many RS
// blocks the codewords split across. The 144x144 skew, where the real
// standard splits error codewords unevenly across its ten blocks, is
// resolved here by dividing them evenly; DESIGN.md records this as a
// deliberate simplification, not an attempt at the exact skewed split.
type SymbolInfo struct {
	Size      int
	DataCW    int
	ErrorCW   int
	Blocks    int
}

var symbols = []SymbolInfo{
	{10, 3, 5, 1},
	{12, 5, 7, 1},
	{14, 8, 10, 1},
	{16, 12, 12, 1},
	{18, 18, 14, 1},
	{20, 22, 18, 1},
	{22, 30, 20, 1},
	{24, 36, 24, 1},
	{26, 44, 28, 1},
	{32, 62, 36, 1},
	{36, 86, 42, 1},
	{40, 114, 48, 1},
	{44, 144, 56, 1},
	{48, 174, 68, 1},
	{52, 204, 84, 1},
	{64, 280, 112, 2},
	{72, 368, 144, 4},
	{80, 456, 192, 4},
	{88, 576, 224, 4},
	{96, 696, 272, 4},
	{104, 816, 336, 6},
	{120, 1050, 408, 6},
	{132, 1304, 496, 8},
	{144, 1558, 620, 10},
}

// smallestFor returns the smallest symbol whose data capacity holds n
// codewords, or false if n exceeds even the largest symbol.
func smallestFor(n int) (SymbolInfo, bool) {
	for _, s := range symbols {
		if s.DataCW >= n {
			return s, true
		}
	}
	return SymbolInfo{}, false
}
