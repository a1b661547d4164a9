package pdf417

// segmentation.go implements Appendix D's block segmentation: tagging
// every source byte as TEX (representable by the Text submodes), BYT
// (arbitrary byte), or NUM (decimal digit), then merging the raw runs
// so that only runs worth a mode switch survive as blocks of their
// own. The merge rules:
//
//   - a NUM run stands alone when it is at least 13 digits long, or at
//     least 6 when it is the entire message;
//   - a NUM run of 11-12 digits weighs its Numeric encoding against
//     staying in the surrounding Text stream and keeps whichever is
//     cheaper;
//   - shorter NUM runs are consumed by an adjacent TEX run (digits are
//     always Text-representable via MIXED);
//   - TEX runs shorter than 5 bytes adjacent to a BYT run are consumed
//     by it, as are any NUM stragglers already absorbed into them.

type blockMode int

const (
	modeTEX blockMode = iota
	modeBYT
	modeNUM
)

type block struct {
	mode blockMode
	data []byte
}

func classify(b byte) blockMode {
	if b >= '0' && b <= '9' {
		return modeNUM
	}
	if _, _, ok := findSubmode(b); ok {
		return modeTEX
	}
	return modeBYT
}

// rawRuns splits source into maximal runs of one classification.
func rawRuns(source []byte) []block {
	var runs []block
	for i := 0; i < len(source); {
		m := classify(source[i])
		j := i + 1
		for j < len(source) && classify(source[j]) == m {
			j++
		}
		runs = append(runs, block{mode: m, data: source[i:j]})
		i = j
	}
	return runs
}

// numericStandsAlone decides whether a NUM run keeps its own Numeric
// block rather than dissolving into a neighbouring Text stream.
func numericStandsAlone(n int, wholeMessage bool) bool {
	if wholeMessage {
		return n >= 6
	}
	return n >= 13
}

// numericCheaper weighs an 11-12 digit run's Numeric cost (mode latch
// plus base-900 codewords) against its Text cost (two digits per
// codeword inside an already-running Text stream, no latch). Numeric
// packs just under three digits per codeword, so at these lengths the
// comparison is genuinely close and worth computing exactly.
func numericCheaper(digits []byte) bool {
	numCost := 1 + len(numericCompaction(digits))
	texCost := (len(digits) + 1) / 2
	return numCost < texCost
}

// segmentBlocks reduces source to its final block sequence. The
// result is non-empty for non-empty input and every block's data is a
// contiguous slice of source in order.
func segmentBlocks(source []byte) []block {
	runs := rawRuns(source)

	// Pass 1: dissolve NUM runs that don't earn a block of their own
	// into TEX (digits are MIXED-submode characters, so a dissolved
	// run simply reclassifies).
	whole := len(runs) == 1
	merged := make([]block, 0, len(runs))
	for _, r := range runs {
		if r.mode == modeNUM {
			keep := numericStandsAlone(len(r.data), whole)
			if !keep && len(r.data) >= 11 {
				keep = numericCheaper(r.data)
			}
			if !keep {
				r.mode = modeTEX
			}
		}
		merged = appendCoalesced(merged, r)
	}

	// Pass 2: BYT runs consume short TEX stragglers. A Text block
	// shorter than 5 bytes between (or beside) Byte blocks costs more
	// in mode latches than it saves in packing density.
	const minTexRun = 5
	out := make([]block, 0, len(merged))
	for i, r := range merged {
		if r.mode == modeTEX && len(r.data) < minTexRun {
			prevByte := len(out) > 0 && out[len(out)-1].mode == modeBYT
			nextByte := i+1 < len(merged) && merged[i+1].mode == modeBYT
			if prevByte || nextByte {
				r.mode = modeBYT
			}
		}
		out = appendCoalesced(out, r)
	}
	return out
}

func appendCoalesced(blocks []block, r block) []block {
	if n := len(blocks); n > 0 && blocks[n-1].mode == r.mode {
		blocks[n-1].data = append(append([]byte(nil), blocks[n-1].data...), r.data...)
		return blocks
	}
	return append(blocks, r)
}

// emitBlocks converts a block sequence to the final codeword stream.
// The symbol's initial mode is initial (TEX for full PDF417, BYT for
// MicroPDF417); a TEX block emits the 900 latch only when the current
// mode is not already TEX, a single BYT byte inside a Text stream uses
// the 913 shift (staying latched in Text), and BYT blocks pick 924
// versus 901 by whether their length is an exact multiple of six.
func emitBlocks(blocks []block, initial blockMode) []int {
	var out []int
	mode := initial
	for _, blk := range blocks {
		switch blk.mode {
		case modeNUM:
			out = append(out, latchNumeric)
			out = append(out, numericCompaction(blk.data)...)
			mode = modeNUM
		case modeTEX:
			if mode != modeTEX {
				out = append(out, latchText)
			}
			cws, ok := textCompaction(blk.data)
			if !ok {
				// classify guarantees Text-representability; an
				// unrepresentable byte here means a classifier bug,
				// so fall back to Byte rather than drop data.
				out = append(out, byteLatchFor(len(blk.data)))
				out = append(out, byteCompaction(blk.data)...)
				mode = modeBYT
				continue
			}
			out = append(out, cws...)
			mode = modeTEX
		case modeBYT:
			if mode == modeTEX && len(blk.data) == 1 {
				out = append(out, shiftByte, int(blk.data[0]))
				continue // shift: mode stays TEX
			}
			if mode != modeBYT {
				out = append(out, byteLatchFor(len(blk.data)))
			}
			out = append(out, byteCompaction(blk.data)...)
			mode = modeBYT
		}
	}
	return out
}

func byteLatchFor(n int) int {
	if n%6 == 0 {
		return latchByteAny
	}
	return latchByte6
}
