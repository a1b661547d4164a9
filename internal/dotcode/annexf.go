package dotcode

// annexf.go is the DotCode high-level encoder: the six-state
// (C/B/A/X plus macro and shift prefixes) rule chain from the
// standard's Annex F, with each rule guarded by the look-ahead
// predicates F.II defines. Codeword values 0-102 are data; 103-112
// carry the latches, shifts, FNC and binary-mode controls.

// datumA reports whether the next character is directly encodable in
// code set A.
func datumA(src []byte, pos int) bool {
	return pos < len(src) && src[pos] <= 95
}

// datumB reports how many characters the next code set B datum
// consumes: 0 if not encodable, 2 for a CRLF pair, 1 otherwise.
func datumB(src []byte, pos int) int {
	if pos >= len(src) {
		return 0
	}
	ret := 0
	if src[pos] >= 32 && src[pos] <= 127 {
		ret = 1
	}
	switch src[pos] {
	case 9, 28, 29, 30: // HT FS GS RS
		ret = 1
	}
	if pos+1 < len(src) && src[pos] == 13 && src[pos+1] == 10 {
		ret = 2
	}
	return ret
}

// datumC reports whether the next two characters form a code set C
// digit pair.
func datumC(src []byte, pos int) bool {
	return pos+1 < len(src) &&
		src[pos] >= '0' && src[pos] <= '9' &&
		src[pos+1] >= '0' && src[pos+1] <= '9'
}

func nDigits(src []byte, pos int) int {
	i := pos
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	return i - pos
}

// seventeenTen checks for ten or more digits shaped "17xxxxxx10...",
// the GS1 date/AI prelude with a dedicated codeword.
func seventeenTen(src []byte, pos int) bool {
	if nDigits(src, pos) >= 10 {
		return src[pos] == '1' && src[pos+1] == '7' && src[pos+8] == '1' && src[pos+9] == '0'
	}
	return false
}

// aheadC counts how many codewords a run of digit pairs ahead yields.
func aheadC(src []byte, pos int) int {
	count := 0
	for i := pos; i < len(src) && datumC(src, i); i += 2 {
		count++
	}
	return count
}

func tryC(src []byte, pos int) int {
	if nDigits(src, pos) > 0 && aheadC(src, pos) > aheadC(src, pos+1) {
		return aheadC(src, pos)
	}
	return 0
}

func aheadA(src []byte, pos int) int {
	count := 0
	for i := pos; i < len(src) && datumA(src, i) && tryC(src, i) < 2; i++ {
		count++
	}
	return count
}

// aheadB returns how many characters a code set B run ahead consumes
// and, in nx, the number of codewords it packs into.
func aheadB(src []byte, pos int) (chars, nx int) {
	count := 0
	i := pos
	for i < len(src) {
		incr := datumB(src, i)
		if incr == 0 || tryC(src, i) >= 2 {
			break
		}
		count++
		i += incr
	}
	return i - pos, count
}

// isBinary reports whether the character at pos is in 128-255.
func isBinary(src []byte, pos int) bool {
	return pos < len(src) && src[pos] >= 128
}

// drainBinary flushes the radix-259 buffer as base-103 codewords,
// most significant first; n bytes always produce n+1 codewords.
func drainBinary(buf uint64, size int, out []int) []int {
	var law [6]int
	for i := 0; i < size+1; i++ {
		law[i] = int(buf % 103)
		buf /= 103
	}
	for i := 0; i < size+1; i++ {
		out = append(out, law[size-i])
	}
	return out
}

// encodeMessage runs the Annex F rule chain over source, returning
// the data codeword stream and whether encoding finished in binary
// mode (which selects the 109 pad codeword).
func encodeMessage(source []byte, gs1, readerInit bool, eci int) (codewords []int, binaryFinish bool) {
	var out []int
	pos := 0
	mode := byte('C')
	insideMacro := 0
	var binaryBuffer uint64
	binaryBufferSize := 0
	length := len(source)

	if readerInit {
		out = append(out, 109) // FNC3
	}

	if !gs1 && length > 2 && source[0] >= '0' && source[0] <= '9' && source[1] >= '0' && source[1] <= '9' {
		out = append(out, 107) // FNC1
	}

	if eci > 0 {
		out = append(out, 108) // FNC2
		if eci <= 39 {
			out = append(out, eci)
		} else {
			a := (eci - 40) / 12769
			b := ((eci - 40) - 12769*a) / 113
			c := (eci - 40) - 12769*a - 113*b
			out = append(out, a+40, b, c)
		}
	}

	// A lead special would otherwise read as a macro marker.
	if length > 0 {
		switch source[0] {
		case 9, 28, 29, 30: // HT FS GS RS
			out = append(out, 101, int(source[0])+64) // Latch A + value
			mode = 'A'
			pos++
		}
	}

	for pos < length {
		done := false

		// Step A: a macro's trailing RS/EOT pair is implied.
		if pos == length-2 && insideMacro != 0 && insideMacro != 100 {
			pos += 2
			done = true
		}

		// Step B: macro 100's trailing EOT is implied.
		if !done && pos == length-1 && insideMacro == 100 {
			pos++
			done = true
		}

		// Step C1: "[)>RS.." message headers latch B and emit a macro codeword.
		if !done && mode == 'C' && len(out) == 0 && length > 6 {
			if source[pos] == '[' && source[pos+1] == ')' && source[pos+2] == '>' &&
				source[pos+3] == 30 && source[length-1] == 4 {
				if source[pos+6] == 29 && source[length-2] == 30 {
					switch {
					case source[pos+4] == '0' && source[pos+5] == '5':
						out = append(out, 106, 97)
						mode = 'B'
						pos += 7
						insideMacro = 97
						done = true
					case source[pos+4] == '0' && source[pos+5] == '6':
						out = append(out, 106, 98)
						mode = 'B'
						pos += 7
						insideMacro = 98
						done = true
					case source[pos+4] == '1' && source[pos+5] == '2':
						out = append(out, 106, 99)
						mode = 'B'
						pos += 7
						insideMacro = 99
						done = true
					}
				}
				if !done && source[pos+4] >= '0' && source[pos+4] <= '9' &&
					source[pos+5] >= '0' && source[pos+5] <= '9' {
					out = append(out, 106, 100)
					mode = 'B'
					pos += 4
					insideMacro = 100
					done = true
				}
			}
		}

		// Step C2.
		if !done && mode == 'C' && seventeenTen(source, pos) {
			out = append(out, 100,
				digitPair(source, pos+2), digitPair(source, pos+4), digitPair(source, pos+6))
			pos += 10
			done = true
		}
		if !done && mode == 'C' {
			if datumC(source, pos) || (source[pos] == '[' && gs1) {
				if source[pos] == '[' {
					out = append(out, 107) // FNC1
					pos++
				} else {
					out = append(out, digitPair(source, pos))
					pos += 2
				}
				done = true
			}
		}

		// Step C3: a binary byte before more digits upper-shifts; with
		// no digits ahead it latches binary.
		if !done && mode == 'C' && isBinary(source, pos) {
			if nDigits(source, pos+1) > 0 {
				if source[pos]-128 < 32 {
					out = append(out, 110, int(source[pos])-128+64) // Upper Shift A
				} else {
					out = append(out, 111, int(source[pos])-128-32) // Upper Shift B
				}
				pos++
			} else {
				out = append(out, 112) // Bin Latch
				mode = 'X'
			}
			done = true
		}

		// Step C4.
		if !done && mode == 'C' {
			m := aheadA(source, pos)
			n, nx := aheadB(source, pos)
			if m > n {
				out = append(out, 101) // Latch A
				mode = 'A'
			} else if nx >= 1 && nx <= 4 {
				out = append(out, 101+nx) // nx Shift B
				for i := 0; i < nx; i++ {
					out, pos = emitSetB(source, pos, out)
				}
			} else {
				out = append(out, 106) // Latch B
				mode = 'B'
			}
			done = true
		}

		// Step D1.
		if !done && mode == 'B' {
			if n := tryC(source, pos); n >= 2 {
				if n <= 4 {
					out = append(out, 103+n-2) // nx Shift C
					for i := 0; i < n; i++ {
						out = append(out, digitPair(source, pos))
						pos += 2
					}
				} else {
					out = append(out, 106) // Latch C
					mode = 'C'
				}
				done = true
			}
		}

		// Step D2.
		if !done && mode == 'B' {
			if source[pos] == '[' && gs1 {
				out = append(out, 107) // FNC1
				pos++
				done = true
			} else if datumB(source, pos) != 0 {
				switch {
				case source[pos] >= 32 && source[pos] <= 127:
					out = append(out, int(source[pos])-32)
					pos++
					done = true
				case source[pos] == 13: // CRLF
					out = append(out, 96)
					pos += 2
					done = true
				case pos != 0:
					// HT/FS/GS/RS first would read as a macro marker.
					switch source[pos] {
					case 9:
						out = append(out, 97)
					case 28:
						out = append(out, 98)
					case 29:
						out = append(out, 99)
					case 30:
						out = append(out, 100)
					}
					pos++
					done = true
				}
			}
		}

		// Step D3.
		if !done && mode == 'B' && isBinary(source, pos) {
			if datumB(source, pos+1) != 0 {
				if source[pos]-128 < 32 {
					out = append(out, 110, int(source[pos])-128+64) // Bin Shift A
				} else {
					out = append(out, 111, int(source[pos])-128-32) // Bin Shift B
				}
				pos++
			} else {
				out = append(out, 112) // Bin Latch
				mode = 'X'
			}
			done = true
		}

		// Step D4.
		if !done && mode == 'B' {
			if aheadA(source, pos) == 1 {
				out = append(out, 101) // Shift A
				if source[pos] < 32 {
					out = append(out, int(source[pos])+64)
				} else {
					out = append(out, int(source[pos])-32)
				}
				pos++
			} else {
				out = append(out, 102) // Latch A
				mode = 'A'
			}
			done = true
		}

		// Step E1.
		if !done && mode == 'A' {
			if n := tryC(source, pos); n >= 2 {
				if n <= 4 {
					out = append(out, 103+n-2) // nx Shift C
					for i := 0; i < n; i++ {
						out = append(out, digitPair(source, pos))
						pos += 2
					}
				} else {
					out = append(out, 106) // Latch C
					mode = 'C'
				}
				done = true
			}
		}

		// Step E2.
		if !done && mode == 'A' {
			if source[pos] == '[' && gs1 {
				out = append(out, 107) // FNC1
				pos++
				done = true
			} else if datumA(source, pos) {
				if source[pos] < 32 {
					out = append(out, int(source[pos])+64)
				} else {
					out = append(out, int(source[pos])-32)
				}
				pos++
				done = true
			}
		}

		// Step E3.
		if !done && mode == 'A' && isBinary(source, pos) {
			if datumA(source, pos+1) {
				if source[pos]-128 < 32 {
					out = append(out, 110, int(source[pos])-128+64)
				} else {
					out = append(out, 111, int(source[pos])-128-32)
				}
				pos++
			} else {
				out = append(out, 112) // Bin Latch
				mode = 'X'
			}
			done = true
		}

		// Step E4.
		if !done && mode == 'A' {
			_, nx := aheadB(source, pos)
			if nx >= 1 && nx <= 6 {
				out = append(out, 95+nx) // nx Shift B
				for i := 0; i < nx; i++ {
					out, pos = emitSetB(source, pos, out)
				}
			} else {
				out = append(out, 102) // Latch B
				mode = 'B'
			}
			done = true
		}

		// Step F1.
		if !done && mode == 'X' {
			if n := tryC(source, pos); n >= 2 {
				out = drainBinary(binaryBuffer, binaryBufferSize, out)
				binaryBuffer = 0
				binaryBufferSize = 0
				if n <= 7 {
					out = append(out, 101+n) // interrupt for nx Shift C
					for i := 0; i < n; i++ {
						out = append(out, digitPair(source, pos))
						pos += 2
					}
				} else {
					out = append(out, 111) // terminate with Latch C
					mode = 'C'
				}
				done = true
			}
		}

		// Step F2: groups of five bytes radix-convert from base 259
		// into six base-103 codewords.
		if !done && mode == 'X' {
			if isBinary(source, pos) || isBinary(source, pos+1) ||
				isBinary(source, pos+2) || isBinary(source, pos+3) {
				binaryBuffer = binaryBuffer*259 + uint64(source[pos])
				binaryBufferSize++
				if binaryBufferSize == 5 {
					out = drainBinary(binaryBuffer, 5, out) // five bytes pack to six codewords
					binaryBuffer = 0
					binaryBufferSize = 0
				}
				pos++
				done = true
			}
		}

		// Step F3.
		if !done && mode == 'X' {
			out = drainBinary(binaryBuffer, binaryBufferSize, out)
			binaryBuffer = 0
			binaryBufferSize = 0
			na := aheadA(source, pos)
			nb, _ := aheadB(source, pos)
			if na > nb {
				out = append(out, 109) // terminate with Latch A
				mode = 'A'
			} else {
				out = append(out, 110) // terminate with Latch B
				mode = 'B'
			}
		}
	}

	if mode == 'X' {
		if binaryBufferSize != 0 {
			out = drainBinary(binaryBuffer, binaryBufferSize, out)
		}
		binaryFinish = true
	}

	return out, binaryFinish
}

func digitPair(src []byte, pos int) int {
	return int(src[pos]-'0')*10 + int(src[pos+1]-'0')
}

// emitSetB writes one code set B value for the character at pos,
// handling the CRLF pair and the HT/FS/GS/RS substitutes.
func emitSetB(src []byte, pos int, out []int) ([]int, int) {
	switch {
	case src[pos] >= 32:
		out = append(out, int(src[pos])-32)
		pos++
	case src[pos] == 13: // CRLF
		out = append(out, 96)
		pos += 2
	default:
		switch src[pos] {
		case 9:
			out = append(out, 97)
		case 28:
			out = append(out, 98)
		case 29:
			out = append(out, 99)
		case 30:
			out = append(out, 100)
		}
		pos++
	}
	return out, pos
}
