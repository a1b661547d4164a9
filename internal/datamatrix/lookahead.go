package datamatrix

import "github.com/uSwapExchange/symcore/internal/gs1"

// lookahead.go implements Annex P's mode look-ahead: six candidate
// encodation modes (ASCII, C40, Text, X12, EDIFACT, BASE256) each keep
// a running cost counter scaled by dmMult (twelfths of a codeword) so
// that fractional per-character costs like C40's 2/3 stay exact
// integers. encodeHighLevel runs the look-ahead at every position
// where the current mode might no longer be cheapest, switches when
// another mode pulls ahead, and otherwise keeps emitting in the
// current mode.

type dmMode int

const (
	modeASCII dmMode = iota
	modeC40
	modeText
	modeX12
	modeEDIFACT
	modeBase256
	numDMModes
)

const dmMult = 12

type modeCosts [int(numDMModes)]int

// initCosts seeds the running counters the way Annex P does: the mode
// already active costs nothing to keep using, every other candidate
// starts one whole character ahead, biasing the look-ahead against
// switching for a one-character gain.
func initCosts(current dmMode) modeCosts {
	var c modeCosts
	for m := range c {
		if dmMode(m) != current {
			c[m] = dmMult
		}
	}
	return c
}

func roundUpMult(v int) int {
	if r := v % dmMult; r != 0 {
		return v + (dmMult - r)
	}
	return v
}

// step folds one input byte's cost into every candidate's counter, per
// spec.md's DM_MULT=12 increment table.
func (c *modeCosts) step(b byte) {
	if b >= '0' && b <= '9' {
		c[modeASCII] += dmMult / 2
	} else {
		c[modeASCII] = roundUpMult(c[modeASCII])
		if b >= 128 {
			c[modeASCII] += 2 * dmMult
		} else {
			c[modeASCII] += dmMult
		}
	}

	if c40Eligible(b) {
		c[modeC40] += 8
	} else {
		c[modeC40] += 32
	}

	if textEligible(b) {
		c[modeText] += 8
	} else {
		c[modeText] += 32
	}

	if x12Eligible(b) {
		c[modeX12] += 8
	} else {
		c[modeX12] += 52
	}

	if edifactEligible(b) {
		c[modeEDIFACT] += 9
	} else {
		c[modeEDIFACT] += 51
	}

	if b == gs1.FNC1 {
		c[modeBase256] += 4 * dmMult
	} else {
		c[modeBase256] += dmMult
	}
}

const lookaheadWindow = 8

// chooseMode runs the look-ahead from the current position, returning
// the cheapest mode after consuming up to lookaheadWindow bytes of
// data (or all of it, if fewer remain). Ties break by a fixed priority
// (ASCII, C40, Text, X12, EDIFACT, BASE256), except that a C40/X12 tie
// favors X12 when an X12 segment terminator (CR) appears within the
// window, per spec.md §4.E.
func chooseMode(data []byte, current dmMode) dmMode {
	costs := initCosts(current)
	window := len(data)
	if window > lookaheadWindow {
		window = lookaheadWindow
	}
	hasCR := false
	for i := 0; i < window; i++ {
		costs.step(data[i])
		if data[i] == '\r' {
			hasCR = true
		}
	}
	return pickWinner(costs, hasCR)
}

// pickWinner chooses the cheapest mode from a completed look-ahead
// pass, breaking ties by priority (ASCII, C40, Text, X12, EDIFACT,
// BASE256) except that a C40/X12 tie favors X12 when the window
// contained an X12 segment terminator (CR).
func pickWinner(costs modeCosts, hasCR bool) dmMode {
	order := [...]dmMode{modeASCII, modeC40, modeText, modeX12, modeEDIFACT, modeBase256}
	best := modeASCII
	for _, m := range order {
		if costs[m] < costs[best] {
			best = m
		}
	}
	if best == modeC40 && costs[modeX12] == costs[modeC40] && hasCR {
		best = modeX12
	}
	return best
}

// classifyModes assigns each byte of data the mode chooseMode picks
// for it, feeding each call the mode chosen for the previous byte (or
// ASCII at the very start).
func classifyModes(data []byte) []dmMode {
	modes := make([]dmMode, len(data))
	cur := modeASCII
	for i := range data {
		cur = chooseMode(data[i:], cur)
		modes[i] = cur
	}
	return modes
}

// encodeHighLevel segments data by classifyModes's per-byte mode
// choice, merges adjacent same-mode bytes into runs, and emits each run
// with its mode's encoder, latching into and unlatching out of
// C40/Text/X12 as the active mode changes (EDIFACT and BASE256 carry
// their own in-band terminator / explicit length, so no separate
// unlatch call is needed after them).
func encodeHighLevel(data []byte) []int {
	if len(data) == 0 {
		return nil
	}
	modes := classifyModes(data)

	var out []int
	cur := modeASCII
	i := 0
	for i < len(data) {
		j := i
		for j < len(data) && modes[j] == modes[i] {
			j++
		}
		seg := modes[i]
		run := data[i:j]

		if seg != cur && (cur == modeC40 || cur == modeText || cur == modeX12) {
			out = append(out, c40Unlatch)
			cur = modeASCII
		}

		switch seg {
		case modeASCII:
			out = append(out, encodeASCII(run)...)
			cur = modeASCII
		case modeC40:
			if cur != modeC40 {
				out = append(out, latchC40)
			}
			out = append(out, encodeTriples(run, c40Value)...)
			cur = modeC40
		case modeText:
			if cur != modeText {
				out = append(out, latchText)
			}
			out = append(out, encodeTriples(run, textValue)...)
			cur = modeText
		case modeX12:
			if cur != modeX12 {
				out = append(out, latchX12)
			}
			out = append(out, encodeTriples(run, x12Value)...)
			cur = modeX12
		case modeEDIFACT:
			// cur is always ASCII here: the unlatch above already ran
			// if the prior run was C40/Text/X12, and EDIFACT/BASE256
			// runs reset cur to ASCII themselves.
			out = append(out, latchEDIFACT)
			out = append(out, encodeEDIFACT(run)...)
			cur = modeASCII
		case modeBase256:
			out = append(out, encodeBase256(run)...)
			cur = modeASCII
		}
		i = j
	}
	if cur == modeC40 || cur == modeText || cur == modeX12 {
		out = append(out, c40Unlatch)
	}
	return out
}
