// Package dotcode implements DotCode: the Annex F six-state
// (C/B/A/X plus macro and shift prefixes) high-level encoder
// (annexf.go), interleaved GF(113) Reed-Solomon check words
// (rs113.go), the minimum-dot-count sizing formula, and checkerboard
// dot placement with the four-mask scorer and its forced-corner
// escape hatch. The fold order is a documented simplification — see
// placement.go and DESIGN.md.
package dotcode

import "github.com/uSwapExchange/symcore/internal/registry"

func init() {
	registry.Register(registry.DotCode, encodeDotCode)
}

func encodeDotCode(req registry.Request) (registry.Result, error) {
	if len(req.Source) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}
	if req.ECI > 811799 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidOption, Message: "invalid ECI for DotCode"}
	}

	codewords, binaryFinish := encodeMessage(req.Source, req.GS1, req.ReaderInit, req.ECI)

	minDots := 9*(len(codewords)+3+len(codewords)/2) + 2
	minArea := 2 * minDots

	var h, w int
	switch {
	case req.Option2 > 0xff:
		// Explicit height<<8|width.
		h, w = req.Option2>>8, req.Option2&0xff
		if h*w < minArea {
			return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "data too long for the requested DotCode size"}
		}
	case req.Option2 > 0:
		// Explicit width; height follows from the area floor, nudged
		// to keep the height+width sum odd.
		w = req.Option2
		h = (minArea + w - 1) / w
		if (w+h)%2 == 0 {
			h++
		}
	default:
		h, w = size(len(codewords))
	}
	if h < 5 || w < 5 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidOption, Message: "DotCode height/width must each be at least 5 dots"}
	}
	if h > 200 || w > 200 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidOption, Message: "DotCode symbol too large"}
	}

	nDots := h * w / 2

	// Pad codewords while whole 9-dot characters (and their share of
	// check words) still fit; the first pad is 109 when the message
	// finished in binary mode.
	paddingDots := nDots - minDots
	isFirst := true
	for paddingDots >= 9 {
		if paddingDots < 18 && len(codewords)%2 == 0 {
			paddingDots -= 9
		} else if paddingDots >= 18 {
			if len(codewords)%2 == 0 {
				paddingDots -= 9
			} else {
				paddingDots -= 18
			}
		} else {
			break
		}
		if isFirst && binaryFinish {
			codewords = append(codewords, 109)
		} else {
			codewords = append(codewords, 106)
		}
		isFirst = false
	}

	eccLen := 3 + len(codewords)/2

	build := func(mask int, forced bool) [][]bool {
		full := rs113Encode(applyMask113(mask, codewords), eccLen)
		grid := fold(makeDotStream(full, nDots), h, w)
		if forced {
			forceCorners(grid, h, w)
		}
		return grid
	}

	userMask := (req.Option3 >> 8) & 0x0f
	if userMask > 8 {
		userMask = 0
	}
	if userMask >= 1 {
		m := userMask - 1
		grid := build(m%4, m >= 4)
		return dotResult(grid, h, w), nil
	}

	bestScore := -1 << 30
	var best [][]bool
	for m := 0; m < 4; m++ {
		grid := build(m, false)
		if s := score(grid, h, w); s > bestScore {
			bestScore = s
			best = grid
		}
	}
	// Low-scoring symbols retry with the six corner dots forced dark;
	// a forced variant wins ties against the natural masks.
	if bestScore <= h*w/2 {
		for m := 0; m < 4; m++ {
			grid := build(m, true)
			if s := score(grid, h, w); s >= bestScore {
				bestScore = s
				best = grid
			}
		}
	}

	return dotResult(best, h, w), nil
}

func dotResult(grid [][]bool, h, w int) registry.Result {
	return registry.Result{
		Modules:       grid,
		Rows:          h,
		Cols:          w,
		MinHeight:     float64(h),
		DefaultHeight: float64(h),
	}
}

// size solves DotCode's minimum-dot-count sizing formula:
// min_dots = 9*(n + 3 + n/2) + 2, min_area = 2*min_dots, h =
// sqrt(min_area*0.666), w = sqrt(min_area*1.5), then rounds so h+w is
// odd and h*w >= min_area.
func size(n int) (h, w int) {
	minDots := 9*(n+3+n/2) + 2
	minArea := 2 * minDots

	h = isqrtRound(float64(minArea) * 0.666)
	w = isqrtRound(float64(minArea) * 1.5)
	if h < 5 {
		h = 5
	}
	if w < 5 {
		w = 5
	}
	for (h+w)%2 == 0 || h*w < minArea {
		w++
	}
	return h, w
}

func isqrtRound(v float64) int {
	lo, hi := 0, 1
	for hi*hi < int(v) {
		hi *= 2
	}
	for lo < hi {
		mid := (lo + hi) / 2
		if mid*mid < int(v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
