package linear

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

// channelMaxValues gives the largest encodable value per channel
// count (ANSI/AIM BC12-1998); values run 0..max.
var channelMaxValues = [9]int{-1, -1, -1, 26, 292, 3493, 44072, 576688, 7742862}

func init() {
	registry.Register(registry.ChannelCode, encodeChannelCode)
}

// chanEnum enumerates Channel Code bar/space width tuples in
// increasing value order, expressing BC12-1998 Annex D Figure D5's
// CHNCHR walk as an explicit state machine rather than the figure's
// label-driven form. All seven (S, B) levels always run; the per-channel
// initial states pin the unused outer levels to width 1 so only the
// innermost `channels` positions vary.
type chanEnum struct {
	B, S       [8]int
	bmax, smax [7]int
}

// chanInitial holds the valid value-0 state for each channel count
// 3-8, from which the enumeration resumes.
var chanInitial = [6]chanEnum{
	{B: [8]int{1, 1, 1, 1, 1, 2, 1, 2}, S: [8]int{1, 1, 1, 1, 1, 1, 1, 3}, bmax: [7]int{1, 1, 1, 1, 1, 3, 2}, smax: [7]int{1, 1, 1, 1, 1, 3, 3}},
	{B: [8]int{1, 1, 1, 1, 2, 1, 1, 3}, S: [8]int{1, 1, 1, 1, 1, 1, 1, 4}, bmax: [7]int{1, 1, 1, 1, 4, 3, 3}, smax: [7]int{1, 1, 1, 1, 4, 4, 4}},
	{B: [8]int{1, 1, 1, 2, 1, 1, 2, 3}, S: [8]int{1, 1, 1, 1, 1, 1, 1, 5}, bmax: [7]int{1, 1, 1, 5, 4, 4, 4}, smax: [7]int{1, 1, 1, 5, 5, 5, 5}},
	{B: [8]int{1, 1, 2, 1, 1, 2, 1, 4}, S: [8]int{1, 1, 1, 1, 1, 1, 1, 6}, bmax: [7]int{1, 1, 6, 5, 5, 5, 4}, smax: [7]int{1, 1, 6, 6, 6, 6, 6}},
	{B: [8]int{1, 2, 1, 1, 2, 1, 1, 5}, S: [8]int{1, 1, 1, 1, 1, 1, 1, 7}, bmax: [7]int{1, 7, 6, 6, 6, 5, 5}, smax: [7]int{1, 7, 7, 7, 7, 7, 7}},
	{B: [8]int{2, 1, 1, 2, 1, 1, 2, 5}, S: [8]int{1, 1, 1, 1, 1, 1, 1, 8}, bmax: [7]int{8, 7, 7, 7, 6, 6, 6}, smax: [7]int{8, 8, 8, 8, 8, 8, 8}},
}

// guard reports whether level i's bar width must start at 2 rather
// than 1: the figure's adjacency constraints forbid a (space, bar)
// neighborhood summing to the stated minimum with another width-1 bar.
func (e *chanEnum) guard(i int) bool {
	switch i {
	case 0:
		return e.S[0] == 1
	case 1:
		return e.S[0]+e.B[0]+e.S[1] == 3
	case 2:
		return e.B[0]+e.S[1]+e.B[1]+e.S[2] == 4
	case 3:
		return e.B[1]+e.S[2]+e.B[2]+e.S[3] == 4
	case 4:
		return e.B[2]+e.S[3]+e.B[3]+e.S[4] == 4
	case 5:
		return e.B[3]+e.S[4]+e.B[4]+e.S[5] == 4
	default:
		return e.B[4]+e.S[5]+e.B[5]+e.S[6] == 4
	}
}

// next advances to the following valid tuple, returning false when the
// enumeration is exhausted.
func (e *chanEnum) next() bool { return e.incrB(6) }

// setS runs level i's space step: fix the next level's space budget,
// reset the bar width, and descend.
func (e *chanEnum) setS(i int) bool {
	if i < 6 {
		e.smax[i+1] = e.smax[i] + 1 - e.S[i]
	} else {
		e.S[7] = e.smax[6] + 1 - e.S[6]
	}
	e.B[i] = 1
	if e.guard(i) {
		e.B[i] = 2
		if e.B[i] > e.bmax[i] {
			return e.bumpS(i)
		}
	}
	return e.setB(i)
}

// setB runs level i's bar step. At the innermost level the final bar
// width is forced by the remaining budget and the closing adjacency
// constraint decides whether the tuple is valid.
func (e *chanEnum) setB(i int) bool {
	if i < 6 {
		e.bmax[i+1] = e.bmax[i] + 1 - e.B[i]
		e.S[i+1] = 1
		return e.setS(i + 1)
	}
	e.B[7] = e.bmax[6] + 1 - e.B[6]
	if e.B[5]+e.S[6]+e.B[6]+e.S[7]+e.B[7] == 5 {
		return e.incrB(6)
	}
	return true
}

func (e *chanEnum) incrB(i int) bool {
	e.B[i]++
	if e.B[i] <= e.bmax[i] {
		return e.setB(i)
	}
	return e.bumpS(i)
}

func (e *chanEnum) bumpS(i int) bool {
	e.S[i]++
	if e.S[i] <= e.smax[i] {
		return e.setS(i)
	}
	if i == 0 {
		return false
	}
	return e.incrB(i - 1)
}

// channelPattern walks the enumeration to the tuple ranked value
// (0-based) for this channel count.
func channelPattern(channels, value int) (chanEnum, error) {
	e := chanInitial[channels-3]
	for v := 0; v < value; v++ {
		if !e.next() {
			return e, &registry.Err{Code: registry.ErrEncodingProblem, Message: "channel enumeration exhausted before target value"}
		}
	}
	return e, nil
}

// encodeChannelCode builds Channel Code per ANSI/AIM BC12-1998: a
// 9-module finder pattern followed by `channels` space/bar pairs whose
// widths the value's rank selects.
func encodeChannelCode(req registry.Request) (registry.Result, error) {
	source := req.Source
	if len(source) > 7 {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "input too long (7 character maximum)"}
	}
	value, err := strconv.Atoi(string(source))
	if err != nil || value < 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "invalid character in data (digits only)"}
	}

	channels := 0
	if req.Option2 >= 3 && req.Option2 <= 8 {
		channels = req.Option2
	}
	if channels == 0 {
		channels = len(source) + 1
		switch {
		case value > 576688 && channels < 8:
			channels = 8
		case value > 44072 && channels < 7:
			channels = 7
		case value > 3493 && channels < 6:
			channels = 6
		case value > 292 && channels < 5:
			channels = 5
		case value > 26 && channels < 4:
			channels = 4
		}
	}
	if channels == 2 {
		channels = 3
	}

	if value > channelMaxValues[channels] {
		return registry.Result{}, &registry.Err{
			Code:    registry.ErrInvalidData,
			Message: fmt.Sprintf("value out of range (0 to %d) for %d channels", channelMaxValues[channels], channels),
		}
	}

	e, err := channelPattern(channels, value)
	if err != nil {
		return registry.Result{}, err
	}

	var pattern strings.Builder
	pattern.WriteString("111111111") // finder
	for i := 8 - channels; i < 8; i++ {
		pattern.WriteByte(byte('0' + e.S[i]))
		pattern.WriteByte(byte('0' + e.B[i]))
	}

	hrt := string(source)
	for len(hrt) < channels-1 {
		hrt = "0" + hrt
	}

	minH := float64(10+4*channels) * 0.15
	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(pattern.String())},
		HRT:           hrt,
		MinHeight:     minH,
		DefaultHeight: 50.0,
	}, nil
}
