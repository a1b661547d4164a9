package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

const telepenStartStop = "1311311"

func init() {
	registry.Register(registry.Telepen, encodeTelepen)
}

// encodeTelepen implements full-ASCII Telepen: each byte's bits (LSB
// first, plus a trailing zero stop bit) are walked so that every 1 bit
// closes the current bar/space element and switches its color, while
// each 0 bit widens the element by one module — Telepen's
// self-clocking run-length scheme.
func encodeTelepen(req registry.Request) (registry.Result, error) {
	source := req.Source
	if len(source) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}
	var b strings.Builder
	b.WriteString(telepenStartStop)
	for _, c := range source {
		b.WriteString(telepenPattern(c))
	}
	b.WriteString(telepenStartStop)

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(b.String())},
		HRT:           string(source),
		MinHeight:     5.0,
		DefaultHeight: 12.5,
	}, nil
}

func telepenPattern(c byte) string {
	width := 1
	var widths []int
	for i := 0; i < 8; i++ {
		if (c>>uint(i))&1 == 1 {
			widths = append(widths, width)
			width = 1
		} else {
			width++
		}
	}
	widths = append(widths, width)

	var b strings.Builder
	for _, w := range widths {
		b.WriteByte(byte('0' + w))
	}
	return b.String()
}
