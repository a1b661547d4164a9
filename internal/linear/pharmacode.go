package linear

import (
	"strconv"
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func init() {
	registry.Register(registry.Pharmacode, encodePharmacode)
}

// encodePharmacode implements Laetus Pharmacode: the value (3 through
// 131070) is repeatedly halved, emitting a wide bar for an odd
// remainder and a narrow bar for an even one, then the resulting bar
// sequence is reversed — the standard binary-recurrence construction.
func encodePharmacode(req registry.Request) (registry.Result, error) {
	n, err := strconv.Atoi(string(req.Source))
	if err != nil {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "Pharmacode data must be a decimal number"}
	}
	if n < 3 || n > 131070 {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "Pharmacode value must be between 3 and 131070"}
	}

	var bars []byte
	for n > 0 {
		if n%2 == 1 {
			bars = append(bars, '2')
			n = (n - 1) / 2
		} else {
			bars = append(bars, '1')
			n = (n - 2) / 2
		}
	}
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}

	var b strings.Builder
	for i, bar := range bars {
		if i > 0 {
			b.WriteByte('1')
		}
		b.WriteByte(bar)
	}

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(b.String())},
		HRT:           string(req.Source),
		MinHeight:     2.0,
		DefaultHeight: 8.0,
	}, nil
}
