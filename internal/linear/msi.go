package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

const (
	msiStart = "12"
	msiStop  = "121"
)

func init() {
	registry.Register(registry.MSIPlessey, encodeMSI)
}

// encodeMSI builds MSI Plessey: each digit is its 4-bit binary value,
// bit 1 a wide bar + narrow space, bit 0 a narrow bar + wide space.
// Option2 selects the check-digit scheme (an index into msiCheckKinds),
// since MSI Plessey has no single standard check digit; see DESIGN.md
// for why that choice is left to the caller rather than guessing a
// default.
func encodeMSI(req registry.Request) (registry.Result, error) {
	digits, err := allDigits(req.Source)
	if err != nil {
		return registry.Result{}, err
	}
	if len(digits) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}

	kind := CDNone
	if req.Option2 >= 0 && req.Option2 < len(msiCheckKinds) {
		kind = msiCheckKinds[req.Option2]
	}
	checks, _ := CheckDigits(digits, kind)
	all := append(append([]int{}, digits...), checks...)

	var b strings.Builder
	b.WriteString(msiStart)
	for _, d := range all {
		for bit := 3; bit >= 0; bit-- {
			if d&(1<<uint(bit)) != 0 {
				b.WriteString("21")
			} else {
				b.WriteString("12")
			}
		}
	}
	b.WriteString(msiStop)

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(b.String())},
		HRT:           digitsToString(all),
		MinHeight:     5.0,
		DefaultHeight: 12.5,
	}, nil
}
