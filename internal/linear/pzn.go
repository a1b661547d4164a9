package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func init() {
	registry.Register(registry.PZN, encodePZN)
}

// encodePZN implements the Pharmazentralnummer symbol: a Code 39
// rendering of "-" followed by the 6 or 7 digit PZN plus its own
// mod-11 check digit (a check value of 10 is rejected as invalid). The
// printed symbol carries no separate Code 39 check character — PZN's
// own check digit stands in for it.
func encodePZN(req registry.Request) (registry.Result, error) {
	digits, err := allDigits(req.Source)
	if err != nil {
		return registry.Result{}, err
	}
	if len(digits) != 6 && len(digits) != 7 {
		return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "PZN requires 6 or 7 digits"}
	}
	cds, ok := CheckDigits(digits, CDMod11PZN)
	if !ok {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidCheck, Message: "PZN check digit computes to 10, not encodable"}
	}
	check := cds[0]

	var pattern strings.Builder
	pattern.WriteString(code39Patterns['*'])
	pattern.WriteString("1")
	for _, c := range "-" + digitsToString(digits) + digitsToString([]int{check}) {
		pattern.WriteString(code39Patterns[byte(c)])
		pattern.WriteString("1")
	}
	pattern.WriteString(code39Patterns['*'])

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(pattern.String())},
		HRT:           "PZN-" + digitsToString(digits) + digitsToString([]int{check}),
		MinHeight:     5.0,
		DefaultHeight: 12.5,
	}, nil
}
