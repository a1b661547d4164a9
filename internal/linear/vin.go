package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func init() {
	registry.Register(registry.VIN, encodeVIN)
}

// encodeVIN renders a 17-character Vehicle Identification Number as
// Code 39, after verifying its position-9 check digit against
// VINCheck's weighted mod-11.
func encodeVIN(req registry.Request) (registry.Result, error) {
	vin := req.Source
	expected, err := VINCheck(vin)
	if err != nil {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: err.Error()}
	}
	if vin[8] != expected {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidCheck, Message: "VIN check digit (position 9) does not match"}
	}

	var pattern strings.Builder
	pattern.WriteString(code39Patterns['*'])
	pattern.WriteString("1")
	for _, c := range vin {
		p, ok := code39Patterns[c]
		if !ok {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "character not representable in VIN's Code 39 rendering"}
		}
		pattern.WriteString(p)
		pattern.WriteString("1")
	}
	pattern.WriteString(code39Patterns['*'])

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(pattern.String())},
		HRT:           string(vin),
		MinHeight:     5.0,
		DefaultHeight: 12.5,
	}, nil
}
