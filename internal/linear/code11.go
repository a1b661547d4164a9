package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

// code11Patterns gives each of the eleven Code 11 characters (digits
// 0-9, then '-') its bar/space width pattern; index 10 doubles as the
// start/stop pattern.
var code11Patterns = []string{
	"111121", "211121", "121121", "221111", "112121",
	"212111", "122111", "111221", "211211", "211111", "112111",
}

const code11StartStop = "112211"

func init() {
	registry.Register(registry.Code11, encodeCode11)
}

func encodeCode11(req registry.Request) (registry.Result, error) {
	source := req.Source
	if len(source) == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
	}
	values := make([]int, len(source))
	for i, c := range source {
		switch {
		case c >= '0' && c <= '9':
			values[i] = int(c - '0')
		case c == '-':
			values[i] = 10
		default:
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "Code 11 accepts only digits and '-'"}
		}
	}

	cds, _ := CheckDigits(values, CDMod11Wrap10)
	c := cds[0]
	withC := append(append([]int{}, values...), c)
	var b strings.Builder
	b.WriteString(code11StartStop)
	for _, v := range values {
		b.WriteString(code11Patterns[v])
	}
	b.WriteString(code11Patterns[c])

	hrt := string(source) + code11Char(c)
	if len(source) >= 10 {
		kds, _ := CheckDigits(withC, CDMod11Wrap9)
		k := kds[0]
		b.WriteString(code11Patterns[k])
		hrt += code11Char(k)
	}
	b.WriteString(code11StartStop)

	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(b.String())},
		HRT:           hrt,
		MinHeight:     5.0,
		DefaultHeight: 12.5,
	}, nil
}

func code11Char(v int) string {
	if v == 10 {
		return "-"
	}
	return string(rune('0' + v))
}
