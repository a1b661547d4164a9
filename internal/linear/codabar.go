package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

// codabarPatterns gives each Codabar character's 7-element bar/space
// width pattern (4 bars, 3 spaces); A-D are the four start/stop
// characters the caller must bracket the data with.
var codabarPatterns = map[byte]string{
	'0': "1111122", '1': "1111221", '2': "1112112", '3': "2211111",
	'4': "1121121", '5': "2111121", '6': "1211112", '7': "1211211",
	'8': "1221111", '9': "2112111", '-': "1112211", '$': "1122111",
	':': "2112121", '/': "2121121", '.': "2121211", '+': "2211211",
	'A': "1122121", 'B': "1221121", 'C': "1121221", 'D': "1122211",
}

func init() {
	registry.Register(registry.Codabar, encodeCodabar)
}

func encodeCodabar(req registry.Request) (registry.Result, error) {
	source := req.Source
	if len(source) < 2 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "Codabar data must include start and stop characters"}
	}
	start, stop := upperStartStop(source[0]), upperStartStop(source[len(source)-1])
	if start == 0 || stop == 0 {
		return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "Codabar data must start and end with A, B, C or D"}
	}

	var b strings.Builder
	b.WriteString(codabarPatterns[start])
	b.WriteString("1")
	for _, c := range source[1 : len(source)-1] {
		pattern, ok := codabarPatterns[c]
		if !ok || c == 'A' || c == 'B' || c == 'C' || c == 'D' {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "invalid character in Codabar data"}
		}
		b.WriteString(pattern)
		b.WriteString("1")
	}
	b.WriteString(codabarPatterns[stop])

	hrt := string(start) + string(source[1:len(source)-1]) + string(stop)
	return registry.Result{
		WidthRows:     [][]byte{widthStringBytes(b.String())},
		HRT:           hrt,
		MinHeight:     5.0,
		DefaultHeight: 12.5,
	}, nil
}

func upperStartStop(c byte) byte {
	switch c {
	case 'A', 'a':
		return 'A'
	case 'B', 'b':
		return 'B'
	case 'C', 'c':
		return 'C'
	case 'D', 'd':
		return 'D'
	}
	return 0
}
