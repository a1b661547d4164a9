package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

// itfDigitPatterns gives each digit's 5-element narrow/wide pattern;
// Interleaved 2 of 5 pairs two digits per character by using one
// digit's pattern for the bars and the other's for the interleaved
// spaces.
var itfDigitPatterns = map[byte]string{
	'0': "11221", '1': "21112", '2': "12112", '3': "22111", '4': "11212",
	'5': "21211", '6': "12211", '7': "11122", '8': "21121", '9': "12121",
}

const (
	itfStart = "1111"
	itfStop  = "211"
)

func init() {
	registry.Register(registry.Interleaved2of5, encodeITF(itfOptions{}))
	registry.Register(registry.Standard2of5, encodeStandard2of5())
	registry.Register(registry.ITF14, encodeITF(itfOptions{fixedLen: 13, checkKind: CDGS1Mod10}))
	registry.Register(registry.EAN14, encodeITF(itfOptions{fixedLen: 13, checkKind: CDGS1Mod10, aiPrefix: "01"}))
	registry.Register(registry.NVE18, encodeITF(itfOptions{fixedLen: 17, checkKind: CDGS1Mod10}))
	registry.Register(registry.DPLeitcode, encodeITF(itfOptions{fixedLen: 13, checkKind: CDDPWeighted49}))
	registry.Register(registry.DPIdentcode, encodeITF(itfOptions{fixedLen: 11, checkKind: CDDPWeighted49}))
}

type itfOptions struct {
	fixedLen  int            // required digit count before the check digit, 0 means variable
	checkKind CheckDigitKind // CDNone, or the check digit to append
	aiPrefix  string         // HRT prefix (EAN-14's "01" AI), not encoded as data
}

// encodeITF builds the Interleaved 2 of 5 family: ITF14, EAN-14, NVE-18
// and the Deutsche Post Leitcode/Identcode all share this shape (a
// fixed digit count plus a single weighted check digit), differing
// only in length and check weighting.
func encodeITF(opts itfOptions) registry.EncodeFunc {
	return func(req registry.Request) (registry.Result, error) {
		digits, err := allDigits(req.Source)
		if err != nil {
			return registry.Result{}, err
		}
		if len(digits) == 0 {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
		}
		if opts.fixedLen != 0 && len(digits) != opts.fixedLen {
			return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "wrong number of digits for this symbology"}
		}
		checks, _ := CheckDigits(digits, opts.checkKind)
		digits = append(digits, checks...)
		if len(digits)%2 != 0 {
			digits = append([]int{0}, digits...)
		}

		pattern, err := itfPattern(digits)
		if err != nil {
			return registry.Result{}, err
		}

		hrt := opts.aiPrefix + digitsToString(digits)
		return registry.Result{
			WidthRows:     [][]byte{widthStringBytes(pattern)},
			HRT:           hrt,
			MinHeight:     5.0,
			DefaultHeight: 25.0,
		}, nil
	}
}

// encodeStandard2of5 is the non-interleaved variant: every digit gets
// its own bar character (the spaces between are all narrow), used
// where interleaving isn't wanted.
func encodeStandard2of5() registry.EncodeFunc {
	return func(req registry.Request) (registry.Result, error) {
		digits, err := allDigits(req.Source)
		if err != nil {
			return registry.Result{}, err
		}
		if len(digits) == 0 {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
		}
		var b strings.Builder
		b.WriteString("11101")
		for _, d := range digits {
			b.WriteString(itfDigitPatterns[byte('0'+d)])
			b.WriteString("1")
		}
		b.WriteString("1101")
		return registry.Result{
			WidthRows:     [][]byte{widthStringBytes(b.String())},
			HRT:           digitsToString(digits),
			MinHeight:     5.0,
			DefaultHeight: 25.0,
		}, nil
	}
}

func itfPattern(digits []int) (string, error) {
	var b strings.Builder
	b.WriteString(itfStart)
	for i := 0; i < len(digits); i += 2 {
		bar := itfDigitPatterns[byte('0'+digits[i])]
		space := itfDigitPatterns[byte('0'+digits[i+1])]
		for j := 0; j < 5; j++ {
			b.WriteByte(bar[j])
			b.WriteByte(space[j])
		}
	}
	b.WriteString(itfStop)
	return b.String(), nil
}

func allDigits(source []byte) ([]int, error) {
	digits := make([]int, len(source))
	for i, c := range source {
		if c < '0' || c > '9' {
			return nil, &registry.Err{Code: registry.ErrInvalidData, Message: "non-digit character in numeric symbology input"}
		}
		digits[i] = int(c - '0')
	}
	return digits, nil
}

func digitsToString(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}
	return string(b)
}
