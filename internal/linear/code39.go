package linear

import (
	"strings"

	"github.com/uSwapExchange/symcore/internal/registry"
)

// code39Patterns gives each of the 43 Code 39 data characters, plus the
// '*' start/stop character, its 9-element bar/space width pattern
// (5 bars + 4 spaces per character, narrow=1, wide=2), emitted directly
// as module-count runs per the width-string contract.
var code39Patterns = map[byte]string{
	'0': "111221211", '1': "211211112", '2': "112211112", '3': "212211111",
	'4': "111221112", '5': "211221111", '6': "112221111", '7': "111211212",
	'8': "211211211", '9': "112211211", 'A': "211112112", 'B': "112112112",
	'C': "212112111", 'D': "111122112", 'E': "211122111", 'F': "112122111",
	'G': "111112212", 'H': "211112211", 'I': "112112211", 'J': "111122211",
	'K': "211111122", 'L': "112111122", 'M': "212111121", 'N': "111121122",
	'O': "211121121", 'P': "112121121", 'Q': "111111222", 'R': "211111221",
	'S': "112111221", 'T': "111121221", 'U': "221111112", 'V': "122111112",
	'W': "222111111", 'X': "121121112", 'Y': "221121111", 'Z': "122121111",
	'-': "121111212", '.': "221111211", ' ': "122111211", '$': "121212111",
	'/': "121211121", '+': "121112121", '%': "111212121", '*': "121121211",
}

const code39MaxLen = 85

func init() {
	registry.Register(registry.Code39, encodeCode39(false))
	registry.Register(registry.ExtendedCode39, encodeCode39(true))
}

// encodeCode39 returns the Code 39 (or Extended Code 39) encoder.
// Extended Code 39 first transliterates the full ASCII range into
// pairs of basic Code 39 characters (+/-/$/% shift combinations) the
// way the standard's "full ASCII" table specifies.
func encodeCode39(extended bool) registry.EncodeFunc {
	return func(req registry.Request) (registry.Result, error) {
		source := req.Source
		if len(source) == 0 {
			return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "no data to encode"}
		}
		if extended {
			transliterated, err := extendedCode39Transliterate(source)
			if err != nil {
				return registry.Result{}, err
			}
			source = transliterated
		}
		if len(source) > code39MaxLen {
			return registry.Result{}, &registry.Err{Code: registry.ErrTooLong, Message: "input too long for Code 39"}
		}

		values := make([]int, len(source))
		for i, c := range source {
			idx := Mod43Value(c)
			if idx < 0 {
				return registry.Result{}, &registry.Err{Code: registry.ErrInvalidData, Message: "invalid character in Code 39 data"}
			}
			values[i] = idx
		}

		cds, _ := CheckDigits(values, CDMod43Silver)
		checkChar := mod43Alphabet[cds[0]]

		var pattern strings.Builder
		pattern.WriteString(code39Patterns['*'])
		pattern.WriteString("1")
		for _, c := range source {
			pattern.WriteString(code39Patterns[c])
			pattern.WriteString("1")
		}
		pattern.WriteString(code39Patterns[checkChar])
		pattern.WriteString("1")
		pattern.WriteString(code39Patterns['*'])

		hrt := string(source) + string(checkChar)
		if bytesContainsSpace(source) {
			hrt = strings.ReplaceAll(hrt, " ", "_")
		}

		return registry.Result{
			WidthRows:     [][]byte{widthStringBytes(pattern.String())},
			HRT:           hrt,
			MinHeight:     5.0,
			DefaultHeight: 5.0 * 2.5,
			MaxHeight:     0,
		}, nil
	}
}

func bytesContainsSpace(b []byte) bool {
	for _, c := range b {
		if c == ' ' {
			return true
		}
	}
	return false
}

// extendedCode39Transliterate expands full ASCII into pairs of basic
// Code 39 characters using the $/%/ / +  shift prefixes.
func extendedCode39Transliterate(source []byte) ([]byte, error) {
	var out []byte
	for _, c := range source {
		switch {
		case c == 0:
			out = append(out, '%', 'U')
		case c < 27:
			out = append(out, '$', byte('A'+c-1))
		case c >= 27 && c < 32:
			out = append(out, '%', byte('A'+c-27))
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c == ' ':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, '+', byte('A'+c-'a'))
		case c == '!':
			out = append(out, '/', 'A')
		case c == '"':
			out = append(out, '/', 'B')
		case c == '#':
			out = append(out, '/', 'C')
		case c == '$':
			out = append(out, '/', 'D')
		case c == '%':
			out = append(out, '/', 'E')
		case c == '&':
			out = append(out, '/', 'F')
		case c == '\'':
			out = append(out, '/', 'G')
		case c == '(':
			out = append(out, '/', 'H')
		case c == ')':
			out = append(out, '/', 'I')
		case c == '*':
			out = append(out, '/', 'J')
		case c == '+':
			out = append(out, '/', 'K')
		case c == ',':
			out = append(out, '/', 'L')
		case c == '-' || c == '.' || c == '/':
			out = append(out, c)
		case c == ':':
			out = append(out, '/', 'Z')
		case c == ';':
			out = append(out, '%', 'F')
		case c == '<':
			out = append(out, '%', 'G')
		case c == '=':
			out = append(out, '%', 'H')
		case c == '>':
			out = append(out, '%', 'I')
		case c == '?':
			out = append(out, '%', 'J')
		case c == '@':
			out = append(out, '%', 'V')
		case c >= '[' && c <= '_':
			out = append(out, '%', byte('K'+c-'['))
		case c == '`':
			out = append(out, '%', 'W')
		case c >= '{' && c <= 127:
			out = append(out, '%', byte('P'+c-'{'))
		default:
			return nil, &registry.Err{Code: registry.ErrInvalidData, Message: "character not representable in Extended Code 39"}
		}
	}
	return out, nil
}
