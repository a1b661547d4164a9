// Package gs1 implements a GS1 Application Identifier bracket reducer:
// it parses a "(AI)data(AI)data..." stream and emits the FNC1-joined
// reduced form every GS1-mode symbology encodes.
//
// The bracket-walking algorithm (bracket_level/ai_length tracking, the
// "first AI's marker is omitted" rule, and the fixed-length-AI group
// table that skips an FNC1 between two adjacent fixed-length fields) is
// grounded on a gs1_verify()-style bracket walk. gs1_lint (the AI
// content linter) stays an opaque external collaborator; Linter below
// is the plug point, with a minimal built-in linter that only checks
// AI shape, not the full GS1 semantic tables.
package gs1

import "fmt"

// FNC1 is the synthetic marker byte the reduced stream uses at AI
// boundaries. The overloading is intentional: '[' is never a valid
// payload byte in GS1.
const FNC1 = '['

// Options controls bracket style and lint strictness.
type Options struct {
	Parens  bool // true: AIs are delimited by (...); false: [...]
	NoCheck bool // true: skip AI-content linting entirely
	Linter  Linter
}

// Linter is the opaque gs1_lint(ai, value) -> (ok, errno, position, message)
// collaborator, treated as external.
type Linter func(ai int, value []byte) (ok bool, fatal bool, pos int, message string)

// fixedLengthGroups lists the AI ranges (and AI 41, plus legacy AI 23)
// whose data has a GS1-tabled fixed length, per GS1 General
// Specifications Figure 7.8.4-2 — adjacent fixed-length fields need no
// FNC1 between them.
func isFixedLength(ai int) bool {
	switch {
	case ai >= 0 && ai <= 4:
		return true
	case ai >= 11 && ai <= 20:
		return true
	case ai == 23:
		return true
	case ai >= 31 && ai <= 36:
		return true
	case ai == 41:
		return true
	}
	return false
}

// Error is a GS1-specific parse failure; Fatal distinguishes the
// structural failure classes (always fatal) from an AI content/check-
// digit failure (a warning unless WarnFailAll).
type Error struct {
	Fatal   bool
	Pos     int // 1-based, 0 if not byte-specific
	Message string
}

func (e *Error) Error() string { return e.Message }

// Verify parses source (AI brackets using the style Options.Parens
// selects) and returns the FNC1-joined reduced stream.
func Verify(source []byte, opts Options) ([]byte, error) {
	obracket, cbracket := byte('['), byte(']')
	if opts.Parens {
		obracket, cbracket = '(', ')'
	}

	for i, b := range source {
		if b >= 128 {
			return nil, &Error{Fatal: true, Pos: i + 1, Message: "extended ASCII characters are not supported by GS1"}
		}
		if b == 0 {
			return nil, &Error{Fatal: true, Pos: i + 1, Message: "NUL characters not permitted in GS1 mode"}
		}
		if b < 32 {
			return nil, &Error{Fatal: true, Pos: i + 1, Message: "control characters are not supported by GS1"}
		}
		if b == 127 {
			return nil, &Error{Fatal: true, Pos: i + 1, Message: "DEL characters not permitted in GS1 mode"}
		}
	}

	if len(source) == 0 || source[0] != obracket {
		return nil, &Error{Fatal: true, Message: "data does not start with an AI"}
	}

	bracketLevel, maxBracketLevel := 0, 0
	aiLength, maxAILength, minAILength := 0, 0, 5
	aiLatchBad := false
	j := 0
	for i := 0; i < len(source); i++ {
		aiLength += j
		if j == 1 && source[i] != cbracket && (source[i] < '0' || source[i] > '9') {
			aiLatchBad = true
		}
		if source[i] == obracket {
			bracketLevel++
			j = 1
		}
		if source[i] == cbracket {
			bracketLevel--
			if aiLength < minAILength {
				minAILength = aiLength
			}
			j = 0
			aiLength = 0
		}
		if bracketLevel > maxBracketLevel {
			maxBracketLevel = bracketLevel
		}
		if aiLength > maxAILength {
			maxAILength = aiLength
		}
	}
	minAILength--

	if bracketLevel != 0 {
		return nil, &Error{Fatal: true, Message: "malformed AI in input data (brackets don't match)"}
	}
	if maxBracketLevel > 1 {
		return nil, &Error{Fatal: true, Message: "found nested brackets in input data"}
	}
	if maxAILength > 4 {
		return nil, &Error{Fatal: true, Message: "invalid AI in input data (AI too long)"}
	}
	if minAILength <= 1 {
		return nil, &Error{Fatal: true, Message: "invalid AI in input data (AI too short)"}
	}
	if aiLatchBad {
		return nil, &Error{Fatal: true, Message: "invalid AI in input data (non-numeric characters in AI)"}
	}

	type aiSpan struct {
		value, location, dataLocation, dataLength int
	}
	var ais []aiSpan
	for i := 1; i < len(source); i++ {
		if source[i-1] == obracket {
			end := i
			for end < len(source) && source[end] != cbracket {
				end++
			}
			var value int
			fmt.Sscanf(string(source[i:end]), "%d", &value)
			ais = append(ais, aiSpan{value: value, location: i})
		}
	}
	for idx := range ais {
		a := &ais[idx]
		a.dataLocation = a.location + 3
		if a.value >= 100 {
			a.dataLocation++
			if a.value >= 1000 {
				a.dataLocation++
			}
		}
		for a.dataLocation+a.dataLength < len(source) && source[a.dataLocation+a.dataLength] != obracket {
			a.dataLength++
		}
		if a.dataLength == 0 {
			return nil, &Error{Fatal: true, Message: "empty data field in input data"}
		}
	}

	var warning error
	if !opts.NoCheck {
		linter := opts.Linter
		if linter == nil {
			linter = defaultLinter
		}
		for _, a := range ais {
			value := source[a.dataLocation : a.dataLocation+a.dataLength]
			ok, fatal, pos, msg := linter(a.value, value)
			if !ok {
				if fatal {
					return nil, &Error{Fatal: true, Pos: pos, Message: fmt.Sprintf("AI (%02d): %s", a.value, msg)}
				}
				warning = &Error{Fatal: false, Pos: pos, Message: fmt.Sprintf("AI (%02d) position %d: %s", a.value, pos, msg)}
			}
		}
	}

	reduced := make([]byte, 0, len(source))
	latchNoSeparator := true // true: no FNC1 needed before the NEXT AI
	for i := 0; i < len(source); i++ {
		if source[i] != obracket && source[i] != cbracket {
			reduced = append(reduced, source[i])
		}
		if source[i] == obracket {
			if !latchNoSeparator {
				reduced = append(reduced, FNC1)
			}
			var lastAI int
			fmt.Sscanf(string(source[i+1:i+3]), "%d", &lastAI)
			latchNoSeparator = isFixedLength(lastAI)
		}
	}

	return reduced, warning
}

// defaultLinter accepts any 2-4 digit AI with nonempty data; it is not a
// substitute for the full GS1 AI table, which is treated as external.
func defaultLinter(ai int, value []byte) (ok bool, fatal bool, pos int, message string) {
	if ai < 0 || ai > 9999 {
		return false, true, 0, "unknown AI"
	}
	if len(value) == 0 {
		return false, true, 0, "empty AI value"
	}
	return true, false, 0, ""
}
