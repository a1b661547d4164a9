package linear

// widthStringBytes converts a source-literal run-length string such as
// "121121211" (as used throughout this package's pattern tables, for
// readability) into the []byte width-string symbase.Expand expects —
// small integers, not ASCII digits.
func widthStringBytes(s string) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i] - '0'
	}
	return out
}

// concatWidthStrings joins several run-length literals, used when a
// symbol's pattern is built character-by-character.
func concatWidthStrings(parts ...string) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, widthStringBytes(p)...)
	}
	return out
}
