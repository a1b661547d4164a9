package linear

import (
	"testing"

	"github.com/uSwapExchange/symcore/internal/registry"
)

func TestChannelEnumerationCounts(t *testing.T) {
	// The enumeration must produce exactly max+1 tuples per channel
	// count; the published ranges are part of the symbology's
	// definition. Counting 5 and 6 channels keeps the test fast while
	// still exercising the deeper levels of the walk.
	for _, channels := range []int{3, 4, 5, 6} {
		e := chanInitial[channels-3]
		count := 1
		for e.next() {
			count++
		}
		if want := channelMaxValues[channels] + 1; count != want {
			t.Errorf("channels=%d enumerated %d tuples, want %d", channels, count, want)
		}
	}
}

func TestChannelPatternModuleSumConstant(t *testing.T) {
	// Every tuple for a given channel count spans the same module
	// total: 4*channels - 2 across the space/bar pairs.
	for _, channels := range []int{3, 4, 5} {
		for _, value := range []int{0, 1, channelMaxValues[channels] / 2, channelMaxValues[channels]} {
			e, err := channelPattern(channels, value)
			if err != nil {
				t.Fatalf("channels=%d value=%d: %v", channels, value, err)
			}
			sum := 0
			for i := 8 - channels; i < 8; i++ {
				sum += e.S[i] + e.B[i]
			}
			if want := 4*channels - 2; sum != want {
				t.Errorf("channels=%d value=%d module sum = %d, want %d", channels, value, sum, want)
			}
		}
	}
}

func TestChannelPatternsDistinctAndOrdered(t *testing.T) {
	seen := map[[16]int]bool{}
	e := chanInitial[0]
	for {
		var key [16]int
		copy(key[:8], e.B[:])
		copy(key[8:], e.S[:])
		if seen[key] {
			t.Fatalf("duplicate tuple B=%v S=%v", e.B, e.S)
		}
		seen[key] = true
		if !e.next() {
			break
		}
	}
	if len(seen) != 27 {
		t.Errorf("3-channel enumeration yielded %d distinct tuples, want 27", len(seen))
	}
}

func TestEncodeChannelCodeAutoChannelSelection(t *testing.T) {
	// "27" is two digits so the length rule suggests 3 channels, but
	// 27 exceeds the 3-channel maximum of 26 and must bump to 4.
	result, err := encodeChannelCode(registry.Request{Source: []byte("27")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4 channels: HRT zero-pads to 3 digits.
	if result.HRT != "027" {
		t.Errorf("HRT = %q, want %q", result.HRT, "027")
	}
	width := 0
	for _, w := range result.WidthRows[0] {
		width += int(w)
	}
	if want := 9 + 4*4 - 2; width != want {
		t.Errorf("total width = %d, want %d", width, want)
	}
}

func TestEncodeChannelCodeValueOutOfRangeForFixedChannels(t *testing.T) {
	_, err := encodeChannelCode(registry.Request{Source: []byte("27"), Option2: 3})
	if err == nil {
		t.Fatal("27 must not fit 3 channels (0-26)")
	}
}

func TestEncodeChannelCodeRejectsNonDigits(t *testing.T) {
	_, err := encodeChannelCode(registry.Request{Source: []byte("12a")})
	if err == nil {
		t.Fatal("expected invalid-data error")
	}
}

func TestEncodeChannelCodeRejectsLongInput(t *testing.T) {
	_, err := encodeChannelCode(registry.Request{Source: []byte("12345678")})
	if err == nil {
		t.Fatal("expected too-long error for 8 digits")
	}
}

func TestEncodeChannelCodeValueZero(t *testing.T) {
	result, err := encodeChannelCode(registry.Request{Source: []byte("0"), Option2: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Finder is nine alternating single-module runs; the value-0
	// 3-channel tuple follows as (1,2)(1,1)(3,2).
	want := []byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 3, 2}
	got := result.WidthRows[0]
	if len(got) != len(want) {
		t.Fatalf("run count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("run %d = %d, want %d (full %v)", i, got[i], want[i], got)
		}
	}
}
