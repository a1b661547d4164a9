package datamatrix

import (
	"reflect"
	"testing"
)

func TestEncodeASCIIPacksDigitPairs(t *testing.T) {
	got := encodeASCII([]byte("12"))
	want := []int{142} // 130 + 12
	if !reflect.DeepEqual(got, want) {
		t.Errorf("encodeASCII(\"12\") = %v, want %v", got, want)
	}
}

func TestEncodeASCIIPassesThroughLowAsciiAsValuePlusOne(t *testing.T) {
	got := encodeASCII([]byte("A"))
	want := []int{66}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("encodeASCII(\"A\") = %v, want %v", got, want)
	}
}

func TestEncodeASCIIUpperShiftsHighBytes(t *testing.T) {
	got := encodeASCII([]byte{200})
	want := []int{235, 73}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("encodeASCII(200) = %v, want %v", got, want)
	}
}

func TestEncodeASCIIMixesDigitPairsAndLetters(t *testing.T) {
	got := encodeASCII([]byte("A12B"))
	want := []int{66, 142, 67}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("encodeASCII(\"A12B\") = %v, want %v", got, want)
	}
}

func TestPadAppendsPadCodewordThenPseudoRandomSequence(t *testing.T) {
	got := pad([]int{142}, 5)
	want := []int{142, 129, 175, 70, 220}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pad = %v, want %v", got, want)
	}
}

func TestPadNoOpWhenAlreadyAtCapacity(t *testing.T) {
	in := []int{1, 2, 3}
	got := pad(in, 3)
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pad at capacity = %v, want unchanged %v", got, want)
	}
}
