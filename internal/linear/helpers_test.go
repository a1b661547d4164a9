package linear

import (
	"reflect"
	"testing"
)

func TestWidthStringBytesConvertsDigitsToInts(t *testing.T) {
	got := widthStringBytes("121121211")
	want := []byte{1, 2, 1, 1, 2, 1, 2, 1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("widthStringBytes = %v, want %v", got, want)
	}
}

func TestConcatWidthStringsJoinsParts(t *testing.T) {
	got := concatWidthStrings("11", "22", "1")
	want := []byte{1, 1, 2, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("concatWidthStrings = %v, want %v", got, want)
	}
}
