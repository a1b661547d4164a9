package gs1

import "testing"

func TestVerifyReducesBracketsToFNC1(t *testing.T) {
	out, err := Verify([]byte("[01]12345678901231[10]ABC123"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "01" + "12345678901231" + "10" + "ABC123"
	if string(out) != want {
		t.Errorf("reduced = %q, want %q", out, want)
	}
}

func TestVerifyInsertsFNC1BetweenVariableLengthAIs(t *testing.T) {
	out, err := Verify([]byte("[10]ABC[20]99"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "10ABC" + string(FNC1) + "2099"
	if string(out) != want {
		t.Errorf("reduced = %q, want %q", out, want)
	}
}

func TestVerifyParensStyle(t *testing.T) {
	out, err := Verify([]byte("(01)12345678901231"), Options{Parens: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "0112345678901231" {
		t.Errorf("reduced = %q", out)
	}
}

func TestVerifyRejectsMismatchedBrackets(t *testing.T) {
	_, err := Verify([]byte("[0112345"), Options{})
	gerr, ok := err.(*Error)
	if !ok || !gerr.Fatal {
		t.Fatalf("expected fatal mismatched-bracket error, got %v", err)
	}
}

func TestVerifyRejectsNestedBrackets(t *testing.T) {
	_, err := Verify([]byte("[01[02]]1234"), Options{})
	if err == nil {
		t.Fatal("expected error for nested brackets")
	}
}

func TestVerifyRejectsControlCharacters(t *testing.T) {
	_, err := Verify([]byte("[01]123\x0145"), Options{})
	if err == nil {
		t.Fatal("expected error for control character in input")
	}
}

func TestVerifyNoCheckSkipsLinter(t *testing.T) {
	calls := 0
	linter := func(ai int, value []byte) (bool, bool, int, string) {
		calls++
		return false, true, 0, "should not be called"
	}
	_, err := Verify([]byte("[01]12345678901231"), Options{NoCheck: true, Linter: linter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Errorf("linter was called %d times, want 0 when NoCheck is set", calls)
	}
}
