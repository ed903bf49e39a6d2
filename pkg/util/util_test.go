package util

import (
	"errors"
	"testing"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("boom")
	err := WrapErrorf(orig, ErrBadParamInput, "bad cell (%d,%d)", 3, 4)

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("want *Error")
	}
	if appErr.Code() != ErrBadParamInput {
		t.Errorf("got code %v, want ErrBadParamInput", appErr.Code())
	}
	if !errors.Is(err, orig) {
		t.Error("wrapped error should unwrap to the original")
	}
}

func TestReverseG(t *testing.T) {
	got := ReverseG([]int{1, 2, 3, 4})
	want := []int{4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if out := ReverseG([]int{}); len(out) != 0 {
		t.Error("reversing an empty slice should stay empty")
	}
}

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Error("abs broken")
	}
}

func TestRoundFloat(t *testing.T) {
	testCases := []struct {
		val       float64
		precision uint
		want      float64
	}{
		{4.567, 2, 4.57},
		{4.564, 2, 4.56},
		{-1.005, 1, -1.0},
		{3, 0, 3},
	}

	for _, tt := range testCases {
		if got := RoundFloat(tt.val, tt.precision); got != tt.want {
			t.Errorf("RoundFloat(%f, %d): got %f, want %f", tt.val, tt.precision, got, tt.want)
		}
	}
}
